package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goshapes/shader"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrReadFailed is returned when the scene file cannot be read.
	ErrReadFailed = zerr.New("failed to read scene file")

	// ErrParseFailed is returned when the scene file is not valid YAML.
	ErrParseFailed = zerr.New("failed to parse scene file")

	// ErrInvalidScene is returned when the scene content is inconsistent.
	ErrInvalidScene = zerr.New("invalid scene")
)

// sceneFile is the on-disk YAML layout:
//
//	shaders:
//	  - type: vertex
//	    file: vertexshader.glsl
//	vertices: [[0.6, 0.4, 0.0], ...]
//	colors: [[0.0, 0.5, 0.0, 1.0], ...]
type sceneFile struct {
	Shaders []struct {
		Type string `yaml:"type"`
		File string `yaml:"file"`
	} `yaml:"shaders"`
	Vertices [][]float32 `yaml:"vertices"`
	Colors   [][]float32 `yaml:"colors"`
}

// Load reads a scene file. Shader files are resolved relative to the scene
// file's directory. Omitted sections keep the default scene's values.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrReadFailed.Error()), "path", path)
	}
	s, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return s, nil
}

// Parse decodes scene YAML. baseDir is joined to relative shader paths.
func Parse(data []byte, baseDir string) (*Scene, error) {
	var f sceneFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, ErrParseFailed.Error())
	}

	s := Default()
	if len(f.Shaders) > 0 {
		s.Shaders = make([]shader.Info, 0, len(f.Shaders))
		for i, sh := range f.Shaders {
			typ, err := shader.ParseType(sh.Type)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, ErrInvalidScene.Error()), "shader", i)
			}
			if sh.File == "" {
				return nil, zerr.With(zerr.Wrap(fmt.Errorf("shader %d has no file", i), ErrInvalidScene.Error()), "shader", i)
			}
			file := sh.File
			if !filepath.IsAbs(file) && baseDir != "" {
				file = filepath.Join(baseDir, file)
			}
			s.Shaders = append(s.Shaders, shader.Info{Type: typ, Filename: file})
		}
	} else if baseDir != "" {
		for i := range s.Shaders {
			s.Shaders[i].Filename = filepath.Join(baseDir, s.Shaders[i].Filename)
		}
	}

	if f.Vertices != nil {
		s.Vertices = make([]mgl32.Vec3, len(f.Vertices))
		for i, v := range f.Vertices {
			if len(v) != 3 {
				return nil, zerr.With(zerr.Wrap(fmt.Errorf("vertex %d has %d components, want 3", i, len(v)), ErrInvalidScene.Error()), "vertex", i)
			}
			s.Vertices[i] = mgl32.Vec3{v[0], v[1], v[2]}
		}
	}
	if f.Colors != nil {
		s.Colors = make([]mgl32.Vec4, len(f.Colors))
		for i, c := range f.Colors {
			switch len(c) {
			case 3:
				s.Colors[i] = mgl32.Vec4{c[0], c[1], c[2], 1}
			case 4:
				s.Colors[i] = mgl32.Vec4{c[0], c[1], c[2], c[3]}
			default:
				return nil, zerr.With(zerr.Wrap(fmt.Errorf("color %d has %d components, want 3 or 4", i, len(c)), ErrInvalidScene.Error()), "color", i)
			}
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the scene can be drawn.
func (s *Scene) Validate() error {
	if len(s.Shaders) == 0 {
		return zerr.Wrap(fmt.Errorf("no shaders"), ErrInvalidScene.Error())
	}
	if len(s.Vertices) < MinVertices {
		return zerr.With(zerr.Wrap(fmt.Errorf("need at least %d vertices", MinVertices), ErrInvalidScene.Error()), "vertices", len(s.Vertices))
	}
	if len(s.Colors) != len(s.Vertices) {
		return zerr.With(zerr.Wrap(fmt.Errorf("%d colors for %d vertices", len(s.Colors), len(s.Vertices)), ErrInvalidScene.Error()), "colors", len(s.Colors))
	}
	return nil
}
