// Package translator converts WebGL2 (GLSL ES 3.00) shader sources into
// desktop GLSL the 4.1 core context accepts.
package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
	"github.com/richinsley/goshapes/shader"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	initOnce   sync.Once
)

// GetTranslator returns the shared translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	initOnce.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, initErr
}

func stageName(typ shader.Type) (string, error) {
	switch typ {
	case shader.Vertex:
		return "vertex", nil
	case shader.Fragment:
		return "fragment", nil
	}
	return "", fmt.Errorf("%s shaders cannot be translated", typ)
}

// Translate rewrites source for the given stage. The translator renames
// user identifiers, so the result carries the original → mapped names.
func Translate(source string, typ shader.Type) (shader.Translation, error) {
	stage, err := stageName(typ)
	if err != nil {
		return shader.Translation{}, err
	}
	t, err := GetTranslator()
	if err != nil {
		return shader.Translation{}, fmt.Errorf("failed to start translator: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return shader.Translation{}, err
	}
	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	return shader.Translation{Source: out.Code, Names: names}, nil
}

var _ shader.TranslateFunc = Translate
