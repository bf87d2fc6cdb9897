package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/richinsley/goshapes/logging"
	"github.com/richinsley/goshapes/options"
	"github.com/richinsley/goshapes/scene"
	"github.com/richinsley/goshapes/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (*options.ShapeOptions, *scene.Scene, error) {
	t.Helper()
	var gotOpts *options.ShapeOptions
	var gotScene *scene.Scene
	cmd := newRootCmd(func(ctx context.Context, opts *options.ShapeOptions, sc *scene.Scene) error {
		assert.NotNil(t, logging.From(ctx))
		gotOpts = opts
		gotScene = sc
		return nil
	})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return gotOpts, gotScene, err
}

func TestDefaults(t *testing.T) {
	opts, sc, err := execute(t)
	require.NoError(t, err)

	assert.False(t, opts.Recording())
	assert.Equal(t, 800, *opts.Width)
	assert.False(t, *opts.Strict)
	assert.Equal(t, []shader.Info{
		{Type: shader.Vertex, Filename: "shaders/vertexshader.glsl"},
		{Type: shader.Fragment, Filename: "shaders/fragmentshader.glsl"},
	}, sc.Shaders)
	assert.Len(t, sc.Vertices, 6)
}

func TestShaderFlags(t *testing.T) {
	_, sc, err := execute(t, "--vertex", "a.vert", "--fragment", "b.frag")
	require.NoError(t, err)
	assert.Equal(t, "a.vert", sc.Shaders[0].Filename)
	assert.Equal(t, "b.frag", sc.Shaders[1].Filename)
}

func TestRecordFlags(t *testing.T) {
	opts, _, err := execute(t, "--record", "out.mp4", "--fps", "24", "--duration", "2.5", "--codec", "hevc")
	require.NoError(t, err)
	assert.True(t, opts.Recording())
	assert.Equal(t, 24, *opts.FPS)
	assert.InDelta(t, 2.5, *opts.Duration, 1e-9)
	assert.Equal(t, "hevc", *opts.Codec)
}

func TestSceneFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.yaml")
	data := "shaders:\n  - {type: vertex, file: v.glsl}\n  - {type: fragment, file: f.glsl}\n" +
		"vertices: [[0,0,0],[1,0,0],[0,1,0]]\ncolors: [[1,0,0],[0,1,0],[0,0,1]]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, sc, err := execute(t, "--scene", path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "v.glsl"), sc.Shaders[0].Filename)
	assert.Len(t, sc.Vertices, 3)

	_, sc, err = execute(t, "--scene", path, "--fragment", "other.frag")
	require.NoError(t, err)
	assert.Equal(t, "other.frag", sc.Shaders[1].Filename)
	assert.Len(t, sc.Vertices, 3)
}

func TestBadSceneFile(t *testing.T) {
	_, sc, err := execute(t, "--scene", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, scene.ErrReadFailed.Error())
	assert.Nil(t, sc)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}
