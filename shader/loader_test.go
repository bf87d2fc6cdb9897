package shader_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/richinsley/goshapes/shader"
	"github.com/richinsley/goshapes/shader/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	vertexSource   = "#version 410 core\nin vec3 in_position;\nvoid main() { gl_Position = vec4(in_position, 1.0); }\n"
	fragmentSource = "#version 410 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"
)

var testFiles = fstest.MapFS{
	"vertexshader.glsl":   {Data: []byte(vertexSource)},
	"fragmentshader.glsl": {Data: []byte(fragmentSource)},
	"empty.glsl":          {Data: []byte{}},
}

var defaultTable = []shader.Info{
	{Type: shader.Vertex, Filename: "vertexshader.glsl"},
	{Type: shader.Fragment, Filename: "fragmentshader.glsl"},
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func expectCompile(d *mocks.MockDriver, typ shader.Type, handle uint32, source string, ok bool) {
	d.EXPECT().CreateShader(typ).Return(handle)
	d.EXPECT().ShaderSource(handle, source)
	d.EXPECT().CompileShader(handle)
	d.EXPECT().CompileStatus(handle).Return(ok)
}

func expectLink(d *mocks.MockDriver, program uint32, shaders []uint32, ok bool) {
	expectLinkNamed(d, program, shaders, "in_position", "in_color", ok)
}

func expectLinkNamed(d *mocks.MockDriver, program uint32, shaders []uint32, position, color string, ok bool) {
	d.EXPECT().CreateProgram().Return(program)
	for _, s := range shaders {
		d.EXPECT().AttachShader(program, s)
	}
	d.EXPECT().BindAttribLocation(program, uint32(shader.PositionLocation), position)
	d.EXPECT().BindAttribLocation(program, uint32(shader.ColorLocation), color)
	d.EXPECT().LinkProgram(program)
	d.EXPECT().LinkStatus(program).Return(ok)
}

func TestReadSource(t *testing.T) {
	t.Run("reads whole file", func(t *testing.T) {
		l := shader.NewLoader(nil, shader.WithFS(testFiles))
		src, err := l.ReadSource("vertexshader.glsl")
		require.NoError(t, err)
		assert.Equal(t, vertexSource, src)
	})

	t.Run("missing file", func(t *testing.T) {
		log, logs := newObservedLogger()
		l := shader.NewLoader(nil, shader.WithFS(testFiles), shader.WithLogger(log))
		src, err := l.ReadSource("nope.glsl")
		require.Error(t, err)
		assert.ErrorContains(t, err, shader.ErrOpenFailed.Error())
		assert.Empty(t, src)
		require.Equal(t, 1, logs.FilterMessage("Unable to open file").Len())
		assert.Equal(t, "nope.glsl", logs.All()[0].ContextMap()["file"])
	})

	t.Run("empty file", func(t *testing.T) {
		log, logs := newObservedLogger()
		l := shader.NewLoader(nil, shader.WithFS(testFiles), shader.WithLogger(log))
		_, err := l.ReadSource("empty.glsl")
		require.Error(t, err)
		assert.ErrorContains(t, err, shader.ErrEmptyFile.Error())
		assert.Equal(t, 1, logs.FilterMessage("File is empty").Len())
	})
}

func TestCompile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectCompile(d, shader.Vertex, 7, vertexSource, true)

		h, err := shader.NewLoader(d).Compile(shader.Vertex, vertexSource)
		require.NoError(t, err)
		assert.Equal(t, uint32(7), h)
	})

	t.Run("failure returns handle and driver log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectCompile(d, shader.Fragment, 9, "bogus", false)
		d.EXPECT().ShaderInfoLog(uint32(9)).Return("0:1: syntax error")

		log, logs := newObservedLogger()
		h, err := shader.NewLoader(d, shader.WithLogger(log)).Compile(shader.Fragment, "bogus")
		assert.Equal(t, uint32(9), h)

		var ce *shader.CompileError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, shader.Fragment, ce.Type)
		assert.Equal(t, "0:1: syntax error", ce.Log)

		entries := logs.FilterMessage("Compile failure").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "fragment", entries[0].ContextMap()["shader"])
		assert.Equal(t, "0:1: syntax error", entries[0].ContextMap()["message"])
		assert.EqualValues(t, int(shader.Fragment), entries[0].ContextMap()["stage"])
	})
}

func TestLink(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectLink(d, 3, []uint32{1, 2}, true)
		d.EXPECT().DeleteShader(uint32(1))
		d.EXPECT().DeleteShader(uint32(2))

		p, err := shader.NewLoader(d).Link([]uint32{1, 2})
		require.NoError(t, err)
		assert.Equal(t, uint32(3), p)
	})

	t.Run("failure deletes shaders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectLink(d, 3, []uint32{1, 2}, false)
		d.EXPECT().ProgramInfoLog(uint32(3)).Return("undefined in_color")
		d.EXPECT().DeleteShader(uint32(1))
		d.EXPECT().DeleteShader(uint32(2))

		log, logs := newObservedLogger()
		p, err := shader.NewLoader(d, shader.WithLogger(log)).Link([]uint32{1, 2})
		assert.Equal(t, uint32(3), p)

		var le *shader.LinkError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "undefined in_color", le.Log)
		assert.Equal(t, 1, logs.FilterMessage("Shader linking failed").Len())
	})
}

func TestInit(t *testing.T) {
	t.Run("builds and uses program", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		gomock.InOrder(
			d.EXPECT().CreateShader(shader.Vertex).Return(uint32(1)),
			d.EXPECT().CreateShader(shader.Fragment).Return(uint32(2)),
			d.EXPECT().UseProgram(uint32(5)),
		)
		d.EXPECT().ShaderSource(uint32(1), vertexSource)
		d.EXPECT().ShaderSource(uint32(2), fragmentSource)
		d.EXPECT().CompileShader(gomock.Any()).Times(2)
		d.EXPECT().CompileStatus(gomock.Any()).Return(true).Times(2)
		expectLink(d, 5, []uint32{1, 2}, true)
		d.EXPECT().DeleteShader(gomock.Any()).Times(2)

		p, err := shader.NewLoader(d, shader.WithFS(testFiles)).Init(defaultTable)
		require.NoError(t, err)
		assert.Equal(t, uint32(5), p)
	})

	t.Run("compile failure still links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectCompile(d, shader.Vertex, 1, vertexSource, true)
		expectCompile(d, shader.Fragment, 2, fragmentSource, false)
		d.EXPECT().ShaderInfoLog(uint32(2)).Return("bad fragment")
		expectLink(d, 5, []uint32{1, 2}, false)
		d.EXPECT().ProgramInfoLog(uint32(5)).Return("fragment not compiled")
		d.EXPECT().DeleteShader(gomock.Any()).Times(2)
		d.EXPECT().UseProgram(uint32(5))

		p, err := shader.NewLoader(d, shader.WithFS(testFiles)).Init(defaultTable)
		assert.Equal(t, uint32(5), p)
		require.Error(t, err)

		var ce *shader.CompileError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "fragmentshader.glsl", ce.File)
		var le *shader.LinkError
		require.ErrorAs(t, err, &le)
	})

	t.Run("missing source aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectCompile(d, shader.Vertex, 1, vertexSource, true)
		d.EXPECT().DeleteShader(uint32(1))

		table := []shader.Info{
			{Type: shader.Vertex, Filename: "vertexshader.glsl"},
			{Type: shader.Fragment, Filename: "missing.glsl"},
		}
		p, err := shader.NewLoader(d, shader.WithFS(testFiles)).Init(table)
		assert.Zero(t, p)
		assert.ErrorContains(t, err, shader.ErrOpenFailed.Error())
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := shader.NewLoader(nil).Init(nil)
		assert.ErrorContains(t, err, shader.ErrNoShaders.Error())
	})

	t.Run("translator rewrites sources", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectCompile(d, shader.Vertex, 1, "translated vertex", true)
		expectCompile(d, shader.Fragment, 2, "translated fragment", true)
		expectLink(d, 5, []uint32{1, 2}, true)
		d.EXPECT().DeleteShader(gomock.Any()).Times(2)
		d.EXPECT().UseProgram(uint32(5))

		translate := func(_ string, typ shader.Type) (shader.Translation, error) {
			return shader.Translation{Source: "translated " + typ.String()}, nil
		}
		_, err := shader.NewLoader(d, shader.WithFS(testFiles), shader.WithTranslator(translate)).Init(defaultTable)
		require.NoError(t, err)
	})

	t.Run("attributes bound under translated names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectCompile(d, shader.Vertex, 1, "translated vertex", true)
		expectCompile(d, shader.Fragment, 2, "translated fragment", true)
		expectLinkNamed(d, 5, []uint32{1, 2}, "_uin_position", "_uin_color", true)
		d.EXPECT().DeleteShader(gomock.Any()).Times(2)
		d.EXPECT().UseProgram(uint32(5))

		translate := func(_ string, typ shader.Type) (shader.Translation, error) {
			out := shader.Translation{Source: "translated " + typ.String()}
			if typ == shader.Vertex {
				out.Names = map[string]string{
					"in_position": "_uin_position",
					"in_color":    "_uin_color",
					"ex_color":    "_uex_color",
				}
			}
			return out, nil
		}
		l := shader.NewLoader(d, shader.WithFS(testFiles), shader.WithTranslator(translate))
		_, err := l.Init(defaultTable)
		require.NoError(t, err)
	})

	t.Run("names do not leak into the next program", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)
		expectCompile(d, shader.Vertex, 1, vertexSource, true)
		expectCompile(d, shader.Fragment, 2, fragmentSource, true)
		expectLinkNamed(d, 5, []uint32{1, 2}, "_uin_position", "_uin_color", true)
		expectCompile(d, shader.Vertex, 3, vertexSource, true)
		expectCompile(d, shader.Fragment, 4, fragmentSource, true)
		expectLink(d, 6, []uint32{3, 4}, true)
		d.EXPECT().DeleteShader(gomock.Any()).Times(4)
		d.EXPECT().UseProgram(gomock.Any()).Times(2)

		names := map[string]string{"in_position": "_uin_position", "in_color": "_uin_color"}
		translate := func(src string, _ shader.Type) (shader.Translation, error) {
			return shader.Translation{Source: src, Names: names}, nil
		}
		l := shader.NewLoader(d, shader.WithFS(testFiles), shader.WithTranslator(translate))
		_, err := l.Init(defaultTable)
		require.NoError(t, err)

		names = nil
		_, err = l.Init(defaultTable)
		require.NoError(t, err)
	})

	t.Run("translator failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDriver(ctrl)

		translate := func(string, shader.Type) (shader.Translation, error) {
			return shader.Translation{}, errors.New("unsupported version")
		}
		_, err := shader.NewLoader(d, shader.WithFS(testFiles), shader.WithTranslator(translate)).Init(defaultTable)
		assert.ErrorContains(t, err, shader.ErrTranslateFailed.Error())
	})
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "vertex", shader.Vertex.String())
	assert.Equal(t, "geometric", shader.Geometry.String())
	assert.Equal(t, "fragment", shader.Fragment.String())

	typ, err := shader.ParseType("frag")
	require.NoError(t, err)
	assert.Equal(t, shader.Fragment, typ)

	_, err = shader.ParseType("compute")
	assert.Error(t, err)
}
