package shader

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"go.uber.org/zap"
)

// Translation is a rewritten shader source. Names maps identifiers of the
// original source to the ones used in Source; identifiers missing from it
// are unchanged.
type Translation struct {
	Source string
	Names  map[string]string
}

// TranslateFunc rewrites a shader source before it is handed to the driver.
type TranslateFunc func(source string, typ Type) (Translation, error)

// Loader reads shader sources and builds programs through a Driver.
type Loader struct {
	driver    Driver
	files     fs.FS
	log       *zap.Logger
	translate TranslateFunc
	// names collects the identifier mappings of the sources translated by Init.
	names map[string]string
}

type Option func(*Loader)

// WithFS reads sources from fsys instead of the host file system.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.files = fsys
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithTranslator runs every source through translate before compiling it.
func WithTranslator(translate TranslateFunc) Option {
	return func(l *Loader) {
		l.translate = translate
	}
}

func NewLoader(d Driver, opts ...Option) *Loader {
	l := &Loader{
		driver: d,
		files:  hostFS{},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// hostFS opens names as given, relative or absolute, unlike os.DirFS.
type hostFS struct{}

func (hostFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadSource returns the full text of a shader source file.
func (l *Loader) ReadSource(filename string) (string, error) {
	f, err := l.files.Open(filename)
	if err != nil {
		l.log.Error("Unable to open file", zap.String("file", filename), zap.Error(err))
		return "", zerr.With(zerr.Wrap(err, ErrOpenFailed.Error()), "file", filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		l.log.Error("Unable to read file", zap.String("file", filename), zap.Error(err))
		return "", zerr.With(zerr.Wrap(err, ErrOpenFailed.Error()), "file", filename)
	}
	if len(data) == 0 {
		l.log.Error("File is empty", zap.String("file", filename))
		return "", zerr.With(ErrEmptyFile, "file", filename)
	}
	return string(data), nil
}

// Compile creates and compiles a shader. The handle is returned even when
// compilation fails so the caller can still link and inspect the program.
func (l *Loader) Compile(typ Type, source string) (uint32, error) {
	shader := l.driver.CreateShader(typ)
	l.driver.ShaderSource(shader, source)
	l.driver.CompileShader(shader)

	if !l.driver.CompileStatus(shader) {
		infoLog := l.driver.ShaderInfoLog(shader)
		l.log.Error("Compile failure",
			zap.Int("stage", int(typ)),
			zap.Stringer("shader", typ),
			zap.String("message", infoLog))
		return shader, &CompileError{Type: typ, Log: infoLog}
	}
	return shader, nil
}

// Link attaches shaders to a new program, binds the vertex attribute
// locations and links it. The shaders are released afterwards.
func (l *Loader) Link(shaders []uint32) (uint32, error) {
	program := l.driver.CreateProgram()
	for _, s := range shaders {
		l.driver.AttachShader(program, s)
	}
	for _, a := range attribLocations {
		l.driver.BindAttribLocation(program, a.index, l.mappedName(a.name))
	}
	l.driver.LinkProgram(program)

	var linkErr error
	if !l.driver.LinkStatus(program) {
		infoLog := l.driver.ProgramInfoLog(program)
		l.log.Error("Shader linking failed", zap.String("message", infoLog))
		linkErr = &LinkError{Log: infoLog}
	}

	for _, s := range shaders {
		l.driver.DeleteShader(s)
	}
	return program, linkErr
}

func (l *Loader) mappedName(name string) string {
	if mapped, ok := l.names[name]; ok && mapped != "" {
		return mapped
	}
	return name
}

// Init builds a program from the shader table and makes it current.
//
// A source that cannot be read aborts with no program. Compile and link
// failures are already logged; they are returned joined together with the
// program handle so the caller decides whether to keep going.
func (l *Loader) Init(infos []Info) (uint32, error) {
	if len(infos) == 0 {
		return 0, ErrNoShaders
	}

	l.names = nil
	var diagnostics []error
	shaders := make([]uint32, 0, len(infos))
	for _, info := range infos {
		source, err := l.ReadSource(info.Filename)
		if err != nil {
			for _, s := range shaders {
				l.driver.DeleteShader(s)
			}
			return 0, err
		}

		if l.translate != nil {
			out, err := l.translate(source, info.Type)
			if err != nil {
				for _, s := range shaders {
					l.driver.DeleteShader(s)
				}
				l.log.Error("Translation failed", zap.String("file", info.Filename), zap.Error(err))
				return 0, zerr.With(zerr.Wrap(err, ErrTranslateFailed.Error()), "file", info.Filename)
			}
			source = out.Source
			for from, to := range out.Names {
				if l.names == nil {
					l.names = make(map[string]string)
				}
				l.names[from] = to
			}
		}

		l.log.Debug("Compiling shader",
			zap.Stringer("type", info.Type),
			zap.String("file", info.Filename),
			zap.Int("bytes", len(source)))
		shader, err := l.Compile(info.Type, source)
		if err != nil {
			var ce *CompileError
			if errors.As(err, &ce) {
				ce.File = info.Filename
			}
			diagnostics = append(diagnostics, err)
		}
		shaders = append(shaders, shader)
	}

	program, err := l.Link(shaders)
	if err != nil {
		diagnostics = append(diagnostics, err)
	}
	l.driver.UseProgram(program)

	return program, errors.Join(diagnostics...)
}
