package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goshapes/gldriver"
	"github.com/richinsley/goshapes/graphics"
	"github.com/richinsley/goshapes/scene"
	"github.com/richinsley/goshapes/shader"
	"go.uber.org/zap"
)

// Initialize the OpenGL function pointers once.
var glInitOnce sync.Once

type Renderer struct {
	context graphics.Context
	driver  shader.Driver
	scene   *scene.Scene
	log     *zap.Logger

	program uint32
	vao     uint32
	vbos    [2]uint32

	// draw renders one frame; Display unless replaced in tests.
	draw func()
}

func NewRenderer(ctx graphics.Context, d shader.Driver, sc *scene.Scene, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		context: ctx,
		driver:  d,
		scene:   sc,
		log:     log,
	}
	r.draw = r.Display

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	glVersion, glslVersion := gldriver.Versions()
	r.log.Info("OpenGL context ready", zap.String("gl", glVersion), zap.String("glsl", glslVersion))

	return r, nil
}

// InitScene builds the shader program and uploads the polygon. Shader
// diagnostics are logged and tolerated unless strict is set; unreadable
// sources always fail.
func (r *Renderer) InitScene(strict bool, opts ...shader.Option) error {
	opts = append([]shader.Option{shader.WithLogger(r.log.Named("shader"))}, opts...)
	loader := shader.NewLoader(r.driver, opts...)

	program, err := loader.Init(r.scene.Shaders)
	// Keep the handle even on failure so Shutdown deletes it.
	r.program = program
	if fatal := checkProgram(program, err, strict); fatal != nil {
		return fmt.Errorf("failed to build shader program: %w", fatal)
	}
	if err != nil {
		r.log.Warn("Continuing with shader diagnostics", zap.Error(err))
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	positions := r.scene.PositionData()
	colors := r.scene.ColorData()

	gl.GenBuffers(2, &r.vbos[0])
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(shader.PositionLocation, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(colors)*4, gl.Ptr(colors), gl.STATIC_DRAW)
	gl.VertexAttribPointer(shader.ColorLocation, 4, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(shader.PositionLocation)
	gl.EnableVertexAttribArray(shader.ColorLocation)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.context.SetMouseCallback(r.Mouse)
	r.context.SetRefreshCallback(func() { r.draw() })

	r.log.Debug("Scene initialized",
		zap.Int("vertices", len(r.scene.Vertices)),
		zap.Uint32("program", r.program))
	return nil
}

// checkProgram decides whether a Loader.Init result is fatal. Compile and
// link diagnostics on a real program are tolerated unless strict is set.
func checkProgram(program uint32, err error, strict bool) error {
	if err == nil {
		return nil
	}
	if program == 0 || strict || !isDiagnostic(err) {
		return err
	}
	return nil
}

func isDiagnostic(err error) bool {
	var ce *shader.CompileError
	var le *shader.LinkError
	return errors.As(err, &ce) || errors.As(err, &le)
}

// Display is the display callback: it draws the polygon with the vertex
// count selected by the click counter.
func (r *Renderer) Display() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	// Core profiles have no GL_POLYGON; a fan covers the same convex case.
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, int32(r.scene.VertexCount()))
	gl.BindVertexArray(0)
	gl.Flush()
}

// Mouse is the mouse callback. A left press adds a vertex and redraws, a
// right press ends the program.
func (r *Renderer) Mouse(button graphics.MouseButton, pressed bool, x, y float64) {
	if !pressed {
		return
	}
	switch button {
	case graphics.MouseRight:
		r.log.Debug("Right click, closing window")
		r.context.SetShouldClose(true)
	case graphics.MouseLeft:
		r.log.Debug("Left click", zap.Float64("x", x), zap.Float64("y", y))
		r.Click()
	}
}

// Click adds a vertex to the polygon and redraws it.
func (r *Renderer) Click() {
	r.scene.Click()
	r.log.Debug("Click",
		zap.Int("clicks", r.scene.Clicks),
		zap.Int("vertices", r.scene.VertexCount()))
	r.draw()
}

// Run is the interactive loop. It returns once the window is asked to close.
func (r *Renderer) Run() {
	for !r.context.ShouldClose() {
		fbWidth, fbHeight := r.context.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		r.draw()
		r.context.EndFrame()
	}
}

func (r *Renderer) Shutdown() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	if r.vbos[0] != 0 {
		gl.DeleteBuffers(2, &r.vbos[0])
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
}
