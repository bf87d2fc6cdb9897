package glfwcontext

import (
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	graphics "github.com/richinsley/goshapes/graphics"
	options "github.com/richinsley/goshapes/options"
	"go.uber.org/zap"
)

// Context wraps a GLFW window and dispatches its input callbacks.
type Context struct {
	window  *glfw.Window
	mouse   graphics.MouseFunc
	refresh func()
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

// New creates and initializes a new GLFW window and returns a Context object.
func New(options *options.ShapeOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, *options.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetRefreshCallback(c.glfwRefreshCallback)

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) SetMouseCallback(f graphics.MouseFunc) {
	c.mouse = f
}

func (c *Context) SetRefreshCallback(f func()) {
	c.refresh = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if c.mouse == nil {
		return
	}
	x, y := w.GetCursorPos()
	c.dispatchMouse(button, action, x, y)
}

func (c *Context) dispatchMouse(button glfw.MouseButton, action glfw.Action, x, y float64) {
	if c.mouse == nil || action == glfw.Repeat {
		return
	}
	var b graphics.MouseButton
	switch button {
	case glfw.MouseButtonLeft:
		b = graphics.MouseLeft
	case glfw.MouseButtonRight:
		b = graphics.MouseRight
	case glfw.MouseButtonMiddle:
		b = graphics.MouseMiddle
	default:
		return
	}
	c.mouse(b, action == glfw.Press, x, y)
}

func (c *Context) glfwRefreshCallback(w *glfw.Window) {
	if c.refresh != nil {
		c.refresh()
		w.SwapBuffers()
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; TerminateGraphics releases GLFW itself.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics(log *zap.Logger) error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Debug("GLFW initialized", zap.String("version", glfw.GetVersionString()))
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics(log *zap.Logger) {
	glfw.Terminate()
	log.Debug("GLFW terminated")
}

var _ graphics.Context = (*Context)(nil)
