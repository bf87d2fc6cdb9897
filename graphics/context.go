package graphics

// MouseButton identifies a mouse button independent of the windowing library.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// MouseFunc receives mouse button events. x and y are in window coordinates.
type MouseFunc func(button MouseButton, pressed bool, x, y float64)

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	EndFrame()
	GetFramebufferSize() (int, int)
	// SetMouseCallback registers the handler for mouse button events.
	SetMouseCallback(MouseFunc)
	// SetRefreshCallback registers the handler run when the window needs redrawing.
	SetRefreshCallback(func())
}
