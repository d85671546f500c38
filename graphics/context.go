package graphics

// Context is an OpenGL context the renderer draws into, either a window or
// an offscreen surface.
type Context interface {
	MakeCurrent()
	Shutdown()
	// ShouldClose reports whether the user asked to stop, by closing the
	// window or pressing Escape. Offscreen contexts never ask.
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
}
