package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// WindowConfig describes the window and the context requested for it.
type WindowConfig struct {
	Width   int
	Height  int
	Title   string
	Samples int
}

// Context is a GLFW window with a 3.3 core profile context.
type Context struct {
	window *glfw.Window
	logger *zap.Logger
}

// New opens the window and makes its context current on the calling thread.
func New(cfg WindowConfig, logger *zap.Logger) (*Context, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	glfw.WindowHint(glfw.Samples, cfg.Samples)
	// check `glxinfo | grep 'Max core profile version'` if this fails
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	// macOS only hands out core contexts when forward compatible
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open GLFW window (OpenGL 3.3 core required): %w", err)
	}
	win.MakeContextCurrent()

	// keep Escape reported until the loop gets to poll it
	win.SetInputMode(glfw.StickyKeysMode, glfw.True)

	logger.Info("Window opened", zap.String("title", cfg.Title), zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	return &Context{window: win, logger: logger}, nil
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; TerminateGraphics ends GLFW itself.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.GetKey(glfw.KeyEscape) == glfw.Press || c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics(logger *zap.Logger) error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	logger.Info("GLFW Initialized", zap.String("version", glfw.GetVersionString()))
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics(logger *zap.Logger) {
	glfw.Terminate()
	logger.Info("GLFW Terminated")
}
