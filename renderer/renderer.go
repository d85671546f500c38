package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/gltutorials/glapi"
	"github.com/richinsley/gltutorials/graphics"
	"github.com/richinsley/gltutorials/recorder"
	"github.com/richinsley/gltutorials/shader"
	"github.com/richinsley/gltutorials/tutorial"
	"go.uber.org/zap"
)

type Renderer struct {
	context graphics.Context
	builder *shader.Builder
	scene   *Scene
	logger  *zap.Logger
}

// NewRenderer makes ctx current and loads the GL entry points for it.
func NewRenderer(ctx graphics.Context, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Renderer{
		context: ctx,
		builder: shader.NewBuilder(glapi.GL{}, logger),
		logger:  logger,
	}

	// the context has to be current before the bindings are loaded
	r.context.MakeCurrent()
	if err := glapi.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized", zap.String("version", glapi.Version()))

	return r, nil
}

// InitScene builds the GL state for t. Shader files are resolved by
// tutorial.ShaderPaths.
func (r *Renderer) InitScene(t tutorial.Tutorial, shaderDir, vertexOverride, fragmentOverride string) error {
	vertex, fragment := t.ShaderPaths(shaderDir, vertexOverride, fragmentOverride)
	scene, err := LoadScene(t, r.builder, vertex, fragment, r.logger)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", t.Title, err)
	}
	r.scene.Destroy()
	r.scene = scene
	return nil
}

// RenderFrame draws one frame into the default framebuffer.
func (r *Renderer) RenderFrame() {
	width, height := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	r.scene.Draw()
}

// Run draws until the context asks to close.
func (r *Renderer) Run() {
	var frames int64
	start := r.context.Time()
	for !r.context.ShouldClose() {
		r.RenderFrame()
		r.context.EndFrame()
		frames++
	}
	elapsed := r.context.Time() - start
	fields := []zap.Field{zap.Int64("frames", frames), zap.Float64("seconds", elapsed)}
	if elapsed > 0 {
		fields = append(fields, zap.Float64("fps", float64(frames)/elapsed))
	}
	r.logger.Info("Render loop finished", fields...)
}

// RunRecording renders frames frames, or fewer if the context closes, and
// hands each one to rec. rec is closed before returning.
func (r *Renderer) RunRecording(rec *recorder.Recorder, frames int) error {
	width, height := r.context.GetFramebufferSize()
	pixels := make([]byte, width*height*4)

	for i := 0; i < frames && !r.context.ShouldClose(); i++ {
		r.RenderFrame()
		r.readPixels(width, height, pixels)
		if err := rec.WriteFrame(pixels); err != nil {
			rec.Close()
			return err
		}
		r.context.EndFrame()
	}
	return rec.Close()
}

// readPixels copies the back buffer, bottom row first.
func (r *Renderer) readPixels(width, height int, dst []byte) {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst))
}

// Shutdown releases the scene. The context is owned by the caller.
func (r *Renderer) Shutdown() {
	r.scene.Destroy()
	r.scene = nil
}
