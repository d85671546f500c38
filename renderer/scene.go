package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gltutorials/shader"
	"github.com/richinsley/gltutorials/tutorial"
	"go.uber.org/zap"
)

// Attribute locations; they must match the layout qualifiers in the shaders.
const (
	positionAttrib = 0
	colorAttrib    = 1
)

// Scene holds the GL objects one tutorial draws with.
type Scene struct {
	Title       string
	program     *shader.Program
	vao         uint32
	vbos        []uint32
	vertexCount int32
	mvpLoc      int32
	mvp         mgl32.Mat4
	clearMask   uint32
	logger      *zap.Logger
}

// LoadScene uploads the tutorial's mesh and builds its shader program.
// vertexPath and fragmentPath are ignored when the tutorial draws nothing.
func LoadScene(t tutorial.Tutorial, builder *shader.Builder, vertexPath, fragmentPath string, logger *zap.Logger) (*Scene, error) {
	s := &Scene{
		Title:     t.Title,
		mvpLoc:    -1,
		clearMask: gl.COLOR_BUFFER_BIT,
		logger:    logger,
	}

	gl.ClearColor(t.ClearColor[0], t.ClearColor[1], t.ClearColor[2], t.ClearColor[3])
	if t.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		// accept the fragment closer to the camera
		gl.DepthFunc(gl.LESS)
		s.clearMask |= gl.DEPTH_BUFFER_BIT
	}

	if !t.HasProgram() {
		return s, nil
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	s.uploadAttrib(positionAttrib, t.Mesh.Positions)
	if t.Mesh.Colors != nil {
		s.uploadAttrib(colorAttrib, t.Mesh.Colors)
	}
	s.vertexCount = int32(t.Mesh.VertexCount())

	var err error
	s.program, err = builder.BuildProgram(vertexPath, fragmentPath)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	gl.UseProgram(s.program.ID())

	if t.Transform {
		s.mvpLoc = gl.GetUniformLocation(s.program.ID(), gl.Str(tutorial.MVPUniform+"\x00"))
		if s.mvpLoc == -1 {
			s.Destroy()
			return nil, fmt.Errorf("shader program has no %q uniform", tutorial.MVPUniform)
		}
		s.mvp = t.MVP()
		gl.UniformMatrix4fv(s.mvpLoc, 1, false, &s.mvp[0])
	}

	return s, nil
}

// uploadAttrib puts three floats per vertex into a new VBO bound to the
// given attribute of the current VAO.
func (s *Scene) uploadAttrib(index uint32, data []float32) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	s.vbos = append(s.vbos, vbo)
}

// Draw clears the bound framebuffer and draws the mesh.
func (s *Scene) Draw() {
	gl.Clear(s.clearMask)
	if s.program == nil {
		return
	}
	gl.UseProgram(s.program.ID())
	if s.mvpLoc != -1 {
		gl.UniformMatrix4fv(s.mvpLoc, 1, false, &s.mvp[0])
	}
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.vertexCount)
}

// Destroy releases every GL object the scene created.
func (s *Scene) Destroy() {
	if s == nil {
		return
	}
	s.logger.Info("Destroying scene", zap.String("title", s.Title))
	s.program.Delete()
	if len(s.vbos) > 0 {
		gl.DeleteBuffers(int32(len(s.vbos)), &s.vbos[0])
		s.vbos = nil
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
}
