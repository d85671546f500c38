// Package glapi binds the shader builder to the desktop OpenGL 3.3 core
// entry points.
package glapi

import (
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/gltutorials/shader"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init loads the OpenGL function pointers. A context must be current on the
// calling thread. Later calls return the result of the first one.
func Init() error {
	initOnce.Do(func() {
		initErr = gl.Init()
	})
	return initErr
}

// Version reports the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// GL implements shader.API on the current OpenGL context.
type GL struct{}

var _ shader.API = GL{}

func stageType(kind shader.Kind) uint32 {
	if kind == shader.Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (GL) CreateShader(kind shader.Kind) uint32 {
	return gl.CreateShader(stageType(kind))
}

// ShaderSource hands the bytes to the driver with an explicit length, so
// the trailing terminator added for the C copy is never part of the source.
func (GL) ShaderSource(id uint32, source []byte) {
	length := int32(len(source))
	csources, free := gl.Strs(string(source) + "\x00")
	defer free()
	gl.ShaderSource(id, 1, csources, &length)
}

func (GL) CompileShader(id uint32) { gl.CompileShader(id) }

func (GL) ShaderCompiled(id uint32) bool {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	buf := make([]uint8, logLength)
	gl.GetShaderInfoLog(id, logLength, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (GL) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (GL) CreateProgram() uint32 { return gl.CreateProgram() }

func (GL) AttachShader(program, id uint32) { gl.AttachShader(program, id) }
func (GL) DetachShader(program, id uint32) { gl.DetachShader(program, id) }
func (GL) LinkProgram(program uint32)      { gl.LinkProgram(program) }

func (GL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	buf := make([]uint8, logLength)
	gl.GetProgramInfoLog(program, logLength, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
