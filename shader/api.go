package shader

// Kind is a shader stage kind.
type Kind int

const (
	Vertex Kind = iota
	Fragment
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// API is the part of the graphics API the builder drives. Object ids are
// opaque to the builder; a zero id from CreateShader or CreateProgram
// means the object could not be allocated.
type API interface {
	CreateShader(kind Kind) uint32
	// ShaderSource submits source verbatim, with its exact byte length.
	ShaderSource(shader uint32, source []byte)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
}
