package shader

import "fmt"

type fakeShader struct {
	kind     Kind
	source   []byte
	compiled bool
	log      string
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
}

// fakeAPI is an in-memory stand-in for the GL shader entry points.
type fakeAPI struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	calls    []string

	noShaders  bool
	noPrograms bool

	// compile decides the outcome for a stage; nil compiles everything.
	compile func(kind Kind, source []byte) (ok bool, log string)
	// link decides the outcome for a program; nil links everything.
	link func(stages []*fakeShader) (ok bool, log string)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (f *fakeAPI) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeAPI) CreateShader(kind Kind) uint32 {
	f.record("CreateShader %s", kind)
	if f.noShaders {
		return 0
	}
	f.next++
	f.shaders[f.next] = &fakeShader{kind: kind}
	return f.next
}

func (f *fakeAPI) ShaderSource(id uint32, source []byte) {
	f.record("ShaderSource %d", id)
	f.shaders[id].source = append([]byte(nil), source...)
}

func (f *fakeAPI) CompileShader(id uint32) {
	f.record("CompileShader %d", id)
	s := f.shaders[id]
	s.compiled = true
	if f.compile != nil {
		s.compiled, s.log = f.compile(s.kind, s.source)
	}
}

func (f *fakeAPI) ShaderCompiled(id uint32) bool  { return f.shaders[id].compiled }
func (f *fakeAPI) ShaderInfoLog(id uint32) string { return f.shaders[id].log }

func (f *fakeAPI) DeleteShader(id uint32) {
	f.record("DeleteShader %d", id)
	delete(f.shaders, id)
}

func (f *fakeAPI) CreateProgram() uint32 {
	f.record("CreateProgram")
	if f.noPrograms {
		return 0
	}
	f.next++
	f.programs[f.next] = &fakeProgram{}
	return f.next
}

func (f *fakeAPI) AttachShader(program, shader uint32) {
	f.record("AttachShader %d %d", program, shader)
	p := f.programs[program]
	p.attached = append(p.attached, shader)
}

func (f *fakeAPI) DetachShader(program, shader uint32) {
	f.record("DetachShader %d %d", program, shader)
	p := f.programs[program]
	for i, id := range p.attached {
		if id == shader {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			break
		}
	}
}

func (f *fakeAPI) LinkProgram(program uint32) {
	f.record("LinkProgram %d", program)
	p := f.programs[program]
	p.linked = true
	if f.link != nil {
		stages := make([]*fakeShader, 0, len(p.attached))
		for _, id := range p.attached {
			stages = append(stages, f.shaders[id])
		}
		p.linked, p.log = f.link(stages)
	}
}

func (f *fakeAPI) ProgramLinked(program uint32) bool   { return f.programs[program].linked }
func (f *fakeAPI) ProgramInfoLog(program uint32) string { return f.programs[program].log }

func (f *fakeAPI) DeleteProgram(program uint32) {
	f.record("DeleteProgram %d", program)
	delete(f.programs, program)
}
