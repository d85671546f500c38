package shader

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Stage is a compiled shader stage owned by whoever built it.
type Stage struct {
	api  API
	id   uint32
	kind Kind
	path string
}

func (s *Stage) ID() uint32   { return s.id }
func (s *Stage) Kind() Kind   { return s.kind }
func (s *Stage) Path() string { return s.path }

// Release deletes the stage object. It is safe to call more than once.
func (s *Stage) Release() {
	if s == nil || s.id == 0 {
		return
	}
	s.api.DeleteShader(s.id)
	s.id = 0
}

// Program is a linked shader program. The caller owns it and must call
// Delete when done.
type Program struct {
	api API
	id  uint32
}

func (p *Program) ID() uint32 { return p.id }

// Delete releases the program object. It is safe to call more than once.
func (p *Program) Delete() {
	if p == nil || p.id == 0 {
		return
	}
	p.api.DeleteProgram(p.id)
	p.id = 0
}

// Builder compiles shader stages from files and links them into programs.
type Builder struct {
	api    API
	logger *zap.Logger
}

func NewBuilder(api API, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{api: api, logger: logger}
}

// CompileStage reads the file at path and compiles it as a stage of the
// given kind. The file is read completely before any graphics object is
// created.
func (b *Builder) CompileStage(path string, kind Kind) (*Stage, error) {
	b.logger.Info(fmt.Sprintf("Compiling shader '%s'...", path), zap.Stringer("stage", kind))

	source, err := b.readSource(path)
	if err != nil {
		return nil, err
	}

	id := b.api.CreateShader(kind)
	if id == 0 {
		return nil, &BuildError{Kind: ErrAlloc, Op: "create " + kind.String() + " shader", Path: path}
	}
	stage := &Stage{api: b.api, id: id, kind: kind, path: path}

	b.api.ShaderSource(id, source)
	b.api.CompileShader(id)

	infoLog := b.api.ShaderInfoLog(id)
	if infoLog != "" {
		b.logger.Info("Shader compile message", zap.String("path", path), zap.String("log", infoLog))
	}

	if !b.api.ShaderCompiled(id) {
		stage.Release()
		return nil, &BuildError{Kind: ErrCompile, Op: "compile " + kind.String() + " shader", Path: path, Log: infoLog}
	}
	return stage, nil
}

// BuildProgram compiles the vertex and fragment stages, in that order, and
// links them. Intermediate stages are always released before returning.
func (b *Builder) BuildProgram(vertexPath, fragmentPath string) (*Program, error) {
	vs, err := b.CompileStage(vertexPath, Vertex)
	if err != nil {
		return nil, err
	}
	defer vs.Release()

	fs, err := b.CompileStage(fragmentPath, Fragment)
	if err != nil {
		return nil, err
	}
	defer fs.Release()

	b.logger.Info("Linking shader program...")

	id := b.api.CreateProgram()
	if id == 0 {
		return nil, &BuildError{Kind: ErrAlloc, Op: "create program"}
	}
	b.api.AttachShader(id, vs.id)
	b.api.AttachShader(id, fs.id)
	b.api.LinkProgram(id)

	infoLog := b.api.ProgramInfoLog(id)
	if infoLog != "" {
		b.logger.Info("Shader link message", zap.String("log", infoLog))
	}

	if !b.api.ProgramLinked(id) {
		b.api.DeleteProgram(id)
		return nil, &BuildError{Kind: ErrLink, Op: "link program", Log: infoLog}
	}

	b.api.DetachShader(id, vs.id)
	b.api.DetachShader(id, fs.id)

	return &Program{api: b.api, id: id}, nil
}

// readSource reads the whole file: size it, rewind, then read exactly that
// many bytes.
func (b *Builder) readSource(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &BuildError{Kind: ErrIO, Op: "open shader file", Path: path, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			b.logger.Warn("failed to close shader source file", zap.String("path", path), zap.Error(err))
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, &BuildError{Kind: ErrIO, Op: "get shader file size", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &BuildError{Kind: ErrIO, Op: "get shader file size", Path: path, Err: fmt.Errorf("not a regular file (%s)", info.Mode().Type())}
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &BuildError{Kind: ErrIO, Op: "get shader file size", Path: path, Err: err}
	}
	if size < 0 || int64(int(size)) != size {
		return nil, &BuildError{Kind: ErrIO, Op: "get shader file size", Path: path, Err: fmt.Errorf("size %d out of range", size)}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, &BuildError{Kind: ErrIO, Op: "rewind shader file", Path: path, Err: err}
	}

	source := make([]byte, size)
	if _, err := io.ReadFull(f, source); err != nil {
		return nil, &BuildError{Kind: ErrIO, Op: "read shader file", Path: path, Err: err}
	}
	return source, nil
}
