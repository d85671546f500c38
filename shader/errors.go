package shader

import (
	"errors"
	"strings"
)

var (
	ErrIO      = errors.New("shader source could not be read")
	ErrAlloc   = errors.New("graphics object could not be allocated")
	ErrCompile = errors.New("shader compilation failed")
	ErrLink    = errors.New("shader program link failed")
)

// BuildError describes why a stage or program could not be built. Kind is
// one of ErrIO, ErrAlloc, ErrCompile or ErrLink, so callers can use
// errors.Is to branch on it.
type BuildError struct {
	Kind error
	Op   string
	Path string
	// Log is the compiler or linker output, if any.
	Log string
	Err error
}

func (e *BuildError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" '")
		b.WriteString(e.Path)
		b.WriteString("'")
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if log := strings.TrimSpace(e.Log); log != "" {
		b.WriteString(": ")
		b.WriteString(log)
	}
	return b.String()
}

func (e *BuildError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
