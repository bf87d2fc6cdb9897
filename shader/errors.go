package shader

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrOpenFailed is returned when a shader source file cannot be opened or read.
	ErrOpenFailed = zerr.New("unable to open shader source")

	// ErrEmptyFile is returned when a shader source file has no content.
	ErrEmptyFile = zerr.New("shader source is empty")

	// ErrNoShaders is returned when a program is requested from an empty shader table.
	ErrNoShaders = zerr.New("no shaders given")

	// ErrTranslateFailed is returned when a source cannot be translated to desktop GLSL.
	ErrTranslateFailed = zerr.New("shader translation failed")
)

// CompileError carries the driver's info log for a shader that failed to compile.
type CompileError struct {
	Type Type
	File string
	Log  string
}

func (e *CompileError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("compile failure in %s shader %s: %s", e.Type, e.File, e.Log)
	}
	return fmt.Sprintf("compile failure in %s shader: %s", e.Type, e.Log)
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader linking failed: %s", e.Log)
}
