package orbit

import "fmt"

// InitError reports that the windowing library or the GL function loader
// could not be initialized.
type InitError struct {
	Op  string // "glfw", "gl"
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialize %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// WindowError reports that the window (and its GL context) could not be created.
type WindowError struct {
	Width, Height int
	Err           error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("create %dx%d window: %v", e.Width, e.Height, e.Err)
}

func (e *WindowError) Unwrap() error { return e.Err }

// FileNotFoundError reports a shader source file that could not be read.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("shader file %q not found: %v", e.Path, e.Err)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// CompileError carries the driver diagnostic for a shader that failed to compile.
type CompileError struct {
	Stage Stage
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader %q compilation failed: %s", e.Stage, e.Path, e.Log)
}

// LinkError carries the driver diagnostic for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader program linking failed: " + e.Log
}
