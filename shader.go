package orbit

import (
	"os"
	"strings"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Driver is the subset of the graphics API the shader loader needs.
// Handles are the API's object names; zero is never a valid handle.
type Driver interface {
	CreateShader(stage Stage) uint32
	// CompileShader compiles source into shader and returns the driver's
	// info log when compilation fails.
	CompileShader(shader uint32, source string) (log string, ok bool)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	// LinkProgram links program and returns the driver's info log when
	// linking fails.
	LinkProgram(program uint32) (log string, ok bool)
	DeleteProgram(program uint32)
}

// SourceReader reads shader sources. fstest.MapFS and OSReader implement it.
type SourceReader interface {
	ReadFile(name string) ([]byte, error)
}

// OSReader reads shader sources from the local filesystem.
type OSReader struct{}

// ReadFile implements SourceReader.
func (OSReader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

const noDiagnostic = "(driver returned no diagnostic)"

// LoadProgram reads, compiles and links a vertex and fragment shader pair
// into a single program and returns its handle.
//
// Both intermediate shader objects are destroyed before returning, on
// success and on failure. Errors are *FileNotFoundError, *CompileError or
// *LinkError.
func LoadProgram(d Driver, r SourceReader, vertexPath, fragmentPath string) (uint32, error) {
	vertexSource, err := readSource(r, vertexPath)
	if err != nil {
		return 0, err
	}
	fragmentSource, err := readSource(r, fragmentPath)
	if err != nil {
		return 0, err
	}

	vs, err := compile(d, StageVertex, vertexPath, vertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := compile(d, StageFragment, fragmentPath, fragmentSource)
	if err != nil {
		d.DeleteShader(vs)
		return 0, err
	}

	program := d.CreateProgram()
	d.AttachShader(program, vs)
	d.AttachShader(program, fs)
	log, ok := d.LinkProgram(program)

	// Shaders are part of the program now (or useless if linking failed).
	d.DetachShader(program, vs)
	d.DetachShader(program, fs)
	d.DeleteShader(vs)
	d.DeleteShader(fs)

	if !ok {
		d.DeleteProgram(program)
		return 0, &LinkError{Log: diagnostic(log)}
	}

	logger.Debug("shader program linked", "program", program, "vertex", vertexPath, "fragment", fragmentPath)
	return program, nil
}

func readSource(r SourceReader, path string) (string, error) {
	b, err := r.ReadFile(path)
	if err != nil {
		return "", &FileNotFoundError{Path: path, Err: err}
	}
	return string(b), nil
}

func compile(d Driver, stage Stage, path, source string) (uint32, error) {
	shader := d.CreateShader(stage)
	log, ok := d.CompileShader(shader, source)
	if !ok {
		d.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Path: path, Log: diagnostic(log)}
	}
	return shader, nil
}

// diagnostic trims the NUL padding and whitespace drivers leave in info
// logs, and guarantees a non-empty message.
func diagnostic(log string) string {
	log = strings.TrimSpace(strings.TrimRight(log, "\x00"))
	if log == "" {
		return noDiagnostic
	}
	return log
}
