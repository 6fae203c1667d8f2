package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/orbit"
)

// Driver implements orbit.Driver with OpenGL calls.
// A context must be current on the calling thread.
type Driver struct{}

var _ orbit.Driver = Driver{}

// CreateShader creates a shader object for the stage.
func (Driver) CreateShader(stage orbit.Stage) uint32 {
	switch stage {
	case orbit.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

// CompileShader uploads source and compiles it.
func (Driver) CompileShader(shader uint32, source string) (string, bool) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return string(log), false
	}
	return "", true
}

// DeleteShader deletes a shader object.
func (Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram creates an empty program object.
func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches shader to program.
func (Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// DetachShader detaches shader from program.
func (Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

// LinkProgram links program.
func (Driver) LinkProgram(program uint32) (string, bool) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return string(log), false
	}
	return "", true
}

// DeleteProgram deletes a program object.
func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}
