// Package opengl provides the OpenGL 3.3 and GLFW backend for the orbit demo.
package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/orbit"
)

const floatSize = 4

// triangleVertices is the static triangle: 3 vertices of (x, y, z),
// pointing down.
var triangleVertices = []float32{
	-1, 1, 0,
	1, 1, 0,
	0, -1, 0,
}

// Pipeline holds the GPU state of the demo: one program, one vertex array
// and one static vertex buffer.
type Pipeline struct {
	program    uint32
	vao, vbo   uint32
	mvpLoc     int32
	clearColor [4]float32

	// Last MVP written, re-uploaded when the program is replaced.
	lastMVP  mgl32.Mat4
	uploaded bool
}

var (
	_ orbit.Scene         = (*Pipeline)(nil)
	_ orbit.ProgramTarget = (*Pipeline)(nil)
)

// NewPipeline uploads the triangle and sets the fixed render state.
// program may be zero when nothing is drawn.
func NewPipeline(program uint32, clearColor [4]float32) *Pipeline {
	p := &Pipeline{clearColor: clearColor, mvpLoc: -1}

	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Core profile requires a bound VAO for attribute state.
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*floatSize, gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	p.SetProgram(program)
	return p
}

// Program returns the current program handle.
func (p *Pipeline) Program() uint32 {
	return p.program
}

// SetProgram replaces the program. The caller owns the old one.
func (p *Pipeline) SetProgram(program uint32) {
	p.program = program
	p.mvpLoc = -1
	if program == 0 {
		return
	}
	p.mvpLoc = gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	if p.mvpLoc < 0 {
		orbit.Logger().Debug("program has no mvp uniform", "program", program)
	}
	if p.uploaded {
		p.uploadMVP(p.lastMVP)
	}
}

// Clear clears the color and depth buffers.
func (p *Pipeline) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw draws the triangle with the current program.
func (p *Pipeline) Draw(mvp mgl32.Mat4, upload bool) {
	if p.program == 0 {
		return
	}
	gl.UseProgram(p.program)
	if upload {
		p.uploadMVP(mvp)
	}

	gl.BindVertexArray(p.vao)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	gl.DisableVertexAttribArray(0)
}

func (p *Pipeline) uploadMVP(mvp mgl32.Mat4) {
	p.lastMVP = mvp
	p.uploaded = true
	if p.mvpLoc < 0 {
		return
	}
	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.mvpLoc, 1, false, &mvp[0])
}

// Delete releases OpenGL resources, including the program.
func (p *Pipeline) Delete() {
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
