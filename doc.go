/*
Package orbit draws one triangle with OpenGL, optionally seen from a camera
orbiting it, as a single parameterized pipeline.

# Overview

The demo has three variants selected by Variant:

	window    open a window and clear it every frame
	triangle  load a shader pair and draw one static triangle
	orbit     as triangle, with a time-driven camera uploaded as the mvp uniform

The package holds the pieces that do not need a GL context: the shader
loader (LoadProgram, written against the Driver interface), the camera and
matrix math, the configuration and the frame loop. The backend/opengl
package implements Driver, Surface and Scene with go-gl.

# Quick Start

	win, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
	    return err
	}
	defer win.Close()

	program, err := orbit.LoadProgram(opengl.Driver{}, orbit.OSReader{}, vertexPath, fragmentPath)
	if err != nil {
	    return err
	}
	pipeline := opengl.NewPipeline(program, cfg.ClearColor)
	defer pipeline.Delete()

	orbit.NewFrameLoop(win, pipeline, cfg.Projection()).Run()

# Camera

The orbit camera sits on a circle of radius 3 in the XZ plane and looks at
the origin with +Y up. Its angle is

	θ = (milliseconds since epoch / 1000) · 2π

scaled by the orbit period (one second by default, which is the formula
above). The projection is a 45° perspective with near 0.1 and far 100; the
model matrix is the identity.
*/
package orbit
