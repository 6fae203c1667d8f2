package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/orbit"
)

// Window wraps a GLFW window with a current OpenGL 3.3 core context.
// GLFW must be used from the main thread; callers lock it with
// runtime.LockOSThread in init().
type Window struct {
	window *glfw.Window
	closed bool
}

var _ orbit.Surface = (*Window)(nil)

// OpenWindow initializes GLFW, creates the window, makes its context current
// and loads the GL functions. On error everything acquired so far is
// released. On success the caller must Close the window.
func OpenWindow(cfg orbit.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		logGLFWError("init", err)
		return nil, &orbit.InitError{Op: "glfw", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		logGLFWError("create window", err)
		glfw.Terminate()
		return nil, &orbit.WindowError{Width: cfg.Width, Height: cfg.Height, Err: err}
	}
	w := &Window{window: window}

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		w.Close()
		return nil, &orbit.InitError{Op: "gl", Err: err}
	}
	glfw.SwapInterval(cfg.SwapInterval)

	window.SetKeyCallback(w.keyCallback)

	orbit.Logger().Debug("window opened",
		"width", cfg.Width, "height", cfg.Height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return w, nil
}

// ShouldClose reports whether the window's close flag is set.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// RequestClose sets the close flag.
func (w *Window) RequestClose() {
	w.window.SetShouldClose(true)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending window events, running the key callback.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW. It is safe to call more
// than once.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.window.Destroy()
	glfw.Terminate()
	orbit.Logger().Debug("window closed")
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.RequestClose()
	}
}

// logGLFWError reports a window system error on the error stream.
func logGLFWError(op string, err error) {
	orbit.Logger().Error("glfw error", "op", op, "err", err)
}
