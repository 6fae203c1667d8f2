package orbit

// ProgramTarget holds the program a scene renders with.
type ProgramTarget interface {
	Program() uint32
	SetProgram(program uint32)
}

// Reloader rebuilds a target's program from its shader files.
type Reloader struct {
	Driver   Driver
	Reader   SourceReader
	Vertex   string
	Fragment string
	Target   ProgramTarget
}

// Reload loads a new program and swaps it into the target. On failure the
// target keeps its current program and the error is returned.
func (r *Reloader) Reload() error {
	program, err := LoadProgram(r.Driver, r.Reader, r.Vertex, r.Fragment)
	if err != nil {
		logger.Error("shader reload failed, keeping previous program", "err", err)
		return err
	}
	old := r.Target.Program()
	r.Target.SetProgram(program)
	if old != 0 {
		r.Driver.DeleteProgram(old)
	}
	logger.Info("shader program reloaded", "program", program)
	return nil
}
