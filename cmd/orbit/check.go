package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/orbit"
	"github.com/go-theft-auto/orbit/backend/opengl"
)

func newCheckCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compile and link a shader pair in a hidden window and report diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if cfg, err = checkConfig(cfg); err != nil {
				return err
			}

			win, err := opengl.OpenWindow(cfg.Window)
			if err != nil {
				return err
			}
			defer win.Close()

			d := opengl.Driver{}
			program, err := orbit.LoadProgram(d, orbit.OSReader{}, cfg.VertexShader(), cfg.Shaders.Fragment)
			if err != nil {
				return err
			}
			d.DeleteProgram(program)

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s + %s\n", cfg.VertexShader(), cfg.Shaders.Fragment)
			return nil
		},
	}
}

// checkConfig adapts cfg for compiling a shader pair: a drawing variant, so
// the vertex default applies, a hidden window and both paths present.
func checkConfig(cfg orbit.Config) (orbit.Config, error) {
	if !cfg.Variant.Draws() {
		cfg.Variant = orbit.VariantTriangle
	}
	cfg.Window.Hidden = true
	if cfg.Shaders.Fragment == "" {
		return cfg, errors.New("check needs a fragment shader (--fragment or [shaders] fragment)")
	}
	return cfg, nil
}
