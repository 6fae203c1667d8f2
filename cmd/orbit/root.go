package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/orbit"
	"github.com/go-theft-auto/orbit/backend/opengl"
)

// flags holds the command line values of one command tree.
type flags struct {
	configPath   string
	variant      string
	vertexPath   string
	fragmentPath string
	width        int
	height       int
	orbitPeriod  string
	watch        bool
	verbose      bool
	pauseOnError bool
}

// newRootCmd builds the orbit command tree with its flags bound to f.
func newRootCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "orbit",
		Short:         "Draw a triangle with OpenGL, optionally from an orbiting camera",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "",
		"TOML configuration file")
	cmd.PersistentFlags().StringVarP(&f.vertexPath, "vertex", "v", "",
		"vertex shader file (default depends on the variant)")
	cmd.PersistentFlags().StringVarP(&f.fragmentPath, "fragment", "f", "",
		"fragment shader file")
	cmd.PersistentFlags().BoolVar(&f.verbose, "verbose", false,
		"enable debug logging")
	cmd.PersistentFlags().BoolVar(&f.pauseOnError, "pause-on-error", false,
		"wait for a key before exiting on error")

	cmd.Flags().StringVar(&f.variant, "variant", "",
		"what to render: window, triangle or orbit")
	cmd.Flags().IntVar(&f.width, "width", 0, "window width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "window height in pixels")
	cmd.Flags().StringVar(&f.orbitPeriod, "orbit-period", "",
		"time of one camera orbit, e.g. 1s or 16m40s")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false,
		"reload the shaders when their files change")

	cmd.AddCommand(newCheckCmd(f))
	return cmd
}

// loadConfig builds the configuration from defaults, the config file and
// the flags the user set, in that order.
func loadConfig(cmd *cobra.Command, f *flags) (orbit.Config, error) {
	orbit.SetVerbose(f.verbose)

	cfg := orbit.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = orbit.LoadConfig(f.configPath); err != nil {
			return cfg, err
		}
	}

	set := cmd.Flags()
	if set.Changed("variant") {
		v, err := orbit.ParseVariant(f.variant)
		if err != nil {
			return cfg, err
		}
		cfg.Variant = v
	}
	if set.Changed("vertex") {
		cfg.Shaders.Vertex = f.vertexPath
	}
	if set.Changed("fragment") {
		cfg.Shaders.Fragment = f.fragmentPath
	}
	if set.Changed("width") {
		cfg.Window.Width = f.width
	}
	if set.Changed("height") {
		cfg.Window.Height = f.height
	}
	if set.Changed("orbit-period") {
		cfg.Camera.OrbitPeriod = f.orbitPeriod
	}
	if set.Changed("watch") {
		cfg.Shaders.Watch = f.watch
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run opens the window, builds the pipeline for the variant and renders
// until the window is closed. Everything acquired is released on return.
func run(cfg orbit.Config) error {
	win, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	var program uint32
	if cfg.Variant.Draws() {
		program, err = orbit.LoadProgram(opengl.Driver{}, orbit.OSReader{}, cfg.VertexShader(), cfg.Shaders.Fragment)
		if err != nil {
			return fmt.Errorf("load shaders: %w", err)
		}
	}
	pipeline := opengl.NewPipeline(program, cfg.ClearColor)
	defer pipeline.Delete()

	period, err := cfg.Camera.Period()
	if err != nil {
		return err
	}
	opts := []orbit.Option{
		orbit.WithVariant(cfg.Variant),
		orbit.WithOrbitPeriod(period),
		orbit.WithOrbitRadius(cfg.Camera.Radius),
		orbit.WithStaticCamera(cfg.StaticCamera()),
	}

	if cfg.Shaders.Watch && cfg.Variant.Draws() {
		watcher, err := orbit.WatchShaders(&orbit.Reloader{
			Driver:   opengl.Driver{},
			Reader:   orbit.OSReader{},
			Vertex:   cfg.VertexShader(),
			Fragment: cfg.Shaders.Fragment,
			Target:   pipeline,
		})
		if err != nil {
			return err
		}
		defer watcher.Close()
		opts = append(opts, orbit.WithWatcher(watcher))
	}

	orbit.NewFrameLoop(win, pipeline, cfg.Projection(), opts...).Run()
	return nil
}
