package orbit

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// Variant selects how much of the pipeline runs.
type Variant int

const (
	// VariantWindow opens the window and clears it every frame.
	VariantWindow Variant = iota
	// VariantTriangle draws the static triangle with a fixed camera.
	VariantTriangle
	// VariantOrbit draws the triangle seen from a camera orbiting it.
	VariantOrbit
)

var variantNames = [...]string{"window", "triangle", "orbit"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if s == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q (want window, triangle or orbit)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Draws reports whether the variant needs shaders and geometry.
func (v Variant) Draws() bool {
	return v >= VariantTriangle
}

// geometryEpsilon is the smallest length treated as non-zero when checking
// the camera.
const geometryEpsilon = 1e-6

// Config is the complete demo configuration.
type Config struct {
	Variant    Variant      `toml:"variant"`
	ClearColor [4]float32   `toml:"clear_color"`
	Window     WindowConfig `toml:"window"`
	Shaders    ShaderConfig `toml:"shaders"`
	Camera     CameraConfig `toml:"camera"`
}

// WindowConfig describes the window and its GL context.
type WindowConfig struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	Samples      int    `toml:"samples"`
	SwapInterval int    `toml:"swap_interval"`
	// Hidden creates an invisible window, used to get a context without
	// showing anything.
	Hidden bool `toml:"-"`
}

// ShaderConfig names the shader source files.
type ShaderConfig struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Watch    bool   `toml:"watch"`
}

// CameraConfig holds the projection and camera parameters.
type CameraConfig struct {
	FovY   float32    `toml:"fov_y"`
	Near   float32    `toml:"near"`
	Far    float32    `toml:"far"`
	Radius float32    `toml:"radius"`
	Eye    [3]float32 `toml:"eye"` // static variants only
	// OrbitPeriod is a time.ParseDuration string.
	OrbitPeriod string `toml:"orbit_period"`
}

// DefaultConfig returns the configuration of the orbiting triangle demo.
func DefaultConfig() Config {
	return Config{
		Variant:    VariantOrbit,
		ClearColor: [4]float32{0, 0, 0.4, 0},
		Window: WindowConfig{
			Width:        1280,
			Height:       720,
			Title:        "New window",
			Samples:      4,
			SwapInterval: 1,
		},
		Shaders: ShaderConfig{
			Fragment: "shaders/triangle.frag",
		},
		Camera: CameraConfig{
			FovY:        45,
			Near:        0.1,
			Far:         100,
			Radius:      DefaultOrbitRadius,
			Eye:         [3]float32{4, 3, 3},
			OrbitPeriod: DefaultOrbitPeriod.String(),
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys missing from the
// file keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the demo cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Variant < VariantWindow || c.Variant > VariantOrbit {
		errs = append(errs, fmt.Errorf("unknown variant %d", int(c.Variant)))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("samples %d must not be negative", c.Window.Samples))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("fov_y %v must be in (0, 180)", c.Camera.FovY))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("clip planes near=%v far=%v: need 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if _, err := c.Camera.Period(); err != nil {
		errs = append(errs, err)
	}
	if c.Camera.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius %v must be positive", c.Camera.Radius))
	}
	// LookAt needs an eye away from the target and off the up axis.
	eye := mgl32.Vec3(c.Camera.Eye)
	switch {
	case eye.Len() < geometryEpsilon:
		errs = append(errs, fmt.Errorf("eye %v must not be at the origin", c.Camera.Eye))
	case eye.Normalize().Cross(mgl32.Vec3{0, 1, 0}).Len() < geometryEpsilon:
		errs = append(errs, fmt.Errorf("eye %v must not lie on the up axis", c.Camera.Eye))
	}
	if c.Variant.Draws() && c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("fragment shader path is empty"))
	}
	return errors.Join(errs...)
}

// Period parses OrbitPeriod.
func (c CameraConfig) Period() (time.Duration, error) {
	if c.OrbitPeriod == "" {
		return DefaultOrbitPeriod, nil
	}
	d, err := time.ParseDuration(c.OrbitPeriod)
	if err != nil {
		return 0, fmt.Errorf("orbit_period: %w", err)
	}
	if d.Milliseconds() <= 0 {
		return 0, fmt.Errorf("orbit_period %s must be at least 1ms", d)
	}
	return d, nil
}

// VertexShader returns the configured vertex shader, or the default for the
// variant: the orbit variant needs a shader that reads the mvp uniform.
func (c Config) VertexShader() string {
	if c.Shaders.Vertex != "" {
		return c.Shaders.Vertex
	}
	if c.Variant == VariantOrbit {
		return "shaders/orbit.vert"
	}
	return "shaders/triangle.vert"
}

// Projection returns the projection parameters for the configured window.
func (c Config) Projection() ProjectionParams {
	return ProjectionParams{
		FovY:   c.Camera.FovY,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		Near:   c.Camera.Near,
		Far:    c.Camera.Far,
	}
}

// StaticCamera returns the fixed camera of the static variants.
func (c Config) StaticCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3(c.Camera.Eye),
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}
