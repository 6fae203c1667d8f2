package orbit

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is the window the frame loop presents to.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Scene issues the GPU work of one frame.
type Scene interface {
	// Clear clears the color and depth buffers.
	Clear()
	// Draw draws the triangle. When upload is true mvp is written to the
	// program's mvp uniform first.
	Draw(mvp mgl32.Mat4, upload bool)
}

// Watcher is polled once per frame on the render thread. It must not block.
type Watcher interface {
	Poll()
}

// Frame is the per-frame state derived from the current time.
type Frame struct {
	Theta  float64
	Camera Camera
	View   mgl32.Mat4
	MVP    mgl32.Mat4
}

// FrameLoop renders frames until the surface asks to close.
type FrameLoop struct {
	surface  Surface
	scene    Scene
	variant  Variant
	clock    func() time.Time
	period   time.Duration
	radius   float32
	camera   Camera
	watchers []Watcher

	projection mgl32.Mat4
	model      mgl32.Mat4
	static     mgl32.Mat4

	frames uint64
}

// Option configures a FrameLoop.
type Option func(*FrameLoop)

// WithVariant selects the variant. The default is VariantOrbit.
func WithVariant(v Variant) Option {
	return func(l *FrameLoop) { l.variant = v }
}

// WithClock replaces time.Now as the source of the orbit angle.
func WithClock(clock func() time.Time) Option {
	return func(l *FrameLoop) { l.clock = clock }
}

// WithOrbitPeriod sets the time of one full orbit.
func WithOrbitPeriod(d time.Duration) Option {
	return func(l *FrameLoop) { l.period = d }
}

// WithOrbitRadius sets the orbit radius.
func WithOrbitRadius(r float32) Option {
	return func(l *FrameLoop) { l.radius = r }
}

// WithStaticCamera sets the camera used by the static variants.
func WithStaticCamera(c Camera) Option {
	return func(l *FrameLoop) { l.camera = c }
}

// WithWatcher adds a watcher polled every frame.
func WithWatcher(w Watcher) Option {
	return func(l *FrameLoop) { l.watchers = append(l.watchers, w) }
}

// NewFrameLoop creates a frame loop. The projection is fixed for the whole run.
func NewFrameLoop(surface Surface, scene Scene, projection ProjectionParams, opts ...Option) *FrameLoop {
	l := &FrameLoop{
		surface: surface,
		scene:   scene,
		variant: VariantOrbit,
		clock:   time.Now,
		period:  DefaultOrbitPeriod,
		radius:  DefaultOrbitRadius,
		camera:  OrbitCamera(0, DefaultOrbitRadius),

		projection: Projection(projection),
		model:      Model(),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.static = MVP(l.projection, View(l.camera), l.model)
	return l
}

// Step computes the frame state for now. It has no side effects.
func (l *FrameLoop) Step(now time.Time) Frame {
	if l.variant != VariantOrbit {
		return Frame{Camera: l.camera, View: View(l.camera), MVP: l.static}
	}
	theta := OrbitAngle(now, l.period)
	cam := OrbitCamera(theta, l.radius)
	view := View(cam)
	return Frame{
		Theta:  theta,
		Camera: cam,
		View:   view,
		MVP:    MVP(l.projection, view, l.model),
	}
}

// RenderFrame runs one iteration: clear, draw, swap, poll.
func (l *FrameLoop) RenderFrame() {
	for _, w := range l.watchers {
		w.Poll()
	}

	l.scene.Clear()
	if l.variant.Draws() {
		frame := l.Step(l.clock())
		// The static MVP only needs to reach the program once.
		upload := l.variant == VariantOrbit || l.frames == 0
		l.scene.Draw(frame.MVP, upload)
	}

	l.surface.SwapBuffers()
	l.surface.PollEvents()
	l.frames++
}

// Run renders until the surface's close flag is set and returns the number
// of frames rendered.
func (l *FrameLoop) Run() uint64 {
	logger.Info("frame loop started", "variant", l.variant)
	start := l.clock()
	for !l.surface.ShouldClose() {
		l.RenderFrame()
	}
	logger.Info("frame loop stopped", "frames", l.frames, "elapsed", l.clock().Sub(start).Round(time.Millisecond))
	return l.frames
}

// Frames returns the number of frames rendered so far.
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}
