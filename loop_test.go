package orbit_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/orbit"
)

// mockSurface closes after a fixed number of event polls.
type mockSurface struct {
	closeAfter int
	polls      int
	swaps      int
}

func (s *mockSurface) ShouldClose() bool { return s.polls >= s.closeAfter }
func (s *mockSurface) SwapBuffers()      { s.swaps++ }
func (s *mockSurface) PollEvents()       { s.polls++ }

type drawCall struct {
	mvp    mgl32.Mat4
	upload bool
}

// mockScene records what would have been sent to the GPU.
type mockScene struct {
	clears int
	draws  []drawCall
}

func (s *mockScene) Clear() { s.clears++ }

func (s *mockScene) Draw(mvp mgl32.Mat4, upload bool) {
	s.draws = append(s.draws, drawCall{mvp: mvp, upload: upload})
}

type countingWatcher struct{ polls int }

func (w *countingWatcher) Poll() { w.polls++ }

// fakeClock advances by step on every call.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestFrameLoopRunsUntilClose(t *testing.T) {
	surface := &mockSurface{closeAfter: 5}
	scene := &mockScene{}
	watcher := &countingWatcher{}

	loop := orbit.NewFrameLoop(surface, scene, orbit.DefaultProjection(1280, 720),
		orbit.WithClock(fakeClock(time.UnixMilli(0), 100*time.Millisecond)),
		orbit.WithWatcher(watcher))

	frames := loop.Run()
	assert.Equal(t, uint64(5), frames)
	assert.Equal(t, uint64(5), loop.Frames())
	assert.Equal(t, 5, surface.swaps)
	assert.Equal(t, 5, scene.clears)
	assert.Equal(t, 5, watcher.polls)
	require.Len(t, scene.draws, 5)
	for _, d := range scene.draws {
		assert.True(t, d.upload, "orbit variant uploads every frame")
	}
	assert.NotEqual(t, scene.draws[0].mvp, scene.draws[1].mvp, "camera should move")
}

func TestFrameLoopClosedBeforeStart(t *testing.T) {
	surface := &mockSurface{closeAfter: 0}
	scene := &mockScene{}

	frames := orbit.NewFrameLoop(surface, scene, orbit.DefaultProjection(1280, 720)).Run()
	assert.Zero(t, frames)
	assert.Zero(t, scene.clears)
}

func TestFrameLoopWindowVariantDrawsNothing(t *testing.T) {
	surface := &mockSurface{closeAfter: 3}
	scene := &mockScene{}

	orbit.NewFrameLoop(surface, scene, orbit.DefaultProjection(1280, 720),
		orbit.WithVariant(orbit.VariantWindow)).Run()

	assert.Equal(t, 3, scene.clears)
	assert.Empty(t, scene.draws)
	assert.Equal(t, 3, surface.swaps)
}

func TestFrameLoopTriangleVariantUploadsOnce(t *testing.T) {
	surface := &mockSurface{closeAfter: 4}
	scene := &mockScene{}
	camera := orbit.Camera{Eye: mgl32.Vec3{4, 3, 3}, Up: mgl32.Vec3{0, 1, 0}}
	proj := orbit.DefaultProjection(1280, 720)

	orbit.NewFrameLoop(surface, scene, proj,
		orbit.WithVariant(orbit.VariantTriangle),
		orbit.WithStaticCamera(camera),
		orbit.WithClock(fakeClock(time.UnixMilli(0), time.Second/3))).Run()

	require.Len(t, scene.draws, 4)
	want := orbit.MVP(orbit.Projection(proj), orbit.View(camera), orbit.Model())
	for i, d := range scene.draws {
		assert.Equal(t, i == 0, d.upload, "frame %d", i)
		assert.Equal(t, want, d.mvp, "static MVP must not change")
	}
}

func TestStepOrbit(t *testing.T) {
	proj := orbit.DefaultProjection(1280, 720)
	loop := orbit.NewFrameLoop(&mockSurface{}, &mockScene{}, proj)

	frame := loop.Step(time.UnixMilli(250))
	assert.InDelta(t, 1.5707963, frame.Theta, 1e-6)
	assertVec3(t, mgl32.Vec3{0, 0, 3}, frame.Camera.Eye)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, frame.Camera.Target)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, frame.Camera.Up)

	want := orbit.MVP(orbit.Projection(proj), frame.View, orbit.Model())
	assert.True(t, frame.MVP.ApproxEqualThreshold(want, eps))
}

func TestStepDeterministic(t *testing.T) {
	loop := orbit.NewFrameLoop(&mockSurface{}, &mockScene{}, orbit.DefaultProjection(800, 600))
	now := time.UnixMilli(1_700_000_000_123)

	assert.Equal(t, loop.Step(now), loop.Step(now))
}

func TestStepOrbitPeriodAndRadius(t *testing.T) {
	loop := orbit.NewFrameLoop(&mockSurface{}, &mockScene{}, orbit.DefaultProjection(800, 600),
		orbit.WithOrbitPeriod(1000*time.Second),
		orbit.WithOrbitRadius(5))

	frame := loop.Step(time.UnixMilli(500_000))
	assertVec3(t, mgl32.Vec3{-5, 0, 0}, frame.Camera.Eye)
}
