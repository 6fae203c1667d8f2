package orbit

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultOrbitPeriod makes the orbit angle (ms since epoch / 1000) * 2π.
const DefaultOrbitPeriod = time.Second

// DefaultOrbitRadius is the distance of the orbiting camera from the origin.
const DefaultOrbitRadius = 3

// ProjectionParams describes a perspective projection.
type ProjectionParams struct {
	FovY          float32 // vertical field of view, degrees
	Width, Height int
	Near, Far     float32
}

// DefaultProjection returns the 45°, 0.1..100 projection for a window size.
func DefaultProjection(width, height int) ProjectionParams {
	return ProjectionParams{FovY: 45, Width: width, Height: height, Near: 0.1, Far: 100}
}

// Aspect returns width / height.
func (p ProjectionParams) Aspect() float32 {
	return float32(p.Width) / float32(p.Height)
}

// Projection builds the perspective matrix for p.
func Projection(p ProjectionParams) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FovY), p.Aspect(), p.Near, p.Far)
}

// Camera is an eye position looking at a target.
type Camera struct {
	Eye, Target, Up mgl32.Vec3
}

// OrbitAngle returns the camera angle in radians at t for the given orbit
// period. The millisecond clock is reduced modulo the period before the
// conversion to keep float precision.
func OrbitAngle(t time.Time, period time.Duration) float64 {
	pm := period.Milliseconds()
	if pm <= 0 {
		pm = DefaultOrbitPeriod.Milliseconds()
	}
	ms := t.UnixMilli() % pm
	if ms < 0 {
		ms += pm
	}
	return float64(ms) / float64(pm) * 2 * math.Pi
}

// CameraPosition returns (r·cos θ, 0, r·sin θ).
func CameraPosition(theta float64, radius float32) mgl32.Vec3 {
	return mgl32.Vec3{
		radius * float32(math.Cos(theta)),
		0,
		radius * float32(math.Sin(theta)),
	}
}

// OrbitCamera returns the camera at angle theta on the XZ circle, looking at
// the origin with +Y up.
func OrbitCamera(theta float64, radius float32) Camera {
	return Camera{
		Eye:    CameraPosition(theta, radius),
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

// View builds the look-at matrix for c.
func View(c Camera) mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Model returns translation × rotation × scale with every factor identity.
func Model() mgl32.Mat4 {
	translate := mgl32.Translate3D(0, 0, 0)
	rotate := mgl32.HomogRotate3D(0, mgl32.Vec3{0, 1, 0})
	scale := mgl32.Scale3D(1, 1, 1)
	return translate.Mul4(rotate).Mul4(scale)
}

// MVP returns projection × view × model.
func MVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
