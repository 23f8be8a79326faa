// Package camera provides the orbit camera of the styling viewport.
package camera

import (
	gomath "math"

	"github.com/garagekit/restyle/internal/engine/picking"
	"github.com/garagekit/restyle/pkg/math"
)

// OrbitCamera circles a center point at a fixed distance, looking inward.
// Angles are in radians.
type OrbitCamera struct {
	Center   math.Vec3
	Distance float32
	Pitch    float32
	Yaw      float32

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32
}

// NewOrbitCamera frames a model given its bounding sphere: the camera
// starts in front of it at a distance scaled off the radius.
func NewOrbitCamera(center math.Vec3, radius float32) *OrbitCamera {
	if radius <= 0 {
		radius = 1
	}
	return &OrbitCamera{
		Center:      center,
		Distance:    radius * 2.5,
		Pitch:       0.25,
		MinDistance: radius * 1.1,
		MaxDistance: radius * 12,
		MinPitch:    -1.4,
		MaxPitch:    1.4,
	}
}

// Position returns the camera position in world space. Yaw zero puts the
// camera on the +Z side of the center.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: c.Center.X + c.Distance*cp*float32(gomath.Sin(float64(c.Yaw))),
		Y: c.Center.Y + c.Distance*float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Center.Z + c.Distance*cp*float32(gomath.Cos(float64(c.Yaw))),
	}
}

// Orbit adds the deltas to yaw and pitch, keeping pitch inside its limits.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = math.Clamp(c.Pitch+dPitch, c.MinPitch, c.MaxPitch)
}

// Dolly moves the camera along its view axis, clamped to the distance
// limits. Positive delta moves away from the center.
func (c *OrbitCamera) Dolly(delta float32) {
	c.Distance = math.Clamp(c.Distance+delta, c.MinDistance, c.MaxDistance)
}

// Ray returns the picking ray through the center of the view.
func (c *OrbitCamera) Ray() picking.Ray {
	pos := c.Position()
	return picking.Ray{
		Origin:    pos,
		Direction: c.Center.Sub(pos).Normalize(),
	}
}
