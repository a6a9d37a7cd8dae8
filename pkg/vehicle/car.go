package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillrun/pkg/config"
)

// Wheel is one contact point of the car.
type Wheel struct {
	Offset  mgl64.Vec2 // from the car center, unrotated
	Radius  float64
	Pos     mgl64.Vec2 // center on screen, recomputed every tick
	Contact bool
}

// Car represents the player's car. X is on-screen; the world position is
// X plus the terrain offset.
type Car struct {
	X, Y            float64
	VelocityX       float64
	VelocityY       float64
	Rotation        float64 // radians, clockwise with screen Y pointing down
	AngularVelocity float64
	OnGround        bool
	Front, Back     Wheel
	WheelSpin       float64 // accumulated wheel angle, for drawing only
}

func newCar(cfg config.Car) Car {
	half := cfg.WheelBase / 2
	drop := cfg.Height / 2
	return Car{
		Front: Wheel{Offset: mgl64.Vec2{half, drop}, Radius: cfg.WheelRadius},
		Back:  Wheel{Offset: mgl64.Vec2{-half, drop}, Radius: cfg.WheelRadius},
	}
}

// Center returns the car center in screen coordinates.
func (c *Car) Center() mgl64.Vec2 {
	return mgl64.Vec2{c.X, c.Y}
}

// placeWheels projects the wheel offsets through the current rotation.
func (c *Car) placeWheels() {
	rot := mgl64.Rotate2D(c.Rotation)
	center := c.Center()
	c.Front.Pos = center.Add(rot.Mul2x1(c.Front.Offset))
	c.Back.Pos = center.Add(rot.Mul2x1(c.Back.Offset))
}

// Speed is the magnitude of the horizontal velocity.
func (c *Car) Speed() float64 {
	return math.Abs(c.VelocityX)
}

// NormalizedRotation wraps the rotation into [0, 2π).
func (c *Car) NormalizedRotation() float64 {
	r := math.Mod(c.Rotation, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}
