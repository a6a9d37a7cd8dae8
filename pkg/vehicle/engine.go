package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/models"
	"github.com/golangdaddy/hillrun/pkg/world"
)

// Input is the control intent for one tick. Flags are level-triggered:
// holding a control applies it every tick.
type Input struct {
	Forward  bool
	Backward bool
	Brake    bool
}

// Ground is what the engine needs to know about the terrain.
type Ground interface {
	HeightAt(x float64) float64
	SlopeAngleAt(x float64) float64
}

// Engine integrates the car one tick at a time.
type Engine struct {
	cfg config.Car
	car Car
}

// NewEngine creates an engine for the given car tuning
func NewEngine(cfg config.Car) *Engine {
	return &Engine{
		cfg: cfg,
		car: newCar(cfg),
	}
}

// Car returns the car state. The pointer stays valid across resets.
func (e *Engine) Car() *Car {
	return &e.car
}

// Reset puts the car at rest on the ground at its start position.
func (e *Engine) Reset(ground Ground, offset float64) {
	e.car = newCar(e.cfg)
	e.car.X = e.cfg.StartX
	e.car.Y = e.restingY(ground.HeightAt(offset + e.car.X))
	e.car.OnGround = true
	e.car.placeWheels()
}

func (e *Engine) restingY(surface float64) float64 {
	return surface - e.cfg.Height/2 - e.cfg.WheelRadius
}

// Step advances the car by one tick and returns how far the world scrolled.
// Scrolled distance is added to the run's score.
func (e *Engine) Step(in Input, ground Ground, offset float64, st *models.RunState) float64 {
	c := &e.car
	cfg := e.cfg

	boost := 1.0
	if st.BoostActive {
		boost = cfg.BoostMultiplier
	}

	// Controls
	if in.Forward && st.Fuel > 0 {
		if c.OnGround {
			c.VelocityX += cfg.Acceleration * boost
		}
		st.Fuel = max(0, st.Fuel-cfg.FuelConsumption)
	}
	if in.Backward {
		c.VelocityX = max(cfg.ReverseMaxSpeed, c.VelocityX-cfg.ReverseAcceleration)
	}
	if in.Brake {
		c.VelocityX *= cfg.BrakeFactor
	}
	c.VelocityX = min(max(c.VelocityX, cfg.ReverseMaxSpeed), cfg.MaxSpeed*boost)

	c.VelocityY += cfg.Gravity

	c.placeWheels()
	front := e.contact(&c.Front, ground, offset)
	back := e.contact(&c.Back, ground, offset)
	c.OnGround = c.Front.Contact || c.Back.Contact

	if c.OnGround {
		slope := ground.SlopeAngleAt(offset + c.X)
		c.Rotation += (slope - c.Rotation) * cfg.RotationSmoothing

		var surface float64
		switch {
		case c.Front.Contact && c.Back.Contact:
			surface = (front + back) / 2
		case c.Front.Contact:
			surface = front
		default:
			surface = back
		}
		c.Y = e.restingY(surface)

		c.VelocityX *= cfg.GroundFriction
		c.VelocityY = 0
		c.VelocityX += math.Sin(slope) * cfg.SlopeCoefficient
		c.AngularVelocity *= cfg.GroundAngularDamping
	} else {
		c.VelocityX *= cfg.AirResistance
		c.Rotation += c.AngularVelocity
		c.AngularVelocity *= cfg.AirAngularDamping
		c.AngularVelocity += c.VelocityX * cfg.AirSpinFactor
	}

	c.X += c.VelocityX
	c.Y += c.VelocityY
	c.WheelSpin += c.VelocityX / cfg.WheelRadius

	// Camera coupling
	var scroll float64
	if c.X > cfg.ForwardAnchor {
		scroll = c.X - cfg.ForwardAnchor
		c.X = cfg.ForwardAnchor
		st.Distance += scroll
		st.Score += scroll / cfg.ScoreDivisor
	}
	if c.X < cfg.RearLimit {
		c.X = cfg.RearLimit
		if c.VelocityX < 0 {
			c.VelocityX = 0
		}
	}

	c.placeWheels()
	return scroll
}

// contact runs the wheel-ground test in world space and returns the terrain
// height under the wheel.
func (e *Engine) contact(w *Wheel, ground Ground, offset float64) float64 {
	pos := w.Pos.Add(mgl64.Vec2{offset, 0})
	hit, _, surface := world.WheelContact(ground, pos, w.Radius)
	w.Contact = hit
	return surface
}

// Check reports whether the run has ended and why. Fall is checked first,
// then flip, then fuel.
func (e *Engine) Check(st *models.RunState, viewportHeight float64) models.EndReason {
	c := &e.car
	if c.Y > viewportHeight+e.cfg.FallMargin {
		return models.EndFell
	}
	if math.Abs(c.NormalizedRotation()-math.Pi) <= e.cfg.FlipHalfWidth {
		return models.EndFlipped
	}
	if st.Fuel <= 0 && math.Abs(c.VelocityX) < e.cfg.StopEpsilon {
		return models.EndOutOfFuel
	}
	return models.EndNone
}
