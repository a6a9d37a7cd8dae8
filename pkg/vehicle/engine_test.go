package vehicle

import (
	"math"
	"testing"

	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/models"
)

// slopeGround is a straight line height = base + grade*x.
type slopeGround struct {
	base, grade float64
}

func (g slopeGround) HeightAt(x float64) float64 { return g.base + g.grade*x }

func (g slopeGround) SlopeAngleAt(float64) float64 { return math.Atan(g.grade) }

func newTestEngine(ground Ground) (*Engine, config.Car, models.RunState) {
	cfg := config.Default().Car
	e := NewEngine(cfg)
	e.Reset(ground, 0)
	return e, cfg, models.NewRunState(100)
}

func TestResetRestsOnGround(t *testing.T) {
	ground := slopeGround{base: 400}
	e, cfg, _ := newTestEngine(ground)
	c := e.Car()

	if c.X != cfg.StartX {
		t.Fatalf("expected start x %v, got %v", cfg.StartX, c.X)
	}
	if want := 400 - cfg.Height/2 - cfg.WheelRadius; c.Y != want {
		t.Fatalf("expected y %v, got %v", want, c.Y)
	}
	if c.Front.Pos.X() <= c.Back.Pos.X() {
		t.Fatalf("front wheel should be ahead of back wheel: %v %v", c.Front.Pos, c.Back.Pos)
	}
}

func TestGroundedCarStaysOnFlatGround(t *testing.T) {
	e, _, st := newTestEngine(slopeGround{base: 400})
	startY := e.Car().Y

	for range 100 {
		e.Step(Input{}, slopeGround{base: 400}, 0, &st)
	}
	c := e.Car()
	if !c.OnGround {
		t.Fatal("car left flat ground without input")
	}
	if c.Y != startY || c.VelocityY != 0 {
		t.Fatalf("car should rest at %v, got y=%v vy=%v", startY, c.Y, c.VelocityY)
	}
}

func TestForwardAcceleratesAndBurnsFuel(t *testing.T) {
	ground := slopeGround{base: 400}
	e, cfg, st := newTestEngine(ground)

	prevFuel := st.Fuel
	for range 20 {
		e.Step(Input{Forward: true}, ground, 0, &st)
		if st.Fuel >= prevFuel {
			t.Fatalf("fuel did not drop: %v -> %v", prevFuel, st.Fuel)
		}
		prevFuel = st.Fuel
	}
	if e.Car().VelocityX <= 0 {
		t.Fatalf("expected forward speed, got %v", e.Car().VelocityX)
	}

	st.Fuel = cfg.FuelConsumption / 2
	e.Step(Input{Forward: true}, ground, 0, &st)
	if st.Fuel != 0 {
		t.Fatalf("fuel should clamp at zero, got %v", st.Fuel)
	}
	v := e.Car().VelocityX
	e.Step(Input{Forward: true}, ground, 0, &st)
	if e.Car().VelocityX > v {
		t.Fatalf("car accelerated without fuel: %v -> %v", v, e.Car().VelocityX)
	}
}

func TestReverseIsFloored(t *testing.T) {
	ground := slopeGround{base: 400}
	e, cfg, st := newTestEngine(ground)
	e.Car().X = cfg.ForwardAnchor - 1

	for range 200 {
		e.Step(Input{Backward: true}, ground, 0, &st)
		if e.Car().VelocityX < cfg.ReverseMaxSpeed {
			t.Fatalf("reverse speed %v below floor %v", e.Car().VelocityX, cfg.ReverseMaxSpeed)
		}
	}
	if e.Car().X != cfg.RearLimit {
		t.Fatalf("car should be stopped at the rear limit, got x=%v", e.Car().X)
	}
	if e.Car().VelocityX < 0 {
		t.Fatalf("negative speed should be zeroed at the rear limit, got %v", e.Car().VelocityX)
	}
}

func TestBrakeSlowsDown(t *testing.T) {
	ground := slopeGround{base: 400}
	e, _, st := newTestEngine(ground)
	e.Car().VelocityX = 8

	e.Step(Input{}, ground, 0, &st)
	coast := e.Car().VelocityX

	e.Car().VelocityX = 8
	e.Step(Input{Brake: true}, ground, 0, &st)
	if e.Car().VelocityX >= coast {
		t.Fatalf("braking (%v) should slow more than coasting (%v)", e.Car().VelocityX, coast)
	}
}

func TestSlopeCoupling(t *testing.T) {
	// screen y grows downward: a negative grade climbs
	uphill := slopeGround{base: 400, grade: -0.3}
	downhill := slopeGround{base: 400, grade: 0.3}

	e, _, st := newTestEngine(uphill)
	e.Car().VelocityX = 5
	e.Car().Rotation = uphill.SlopeAngleAt(0)
	for range 10 {
		e.Step(Input{}, uphill, 0, &st)
	}
	up := e.Car().VelocityX

	e, _, st = newTestEngine(downhill)
	e.Car().VelocityX = 5
	e.Car().Rotation = downhill.SlopeAngleAt(0)
	for range 10 {
		e.Step(Input{}, downhill, 0, &st)
	}
	down := e.Car().VelocityX

	if up >= down {
		t.Fatalf("uphill speed %v should be below downhill speed %v", up, down)
	}
}

func TestScrollFeedsScore(t *testing.T) {
	ground := slopeGround{base: 400}
	e, cfg, st := newTestEngine(ground)
	e.Car().X = cfg.ForwardAnchor
	e.Car().VelocityX = 5

	scroll := e.Step(Input{}, ground, 0, &st)
	if scroll <= 0 {
		t.Fatalf("expected scroll past the anchor, got %v", scroll)
	}
	if e.Car().X != cfg.ForwardAnchor {
		t.Fatalf("car should be clamped to the anchor, got %v", e.Car().X)
	}
	if st.Score != scroll/cfg.ScoreDivisor || st.Distance != scroll {
		t.Fatalf("score %v distance %v for scroll %v", st.Score, st.Distance, scroll)
	}
}

func TestAirborneSpin(t *testing.T) {
	ground := slopeGround{base: 400}
	e, _, st := newTestEngine(ground)
	c := e.Car()
	c.Y -= 300
	c.VelocityX = 8

	e.Step(Input{}, ground, 0, &st)
	if c.OnGround {
		t.Fatal("car high above the ground should be airborne")
	}
	if c.AngularVelocity <= 0 {
		t.Fatalf("forward motion in the air should induce spin, got %v", c.AngularVelocity)
	}
	if c.VelocityY <= 0 {
		t.Fatalf("gravity should pull the car down, got vy=%v", c.VelocityY)
	}
}

func TestCheck(t *testing.T) {
	cfg := config.Default().Car
	tests := []struct {
		name     string
		rotation float64
		y        float64
		vx       float64
		fuel     float64
		want     models.EndReason
	}{
		{"upright", 0, 300, 0, 50, models.EndNone},
		{"inverted", math.Pi, 300, 0, 50, models.EndFlipped},
		{"inverted after a full turn", 3 * math.Pi, 300, 0, 50, models.EndFlipped},
		{"inverted negative", -math.Pi, 300, 0, 50, models.EndFlipped},
		{"steep but upright", math.Pi/2 + 0.1, 300, 0, 50, models.EndNone},
		{"fell", 0, 600 + cfg.FallMargin + 1, 0, 50, models.EndFell},
		{"stopped without fuel", 0, 300, 0.05, 0, models.EndOutOfFuel},
		{"coasting without fuel", 0, 300, 5, 0, models.EndNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(cfg)
			e.Car().Rotation = tt.rotation
			e.Car().Y = tt.y
			e.Car().VelocityX = tt.vx
			st := models.NewRunState(100)
			st.Fuel = tt.fuel
			if got := e.Check(&st, 600); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
