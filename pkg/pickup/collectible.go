package pickup

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/models"
)

// Kind identifies what a collectible does when picked up
type Kind int

const (
	KindFuel Kind = iota
	KindCoin
	KindBoost
)

func (k Kind) String() string {
	switch k {
	case KindFuel:
		return "fuel"
	case KindCoin:
		return "coin"
	case KindBoost:
		return "boost"
	}
	return "unknown"
}

// Collectible is a fuel can, coin or boost pad placed in the world.
type Collectible struct {
	Kind      Kind    `json:"kind"`
	X         float64 `json:"x"` // world X
	Y         float64 `json:"y"`
	Collected bool    `json:"collected"`
	Active    bool    `json:"active"` // boost pads only, render hint while the boost runs
}

// Pos returns the collectible position as a vector.
func (c Collectible) Pos() mgl64.Vec2 {
	return mgl64.Vec2{c.X, c.Y}
}

// Spec is the per-kind behaviour of a collectible: how close the car has to
// get and what happens to the run when it does.
type Spec struct {
	Margin float64
	Apply  func(st *models.RunState, now uint64)
}

// DefaultSpecs builds the fuel, coin and boost behaviour from the tuning.
func DefaultSpecs(cfg config.Pickups) map[Kind]Spec {
	return map[Kind]Spec{
		KindFuel: {
			Margin: cfg.FuelMargin,
			Apply: func(st *models.RunState, _ uint64) {
				st.Fuel = min(cfg.MaxFuel, st.Fuel+cfg.FuelAmount)
			},
		},
		KindCoin: {
			Margin: cfg.CoinMargin,
			Apply: func(st *models.RunState, _ uint64) {
				st.Coins++
			},
		},
		KindBoost: {
			Margin: cfg.BoostMargin,
			Apply: func(st *models.RunState, now uint64) {
				st.BoostActive = true
				st.BoostUntil = now + cfg.BoostDuration
			},
		},
	}
}
