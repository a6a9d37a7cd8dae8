package pickup

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillrun/pkg/models"
)

// Event reports a collected item so frontends can show feedback at its position.
type Event struct {
	Kind Kind
	X, Y float64
}

// Resolver tests the car against collectibles and applies their effects
type Resolver struct {
	specs     map[Kind]Spec
	carRadius float64
}

// NewResolver creates a resolver for the given per-kind specs
func NewResolver(specs map[Kind]Spec, carRadius float64) *Resolver {
	return &Resolver{
		specs:     specs,
		carRadius: carRadius,
	}
}

// Resolve marks every item within reach of the car as collected and applies
// its effect. Items stay in the slice; the world window prunes them.
func (r *Resolver) Resolve(car mgl64.Vec2, items []Collectible, st *models.RunState, now uint64) []Event {
	var events []Event
	for i := range items {
		item := &items[i]
		if item.Collected {
			continue
		}
		spec, ok := r.specs[item.Kind]
		if !ok {
			continue
		}
		if car.Sub(item.Pos()).Len() > r.carRadius+spec.Margin {
			continue
		}

		item.Collected = true
		if item.Kind == KindBoost {
			item.Active = true
		}
		if spec.Apply != nil {
			spec.Apply(st, now)
		}
		events = append(events, Event{Kind: item.Kind, X: item.X, Y: item.Y})
	}
	return events
}

// Expire ends a boost whose tick has passed. It is polled once per tick.
func (r *Resolver) Expire(items []Collectible, st *models.RunState, now uint64) {
	if !st.BoostActive || now < st.BoostUntil {
		return
	}
	st.BoostActive = false
	for i := range items {
		if items[i].Kind == KindBoost {
			items[i].Active = false
		}
	}
}

// BoostRemaining returns the fraction of the boost left, 0 when inactive.
func BoostRemaining(st *models.RunState, now, duration uint64) float64 {
	if !st.BoostActive || duration == 0 || now >= st.BoostUntil {
		return 0
	}
	return float64(st.BoostUntil-now) / float64(duration)
}
