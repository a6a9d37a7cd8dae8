package terrain

import "github.com/golangdaddy/hillrun/pkg/pickup"

// Material is the deck type of a bridge, used for rendering only.
type Material int

const (
	MaterialWood Material = iota
	MaterialMetal
)

func (m Material) String() string {
	if m == MaterialMetal {
		return "metal"
	}
	return "wood"
}

// Sample is one control point of the piecewise-linear terrain profile.
type Sample struct {
	X        float64 `json:"x"`
	Height   float64 `json:"height"`
	OnBridge bool    `json:"on_bridge"`
	Index    int     `json:"index"`
}

// Bridge is a flat span that overrides the wave terrain between StartX and EndX.
type Bridge struct {
	StartX   float64  `json:"start_x"`
	EndX     float64  `json:"end_x"`
	SurfaceY float64  `json:"surface_y"`
	Material Material `json:"material"`
}

// Contains reports whether x lies on the bridge span.
func (b Bridge) Contains(x float64) bool {
	return x >= b.StartX && x <= b.EndX
}

// Output is everything produced for a single new sample.
type Output struct {
	Sample  Sample
	Bridge  *Bridge
	Pickups []pickup.Collectible
}

// Source produces terrain samples in increasing X order.
type Source interface {
	// Reset restarts the spawn cursors relative to origin.
	Reset(origin float64)
	// Next generates the sample at x. bridges are the spans currently alive in
	// the world window.
	Next(x float64, index, level int, bridges []Bridge) Output
}

// Rand is the random source used by the generator. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}
