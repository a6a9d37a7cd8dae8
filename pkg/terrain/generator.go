package terrain

import (
	"math"

	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/pickup"
)

// spawnCursor places a feature every time the generator passes a randomized
// distance beyond the previous one.
type spawnCursor struct {
	last, gap float64
	min, max  float64
}

func (c *spawnCursor) reset(origin float64, rng Rand) {
	c.last = origin
	c.redraw(rng)
}

func (c *spawnCursor) redraw(rng Rand) {
	c.gap = c.min + rng.Float64()*(c.max-c.min)
}

func (c *spawnCursor) due(x float64) bool {
	return x >= c.last+c.gap
}

func (c *spawnCursor) advance(to float64, rng Rand) {
	c.last = to
	c.redraw(rng)
}

// Generator is the default Source: layered sine waves plus smoothed noise,
// with bridges, fuel, boosts and coins placed along the way.
type Generator struct {
	cfg   config.Terrain
	rng   Rand
	noise float64

	bridge spawnCursor
	fuel   spawnCursor
	boost  spawnCursor

	// most recent bridge emitted, in case the caller has not stored it yet
	pending *Bridge
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg config.Terrain, rng Rand) *Generator {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	g := &Generator{
		cfg:    cfg,
		rng:    rng,
		bridge: spawnCursor{min: cfg.BridgeMinDistance * scale, max: cfg.BridgeMaxDistance * scale},
		fuel:   spawnCursor{min: cfg.FuelMinDistance * scale, max: cfg.FuelMaxDistance * scale},
		boost:  spawnCursor{min: cfg.BoostMinDistance * scale, max: cfg.BoostMaxDistance * scale},
	}
	g.Reset(0)
	return g
}

// Reset clears the noise filter and restarts every spawn cursor at origin.
func (g *Generator) Reset(origin float64) {
	g.noise = 0
	g.pending = nil
	g.bridge.reset(origin, g.rng)
	g.fuel.reset(origin, g.rng)
	g.boost.reset(origin, g.rng)
}

// WaveHeight is the terrain height at x without noise or bridges.
func (g *Generator) WaveHeight(x float64, level int) float64 {
	growth := 1 + float64(level-1)*g.cfg.LevelAmplitudeGrowth
	h := g.cfg.BaseHeight
	h += math.Sin(x*g.cfg.Long.Frequency) * g.cfg.Long.Amplitude * growth
	h += math.Sin(x*g.cfg.Medium.Frequency) * g.cfg.Medium.Amplitude
	h += math.Sin(x*g.cfg.Short.Frequency) * g.cfg.Short.Amplitude
	return h
}

// CoinChance is the per-sample coin probability at the given level.
func (g *Generator) CoinChance(level int) float64 {
	return max(0, g.cfg.CoinChance*(1-float64(level)*g.cfg.CoinLevelDecay))
}

// Next generates the sample at x and any features that spawn with it.
func (g *Generator) Next(x float64, index, level int, bridges []Bridge) Output {
	out := Output{Sample: Sample{X: x, Index: index}}

	if b, ok := g.bridgeAt(x, bridges); ok {
		out.Sample.Height = b.SurfaceY
		out.Sample.OnBridge = true
	} else {
		g.noise = g.noise*g.cfg.NoiseSmoothing + g.rng.Float64()*(1-g.cfg.NoiseSmoothing)
		out.Sample.Height = g.WaveHeight(x, level) + (g.noise-0.5)*g.cfg.NoiseAmplitude

		if g.bridge.due(x) {
			b := &Bridge{
				StartX:   x,
				EndX:     x + g.cfg.BridgeLength,
				SurfaceY: out.Sample.Height,
				Material: MaterialWood,
			}
			if g.rng.Float64() < 0.5 {
				b.Material = MaterialMetal
			}
			g.bridge.advance(b.EndX, g.rng)
			g.pending = b
			out.Bridge = b
			out.Sample.OnBridge = true
		}
	}

	h := out.Sample.Height
	if g.fuel.due(x) {
		g.fuel.advance(x, g.rng)
		out.Pickups = append(out.Pickups, pickup.Collectible{Kind: pickup.KindFuel, X: x, Y: h - g.cfg.FuelHeightOffset})
	}
	if g.boost.due(x) {
		g.boost.advance(x, g.rng)
		out.Pickups = append(out.Pickups, pickup.Collectible{Kind: pickup.KindBoost, X: x, Y: h - g.cfg.BoostHeightOffset})
	}
	if g.rng.Float64() < g.CoinChance(level) {
		lift := g.cfg.CoinHeightOffset + g.rng.Float64()*g.cfg.CoinHeightJitter
		out.Pickups = append(out.Pickups, pickup.Collectible{Kind: pickup.KindCoin, X: x, Y: h - lift})
	}

	return out
}

func (g *Generator) bridgeAt(x float64, bridges []Bridge) (Bridge, bool) {
	if g.pending != nil {
		if g.pending.Contains(x) {
			return *g.pending, true
		}
		if x > g.pending.EndX {
			g.pending = nil
		}
	}
	for _, b := range bridges {
		if b.Contains(x) {
			return b, true
		}
	}
	return Bridge{}, false
}
