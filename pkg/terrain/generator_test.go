package terrain

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/pickup"
)

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// run generates n samples from origin and collects every bridge and pickup.
func run(g *Generator, cfg config.World, n, level int) ([]Sample, []Bridge, []pickup.Collectible) {
	var (
		samples []Sample
		bridges []Bridge
		items   []pickup.Collectible
	)
	for i := range n {
		out := g.Next(float64(i)*cfg.SegmentWidth, i, level, bridges)
		samples = append(samples, out.Sample)
		if out.Bridge != nil {
			bridges = append(bridges, *out.Bridge)
		}
		items = append(items, out.Pickups...)
	}
	return samples, bridges, items
}

func TestBridgeSpacingNeverViolated(t *testing.T) {
	cfg := config.Default()
	minGap := cfg.Terrain.BridgeMinDistance * cfg.Terrain.Scale

	for seed := int64(1); seed <= 25; seed++ {
		g := NewGenerator(cfg.Terrain, rand.New(rand.NewSource(seed)))
		_, bridges, _ := run(g, cfg.World, 5000, 1)
		if len(bridges) < 2 {
			t.Fatalf("seed %d: expected several bridges over 100k units, got %d", seed, len(bridges))
		}
		if bridges[0].StartX < minGap {
			t.Fatalf("seed %d: first bridge at %v is closer than %v to the origin", seed, bridges[0].StartX, minGap)
		}
		for i := 1; i < len(bridges); i++ {
			gap := bridges[i].StartX - bridges[i-1].EndX
			if gap < minGap {
				t.Fatalf("seed %d: bridge %d starts %v after the previous one, want >= %v", seed, i, gap, minGap)
			}
		}
	}
}

func TestBridgeSamplesAreFlat(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(cfg.Terrain, rand.New(rand.NewSource(7)))
	samples, bridges, _ := run(g, cfg.World, 3000, 1)

	for _, b := range bridges {
		if b.EndX-b.StartX != cfg.Terrain.BridgeLength {
			t.Fatalf("bridge length %v, want %v", b.EndX-b.StartX, cfg.Terrain.BridgeLength)
		}
	}
	for _, s := range samples {
		for _, b := range bridges {
			if !b.Contains(s.X) {
				continue
			}
			if !s.OnBridge {
				t.Fatalf("sample at %v lies on a bridge but is not flagged", s.X)
			}
			if s.Height != b.SurfaceY {
				t.Fatalf("sample at %v has height %v, want bridge surface %v", s.X, s.Height, b.SurfaceY)
			}
		}
	}
}

func TestFuelAndBoostSpacing(t *testing.T) {
	cfg := config.Default()
	for seed := int64(1); seed <= 10; seed++ {
		g := NewGenerator(cfg.Terrain, rand.New(rand.NewSource(seed)))
		_, _, items := run(g, cfg.World, 5000, 1)

		last := map[pickup.Kind]float64{pickup.KindFuel: 0, pickup.KindBoost: 0}
		bounds := map[pickup.Kind][2]float64{
			pickup.KindFuel:  {cfg.Terrain.FuelMinDistance, cfg.Terrain.FuelMaxDistance},
			pickup.KindBoost: {cfg.Terrain.BoostMinDistance, cfg.Terrain.BoostMaxDistance},
		}
		for _, it := range items {
			b, ok := bounds[it.Kind]
			if !ok {
				continue
			}
			gap := it.X - last[it.Kind]
			// the sample grid can overshoot the drawn gap by at most one segment
			if gap < b[0] || gap > b[1]+cfg.World.SegmentWidth {
				t.Fatalf("seed %d: %s spaced %v, want within [%v, %v]", seed, it.Kind, gap, b[0], b[1]+cfg.World.SegmentWidth)
			}
			last[it.Kind] = it.X
		}
	}
}

func TestPickupsSitAboveTerrain(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(cfg.Terrain, rand.New(rand.NewSource(3)))

	var bridges []Bridge
	for i := range 4000 {
		x := float64(i) * cfg.World.SegmentWidth
		out := g.Next(x, i, 1, bridges)
		if out.Bridge != nil {
			bridges = append(bridges, *out.Bridge)
		}
		for _, it := range out.Pickups {
			if it.Y >= out.Sample.Height {
				t.Fatalf("%s at %v placed at y=%v, not above terrain %v", it.Kind, x, it.Y, out.Sample.Height)
			}
		}
	}
}

func TestCoinChanceDecaysWithLevel(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(cfg.Terrain, constRand(0.5))

	prev := g.CoinChance(1)
	for level := 2; level <= 30; level++ {
		c := g.CoinChance(level)
		if c > prev {
			t.Fatalf("coin chance rose from %v to %v at level %d", prev, c, level)
		}
		if c < 0 {
			t.Fatalf("coin chance negative at level %d: %v", level, c)
		}
		prev = c
	}
	if g.CoinChance(20) != 0 {
		t.Fatalf("expected no coins at level 20, got %v", g.CoinChance(20))
	}
}

func TestLevelGrowsLongWave(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(cfg.Terrain, constRand(0.5))

	// a quarter period of the long wave, where its sine is 1
	x := 1 / cfg.Terrain.Long.Frequency * 3.141592653589793 / 2
	base := g.WaveHeight(x, 1) - cfg.Terrain.BaseHeight
	harder := g.WaveHeight(x, 3) - cfg.Terrain.BaseHeight
	want := cfg.Terrain.Long.Amplitude * 2 * cfg.Terrain.LevelAmplitudeGrowth
	if diff := harder - base; diff < want-1e-9 || diff > want+1e-9 {
		t.Fatalf("level 3 should add %v to the long wave crest, got %v", want, diff)
	}
}

func TestNoiseIsSmoothed(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Long.Amplitude = 0
	cfg.Terrain.Medium.Amplitude = 0
	cfg.Terrain.Short.Amplitude = 0
	cfg.Terrain.CoinChance = 0
	g := NewGenerator(cfg.Terrain, rand.New(rand.NewSource(11)))

	maxStep := cfg.Terrain.NoiseAmplitude * (1 - cfg.Terrain.NoiseSmoothing)
	samples, _, _ := run(g, cfg.World, 2000, 1)
	for i := 1; i < len(samples); i++ {
		if samples[i].OnBridge || samples[i-1].OnBridge {
			continue
		}
		step := samples[i].Height - samples[i-1].Height
		if step > maxStep+1e-9 || step < -maxStep-1e-9 {
			t.Fatalf("noise jumped %v between samples, filter bound is %v", step, maxStep)
		}
	}
}

func TestResetRestartsCursors(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(cfg.Terrain, constRand(0))

	g.Reset(10000)
	out := g.Next(10000+cfg.Terrain.BridgeMinDistance-cfg.World.SegmentWidth, 0, 1, nil)
	if out.Bridge != nil {
		t.Fatal("bridge spawned before the minimum distance from the reset origin")
	}
	out = g.Next(10000+cfg.Terrain.BridgeMinDistance, 1, 1, nil)
	if out.Bridge == nil {
		t.Fatal("expected a bridge exactly at the minimum distance when the draw is 0")
	}
}
