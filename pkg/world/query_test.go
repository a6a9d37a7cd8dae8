package world

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/terrain"
)

func windowWith(samples ...terrain.Sample) *Window {
	w := NewWindow(config.Default().World, &rampSource{}, nil)
	w.samples = samples
	return w
}

func TestHeightAtInterpolates(t *testing.T) {
	w := windowWith(
		terrain.Sample{X: 0, Height: 100},
		terrain.Sample{X: 20, Height: 140},
		terrain.Sample{X: 40, Height: 90},
	)

	tests := []struct {
		x, want float64
	}{
		{0, 100},
		{20, 140},
		{40, 90},
		{5, 110},
		{10, 120},
		{30, 115},
		{35, 102.5},
	}
	for _, tt := range tests {
		if got := w.HeightAt(tt.x); got != tt.want {
			t.Fatalf("HeightAt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestHeightAtSampleIsExact(t *testing.T) {
	w := windowWith(
		terrain.Sample{X: 0, Height: 0.1},
		terrain.Sample{X: 20, Height: 0.7},
		terrain.Sample{X: 40, Height: 1.0 / 3},
	)
	for _, s := range w.samples {
		if got := w.HeightAt(s.X); got != s.Height {
			t.Fatalf("HeightAt(%v) = %v, want exactly %v", s.X, got, s.Height)
		}
	}
}

func TestSlopeAngleAt(t *testing.T) {
	w := windowWith(
		terrain.Sample{X: 0, Height: 0},
		terrain.Sample{X: 20, Height: 20},
		terrain.Sample{X: 40, Height: 20},
	)
	if got := w.SlopeAngleAt(10); math.Abs(got-math.Pi/4) > 1e-12 {
		t.Fatalf("expected 45 degrees, got %v", got)
	}
	if got := w.SlopeAngleAt(30); got != 0 {
		t.Fatalf("expected flat, got %v", got)
	}
}

func TestQueryOutsideWindowFallsBack(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().World
	w := NewWindow(cfg, &rampSource{}, log.New(&buf, "", 0))
	w.samples = []terrain.Sample{{X: 0, Height: 10}, {X: 20, Height: 30}}

	if got := w.HeightAt(-1); got != cfg.DefaultHeight {
		t.Fatalf("expected default height %v, got %v", cfg.DefaultHeight, got)
	}
	if got := w.SlopeAngleAt(21); got != 0 {
		t.Fatalf("expected flat fallback, got %v", got)
	}
	if !strings.Contains(buf.String(), "outside window") {
		t.Fatalf("expected a logged warning, got %q", buf.String())
	}
}

func TestWheelContact(t *testing.T) {
	w := windowWith(terrain.Sample{X: 0, Height: 100}, terrain.Sample{X: 20, Height: 100})

	tests := []struct {
		name  string
		y     float64
		hit   bool
		depth float64
	}{
		{"above", 80, false, -8},
		{"touching", 88, true, 0},
		{"sunk", 95, true, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, depth, surface := WheelContact(w, mgl64.Vec2{10, tt.y}, 12)
			if hit != tt.hit || depth != tt.depth || surface != 100 {
				t.Fatalf("got hit=%v depth=%v surface=%v", hit, depth, surface)
			}
		})
	}
}
