package world

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// bracket finds the pair of samples around x. ok is false when x is outside
// the buffered range.
func (w *Window) bracket(x float64) (i int, ok bool) {
	n := len(w.samples)
	if n < 2 || x < w.samples[0].X || x > w.samples[n-1].X {
		return 0, false
	}
	// first sample strictly right of x
	j := sort.Search(n, func(k int) bool { return w.samples[k].X > x })
	if j == n {
		j = n - 1
	}
	return j - 1, true
}

// HeightAt interpolates the terrain height at world x.
func (w *Window) HeightAt(x float64) float64 {
	i, ok := w.bracket(x)
	if !ok {
		w.logger.Printf("height query at %.1f outside window [%s]", x, w.span())
		return w.cfg.DefaultHeight
	}
	p1, p2 := w.samples[i], w.samples[i+1]
	if x == p1.X {
		return p1.Height
	}
	if x == p2.X {
		return p2.Height
	}
	t := (x - p1.X) / (p2.X - p1.X)
	return p1.Height + (p2.Height-p1.Height)*t
}

// SlopeAngleAt returns the angle of the terrain tangent at world x.
func (w *Window) SlopeAngleAt(x float64) float64 {
	i, ok := w.bracket(x)
	if !ok {
		w.logger.Printf("slope query at %.1f outside window [%s]", x, w.span())
		return 0
	}
	p1, p2 := w.samples[i], w.samples[i+1]
	return math.Atan2(p2.Height-p1.Height, p2.X-p1.X)
}

func (w *Window) span() string {
	if len(w.samples) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%.1f, %.1f", w.samples[0].X, w.samples[len(w.samples)-1].X)
}

// Ground is the terrain query surface.
type Ground interface {
	HeightAt(x float64) float64
}

// WheelContact tests a wheel of the given radius centered at pos (world
// coordinates) against the ground. surface is the terrain height under the
// wheel and depth how far the wheel bottom sinks below it.
func WheelContact(g Ground, pos mgl64.Vec2, radius float64) (colliding bool, depth, surface float64) {
	surface = g.HeightAt(pos.X())
	depth = pos.Y() + radius - surface
	return depth >= 0, depth, surface
}
