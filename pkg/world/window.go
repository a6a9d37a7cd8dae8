package world

import (
	"io"
	"log"
	"math"

	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/pickup"
	"github.com/golangdaddy/hillrun/pkg/terrain"
)

// Window is the bounded slice of the world kept around the car. It owns the
// terrain samples, the bridges and every collectible.
type Window struct {
	cfg    config.World
	src    terrain.Source
	logger *log.Logger

	offset    float64
	nextIndex int

	samples []terrain.Sample
	bridges []terrain.Bridge
	pickups []pickup.Collectible
}

// NewWindow creates a window that pulls new terrain from src. A nil logger
// discards fallback warnings.
func NewWindow(cfg config.World, src terrain.Source, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Window{
		cfg:    cfg,
		src:    src,
		logger: logger,
	}
}

// Reset drops everything and regenerates the initial window at offset.
func (w *Window) Reset(offset float64, level int) {
	w.offset = offset
	w.samples = w.samples[:0]
	w.bridges = w.bridges[:0]
	w.pickups = w.pickups[:0]

	w.src.Reset(offset)
	w.nextIndex = math.MinInt
	w.extend(level)
}

// Advance scrolls the window to offset: stale samples and entities behind the
// trailing edge are dropped and new terrain is generated ahead.
func (w *Window) Advance(offset float64, level int) {
	w.offset = offset
	w.prune()
	w.extend(level)
}

func (w *Window) trailingEdge() float64 {
	return w.offset - w.cfg.TrailingMargin
}

func (w *Window) leadingEdge() float64 {
	return w.offset + w.cfg.ViewportWidth + w.cfg.LeadingMargin
}

func (w *Window) prune() {
	edge := w.trailingEdge()
	drop := 0
	for drop < len(w.samples) && w.samples[drop].X < edge {
		drop++
	}
	if drop > 0 {
		w.samples = append(w.samples[:0], w.samples[drop:]...)
	}

	bridgeCut := w.offset - w.cfg.BridgeClearance
	bridges := w.bridges[:0]
	for _, b := range w.bridges {
		if b.EndX >= bridgeCut {
			bridges = append(bridges, b)
		}
	}
	w.bridges = bridges

	pickupCut := w.offset - w.cfg.PickupClearance
	items := w.pickups[:0]
	for _, it := range w.pickups {
		if !it.Collected && it.X >= pickupCut {
			items = append(items, it)
		}
	}
	w.pickups = items
}

func (w *Window) extend(level int) {
	// a jump past the whole buffer restarts at the trailing edge
	if first := int(math.Ceil(w.trailingEdge() / w.cfg.SegmentWidth)); w.nextIndex < first {
		w.nextIndex = first
	}
	lead := w.leadingEdge()
	for len(w.samples) == 0 || w.samples[len(w.samples)-1].X < lead {
		x := float64(w.nextIndex) * w.cfg.SegmentWidth
		out := w.src.Next(x, w.nextIndex, level, w.bridges)
		w.nextIndex++

		w.samples = append(w.samples, out.Sample)
		if out.Bridge != nil {
			w.bridges = append(w.bridges, *out.Bridge)
		}
		w.pickups = append(w.pickups, out.Pickups...)
	}
}

// Offset is the world X of the left edge of the screen.
func (w *Window) Offset() float64 {
	return w.offset
}

// Source is the terrain generator feeding the window.
func (w *Window) Source() terrain.Source {
	return w.src
}

// Samples returns the buffered terrain, ascending by X. Callers must not modify it.
func (w *Window) Samples() []terrain.Sample {
	return w.samples
}

// Bridges returns the bridges still in range.
func (w *Window) Bridges() []terrain.Bridge {
	return w.bridges
}

// Pickups returns the live collectibles. The slice is shared so the resolver
// can mark items collected in place.
func (w *Window) Pickups() []pickup.Collectible {
	return w.pickups
}

// AddPickup places a collectible directly into the window.
func (w *Window) AddPickup(c pickup.Collectible) {
	w.pickups = append(w.pickups, c)
}
