package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawGauge draws a horizontal bar filled to frac (clamped to [0,1]) with a
// thin border, the way the speedometer gauge looks.
func DrawGauge(screen *ebiten.Image, x, y, width, height, frac float64, fill color.Color) {
	frac = max(0, min(1, frac))

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)
	if frac > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*frac), float32(height), fill, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}

// DrawPanel draws the semi-transparent boxes behind HUD text.
func DrawPanel(screen *ebiten.Image, x, y, width, height float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{100, 100, 120, 255}, false)
}

// SpeedColor goes green, yellow then red as frac approaches 1.
func SpeedColor(frac float64) color.RGBA {
	frac = max(0, min(1, frac))
	if frac < 0.5 {
		ratio := frac / 0.5
		return color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	}
	ratio := (frac - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
}
