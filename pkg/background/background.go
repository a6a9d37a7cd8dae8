package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Theme is the palette of one background.
type Theme struct {
	Name      string
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Hills     color.RGBA
	Ground    color.RGBA
	Grass     color.RGBA
	Stars     bool
}

// Themes cycle as the score grows.
var Themes = []Theme{
	{
		Name:      "Meadow",
		SkyTop:    color.RGBA{90, 160, 230, 255},
		SkyBottom: color.RGBA{190, 225, 250, 255},
		Hills:     color.RGBA{110, 170, 110, 255},
		Ground:    color.RGBA{120, 85, 50, 255},
		Grass:     color.RGBA{60, 150, 50, 255},
	},
	{
		Name:      "Dusk",
		SkyTop:    color.RGBA{70, 50, 120, 255},
		SkyBottom: color.RGBA{245, 150, 90, 255},
		Hills:     color.RGBA{110, 70, 100, 255},
		Ground:    color.RGBA{90, 60, 45, 255},
		Grass:     color.RGBA{110, 120, 50, 255},
	},
	{
		Name:      "Night",
		SkyTop:    color.RGBA{10, 12, 35, 255},
		SkyBottom: color.RGBA{40, 50, 90, 255},
		Hills:     color.RGBA{30, 40, 60, 255},
		Ground:    color.RGBA{45, 40, 40, 255},
		Grass:     color.RGBA{30, 70, 45, 255},
		Stars:     true,
	},
	{
		Name:      "Desert",
		SkyTop:    color.RGBA{100, 170, 220, 255},
		SkyBottom: color.RGBA{250, 220, 170, 255},
		Hills:     color.RGBA{215, 170, 110, 255},
		Ground:    color.RGBA{190, 140, 80, 255},
		Grass:     color.RGBA{225, 190, 120, 255},
	},
}

// ThemeAt wraps index into the theme list.
func ThemeAt(index int) Theme {
	n := len(Themes)
	return Themes[((index%n)+n)%n]
}

// Generator renders and caches one backdrop per theme.
type Generator struct {
	Width  int
	Height int
	seed   int64
	cache  map[int]*ebiten.Image
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int, seed int64) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
		seed:   seed,
		cache:  make(map[int]*ebiten.Image),
	}
}

// Image returns the backdrop for a theme, rendering it on first use.
func (g *Generator) Image(index int) *ebiten.Image {
	n := len(Themes)
	index = ((index % n) + n) % n
	if img, ok := g.cache[index]; ok {
		return img
	}
	img := g.render(Themes[index], rand.New(rand.NewSource(g.seed+int64(index))))
	g.cache[index] = img
	return img
}

// Draw paints the current theme and fades the next one over it.
func (g *Generator) Draw(screen *ebiten.Image, current, next int, progress float64, scroll float64) {
	g.drawLayer(screen, g.Image(current), 1, scroll)
	if progress > 0 && next != current {
		g.drawLayer(screen, g.Image(next), float32(progress), scroll)
	}
}

func (g *Generator) drawLayer(screen, img *ebiten.Image, alpha float32, scroll float64) {
	// hills drift at a tenth of the terrain speed
	shift := math.Mod(scroll*0.1, float64(g.Width))
	for _, x := range []float64{-shift, float64(g.Width) - shift} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		op.ColorScale.ScaleAlpha(alpha)
		screen.DrawImage(img, op)
	}
}

func (g *Generator) render(th Theme, rng *rand.Rand) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)

	// Sky gradient
	for y := 0; y < g.Height; y++ {
		t := float64(y) / float64(g.Height)
		c := lerpColor(th.SkyTop, th.SkyBottom, t)
		for x := 0; x < g.Width; x++ {
			img.Set(x, y, c)
		}
	}

	if th.Stars {
		for i := 0; i < g.Width*g.Height/900; i++ {
			x := rng.Intn(g.Width)
			y := rng.Intn(g.Height / 2)
			shade := uint8(180 + rng.Intn(75))
			img.Set(x, y, color.RGBA{shade, shade, shade, 255})
		}
	}

	// Distant hills. Periods divide the width so the layer tiles seamlessly.
	phase := rng.Float64() * 2 * math.Pi
	base := float64(g.Height) * 0.55
	w := float64(g.Width)
	for x := 0; x < g.Width; x++ {
		fx := float64(x)
		top := base +
			math.Sin(fx/w*2*math.Pi+phase)*30 +
			math.Sin(fx/w*6*math.Pi+phase*2)*12
		for y := int(top); y < g.Height; y++ {
			if y >= 0 {
				img.Set(x, y, th.Hills)
			}
		}
	}

	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// Blend mixes two theme colours for an in-progress cross-fade.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	return lerpColor(a, b, min(1, max(0, t)))
}
