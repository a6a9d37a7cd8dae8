package game

import (
	"image"
	"image/color"
	"math"

	"github.com/golangdaddy/hillrun/pkg/background"
	"github.com/golangdaddy/hillrun/pkg/pickup"
	"github.com/golangdaddy/hillrun/pkg/terrain"
	"github.com/golangdaddy/hillrun/pkg/ui"
	"github.com/golangdaddy/hillrun/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage so triangle edges
	// never sample outside the white area.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var (
	woodDeck   = color.RGBA{139, 94, 60, 255}
	woodPost   = color.RGBA{95, 62, 38, 255}
	metalDeck  = color.RGBA{130, 140, 150, 255}
	metalPost  = color.RGBA{80, 88, 98, 255}
	fuelColor  = color.RGBA{220, 40, 40, 255}
	coinColor  = color.RGBA{255, 205, 40, 255}
	boostColor = color.RGBA{60, 220, 255, 255}
)

// groundColors blends the ground palette of the current and next theme.
func (gs *GameplayScreen) groundColors() (ground, grass color.RGBA) {
	st := gs.sim.State()
	cur, next := background.ThemeAt(st.Theme), background.ThemeAt(st.NextTheme)
	return background.Blend(cur.Ground, next.Ground, st.ThemeProgress),
		background.Blend(cur.Grass, next.Grass, st.ThemeProgress)
}

// drawTerrain fills every segment between two samples down to the bottom
// of the screen. Segments under a bridge stay open.
func (gs *GameplayScreen) drawTerrain(screen *ebiten.Image) {
	samples := gs.sim.Window().Samples()
	offset := gs.sim.Offset()
	ground, grass := gs.groundColors()

	r, g, b := float32(ground.R)/255, float32(ground.G)/255, float32(ground.B)/255
	bottom := float32(gs.screenHeight)
	right := float32(gs.screenWidth)

	vertices := make([]ebiten.Vertex, 0, len(samples)*4)
	indices := make([]uint16, 0, len(samples)*6)
	vertex := func(x, y float32) ebiten.Vertex {
		return ebiten.Vertex{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1}
	}

	for i := 1; i < len(samples); i++ {
		p, q := samples[i-1], samples[i]
		if p.OnBridge && q.OnBridge {
			continue
		}
		x0, x1 := float32(p.X-offset), float32(q.X-offset)
		if x1 < 0 || x0 > right {
			continue
		}
		y0, y1 := float32(p.Height), float32(q.Height)

		base := uint16(len(vertices))
		vertices = append(vertices, vertex(x0, y0), vertex(x1, y1), vertex(x0, bottom), vertex(x1, bottom))
		indices = append(indices, base, base+1, base+2, base+1, base+3, base+2)
	}

	if len(indices) > 0 {
		screen.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}

	// grass goes on top of the fill
	for i := 1; i < len(samples); i++ {
		p, q := samples[i-1], samples[i]
		if p.OnBridge && q.OnBridge {
			continue
		}
		vector.StrokeLine(screen, float32(p.X-offset), float32(p.Height), float32(q.X-offset), float32(q.Height), 5, grass, true)
	}
}

func (gs *GameplayScreen) drawBridges(screen *ebiten.Image) {
	offset := gs.sim.Offset()
	bottom := float32(gs.screenHeight)

	for _, br := range gs.sim.Window().Bridges() {
		deck, post := woodDeck, woodPost
		if br.Material == terrain.MaterialMetal {
			deck, post = metalDeck, metalPost
		}

		x0 := float32(br.StartX - offset)
		x1 := float32(br.EndX - offset)
		y := float32(br.SurfaceY)

		for x := x0 + 20; x < x1-10; x += 60 {
			vector.StrokeLine(screen, x, y, x, bottom, 6, post, false)
		}
		if br.Material == terrain.MaterialMetal {
			// truss
			for x := x0; x < x1-30; x += 30 {
				vector.StrokeLine(screen, x, y-18, x+30, y, 2, post, true)
			}
			vector.StrokeLine(screen, x0, y-18, x1, y-18, 3, post, true)
		}
		vector.DrawFilledRect(screen, x0, y, x1-x0, 8, deck, false)
	}
}

func (gs *GameplayScreen) drawPickups(screen *ebiten.Image) {
	offset := gs.sim.Offset()
	pulse := float32(math.Sin(float64(gs.sim.Ticks()) * 0.15))

	for _, c := range gs.sim.Window().Pickups() {
		if c.Collected {
			continue
		}
		x := float32(c.X - offset)
		y := float32(c.Y)
		if x < -40 || x > float32(gs.screenWidth)+40 {
			continue
		}

		switch c.Kind {
		case pickup.KindFuel:
			vector.DrawFilledRect(screen, x-10, y-12, 20, 24, fuelColor, false)
			vector.DrawFilledRect(screen, x-4, y-16, 8, 4, fuelColor, false)
			ui.DrawTextCentered(screen, "F", float64(x), float64(y), 16, color.White)
		case pickup.KindCoin:
			vector.DrawFilledCircle(screen, x, y, 8, coinColor, true)
			vector.StrokeCircle(screen, x, y, 8, 1.5, color.RGBA{180, 130, 20, 255}, true)
		case pickup.KindBoost:
			vector.DrawFilledCircle(screen, x, y, 13+2*pulse, color.RGBA{60, 220, 255, 80}, true)
			vector.DrawFilledCircle(screen, x, y, 10, boostColor, true)
			ui.DrawTextCentered(screen, ">>", float64(x), float64(y), 14, color.RGBA{10, 40, 60, 255})
		}
	}
}

// drawCar draws the body rotated about its center, then the wheels at their
// own projected positions.
func (gs *GameplayScreen) drawCar(screen *ebiten.Image) {
	car := gs.sim.Car()
	w := float64(gs.carSprite.Bounds().Dx())
	h := float64(gs.carSprite.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(car.Rotation)
	op.GeoM.Translate(car.X, car.Y)
	if gs.sim.State().BoostActive {
		op.ColorScale.Scale(1.1, 1.1, 1.3, 1)
	}
	screen.DrawImage(gs.carSprite, op)

	drawWheel(screen, car.Back, car.WheelSpin)
	drawWheel(screen, car.Front, car.WheelSpin)
}

func drawWheel(screen *ebiten.Image, w vehicle.Wheel, spin float64) {
	x, y := float32(w.Pos.X()), float32(w.Pos.Y())
	r := float32(w.Radius)

	vector.DrawFilledCircle(screen, x, y, r, color.RGBA{25, 25, 25, 255}, true)
	vector.DrawFilledCircle(screen, x, y, r*0.45, color.RGBA{170, 170, 180, 255}, true)
	for i := range 2 {
		a := spin + float64(i)*math.Pi/2
		dx := float32(math.Cos(a)) * r * 0.8
		dy := float32(math.Sin(a)) * r * 0.8
		vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, 2, color.RGBA{120, 120, 130, 255}, true)
	}
}

// newCarSprite paints the body once; wheels are drawn separately.
func newCarSprite(width, height float64) *ebiten.Image {
	w, h := float32(width), float32(height)
	img := ebiten.NewImage(int(math.Ceil(width)), int(math.Ceil(height)))

	body := color.RGBA{220, 20, 20, 255}
	roof := color.RGBA{180, 15, 15, 255}
	windshield := color.RGBA{100, 180, 220, 255}

	// cabin
	vector.DrawFilledRect(img, w*0.22, 0, w*0.46, h*0.5, roof, false)
	vector.DrawFilledRect(img, w*0.27, h*0.08, w*0.16, h*0.34, windshield, false)
	vector.DrawFilledRect(img, w*0.47, h*0.08, w*0.16, h*0.34, windshield, false)

	// chassis
	vector.DrawFilledRect(img, 0, h*0.45, w, h*0.55, body, false)
	vector.DrawFilledRect(img, 0, h*0.45, w, h*0.08, color.RGBA{255, 100, 100, 255}, false)

	// lights
	vector.DrawFilledRect(img, w-5, h*0.55, 5, h*0.15, color.RGBA{255, 240, 150, 255}, false)
	vector.DrawFilledRect(img, 0, h*0.55, 4, h*0.15, color.RGBA{120, 0, 0, 255}, false)
	return img
}

func (gs *GameplayScreen) drawLabels(screen *ebiten.Image) {
	offset := gs.sim.Offset()
	for _, l := range gs.labels {
		clr := coinColor
		switch l.kind {
		case pickup.KindFuel:
			clr = fuelColor
		case pickup.KindBoost:
			clr = boostColor
		}
		age := float64(labelLife - l.ttl)
		fade := color.NRGBA{clr.R, clr.G, clr.B, uint8(255 * l.ttl / labelLife)}
		ui.DrawTextCentered(screen, l.text, l.x-offset, l.y-20-age, 20, fade)
	}
}
