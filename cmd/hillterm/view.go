package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/hillrun/pkg/models/profile"
	"github.com/golangdaddy/hillrun/pkg/pickup"
	"github.com/golangdaddy/hillrun/pkg/sim"
	"github.com/golangdaddy/hillrun/pkg/terrain"
	"github.com/golangdaddy/hillrun/pkg/vehicle"
)

type control int

const (
	ctrlForward control = iota
	ctrlBackward
	ctrlBrake
	controlCount
)

const (
	messageLife = 30
	fuelBarLen  = 10
)

// palette is the terminal rendition of a background theme.
type palette struct {
	grass  tcell.Style
	ground tcell.Style
}

var palettes = []palette{
	{tcell.StyleDefault.Foreground(tcell.ColorGreen), tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)},
	{tcell.StyleDefault.Foreground(tcell.ColorOlive), tcell.StyleDefault.Foreground(tcell.ColorMaroon)},
	{tcell.StyleDefault.Foreground(tcell.ColorDarkGreen), tcell.StyleDefault.Foreground(tcell.ColorDimGray)},
	{tcell.StyleDefault.Foreground(tcell.ColorTan), tcell.StyleDefault.Foreground(tcell.ColorPeru)},
}

var (
	hudStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	carStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	wheelStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	woodStyle  = tcell.StyleDefault.Foreground(tcell.ColorSienna)
	metalStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	fuelStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	coinStyle  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	boostStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	overStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// view maps the simulation onto terminal cells. Terminals only report key
// presses, so a press holds its control for the hold duration and key repeat
// keeps it alive.
type view struct {
	screen tcell.Screen
	sim    *sim.Simulation
	hold   time.Duration

	heldUntil [controlCount]time.Time

	profile     *profile.PlayerProfile
	profilePath string // empty disables saving
	saveErr     error

	message    string
	messageTTL int
}

func newView(screen tcell.Screen, s *sim.Simulation, hold time.Duration, p *profile.PlayerProfile, profilePath string) *view {
	if p == nil {
		p = profile.NewProfile()
	}
	return &view{
		screen:      screen,
		sim:         s,
		hold:        hold,
		profile:     p,
		profilePath: profilePath,
	}
}

func (v *view) restart() {
	v.sim.Start(0)
	v.heldUntil = [controlCount]time.Time{}
	v.message = ""
	v.messageTTL = 0
}

func (v *view) press(c control, now time.Time) {
	v.heldUntil[c] = now.Add(v.hold)
	switch c {
	case ctrlForward:
		v.heldUntil[ctrlBackward] = time.Time{}
	case ctrlBackward:
		v.heldUntil[ctrlForward] = time.Time{}
	}
}

func (v *view) input(now time.Time) vehicle.Input {
	return vehicle.Input{
		Forward:  now.Before(v.heldUntil[ctrlForward]),
		Backward: now.Before(v.heldUntil[ctrlBackward]),
		Brake:    now.Before(v.heldUntil[ctrlBrake]),
	}
}

// handleEvent returns false when the player quits.
func (v *view) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			v.press(ctrlForward, now)
		case tcell.KeyLeft:
			v.press(ctrlBackward, now)
		case tcell.KeyDown:
			v.press(ctrlBrake, now)
		case tcell.KeyEnter:
			if v.sim.State().Ended {
				v.restart()
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'd', 'l':
				v.press(ctrlForward, now)
			case 'a', 'h':
				v.press(ctrlBackward, now)
			case ' ', 's', 'j':
				v.press(ctrlBrake, now)
			case 'r':
				if v.sim.State().Ended {
					v.restart()
				}
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// step runs one tick unless the run is over.
func (v *view) step(now time.Time) {
	if v.messageTTL > 0 {
		v.messageTTL--
	}
	if v.sim.State().Ended {
		return
	}

	result := v.sim.Tick(v.input(now))
	for _, ev := range result.Events {
		v.message = eventText(ev.Kind)
		v.messageTTL = messageLife
	}
	if !result.Continuing {
		v.profile.Record(*v.sim.State())
		if v.profilePath != "" {
			v.saveErr = v.profile.SaveToFile(v.profilePath)
		}
	}
}

func eventText(k pickup.Kind) string {
	switch k {
	case pickup.KindFuel:
		return "+FUEL"
	case pickup.KindBoost:
		return "BOOST!"
	default:
		return "+1 COIN"
	}
}

// grid converts world units to cells. Row 0 holds the HUD and the last row
// the status line.
type grid struct {
	width, height int
	sx, sy        float64
}

func (g grid) col(x float64) int { return int(math.Floor(x / g.sx)) }
func (g grid) row(y float64) int { return 1 + int(math.Floor(y/g.sy)) }

// layout fits the viewport to the current terminal size. It reports false
// when the terminal is too small to play in.
func (v *view) layout() (grid, bool) {
	width, height := v.screen.Size()
	if width < 20 || height < 8 {
		return grid{}, false
	}
	world := v.sim.Tuning().World
	return grid{
		width:  width,
		height: height,
		sx:     world.ViewportWidth / float64(width),
		sy:     world.ViewportHeight / float64(height-2),
	}, true
}

func (v *view) draw() {
	v.screen.Clear()
	g, ok := v.layout()
	if !ok {
		v.drawText(0, 0, "terminal too small", hudStyle)
		v.screen.Show()
		return
	}

	v.drawTerrain(g)
	v.drawPickups(g)
	v.drawCar(g)
	v.drawHUD(g)
	v.screen.Show()
}

func (v *view) set(g grid, col, row int, r rune, style tcell.Style) {
	if col < 0 || col >= g.width || row < 1 || row >= g.height-1 {
		return
	}
	v.screen.SetContent(col, row, r, nil, style)
}

func (v *view) drawText(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(col+i, row, r, nil, style)
	}
}

func bridgeAt(bridges []terrain.Bridge, x float64) *terrain.Bridge {
	for i := range bridges {
		if bridges[i].Contains(x) {
			return &bridges[i]
		}
	}
	return nil
}

func (v *view) drawTerrain(g grid) {
	st := v.sim.State()
	pal := palettes[st.Theme%len(palettes)]
	win := v.sim.Window()
	offset := v.sim.Offset()

	for col := range g.width {
		x := offset + (float64(col)+0.5)*g.sx

		if br := bridgeAt(win.Bridges(), x); br != nil {
			style := woodStyle
			if br.Material == terrain.MaterialMetal {
				style = metalStyle
			}
			row := g.row(br.SurfaceY)
			v.set(g, col, row, '=', style)
			if math.Mod(x-br.StartX, 60) < g.sx {
				for r := row + 1; r < g.height-1; r++ {
					v.set(g, col, r, '|', style)
				}
			}
			continue
		}

		row := g.row(win.HeightAt(x))
		v.set(g, col, row, '▀', pal.grass)
		for r := row + 1; r < g.height-1; r++ {
			v.set(g, col, r, '░', pal.ground)
		}
	}
}

func (v *view) drawPickups(g grid) {
	offset := v.sim.Offset()
	for _, c := range v.sim.Window().Pickups() {
		if c.Collected {
			continue
		}
		col, row := g.col(c.X-offset), g.row(c.Y)
		switch c.Kind {
		case pickup.KindFuel:
			v.set(g, col, row, 'F', fuelStyle)
		case pickup.KindCoin:
			v.set(g, col, row, 'o', coinStyle)
		case pickup.KindBoost:
			v.set(g, col, row, '>', boostStyle)
		}
	}
}

// drawCar traces the body along its rotated axis and marks both wheels.
func (v *view) drawCar(g grid) {
	car := v.sim.Car()
	cfg := v.sim.Tuning().Car
	rot := mgl64.Rotate2D(car.Rotation)
	center := car.Center()

	style := carStyle
	if v.sim.State().BoostActive {
		style = boostStyle
	}

	for dx := -cfg.Width / 2; dx <= cfg.Width/2; dx += g.sx {
		p := center.Add(rot.Mul2x1(mgl64.Vec2{dx, 0}))
		v.set(g, g.col(p.X()), g.row(p.Y()), '█', style)
	}
	roof := center.Add(rot.Mul2x1(mgl64.Vec2{0, -cfg.Height}))
	v.set(g, g.col(roof.X()), g.row(roof.Y()), '▄', style)

	for _, w := range []vehicle.Wheel{car.Back, car.Front} {
		v.set(g, g.col(w.Pos.X()), g.row(w.Pos.Y()), 'o', wheelStyle)
	}
}

func fuelBar(fuel, maxFuel float64) string {
	n := int(fuel / maxFuel * fuelBarLen)
	n = max(0, min(fuelBarLen, n))
	return "[" + strings.Repeat("#", n) + strings.Repeat("-", fuelBarLen-n) + "]"
}

func (v *view) drawHUD(g grid) {
	st := v.sim.State()
	cfg := v.sim.Tuning()

	hud := fmt.Sprintf("SCORE %d  COINS %d  LEVEL %d  FUEL %s", st.DisplayScore(), st.Coins, st.Level,
		fuelBar(st.Fuel, cfg.Pickups.MaxFuel))
	if st.BoostActive {
		hud += fmt.Sprintf("  BOOST %d%%", int(v.sim.BoostRemaining()*100))
	}
	v.drawText(0, 0, hud, hudStyle)

	if v.messageTTL > 0 {
		v.drawText(g.width-len(v.message)-1, 0, v.message, boostStyle)
	}

	status := "arrows or a/d drive, space brakes, q quits"
	style := hudStyle
	if st.Ended {
		status = fmt.Sprintf("GAME OVER: %s  score %d  best %d  r restart  q quit", st.Reason, st.DisplayScore(), v.profile.BestScore)
		style = overStyle
		if v.saveErr != nil {
			status += "  (profile not saved)"
		}
	}
	v.drawText(0, g.height-1, status, style)
}
