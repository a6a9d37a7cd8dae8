package game

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/hillrun/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawUI renders the game UI overlay
func (gs *GameplayScreen) drawUI(screen *ebiten.Image) {
	gs.drawSpeedometer(screen)
	gs.drawFuel(screen)
	gs.drawCounters(screen)
}

// drawSpeedometer draws a speedometer displaying current speed in MPH
func (gs *GameplayScreen) drawSpeedometer(screen *ebiten.Image) {
	cfg := gs.sim.Tuning().Car
	speedMPH := gs.sim.Car().Speed() * MPHPerUnitPerTick
	topMPH := cfg.MaxSpeed * cfg.BoostMultiplier * MPHPerUnitPerTick

	x, y := 20.0, 20.0
	width, height := 180.0, 120.0
	ui.DrawPanel(screen, x, y, width, height)

	frac := speedMPH / topMPH
	ui.DrawTextCentered(screen, fmt.Sprintf("%.0f", speedMPH), x+width/2, y+45, 48, ui.SpeedColor(frac))
	ui.DrawTextCentered(screen, "MPH", x+width/2, y+80, 24, color.RGBA{200, 200, 200, 255})

	ui.DrawGauge(screen, x+10, y+height-25, width-20, 15, frac, ui.SpeedColor(frac))
}

// drawFuel draws the tank below the speedometer, and the boost bar while a
// boost is running.
func (gs *GameplayScreen) drawFuel(screen *ebiten.Image) {
	st := gs.sim.State()
	frac := st.Fuel / gs.sim.Tuning().Pickups.MaxFuel

	fill := color.RGBA{240, 180, 40, 255}
	if frac < 0.25 {
		fill = color.RGBA{230, 50, 40, 255}
	}

	x, y := 20.0, 150.0
	ui.DrawPanel(screen, x, y, 180, 60)
	ui.DrawTextAt(screen, "FUEL", x+10, y+14, 16, color.RGBA{220, 220, 220, 255})
	ui.DrawGauge(screen, x+60, y+7, 110, 14, frac, fill)

	if st.BoostActive {
		ui.DrawTextAt(screen, "BOOST", x+10, y+42, 16, boostColor)
		ui.DrawGauge(screen, x+60, y+35, 110, 14, gs.sim.BoostRemaining(), boostColor)
	}
}

// drawCounters shows score, coins and level in the top right corner.
func (gs *GameplayScreen) drawCounters(screen *ebiten.Image) {
	st := gs.sim.State()
	width := 200.0
	x := float64(gs.screenWidth) - width - 20
	y := 20.0

	ui.DrawPanel(screen, x, y, width, 100)
	ui.DrawTextAt(screen, fmt.Sprintf("SCORE  %d", st.DisplayScore()), x+14, y+22, 24, color.White)
	ui.DrawTextAt(screen, fmt.Sprintf("COINS  %d", st.Coins), x+14, y+52, 20, coinColor)
	ui.DrawTextAt(screen, fmt.Sprintf("LEVEL  %d", st.Level), x+14, y+78, 20, color.RGBA{180, 220, 255, 255})
}

func (gs *GameplayScreen) drawDebug(screen *ebiten.Image) {
	car := gs.sim.Car()
	w := gs.sim.Window()
	msg := fmt.Sprintf("TPS %.0f  tick %d  offset %.0f\nsamples %d  bridges %d  pickups %d\nvx %.2f vy %.2f rot %.2f ground %v",
		ebiten.ActualTPS(), gs.sim.Ticks(), gs.sim.Offset(),
		len(w.Samples()), len(w.Bridges()), len(w.Pickups()),
		car.VelocityX, car.VelocityY, car.Rotation, car.OnGround)
	ebitenutil.DebugPrintAt(screen, msg, 10, gs.screenHeight-50)
}
