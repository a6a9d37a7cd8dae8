package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/golangdaddy/hillrun/pkg/models"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen shows the final counters of a run.
type GameOverScreen struct {
	state     models.RunState
	best      int
	newBest   bool
	startTime time.Time
	onRestart func()
	onTitle   func()
}

// NewGameOverScreen creates the summary for a finished run. best is the
// highest score recorded, including this run.
func NewGameOverScreen(state models.RunState, best int, newBest bool, onRestart, onTitle func()) *GameOverScreen {
	return &GameOverScreen{
		state:     state,
		best:      best,
		newBest:   newBest,
		startTime: time.Now(),
		onRestart: onRestart,
		onTitle:   onTitle,
	}
}

// Update handles input for the game over screen
func (gs *GameOverScreen) Update() error {
	// ignore keys still held from the crash
	if time.Since(gs.startTime) < 500*time.Millisecond {
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyR):
		if gs.onRestart != nil {
			gs.onRestart()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if gs.onTitle != nil {
			gs.onTitle()
		}
	}
	return nil
}

// Draw renders the run summary
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{25, 15, 20, 255})

	centerX := float64(width) / 2
	y := float64(height) / 4

	DrawTextCentered(screen, "GAME OVER", centerX, y, 72, color.RGBA{255, 90, 70, 255})
	DrawTextCentered(screen, gs.state.Reason.String(), centerX, y+64, 28, color.RGBA{220, 200, 200, 255})

	lines := []string{
		fmt.Sprintf("Score     %d", gs.state.DisplayScore()),
		fmt.Sprintf("Best      %d", gs.best),
		fmt.Sprintf("Coins     %d", gs.state.Coins),
		fmt.Sprintf("Level     %d", gs.state.Level),
		fmt.Sprintf("Distance  %.0f", gs.state.Distance),
	}
	DrawPanel(screen, centerX-170, y+100, 340, float64(len(lines))*32+24)
	for i, line := range lines {
		DrawTextAt(screen, line, centerX-140, y+128+float64(i)*32, 24, color.RGBA{230, 230, 240, 255})
	}

	elapsed := time.Since(gs.startTime).Seconds()
	if gs.newBest {
		DrawTextCentered(screen, "NEW BEST!", centerX+260, y+128, 28, color.RGBA{255, 205, 40, 255})
	}
	if int(elapsed*2)%2 == 0 {
		DrawTextCentered(screen, "ENTER to drive again   ESC for title", centerX, float64(height)-60, 22, color.RGBA{150, 200, 255, 255})
	}
}
