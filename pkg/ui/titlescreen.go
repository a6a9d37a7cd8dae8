package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	bestScore      int
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen. A zero bestScore is not shown.
func NewTitleScreen(bestScore int, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		bestScore:      bestScore,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	drawRollingHills(screen, width, height, elapsed)

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title
	pulse := 1.0 + 0.08*math.Sin(elapsed*2.0)
	brightness := min(1.0, 0.85+0.15*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawTextCentered(screen, "HILLRUN", centerX, centerY, 96*pulse, titleColor)
	DrawTextCentered(screen, "Drive as far as the fuel lasts", centerX, centerY+80, 28, color.RGBA{180, 180, 200, 255})

	controls := []string{
		"RIGHT / D   accelerate",
		"LEFT / A    reverse",
		"SPACE / S   brake",
	}
	for i, line := range controls {
		DrawTextCentered(screen, line, centerX, centerY+140+float64(i)*26, 20, color.RGBA{140, 160, 190, 255})
	}

	if ts.bestScore > 0 {
		DrawTextCentered(screen, fmt.Sprintf("Best %d", ts.bestScore), centerX, float64(height)-120, 22, color.RGBA{255, 205, 40, 255})
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawTextCentered(screen, "Press ENTER to Start", centerX, float64(height)-80, 24, color.RGBA{150, 200, 255, 255})
	}
}

// drawRollingHills draws a slowly scrolling silhouette along the bottom.
func drawRollingHills(screen *ebiten.Image, width, height int, elapsed float64) {
	base := float64(height) * 0.8
	hill := color.RGBA{30, 60, 45, 255}
	for x := 0; x <= width; x += 4 {
		fx := float64(x) + elapsed*40
		y := base + math.Sin(fx*0.006)*30 + math.Sin(fx*0.021)*10
		vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(height), 4, hill, false)
	}
}
