package game

import (
	"log"
	"math/rand"

	"github.com/golangdaddy/hillrun/pkg/background"
	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/models"
	"github.com/golangdaddy/hillrun/pkg/models/profile"
	"github.com/golangdaddy/hillrun/pkg/sim"
	"github.com/golangdaddy/hillrun/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           config.Tuning
	sim           *sim.Simulation
	backgrounds   *background.Generator
	debug         bool
	profile       *profile.PlayerProfile
	profilePath   string // empty disables saving
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance. The seed drives both the terrain and
// the background art, so equal seeds replay the same course.
func NewGame(cfg config.Tuning, seed int64, debug bool, p *profile.PlayerProfile, profilePath string) *Game {
	var opts []sim.Option
	opts = append(opts, sim.WithRand(rand.New(rand.NewSource(seed))))
	if debug {
		opts = append(opts, sim.WithLogger(log.Default()))
	}

	game := &Game{
		cfg:         cfg,
		sim:         sim.New(cfg, opts...),
		backgrounds: background.NewGenerator(int(cfg.World.ViewportWidth), int(cfg.World.ViewportHeight), seed),
		debug:       debug,
		profile:     p,
		profilePath: profilePath,
	}
	if game.profile == nil {
		game.profile = profile.NewProfile()
	}
	game.showTitle()
	return game
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.profile.BestScore, g.startGameplay)
}

// startGameplay transitions to the actual gameplay
func (g *Game) startGameplay() {
	g.currentScreen = NewGameplayScreen(g.sim, g.backgrounds, g.debug, g.showGameOver)
}

func (g *Game) showGameOver(st models.RunState) {
	newBest := g.profile.Record(st)
	if g.profilePath != "" {
		if err := g.profile.SaveToFile(g.profilePath); err != nil {
			log.Printf("Failed to save profile: %v", err)
		}
	}
	g.currentScreen = ui.NewGameOverScreen(st, g.profile.BestScore, newBest, g.startGameplay, g.showTitle)
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.cfg.World.ViewportWidth), int(g.cfg.World.ViewportHeight)
}
