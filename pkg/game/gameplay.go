package game

import (
	"log"

	"github.com/golangdaddy/hillrun/pkg/background"
	"github.com/golangdaddy/hillrun/pkg/models"
	"github.com/golangdaddy/hillrun/pkg/pickup"
	"github.com/golangdaddy/hillrun/pkg/sim"
	"github.com/golangdaddy/hillrun/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MPHPerUnitPerTick is the conversion factor from world units per tick to MPH.
// At 60 ticks per second the top speed of 10 units/tick reads 125 MPH.
const MPHPerUnitPerTick = 12.5

// endDelay is how many frames the crash stays on screen before the summary.
const endDelay = 60

// floatingLabel is the short text shown where a pickup was collected.
type floatingLabel struct {
	text string
	kind pickup.Kind
	x, y float64 // world position
	ttl  int
}

const labelLife = 45

// GameplayScreen drives one simulation and draws it.
type GameplayScreen struct {
	sim          *sim.Simulation
	backgrounds  *background.Generator
	carSprite    *ebiten.Image
	screenWidth  int
	screenHeight int
	debug        bool

	labels    []floatingLabel
	endFrames int
	onGameEnd func(models.RunState) // called once the run is over
}

// NewGameplayScreen starts a fresh run on s.
func NewGameplayScreen(s *sim.Simulation, backgrounds *background.Generator, debug bool, onGameEnd func(models.RunState)) *GameplayScreen {
	cfg := s.Tuning()
	gs := &GameplayScreen{
		sim:          s,
		backgrounds:  backgrounds,
		carSprite:    newCarSprite(cfg.Car.Width, cfg.Car.Height),
		screenWidth:  int(cfg.World.ViewportWidth),
		screenHeight: int(cfg.World.ViewportHeight),
		debug:        debug,
		onGameEnd:    onGameEnd,
	}

	s.Start(float64(gs.screenWidth))
	log.Printf("Run started (viewport %dx%d)", gs.screenWidth, gs.screenHeight)
	return gs
}

// readInput maps the held keys onto the three controls.
func readInput() vehicle.Input {
	return vehicle.Input{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Backward: ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Brake: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyS) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}

// Update handles gameplay logic
func (gs *GameplayScreen) Update() error {
	gs.ageLabels()

	st := gs.sim.State()
	if st.Ended {
		gs.endFrames++
		if gs.endFrames >= endDelay && gs.onGameEnd != nil {
			gs.onGameEnd(*st)
			gs.onGameEnd = nil
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		gs.debug = !gs.debug
	}

	result := gs.sim.Tick(readInput())
	for _, ev := range result.Events {
		gs.labels = append(gs.labels, floatingLabel{
			text: labelText(ev.Kind),
			kind: ev.Kind,
			x:    ev.X,
			y:    ev.Y,
			ttl:  labelLife,
		})
	}

	if !result.Continuing {
		log.Printf("Run ended: %s (score %d, coins %d, level %d)",
			result.Reason, st.DisplayScore(), st.Coins, st.Level)
	}
	return nil
}

func (gs *GameplayScreen) ageLabels() {
	kept := gs.labels[:0]
	for _, l := range gs.labels {
		l.ttl--
		if l.ttl > 0 {
			kept = append(kept, l)
		}
	}
	gs.labels = kept
}

func labelText(k pickup.Kind) string {
	switch k {
	case pickup.KindFuel:
		return "+FUEL"
	case pickup.KindBoost:
		return "BOOST!"
	default:
		return "+1"
	}
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	st := gs.sim.State()
	gs.backgrounds.Draw(screen, st.Theme, st.NextTheme, st.ThemeProgress, gs.sim.Offset())

	gs.drawTerrain(screen)
	gs.drawBridges(screen)
	gs.drawPickups(screen)
	gs.drawCar(screen)
	gs.drawLabels(screen)

	gs.drawUI(screen)
	if gs.debug {
		gs.drawDebug(screen)
	}
}
