// Package sim owns a single run: the car, the world window and the run
// counters, advanced one tick at a time.
package sim

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/models"
	"github.com/golangdaddy/hillrun/pkg/pickup"
	"github.com/golangdaddy/hillrun/pkg/progression"
	"github.com/golangdaddy/hillrun/pkg/terrain"
	"github.com/golangdaddy/hillrun/pkg/vehicle"
	"github.com/golangdaddy/hillrun/pkg/world"
)

// TickResult is the outcome of one tick.
type TickResult struct {
	Continuing bool
	Reason     models.EndReason
	Events     []pickup.Event
}

// Simulation is the context for one run at a time. Instances share nothing.
type Simulation struct {
	cfg    config.Tuning
	logger *log.Logger

	window   *world.Window
	engine   *vehicle.Engine
	resolver *pickup.Resolver
	tracker  *progression.Tracker

	state  models.RunState
	offset float64
	ticks  uint64
	events []pickup.Event
}

// Option configures a Simulation.
type Option func(*options)

type options struct {
	src    terrain.Source
	rng    terrain.Rand
	logger *log.Logger
}

// WithSource replaces the terrain generator.
func WithSource(src terrain.Source) Option {
	return func(o *options) { o.src = src }
}

// WithRand sets the random source of the default generator.
func WithRand(rng terrain.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithLogger routes diagnostic messages to logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a simulation. Call Start before the first Tick.
func New(cfg config.Tuning, opts ...Option) *Simulation {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}
	if o.src == nil {
		if o.rng == nil {
			o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		o.src = terrain.NewGenerator(cfg.Terrain, o.rng)
	}

	return &Simulation{
		cfg:      cfg,
		logger:   o.logger,
		window:   world.NewWindow(cfg.World, o.src, o.logger),
		engine:   vehicle.NewEngine(cfg.Car),
		resolver: pickup.NewResolver(pickup.DefaultSpecs(cfg.Pickups), cfg.Car.EffectiveRadius),
		tracker:  progression.NewTracker(cfg.Progression),
	}
}

// Start resets every piece of run state and regenerates the terrain for a
// viewport of the given width.
func (s *Simulation) Start(viewportWidth float64) {
	if viewportWidth > 0 {
		s.cfg.World.ViewportWidth = viewportWidth
		s.window = world.NewWindow(s.cfg.World, s.windowSource(), s.logger)
	}

	s.state = models.NewRunState(s.cfg.Pickups.MaxFuel)
	s.offset = 0
	s.ticks = 0
	s.events = nil

	s.window.Reset(s.offset, s.state.Level)
	s.engine.Reset(s.window, s.offset)
	s.logger.Printf("run started: viewport %.0f, %d samples", s.cfg.World.ViewportWidth, len(s.window.Samples()))
}

// Tick advances the run by one step. After the run has ended it returns the
// final result and changes nothing.
func (s *Simulation) Tick(in vehicle.Input) TickResult {
	if s.state.Ended {
		return TickResult{Reason: s.state.Reason}
	}
	s.ticks++

	s.resolver.Expire(s.window.Pickups(), &s.state, s.ticks)

	scroll := s.engine.Step(in, s.window, s.offset, &s.state)
	s.offset += scroll

	s.window.Advance(s.offset, s.state.Level)

	car := s.engine.Car()
	center := car.Center().Add(mgl64.Vec2{s.offset, 0})
	s.events = s.resolver.Resolve(center, s.window.Pickups(), &s.state, s.ticks)

	s.tracker.Update(&s.state)

	if reason := s.engine.Check(&s.state, s.cfg.World.ViewportHeight); reason != models.EndNone {
		s.state.Ended = true
		s.state.Reason = reason
		s.logger.Printf("run ended after %d ticks: %s", s.ticks, reason)
		return TickResult{Reason: reason, Events: s.events}
	}
	return TickResult{Continuing: true, Events: s.events}
}

func (s *Simulation) windowSource() terrain.Source {
	return s.window.Source()
}

// Car is the car pose for rendering.
func (s *Simulation) Car() *vehicle.Car {
	return s.engine.Car()
}

// State is the run counters. The pointer is stable for the life of the simulation.
func (s *Simulation) State() *models.RunState {
	return &s.state
}

// Window is the streamed terrain and entities.
func (s *Simulation) Window() *world.Window {
	return s.window
}

// Offset is the world X of the left screen edge.
func (s *Simulation) Offset() float64 {
	return s.offset
}

// Ticks counts ticks since Start.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Events are the pickups collected during the last tick.
func (s *Simulation) Events() []pickup.Event {
	return s.events
}

// BoostRemaining is the fraction of the active boost left.
func (s *Simulation) BoostRemaining() float64 {
	return pickup.BoostRemaining(&s.state, s.ticks, s.cfg.Pickups.BoostDuration)
}

// Tuning returns the constants in use.
func (s *Simulation) Tuning() config.Tuning {
	return s.cfg
}
