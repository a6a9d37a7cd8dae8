package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrInvalidTuning is returned by Validate when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every constant the simulation reads.
type Tuning struct {
	World       World       `json:"world"`
	Terrain     Terrain     `json:"terrain"`
	Car         Car         `json:"car"`
	Pickups     Pickups     `json:"pickups"`
	Progression Progression `json:"progression"`
}

// World describes the streaming window around the car
type World struct {
	ViewportWidth   float64 `json:"viewport_width" jsonschema:"description=Visible width in world units"`
	ViewportHeight  float64 `json:"viewport_height" jsonschema:"description=Visible height in world units"`
	SegmentWidth    float64 `json:"segment_width" jsonschema:"description=Distance between terrain samples"`
	TrailingMargin  float64 `json:"trailing_margin" jsonschema:"description=Samples kept behind the terrain offset"`
	LeadingMargin   float64 `json:"leading_margin" jsonschema:"description=Samples generated beyond the right edge of the viewport"`
	BridgeClearance float64 `json:"bridge_clearance" jsonschema:"description=Distance behind the offset after which a bridge is dropped"`
	PickupClearance float64 `json:"pickup_clearance" jsonschema:"description=Distance behind the offset after which a pickup is dropped"`
	DefaultHeight   float64 `json:"default_height" jsonschema:"description=Height returned for queries outside the buffered samples"`
}

// Wave is one sine band of the terrain profile.
type Wave struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
}

// Terrain configures height generation and feature placement
type Terrain struct {
	BaseHeight           float64 `json:"base_height"`
	Long                 Wave    `json:"long"`
	Medium               Wave    `json:"medium"`
	Short                Wave    `json:"short"`
	LevelAmplitudeGrowth float64 `json:"level_amplitude_growth" jsonschema:"description=Long wave amplitude growth per level"`
	NoiseSmoothing       float64 `json:"noise_smoothing" jsonschema:"minimum=0,maximum=1"`
	NoiseAmplitude       float64 `json:"noise_amplitude"`

	BridgeMinDistance float64 `json:"bridge_min_distance"`
	BridgeMaxDistance float64 `json:"bridge_max_distance"`
	BridgeLength      float64 `json:"bridge_length"`

	FuelMinDistance  float64 `json:"fuel_min_distance"`
	FuelMaxDistance  float64 `json:"fuel_max_distance"`
	FuelHeightOffset float64 `json:"fuel_height_offset"`

	BoostMinDistance  float64 `json:"boost_min_distance"`
	BoostMaxDistance  float64 `json:"boost_max_distance"`
	BoostHeightOffset float64 `json:"boost_height_offset"`

	CoinChance       float64 `json:"coin_chance" jsonschema:"minimum=0,maximum=1"`
	CoinLevelDecay   float64 `json:"coin_level_decay"`
	CoinHeightOffset float64 `json:"coin_height_offset"`
	CoinHeightJitter float64 `json:"coin_height_jitter"`

	// Scale multiplies every spawn distance range.
	Scale float64 `json:"scale"`
}

// Car holds the body geometry and the empirical integrator constants.
type Car struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	WheelBase   float64 `json:"wheel_base" jsonschema:"description=Distance between front and back wheel centers"`
	WheelRadius float64 `json:"wheel_radius"`

	Acceleration        float64 `json:"acceleration"`
	ReverseAcceleration float64 `json:"reverse_acceleration"`
	ReverseMaxSpeed     float64 `json:"reverse_max_speed" jsonschema:"maximum=0"`
	MaxSpeed            float64 `json:"max_speed"`
	BrakeFactor         float64 `json:"brake_factor"`
	BoostMultiplier     float64 `json:"boost_multiplier"`

	Gravity              float64 `json:"gravity"`
	GroundFriction       float64 `json:"ground_friction"`
	AirResistance        float64 `json:"air_resistance"`
	SlopeCoefficient     float64 `json:"slope_coefficient"`
	RotationSmoothing    float64 `json:"rotation_smoothing"`
	GroundAngularDamping float64 `json:"ground_angular_damping"`
	AirAngularDamping    float64 `json:"air_angular_damping"`
	AirSpinFactor        float64 `json:"air_spin_factor"`
	FuelConsumption      float64 `json:"fuel_consumption"`

	StartX        float64 `json:"start_x"`
	ForwardAnchor float64 `json:"forward_anchor"`
	RearLimit     float64 `json:"rear_limit"`
	ScoreDivisor  float64 `json:"score_divisor"`

	FallMargin      float64 `json:"fall_margin"`
	FlipHalfWidth   float64 `json:"flip_half_width" jsonschema:"description=Half width in radians of the inverted band around pi"`
	StopEpsilon     float64 `json:"stop_epsilon"`
	EffectiveRadius float64 `json:"effective_radius" jsonschema:"description=Radius used for pickup proximity"`
}

// Pickups configures collectible effects and proximity margins
type Pickups struct {
	MaxFuel       float64 `json:"max_fuel"`
	FuelAmount    float64 `json:"fuel_amount"`
	BoostDuration uint64  `json:"boost_duration" jsonschema:"description=Boost length in ticks"`
	FuelMargin    float64 `json:"fuel_margin"`
	CoinMargin    float64 `json:"coin_margin"`
	BoostMargin   float64 `json:"boost_margin"`
}

// Progression configures level and theme derivation from score.
type Progression struct {
	LevelDistance       float64 `json:"level_distance"`
	ThemeChangeDistance float64 `json:"theme_change_distance"`
	ThemeCount          int     `json:"theme_count"`
	TransitionStep      float64 `json:"transition_step"`
}

// Default returns the reference tuning.
func Default() Tuning {
	return Tuning{
		World: World{
			ViewportWidth:   1024,
			ViewportHeight:  600,
			SegmentWidth:    20,
			TrailingMargin:  200,
			LeadingMargin:   200,
			BridgeClearance: 100,
			PickupClearance: 250,
			DefaultHeight:   420,
		},
		Terrain: Terrain{
			BaseHeight:           420,
			Long:                 Wave{Frequency: 0.0025, Amplitude: 70},
			Medium:               Wave{Frequency: 0.011, Amplitude: 28},
			Short:                Wave{Frequency: 0.045, Amplitude: 7},
			LevelAmplitudeGrowth: 0.15,
			NoiseSmoothing:       0.9,
			NoiseAmplitude:       30,
			BridgeMinDistance:    1500,
			BridgeMaxDistance:    3000,
			BridgeLength:         360,
			FuelMinDistance:      1200,
			FuelMaxDistance:      2000,
			FuelHeightOffset:     40,
			BoostMinDistance:     2600,
			BoostMaxDistance:     4200,
			BoostHeightOffset:    30,
			CoinChance:           0.06,
			CoinLevelDecay:       0.05,
			CoinHeightOffset:     30,
			CoinHeightJitter:     50,
			Scale:                1,
		},
		Car: Car{
			Width:                80,
			Height:               26,
			WheelBase:            56,
			WheelRadius:          12,
			Acceleration:         0.2,
			ReverseAcceleration:  0.1,
			ReverseMaxSpeed:      -3,
			MaxSpeed:             10,
			BrakeFactor:          0.9,
			BoostMultiplier:      1.5,
			Gravity:              0.5,
			GroundFriction:       0.98,
			AirResistance:        0.995,
			SlopeCoefficient:     0.35,
			RotationSmoothing:    0.1,
			GroundAngularDamping: 0.8,
			AirAngularDamping:    0.98,
			AirSpinFactor:        0.0004,
			FuelConsumption:      0.08,
			StartX:               150,
			ForwardAnchor:        340,
			RearLimit:            60,
			ScoreDivisor:         10,
			FallMargin:           400,
			FlipHalfWidth:        0.3 * math.Pi,
			StopEpsilon:          0.1,
			EffectiveRadius:      30,
		},
		Pickups: Pickups{
			MaxFuel:       100,
			FuelAmount:    30,
			BoostDuration: 180,
			FuelMargin:    20,
			CoinMargin:    15,
			BoostMargin:   40,
		},
		Progression: Progression{
			LevelDistance:       500,
			ThemeChangeDistance: 1000,
			ThemeCount:          4,
			TransitionStep:      0.01,
		},
	}
}

// Validate reports the first out-of-range value.
func (t Tuning) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{t.World.ViewportWidth > 0, "world.viewport_width must be positive"},
		{t.World.ViewportHeight > 0, "world.viewport_height must be positive"},
		{t.World.SegmentWidth > 0, "world.segment_width must be positive"},
		{t.World.TrailingMargin >= 0 && t.World.LeadingMargin >= 0, "world margins must not be negative"},
		{t.World.PickupClearance >= t.World.BridgeClearance, "world.pickup_clearance must not be smaller than bridge_clearance"},
		{t.Terrain.NoiseSmoothing >= 0 && t.Terrain.NoiseSmoothing <= 1, "terrain.noise_smoothing must be in [0,1]"},
		{t.Terrain.BridgeMinDistance > 0 && t.Terrain.BridgeMinDistance <= t.Terrain.BridgeMaxDistance, "terrain bridge distance range is invalid"},
		{t.Terrain.FuelMinDistance > 0 && t.Terrain.FuelMinDistance <= t.Terrain.FuelMaxDistance, "terrain fuel distance range is invalid"},
		{t.Terrain.BoostMinDistance > 0 && t.Terrain.BoostMinDistance <= t.Terrain.BoostMaxDistance, "terrain boost distance range is invalid"},
		{t.Terrain.CoinChance >= 0 && t.Terrain.CoinChance <= 1, "terrain.coin_chance must be in [0,1]"},
		{t.Terrain.Scale > 0, "terrain.scale must be positive"},
		{t.Car.WheelRadius > 0, "car.wheel_radius must be positive"},
		{t.Car.MaxSpeed > 0, "car.max_speed must be positive"},
		{t.Car.ReverseMaxSpeed <= 0, "car.reverse_max_speed must not be positive"},
		{t.Car.ScoreDivisor > 0, "car.score_divisor must be positive"},
		{t.Car.RearLimit < t.Car.ForwardAnchor, "car.rear_limit must be left of forward_anchor"},
		{t.Car.StartX >= t.Car.RearLimit && t.Car.StartX <= t.Car.ForwardAnchor, "car.start_x must lie inside the anchor band"},
		{t.Pickups.MaxFuel > 0, "pickups.max_fuel must be positive"},
		{t.Progression.LevelDistance > 0, "progression.level_distance must be positive"},
		{t.Progression.ThemeChangeDistance > 0, "progression.theme_change_distance must be positive"},
		{t.Progression.ThemeCount > 0, "progression.theme_count must be positive"},
		{t.Progression.TransitionStep > 0, "progression.transition_step must be positive"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidTuning, c.what)
		}
	}
	return nil
}

// Load reads a tuning file on top of Default, so a file only needs the
// fields it overrides.
func Load(filename string) (Tuning, error) {
	t := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file '%s': %w", filename, err)
	}

	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Save writes the tuning as indented JSON
func (t Tuning) Save(filename string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}
