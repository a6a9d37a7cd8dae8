package models

// EndReason says why a run stopped
type EndReason int

const (
	EndNone EndReason = iota
	EndFell
	EndFlipped
	EndOutOfFuel
)

func (r EndReason) String() string {
	switch r {
	case EndFell:
		return "fell into the abyss"
	case EndFlipped:
		return "flipped"
	case EndOutOfFuel:
		return "out of fuel"
	}
	return "running"
}

// RunState represents the counters of a single run. It is reset as a whole
// when a run starts.
type RunState struct {
	Score    float64 `json:"score"`    // distance in world units / score divisor
	Distance float64 `json:"distance"` // raw world units scrolled
	Fuel     float64 `json:"fuel"`
	Coins    int     `json:"coins"`
	Level    int     `json:"level"`

	BoostActive bool   `json:"boost_active"`
	BoostUntil  uint64 `json:"boost_until"` // tick at which the boost wears off

	Theme         int     `json:"theme"`
	NextTheme     int     `json:"next_theme"`
	ThemeProgress float64 `json:"theme_progress"` // 0..1 cross-fade from Theme to NextTheme

	Ended  bool      `json:"ended"`
	Reason EndReason `json:"reason"`
}

// NewRunState creates the state of a fresh run with a full tank
func NewRunState(maxFuel float64) RunState {
	return RunState{
		Fuel:  maxFuel,
		Level: 1,
	}
}

// DisplayScore is the score shown to the player.
func (rs *RunState) DisplayScore() int {
	return int(rs.Score)
}
