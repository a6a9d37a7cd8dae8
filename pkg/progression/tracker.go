// Package progression derives the level and the background theme from the
// score of a run.
package progression

import (
	"math"

	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/models"
)

// Level is floor(score/levelDistance) + 1.
func Level(score, levelDistance float64) int {
	if score <= 0 {
		return 1
	}
	return int(math.Floor(score/levelDistance)) + 1
}

// ThemeTarget is the theme index the background should be showing at score.
func ThemeTarget(score, changeDistance float64, count int) int {
	if score <= 0 || count <= 0 {
		return 0
	}
	return int(math.Floor(score/changeDistance)) % count
}

type Tracker struct {
	cfg config.Progression
}

func NewTracker(cfg config.Progression) *Tracker {
	return &Tracker{cfg: cfg}
}

// Update recomputes the level and steps the theme cross-fade once.
func (t *Tracker) Update(st *models.RunState) {
	st.Level = Level(st.Score, t.cfg.LevelDistance)

	target := ThemeTarget(st.Score, t.cfg.ThemeChangeDistance, t.cfg.ThemeCount)
	if target == st.Theme {
		st.NextTheme = target
		st.ThemeProgress = 0
		return
	}
	st.NextTheme = target
	st.ThemeProgress += t.cfg.TransitionStep
	if st.ThemeProgress >= 1 {
		st.Theme = target
		st.ThemeProgress = 0
	}
}
