package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golangdaddy/hillrun/pkg/models"
)

// PlayerProfile keeps records across runs
type PlayerProfile struct {
	Created    time.Time `json:"created"`
	LastPlayed time.Time `json:"last_played"`

	// Records
	BestScore    int     `json:"best_score"`
	BestDistance float64 `json:"best_distance"`
	BestLevel    int     `json:"best_level"`

	// Totals
	Runs              int                      `json:"runs"`
	TotalCoins        int                      `json:"total_coins"`
	DistanceTravelled float64                  `json:"distance_travelled"`
	Endings           map[models.EndReason]int `json:"endings"`
}

// NewProfile creates an empty profile
func NewProfile() *PlayerProfile {
	return &PlayerProfile{
		Created:    time.Now(),
		LastPlayed: time.Now(),
		Endings:    make(map[models.EndReason]int),
	}
}

// Record folds a finished run into the profile. It reports whether the run
// set a new best score.
func (p *PlayerProfile) Record(st models.RunState) bool {
	p.LastPlayed = time.Now()
	p.Runs++
	p.TotalCoins += st.Coins
	p.DistanceTravelled += st.Distance
	if p.Endings == nil {
		p.Endings = make(map[models.EndReason]int)
	}
	p.Endings[st.Reason]++

	p.BestDistance = max(p.BestDistance, st.Distance)
	p.BestLevel = max(p.BestLevel, st.Level)
	if st.DisplayScore() > p.BestScore {
		p.BestScore = st.DisplayScore()
		return true
	}
	return false
}

// SaveToFile saves the profile to a JSON file
func (p *PlayerProfile) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile loads a profile from a JSON file
func LoadFromFile(filename string) (*PlayerProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	p := NewProfile()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse profile '%s': %w", filename, err)
	}
	return p, nil
}

// LoadOrCreate returns the saved profile, or a new one when the file does
// not exist yet.
func LoadOrCreate(filename string) (*PlayerProfile, error) {
	p, err := LoadFromFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return NewProfile(), nil
	}
	return p, err
}
