package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning should validate, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero segment", func(c *Tuning) { c.World.SegmentWidth = 0 }},
		{"smoothing above one", func(c *Tuning) { c.Terrain.NoiseSmoothing = 1.5 }},
		{"inverted bridge range", func(c *Tuning) { c.Terrain.BridgeMinDistance = 4000 }},
		{"positive reverse floor", func(c *Tuning) { c.Car.ReverseMaxSpeed = 1 }},
		{"start outside band", func(c *Tuning) { c.Car.StartX = c.Car.ForwardAnchor + 1 }},
		{"pickup clearance below bridge", func(c *Tuning) { c.World.PickupClearance = c.World.BridgeClearance - 1 }},
		{"no themes", func(c *Tuning) { c.Progression.ThemeCount = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("expected ErrInvalidTuning, got %v", err)
			}
		})
	}
}

func TestLoadOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	body := `{"car": {"max_speed": 14}, "pickups": {"fuel_amount": 55}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Car.MaxSpeed != 14 {
		t.Fatalf("expected max_speed 14, got %v", got.Car.MaxSpeed)
	}
	if got.Pickups.FuelAmount != 55 {
		t.Fatalf("expected fuel_amount 55, got %v", got.Pickups.FuelAmount)
	}
	if got.Car.Gravity != Default().Car.Gravity {
		t.Fatalf("gravity should keep its default, got %v", got.Car.Gravity)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"car": {"max_speed": -1}}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("expected ErrInvalidTuning, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	want := Default()
	want.Terrain.BridgeLength = 500
	if err := want.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded tuning differs from saved one:\nwant %+v\ngot  %+v", want, got)
	}
}
