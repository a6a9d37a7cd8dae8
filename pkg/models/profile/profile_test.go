package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/hillrun/pkg/models"
)

func TestRecord(t *testing.T) {
	p := NewProfile()

	first := models.RunState{Score: 120.7, Distance: 1207, Coins: 3, Level: 1, Reason: models.EndFlipped}
	if !p.Record(first) {
		t.Fatal("first run should set the best score")
	}

	second := models.RunState{Score: 80, Distance: 800, Coins: 5, Level: 2, Reason: models.EndOutOfFuel}
	if p.Record(second) {
		t.Fatal("a lower score should not be a new best")
	}

	if p.Runs != 2 || p.TotalCoins != 8 {
		t.Fatalf("unexpected totals: runs %d coins %d", p.Runs, p.TotalCoins)
	}
	if p.BestScore != 120 || p.BestDistance != 1207 || p.BestLevel != 2 {
		t.Fatalf("unexpected records: %+v", p)
	}
	if p.Endings[models.EndFlipped] != 1 || p.Endings[models.EndOutOfFuel] != 1 {
		t.Fatalf("unexpected endings: %v", p.Endings)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	p, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("missing file should give a new profile, got %v", err)
	}
	p.Record(models.RunState{Score: 42, Distance: 420, Coins: 1, Level: 1, Reason: models.EndFell})
	if err := p.SaveToFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.BestScore != 42 || loaded.Runs != 1 || loaded.Endings[models.EndFell] != 1 {
		t.Fatalf("loaded profile differs: %+v", loaded)
	}
}

func TestLoadCorruptProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
