package main

import (
	"flag"
	"log"
	"time"

	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/game"
	"github.com/golangdaddy/hillrun/pkg/models/profile"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "terrain seed (0 picks one from the clock)")
	tuningFile := flag.String("tuning", "", "JSON file overriding the default tuning")
	debug := flag.Bool("debug", false, "log simulation diagnostics and show the debug overlay")
	profilePath := flag.String("profile", "hillrun_profile.json", "file keeping best scores (empty disables saving)")
	flag.Parse()

	cfg := config.Default()
	if *tuningFile != "" {
		loaded, err := config.Load(*tuningFile)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Hillrun starting (seed %d)", *seed)

	p := profile.NewProfile()
	if *profilePath != "" {
		loaded, err := profile.LoadOrCreate(*profilePath)
		if err != nil {
			log.Printf("Failed to load profile, starting fresh: %v", err)
		} else {
			p = loaded
		}
	}

	ebiten.SetWindowSize(int(cfg.World.ViewportWidth), int(cfg.World.ViewportHeight))
	ebiten.SetWindowTitle("Hillrun")
	if err := ebiten.RunGame(game.NewGame(cfg, *seed, *debug, p, *profilePath)); err != nil {
		log.Fatal(err)
	}
}
