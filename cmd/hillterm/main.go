// Command hillterm plays the simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/hillrun/pkg/config"
	"github.com/golangdaddy/hillrun/pkg/models/profile"
	"github.com/golangdaddy/hillrun/pkg/sim"
)

func main() {
	seed := flag.Int64("seed", 0, "terrain seed (0 picks one from the clock)")
	tuningFile := flag.String("tuning", "", "JSON file overriding the default tuning")
	fps := flag.Int("fps", 30, "ticks per second")
	hold := flag.Duration("hold", 250*time.Millisecond, "how long a key press counts as held")
	logFile := flag.String("log", "", "write diagnostics to this file")
	profilePath := flag.String("profile", "hillrun_profile.json", "file keeping best scores (empty disables saving)")
	flag.Parse()

	cfg := config.Default()
	if *tuningFile != "" {
		loaded, err := config.Load(*tuningFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *fps <= 0 {
		*fps = 30
	}

	opts := []sim.Option{sim.WithRand(rand.New(rand.NewSource(*seed)))}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		opts = append(opts, sim.WithLogger(log.New(f, "hillterm ", log.LstdFlags)))
	}

	p := profile.NewProfile()
	if *profilePath != "" {
		loaded, err := profile.LoadOrCreate(*profilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load profile: %v\n", err)
			os.Exit(1)
		}
		p = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	view := newView(screen, sim.New(cfg, opts...), *hold, p, *profilePath)
	view.restart()
	run(screen, view, time.Second/time.Duration(*fps))
}

// run interleaves terminal events with fixed-rate ticks until the player quits.
func run(screen tcell.Screen, v *view, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			v.step(now)
			v.draw()
		}
	}
}
