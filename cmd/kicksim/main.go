// Command kicksim takes scripted penalty kicks without opening a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/shared/leveldata"
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/caarlos0/env/v11"
)

// envPrefix matches the game client's overrides.
const envPrefix = "PENALTY_"

func main() {
	if err := run(); err != nil {
		log.Fatalf("kicksim: %v", err)
	}
}

func run() error {
	assetsDir := flag.String("assets", "assets", "Directory holding levels/*.tmx")
	pitchName := flag.String("pitch", "", "Pitch to load (default: first by name)")
	angle := flag.Float64("angle", 0, "Aim in degrees, positive to the right")
	height := flag.Float64("height", 1.5, "Target marker height")
	kicks := flag.Int("kicks", 1, "Number of kicks to take")
	sweep := flag.Float64("sweep", 0, "Degrees added to the aim after each kick")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (ticks per second)")
	maxTicks := flag.Int("maxticks", 3600, "Stop after this many ticks (0 = no limit)")
	realtime := flag.Bool("realtime", false, "Pace ticks on the wall clock")
	verbose := flag.Bool("v", false, "Log controller transitions")
	flag.Parse()

	kcfg := kick.DefaultConfig()
	if err := env.ParseWithOptions(&kcfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if *verbose {
		kcfg.Debugf = log.Printf
	}

	pitches, names, err := leveldata.LoadAllPitches(os.DirFS(*assetsDir), "levels")
	if err != nil {
		return err
	}
	name := *pitchName
	if name == "" {
		name = names[0]
	}
	data, ok := pitches[name]
	if !ok {
		return fmt.Errorf("unknown pitch %q (have %s)", name, strings.Join(names, ", "))
	}

	shots := make([]shot, 0, *kicks)
	for i := 0; i < *kicks; i++ {
		shots = append(shots, shot{Angle: *angle + float64(i)*(*sweep), Height: *height})
	}

	r, err := newRunner(kcfg, data, sim.DefaultBodyParams(), shots, logPresenter{})
	if err != nil {
		return err
	}

	loop := sim.NewGameLoop(*tickRate, r.tick)
	log.Printf("Taking %d kick(s) on %q", len(shots), name)
	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = loop.Run(ctx, *maxTicks)
	} else {
		err = loop.RunFixed(*maxTicks)
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, kick.ErrQuit) {
		return err
	}

	for i, res := range r.results {
		log.Printf("Kick %d: angle=%.1f height=%.2f -> %s (saved=%t, %d ticks, v=%.2f, flight=%.2fs, peak=%.2f)",
			i+1, res.Shot.Angle, res.Shot.Height, res.Phase, res.Saved, res.Ticks, res.Launch, res.Flight, res.Peak)
	}
	if len(r.results) < len(shots) {
		log.Printf("Stopped after %d ticks with %d kick(s) undecided", loop.Ticks(), len(shots)-len(r.results))
	}
	log.Printf("Final score: %d/%d", r.score(), len(shots))
	return nil
}
