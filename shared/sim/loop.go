package sim

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// TickFunc advances the simulation by dt seconds. A non-nil error stops the loop.
type TickFunc func(dt float64) error

// GameLoop drives a TickFunc at a fixed rate.
type GameLoop struct {
	tickRate int
	tick     TickFunc
	ticks    int
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(tickRate int, tick TickFunc) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		tickRate: tickRate,
		tick:     tick,
		stopChan: make(chan struct{}),
	}
}

// Dt is the fixed step handed to every tick.
func (g *GameLoop) Dt() float64 { return 1 / float64(g.tickRate) }

func (g *GameLoop) Ticks() int { return g.ticks }

// Run ticks on a wall-clock ticker until ctx is done, Stop is called,
// maxTicks is reached (if positive) or the tick returns an error.
func (g *GameLoop) Run(ctx context.Context, maxTicks int) error {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)
	defer func() {
		g.running.Store(false)
		log.Printf("Game loop stopped after %d ticks", g.ticks)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.stopChan:
			return nil
		case <-ticker.C:
			if done, err := g.step(maxTicks); done {
				return err
			}
		}
	}
}

// RunFixed ticks as fast as possible. Used by tests and the headless
// simulator when real-time pacing is not wanted.
func (g *GameLoop) RunFixed(maxTicks int) error {
	g.running.Store(true)
	defer func() { g.running.Store(false) }()

	for {
		select {
		case <-g.stopChan:
			return nil
		default:
		}
		if done, err := g.step(maxTicks); done {
			return err
		}
	}
}

func (g *GameLoop) step(maxTicks int) (bool, error) {
	if maxTicks > 0 && g.ticks >= maxTicks {
		return true, nil
	}
	err := g.tick(g.Dt())
	g.ticks++
	if errors.Is(err, ErrStop) {
		return true, nil
	}
	return err != nil, err
}

// Stop ends Run or RunFixed. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Running may be called from any goroutine.
func (g *GameLoop) Running() bool { return g.running.Load() }

// ErrStop may be returned by a TickFunc to end the loop without an error.
var ErrStop = errors.New("stop loop")
