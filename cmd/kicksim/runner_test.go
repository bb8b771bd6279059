package main

import (
	"math"
	"os"
	"testing"

	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/shared/leveldata"
	"github.com/automoto/penaltykick/shared/sim"
)

type quietPresenter struct{ logPresenter }

func (quietPresenter) SetStatusText(string) {}
func (quietPresenter) SetPromptText(string) {}
func (quietPresenter) SetScoreText(string)  {}

func newTestRunner(t *testing.T, kcfg kick.Config, shots ...shot) *runner {
	t.Helper()
	data, err := leveldata.LoadPitch(os.DirFS("../../assets"), "levels/pitch.tmx")
	if err != nil {
		t.Fatalf("LoadPitch: %v", err)
	}
	r, err := newRunner(kcfg, data, sim.DefaultBodyParams(), shots, quietPresenter{})
	if err != nil {
		t.Fatalf("newRunner: %v", err)
	}
	return r
}

func runShots(t *testing.T, r *runner) *sim.GameLoop {
	t.Helper()
	loop := sim.NewGameLoop(60, r.tick)
	if err := loop.RunFixed(3000); err != nil {
		t.Fatalf("RunFixed: %v", err)
	}
	if loop.Ticks() >= 3000 {
		t.Fatalf("loop hit the tick limit with %d/%d results", len(r.results), len(r.shots))
	}
	return loop
}

func TestRunnerScoresPastStillKeeper(t *testing.T) {
	kcfg := kick.DefaultConfig()
	kcfg.GoalieFollow = 0
	r := newTestRunner(t, kcfg, shot{Angle: 4, Height: 1.5})
	runShots(t, r)

	if len(r.results) != 1 || r.results[0].Phase != kick.GameScored {
		t.Fatalf("results = %+v, want one goal", r.results)
	}
	if r.score() != 1 {
		t.Errorf("score = %d, want 1", r.score())
	}
	if res := r.results[0]; math.Abs(res.Peak-1.5) > 1e-6 || res.Flight <= 0 {
		t.Errorf("peak = %f flight = %f, want the arc to top out at 1.5", res.Peak, res.Flight)
	}
}

func TestRunnerKeeperSavesCentreShot(t *testing.T) {
	r := newTestRunner(t, kick.DefaultConfig(), shot{Angle: 0, Height: 1.5})
	runShots(t, r)

	if len(r.results) != 1 {
		t.Fatalf("results = %+v", r.results)
	}
	res := r.results[0]
	if res.Phase != kick.GameMissed || !res.Saved {
		t.Errorf("result = %+v, want a saved miss", res)
	}
}

func TestRunnerTakesEveryShotThenStops(t *testing.T) {
	kcfg := kick.DefaultConfig()
	kcfg.GoalieFollow = 0
	r := newTestRunner(t, kcfg,
		shot{Angle: 4, Height: 1.5},
		shot{Angle: 20, Height: 1.5},
		shot{Angle: -4, Height: 1.5},
	)
	runShots(t, r)

	want := []kick.GamePhase{kick.GameScored, kick.GameMissed, kick.GameScored}
	if len(r.results) != len(want) {
		t.Fatalf("got %d results, want %d", len(r.results), len(want))
	}
	for i, res := range r.results {
		if res.Phase != want[i] {
			t.Errorf("kick %d: %s, want %s", i+1, res.Phase, want[i])
		}
		if res.Ticks <= 0 {
			t.Errorf("kick %d: ticks = %d", i+1, res.Ticks)
		}
	}
	if r.score() != 2 {
		t.Errorf("score = %d, want 2", r.score())
	}
	if !r.session.Consistent() {
		t.Error("session ended in an inconsistent state")
	}
}

func TestNewRunnerNeedsShots(t *testing.T) {
	data, err := leveldata.LoadPitch(os.DirFS("../../assets"), "levels/pitch.tmx")
	if err != nil {
		t.Fatalf("LoadPitch: %v", err)
	}
	if _, err := newRunner(kick.DefaultConfig(), data, sim.DefaultBodyParams(), nil, quietPresenter{}); err == nil {
		t.Error("want error without shots")
	}
}
