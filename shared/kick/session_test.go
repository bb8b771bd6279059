package kick

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewSessionRejectsBadSetup(t *testing.T) {
	full := func() Deps {
		return Deps{
			Body:         &fakeBody{},
			Input:        &fakeInput{},
			Presentation: &fakePresentation{},
			Goalie:       &fakeKeeper{},
		}
	}

	missing := map[string]func(*Deps){
		"body":         func(d *Deps) { d.Body = nil },
		"input":        func(d *Deps) { d.Input = nil },
		"presentation": func(d *Deps) { d.Presentation = nil },
		"goalie":       func(d *Deps) { d.Goalie = nil },
	}
	for name, drop := range missing {
		t.Run("missing "+name, func(t *testing.T) {
			deps := full()
			drop(&deps)
			if _, err := NewSession(DefaultConfig(), deps); !errors.Is(err, ErrMissingCollaborator) {
				t.Fatalf("err = %v, want ErrMissingCollaborator", err)
			}
		})
	}

	invalid := map[string]func(*Config){
		"gravity":      func(c *Config) { c.Gravity = 0 },
		"min distance": func(c *Config) { c.MinTargetDistance = 0 },
		"heights":      func(c *Config) { c.MinTargetHeight, c.MaxTargetHeight = 10, 1 },
		"goalie":       func(c *Config) { c.GoalieHalfWidth = 5 },
	}
	for name, mutate := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if _, err := NewSession(cfg, full()); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewSessionInitialState(t *testing.T) {
	h := newHarness(t)

	b, g := h.session.Phases()
	if b != BallSetup || g != GameAdjusting {
		t.Fatalf("phases = %s/%s", b, g)
	}
	if h.pres.score != "0" {
		t.Errorf("score text = %q, want \"0\"", h.pres.score)
	}
	if h.pres.camera != CameraMain || !h.pres.markerVisible {
		t.Errorf("camera=%v markerVisible=%t", h.pres.camera, h.pres.markerVisible)
	}
	if h.body.pos != h.cfg.BallSpawn {
		t.Errorf("ball at %v, want spawn", h.body.pos)
	}
}

func TestQuitOnlyOutsideKicked(t *testing.T) {
	h := newHarness(t)

	h.input.press(ActionQuit)
	if err := h.session.Tick(1.0 / 60); !errors.Is(err, ErrQuit) {
		t.Fatalf("quit while adjusting: err = %v", err)
	}
	h.input.clear()

	h.session.Ball().Launch()
	h.ballAt(20)
	h.input.press(ActionQuit)
	if err := h.session.Tick(1.0 / 60); err != nil {
		t.Fatalf("quit while kicked: err = %v", err)
	}
	h.input.clear()

	h.session.OnGoalSensor()
	h.input.press(ActionQuit)
	if err := h.session.Tick(1.0 / 60); !errors.Is(err, ErrQuit) {
		t.Fatalf("quit after score: err = %v", err)
	}
}

// TestPhasePairingUnderRandomInput drives the session with random key presses,
// sensor signals and ball motion, checking the phase pairing after every event.
func TestPhasePairingUnderRandomInput(t *testing.T) {
	h := newHarness(t)
	rng := rand.New(rand.NewSource(42))
	lastScore := 0

	check := func(step int) {
		t.Helper()
		if !h.session.Consistent() {
			b, g := h.session.Phases()
			t.Fatalf("step %d: inconsistent ball=%s game=%s", step, b, g)
		}
		score := h.session.Game().Score()
		if score < lastScore || score > lastScore+1 {
			t.Fatalf("step %d: score jumped %d -> %d", step, lastScore, score)
		}
		lastScore = score
	}

	for step := 0; step < 5000; step++ {
		for a := ActionMoveUp; a <= ActionRotateRight; a++ {
			h.input.held[a] = rng.Intn(3) == 0
		}
		switch rng.Intn(10) {
		case 0:
			h.input.press(ActionLaunch)
		case 1:
			h.input.press(ActionReset)
		case 2:
			h.session.OnGoalSensor()
			check(step)
		}

		h.body.pos = h.body.pos.Add(mgl64.Vec3{rng.Float64() - 0.5, 0, rng.Float64()*4 - 1})
		h.body.vel = mgl64.Vec3{0, 0, rng.Float64() * 12}

		h.tick(t)
		check(step)
	}
}

func TestScoreCountsEachGoal(t *testing.T) {
	h := newHarness(t)
	goals := 0

	for round := 0; round < 6; round++ {
		h.input.press(ActionLaunch)
		h.tick(t)
		if round%2 == 0 {
			h.session.OnGoalSensor()
			goals++
		} else {
			h.body.vel = mgl64.Vec3{}
			h.tick(t)
		}
		if got := h.session.Game().Score(); got != goals {
			t.Fatalf("round %d: score = %d, want %d", round, got, goals)
		}
		h.input.press(ActionReset)
		h.tick(t)
	}
}
