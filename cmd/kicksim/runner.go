package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/penaltykick/shared/gamemath"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/shared/leveldata"
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/go-gl/mathgl/mgl64"
)

// shot is one scripted aim.
type shot struct {
	Angle  float64 // Degrees, positive to the right
	Height float64
}

// result records how a shot ended.
type result struct {
	Shot   shot
	Phase  kick.GamePhase
	Saved  bool
	Ticks  int
	Launch mgl64.Vec3
	Flight float64 // Seconds until the ball is back at kick height
	Peak   float64 // Highest point of the arc
}

// scriptedInput presses at most the actions the runner queues for one tick.
type scriptedInput struct {
	pressed [kick.ActionCount]bool
}

func (in *scriptedInput) IsHeld(kick.Action) bool      { return false }
func (in *scriptedInput) IsPressed(a kick.Action) bool { return in.pressed[a] }
func (in *scriptedInput) press(a kick.Action)          { in.pressed[a] = true }
func (in *scriptedInput) clear()                       { in.pressed = [kick.ActionCount]bool{} }

// logPresenter prints the text a player would see.
type logPresenter struct{}

func (logPresenter) SetMarkerPosition(mgl64.Vec3)  {}
func (logPresenter) SetMarkerVisible(bool)         {}
func (logPresenter) SetActiveCamera(kick.CameraID) {}

func (logPresenter) SetStatusText(s string) {
	if s != "" {
		log.Printf("Status: %s", s)
	}
}

func (logPresenter) SetPromptText(s string) {
	if s != "" {
		log.Printf("Prompt: %s", s)
	}
}

func (logPresenter) SetScoreText(s string) {
	log.Printf("Score: %s", s)
}

// runner drives a session through a list of shots without a window.
type runner struct {
	session *kick.Session
	body    *sim.Body
	keeper  *sim.Keeper
	pitch   *sim.Pitch
	input   *scriptedInput
	spawn   mgl64.Vec3
	gravity float64

	shots   []shot
	next    int
	aimed   bool
	saved   bool
	started int
	last    kick.GamePhase
	ticks   int

	results []result
}

func newRunner(kcfg kick.Config, data *leveldata.PitchData, params sim.BodyParams, shots []shot, pres kick.Presentation) (*runner, error) {
	if len(shots) == 0 {
		return nil, errors.New("no shots to take")
	}
	data.Apply(&kcfg)
	params.Gravity = kcfg.Gravity

	r := &runner{
		body:    sim.NewBody(kcfg.BallSpawn, params),
		keeper:  sim.NewKeeper(kcfg.GoalieSpawn),
		pitch:   sim.NewPitch(data.Layout(), params.Radius),
		input:   &scriptedInput{},
		spawn:   kcfg.BallSpawn,
		gravity: kcfg.Gravity,
		shots:   shots,
	}

	session, err := kick.NewSession(kcfg, kick.Deps{
		Body:         r.body,
		Input:        r.input,
		Presentation: pres,
		Goalie:       r.keeper,
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	r.session = session
	r.last = session.Game().Phase()
	return r, nil
}

// tick mirrors the client's system order: input, controllers, physics,
// then the goal sensor.
func (r *runner) tick(dt float64) error {
	r.input.clear()
	ball := r.session.Ball()
	switch ball.Phase() {
	case kick.BallSetup:
		if !r.aimed {
			s := r.shots[r.next]
			ball.Rotate(s.Angle - ball.Rotation())
			ball.AdjustHeight(s.Height - ball.TargetHeight())
			r.aimed = true
			r.saved = false
			r.started = r.ticks
		}
		r.input.press(kick.ActionLaunch)
	case kick.BallDone:
		if r.next >= len(r.shots) {
			return sim.ErrStop
		}
		r.input.press(kick.ActionReset)
		r.aimed = false
	}

	if err := r.session.Tick(dt); err != nil {
		return err
	}
	r.ticks++

	step := r.pitch.Step(r.body, r.keeper.Position(), dt)
	if step.Saved {
		r.saved = true
	}
	if step.InGoal && r.session.Game().Phase() == kick.GameKicked {
		r.session.OnGoalSensor()
	}

	if phase := r.session.Game().Phase(); phase != r.last {
		r.last = phase
		if phase.Terminal() {
			launch := ball.LaunchVelocity()
			r.results = append(r.results, result{
				Shot:   r.shots[r.next],
				Phase:  phase,
				Saved:  r.saved,
				Ticks:  r.ticks - r.started,
				Launch: launch,
				Flight: gamemath.FlightTime(launch.Y(), r.gravity),
				Peak:   r.spawn.Y() + gamemath.ApexHeight(launch.Y(), r.gravity),
			})
			r.next++
		}
	}
	return nil
}

func (r *runner) score() int { return r.session.Game().Score() }
