package sim

import (
	"math"
	"testing"

	"github.com/automoto/penaltykick/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

func TestBodyFollowsSolvedArc(t *testing.T) {
	params := DefaultBodyParams()
	spawn := mgl64.Vec3{0, params.Radius, 0}
	target := mgl64.Vec3{0, 2, 25}

	body := NewBody(spawn, params)
	body.SetVelocity(gamemath.SolveLaunch(spawn, target, 0, params.Gravity))

	const dt = 1.0 / 1000
	peak := body.Position()
	for i := 0; i < 10000 && body.Velocity().Y() > 0; i++ {
		body.Step(dt)
		if body.Position().Y() > peak.Y() {
			peak = body.Position()
		}
	}

	if want := spawn.Y() + target.Y(); math.Abs(peak.Y()-want) > 0.05 {
		t.Errorf("apex height = %f, want %f", peak.Y(), want)
	}
	if math.Abs(peak.Z()-target.Z()) > 0.2 {
		t.Errorf("apex distance = %f, want %f", peak.Z(), target.Z())
	}
}

func TestBodyComesToRest(t *testing.T) {
	params := DefaultBodyParams()
	body := NewBody(mgl64.Vec3{0, params.Radius, 0}, params)
	body.SetVelocity(mgl64.Vec3{1, 3, 5})
	body.SetAngularVelocity(mgl64.Vec3{0, 10, 0})

	for i := 0; i < 60*10; i++ {
		body.Step(1.0 / 60)
		if body.Position().Y() < params.Radius {
			t.Fatalf("tick %d: ball below ground at %v", i, body.Position())
		}
	}

	if body.Speed() != 0 {
		t.Errorf("speed after 10s = %f, want 0", body.Speed())
	}
	if !body.Grounded() {
		t.Errorf("ball not grounded at %v", body.Position())
	}
	if body.AngularVelocity() != (mgl64.Vec3{}) {
		t.Errorf("spin after rest = %v", body.AngularVelocity())
	}
}

func TestRollingSlowsMonotonically(t *testing.T) {
	params := DefaultBodyParams()
	body := NewBody(mgl64.Vec3{0, params.Radius, 0}, params)
	body.SetVelocity(mgl64.Vec3{0, 0, 6})

	last := body.Speed()
	for i := 0; i < 180; i++ {
		body.Step(1.0 / 60)
		if s := body.Speed(); s > last {
			t.Fatalf("tick %d: speed rose %f -> %f", i, last, s)
		} else {
			last = s
		}
	}
	if last > 1 {
		t.Errorf("speed after 3s of rolling = %f, want <= 1", last)
	}
	if body.Velocity().X() != 0 || body.Velocity().Y() != 0 {
		t.Errorf("rolling drifted off line: %v", body.Velocity())
	}
}
