// Package sim holds the headless physics the kick controllers run against:
// a ball body integrated under gravity, the goalkeeper transform and the
// pitch collision space. It must not depend on ebiten so the headless
// simulator and the tests stay display-free.
package sim

import (
	"math"

	"github.com/automoto/penaltykick/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// BodyParams tunes the ball integrator.
type BodyParams struct {
	Gravity         float64 // Downward acceleration magnitude
	Radius          float64
	Restitution     float64 // Vertical speed kept on a ground bounce
	SettleSpeed     float64 // Bounces slower than this stop bouncing
	RollingFriction float64 // Horizontal deceleration while rolling (units/s²)
	SpinDamping     float64 // Fraction of spin lost per second in the air
}

// DefaultBodyParams returns a regulation-ish football.
func DefaultBodyParams() BodyParams {
	return BodyParams{
		Gravity:         9.81,
		Radius:          0.15,
		Restitution:     0.55,
		SettleSpeed:     0.8,
		RollingFriction: 3.0,
		SpinDamping:     0.5,
	}
}

// Body is a sphere rigid body with a flat ground at y=0.
type Body struct {
	params BodyParams
	pos    mgl64.Vec3
	vel    mgl64.Vec3
	angVel mgl64.Vec3
}

func NewBody(pos mgl64.Vec3, params BodyParams) *Body {
	return &Body{params: params, pos: pos}
}

func (b *Body) Params() BodyParams              { return b.params }
func (b *Body) Position() mgl64.Vec3            { return b.pos }
func (b *Body) SetPosition(p mgl64.Vec3)        { b.pos = p }
func (b *Body) Velocity() mgl64.Vec3            { return b.vel }
func (b *Body) SetVelocity(v mgl64.Vec3)        { b.vel = v }
func (b *Body) AngularVelocity() mgl64.Vec3     { return b.angVel }
func (b *Body) SetAngularVelocity(w mgl64.Vec3) { b.angVel = w }
func (b *Body) Speed() float64                  { return b.vel.Len() }

// Grounded reports whether the ball is resting on or rolling along the ground.
func (b *Body) Grounded() bool {
	return b.pos.Y() <= b.params.Radius && b.vel.Y() == 0
}

// Step integrates one tick (semi-implicit Euler).
func (b *Body) Step(dt float64) {
	if b.Grounded() {
		b.roll(dt)
	} else {
		b.vel[1] -= b.params.Gravity * dt
		b.angVel = b.angVel.Mul(math.Max(0, 1-b.params.SpinDamping*dt))
	}

	b.pos = b.pos.Add(b.vel.Mul(dt))

	if b.pos.Y() < b.params.Radius {
		b.pos[1] = b.params.Radius
		if b.vel.Y() < 0 {
			b.vel[1] = -b.vel.Y() * b.params.Restitution
			if b.vel.Y() < b.params.SettleSpeed {
				b.vel[1] = 0
			}
		}
	}
}

func (b *Body) roll(dt float64) {
	speed := math.Hypot(b.vel.X(), b.vel.Z())
	if speed == 0 {
		b.angVel = mgl64.Vec3{}
		return
	}
	next := gamemath.ApplyFriction(speed, b.params.RollingFriction*dt)
	scale := next / speed
	b.vel[0] *= scale
	b.vel[2] *= scale

	// Rolling without slipping: spin axis is horizontal, perpendicular to travel.
	b.angVel = mgl64.Vec3{b.vel.Z(), 0, -b.vel.X()}.Mul(1 / b.params.Radius)
}
