package kick

import (
	"fmt"

	"github.com/automoto/penaltykick/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Ball owns the aim state and drives the SETUP -> LAUNCHED -> DONE cycle.
type Ball struct {
	cfg   Config
	body  RigidBody
	input InputSource
	pres  Presentation
	game  KickListener

	phase       BallPhase
	rotation    float64    // Accumulated yaw in degrees, never wrapped
	height      float64    // Target marker height
	aimDistance float64    // Planar ball-to-marker distance
	marker      mgl64.Vec3 // Where the marker was last shown
	launch      mgl64.Vec3
}

// NewBall creates a ball controller in SETUP. The game handle is attached by
// the Session.
func NewBall(cfg Config, body RigidBody, input InputSource, pres Presentation) (*Ball, error) {
	switch {
	case body == nil:
		return nil, fmt.Errorf("%w: ball rigid body", ErrMissingCollaborator)
	case input == nil:
		return nil, fmt.Errorf("%w: input source", ErrMissingCollaborator)
	case pres == nil:
		return nil, fmt.Errorf("%w: presentation", ErrMissingCollaborator)
	}

	b := &Ball{
		cfg:   cfg,
		body:  body,
		input: input,
		pres:  pres,
		phase: BallSetup,
	}
	b.aimDistance = max(gamemath.HorizontalDistance(cfg.BallSpawn, cfg.MarkerSpawn), cfg.MinTargetDistance)
	b.height = b.clampHeight(cfg.MarkerSpawn.Y())
	b.marker = b.MarkerPosition()
	return b, nil
}

func (b *Ball) Phase() BallPhase           { return b.phase }
func (b *Ball) Rotation() float64          { return b.rotation }
func (b *Ball) TargetHeight() float64      { return b.height }
func (b *Ball) AimDistance() float64       { return b.aimDistance }
func (b *Ball) LaunchVelocity() mgl64.Vec3 { return b.launch }

// Facing returns the horizontal direction the ball is aimed along.
func (b *Ball) Facing() mgl64.Vec3 {
	return gamemath.Forward(b.rotation)
}

// MarkerPosition returns where the target marker sits for the current aim:
// a fixed planar distance ahead of the ball at the chosen height.
func (b *Ball) MarkerPosition() mgl64.Vec3 {
	ahead := b.body.Position().Add(b.Facing().Mul(b.aimDistance))
	return mgl64.Vec3{ahead.X(), b.height, ahead.Z()}
}

// Tick handles one frame of input for the current phase.
func (b *Ball) Tick(dt float64) {
	switch b.phase {
	case BallSetup:
		b.handleAimInput(dt)
	case BallLaunched:
		// The body is in flight; the game decides when it is over.
	case BallDone:
		if b.input.IsPressed(ActionReset) {
			b.Reset()
		}
	}
}

func (b *Ball) handleAimInput(dt float64) {
	if b.input.IsHeld(ActionMoveUp) {
		b.AdjustHeight(b.cfg.HeightRate * dt)
	}
	if b.input.IsHeld(ActionMoveDown) {
		b.AdjustHeight(-b.cfg.HeightRate * dt)
	}
	if b.input.IsHeld(ActionRotateLeft) {
		b.Rotate(-b.cfg.RotationRate * dt)
	}
	if b.input.IsHeld(ActionRotateRight) {
		b.Rotate(b.cfg.RotationRate * dt)
	}
	if b.input.IsPressed(ActionLaunch) {
		b.Launch()
	}
}

// AdjustHeight moves the target marker up or down within the height limits.
func (b *Ball) AdjustHeight(delta float64) {
	if b.phase != BallSetup {
		b.cfg.debugf("kick: height adjust ignored in %s", b.phase)
		return
	}
	b.height = b.clampHeight(b.height + delta)
	b.showMarker()
}

// Rotate turns the aim by deltaDegrees. The marker follows the new facing.
func (b *Ball) Rotate(deltaDegrees float64) {
	if b.phase != BallSetup {
		b.cfg.debugf("kick: rotate ignored in %s", b.phase)
		return
	}
	b.rotation += deltaDegrees
	b.showMarker()
}

// Launch kicks the ball toward the marker and hands judging to the game.
func (b *Ball) Launch() {
	if b.phase != BallSetup {
		b.cfg.debugf("kick: launch ignored in %s", b.phase)
		return
	}
	b.phase = BallLaunched

	// Measure against the marker the player saw; the body may have moved
	// since it was placed.
	origin := b.body.Position()
	b.aimDistance = max(gamemath.HorizontalDistance(origin, b.marker), b.cfg.MinTargetDistance)
	target := b.MarkerPosition()

	b.launch = gamemath.SolveLaunch(origin, target, b.rotation, b.cfg.Gravity)
	b.body.SetVelocity(b.launch)

	b.pres.SetMarkerPosition(b.cfg.MarkerHidden)
	b.pres.SetMarkerVisible(false)
	b.pres.SetActiveCamera(CameraPlay)

	b.cfg.debugf("kick: launched rot=%.2f height=%.2f dist=%.2f v=%v", b.rotation, b.height, b.aimDistance, b.launch)
	b.game.EnterKicked()
}

// FinishKick is called by the game once the outcome is decided.
func (b *Ball) FinishKick() {
	if b.phase != BallLaunched {
		b.cfg.debugf("kick: finish ignored in %s", b.phase)
		return
	}
	b.phase = BallDone
}

// Reset puts the ball and the aim back on the spot and restarts the round.
// It is meant for DONE but leaves both controllers consistent from any phase.
func (b *Ball) Reset() {
	if b.phase != BallDone {
		b.cfg.debugf("kick: reset from %s", b.phase)
	}
	b.reset()
}

func (b *Ball) reset() {
	b.body.SetPosition(b.cfg.BallSpawn)
	b.body.SetVelocity(mgl64.Vec3{})
	b.body.SetAngularVelocity(mgl64.Vec3{})

	b.rotation = 0
	b.height = b.clampHeight(b.cfg.MarkerSpawn.Y())
	b.aimDistance = max(gamemath.HorizontalDistance(b.cfg.BallSpawn, b.cfg.MarkerSpawn), b.cfg.MinTargetDistance)
	b.launch = mgl64.Vec3{}

	b.pres.SetActiveCamera(CameraMain)
	b.showMarker()
	b.pres.SetMarkerVisible(true)

	b.phase = BallSetup
	b.game.EnterAdjusting()
}

// showMarker moves the marker to the current aim and remembers where it went.
func (b *Ball) showMarker() {
	b.marker = b.MarkerPosition()
	b.pres.SetMarkerPosition(b.marker)
}

func (b *Ball) clampHeight(h float64) float64 {
	return gamemath.Clamp(h, b.cfg.MinTargetHeight, b.cfg.MaxTargetHeight)
}
