package kick

import "github.com/go-gl/mathgl/mgl64"

// RigidBody is the physics body carrying the ball. Integration happens
// elsewhere; the controllers only seed and read it.
type RigidBody interface {
	Position() mgl64.Vec3
	SetPosition(mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(mgl64.Vec3)
	SetAngularVelocity(mgl64.Vec3)
}

// Action identifies a discrete player input.
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionRotateLeft
	ActionRotateRight
	ActionLaunch
	ActionReset
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputSource is polled once per tick.
type InputSource interface {
	// IsHeld reports a continuous action (MoveUp, MoveDown, RotateLeft, RotateRight).
	IsHeld(Action) bool
	// IsPressed reports a one-shot action (Launch, Reset, Quit) for this tick only.
	IsPressed(Action) bool
}

// CameraID selects the active view.
type CameraID int

const (
	CameraMain CameraID = iota // Aim view
	CameraPlay                 // Ball follow view
)

// Presentation receives fire-and-forget display updates.
type Presentation interface {
	SetMarkerPosition(mgl64.Vec3)
	SetMarkerVisible(bool)
	SetStatusText(string)
	SetPromptText(string)
	SetScoreText(string)
	SetActiveCamera(CameraID)
}

// Goalkeeper is the goalie transform moved by the game controller.
type Goalkeeper interface {
	Position() mgl64.Vec3
	SetPosition(mgl64.Vec3)
}

// KickListener is the handle the ball holds on the game.
type KickListener interface {
	EnterKicked()
	EnterAdjusting()
}

// OutcomeListener is the handle the game holds on the ball.
type OutcomeListener interface {
	FinishKick()
}
