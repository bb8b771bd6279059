package components

import (
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/yohamta/donburi"
)

// RigidBodyData holds the ball body and what it touched on the last step.
type RigidBodyData struct {
	Body     *sim.Body
	LastStep sim.StepResult
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()
