package systems

import (
	"github.com/automoto/penaltykick/components"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions forwards the goal sensor to the game controller.
// Must run AFTER UpdatePhysics. Contacts outside a kick are dropped here
// so a ball rolling back through the mouth after a reset stays silent.
func UpdateCollisions(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry).Session

	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	step := components.RigidBody.Get(ballEntry).LastStep

	if step.InGoal && session.Game().Phase() == kick.GameKicked {
		session.OnGoalSensor()
	}
}
