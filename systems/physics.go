package systems

import (
	"github.com/automoto/penaltykick/components"
	"github.com/automoto/penaltykick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps the ball through the pitch space.
// The keeper is read where the game controller left it this tick.
func UpdatePhysics(ecs *ecs.ECS) {
	pitchEntry, ok := components.Pitch.First(ecs.World)
	if !ok {
		return
	}
	pitch := components.Pitch.Get(pitchEntry).Pitch

	goalieEntry, ok := tags.Goalie.First(ecs.World)
	if !ok {
		return
	}
	keeper := components.Goalie.Get(goalieEntry).Keeper

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		rb := components.RigidBody.Get(e)
		rb.LastStep = pitch.Step(rb.Body, keeper.Position(), dt())
	})
}
