package factory

import (
	"github.com/automoto/penaltykick/archetypes"
	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBall(ecs *ecs.ECS, spawn mgl64.Vec3) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)
	components.RigidBody.SetValue(ball, components.RigidBodyData{
		Body: sim.NewBody(spawn, cfg.Body),
	})
	return ball
}

func CreateGoalie(ecs *ecs.ECS, spawn mgl64.Vec3) *donburi.Entry {
	goalie := archetypes.Goalie.Spawn(ecs)
	components.Goalie.SetValue(goalie, components.GoalieData{
		Keeper: sim.NewKeeper(spawn),
	})
	return goalie
}

func CreateMarker(ecs *ecs.ECS, spawn mgl64.Vec3) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)
	components.Marker.SetValue(marker, components.MarkerData{
		Position: spawn,
		Visible:  true,
	})
	return marker
}
