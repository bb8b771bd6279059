package archetypes

import (
	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.RigidBody,
	)
	Goalie = newArchetype(
		tags.Goalie,
		components.Goalie,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
	)
	Pitch = newArchetype(
		tags.Pitch,
		components.Pitch,
	)
	Session = newArchetype(
		components.Session,
	)
	Camera = newArchetype(
		components.Camera,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
