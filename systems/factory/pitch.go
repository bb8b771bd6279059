package factory

import (
	"github.com/automoto/penaltykick/archetypes"
	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/shared/leveldata"
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePitch builds the collision space for a loaded pitch layout.
func CreatePitch(ecs *ecs.ECS, data *leveldata.PitchData) *donburi.Entry {
	pitch := archetypes.Pitch.Spawn(ecs)
	components.Pitch.SetValue(pitch, components.PitchData{
		Layout: data,
		Pitch:  sim.NewPitch(data.Layout(), cfg.Body.Radius),
	})
	return pitch
}
