package factory

import (
	"github.com/automoto/penaltykick/archetypes"
	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}

func CreateHUD(ecs *ecs.ECS) {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.Set(hud, &components.HUDData{BannerScale: 1})
}

func CreateAudio(ecs *ecs.ECS) {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.Set(audio, &components.AudioData{SFXVolume: cfg.Audio.DefaultSFXVol})
}
