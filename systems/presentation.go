package systems

import (
	"github.com/automoto/penaltykick/components"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Presenter implements kick.Presentation by writing the Marker, HUD and
// Camera singletons. Renderers pick the values up on the next Draw.
type Presenter struct {
	ecs *ecs.ECS
}

func NewPresenter(ecs *ecs.ECS) *Presenter {
	return &Presenter{ecs: ecs}
}

func (p *Presenter) SetMarkerPosition(pos mgl64.Vec3) {
	getOrCreateMarker(p.ecs).Position = pos
}

func (p *Presenter) SetMarkerVisible(visible bool) {
	getOrCreateMarker(p.ecs).Visible = visible
}

func (p *Presenter) SetStatusText(s string) {
	hud := getOrCreateHUD(p.ecs)
	if hud.Status != s && s != "" {
		startBanner(hud)
	}
	hud.Status = s
}

func (p *Presenter) SetPromptText(s string) {
	getOrCreateHUD(p.ecs).Prompt = s
}

func (p *Presenter) SetScoreText(s string) {
	getOrCreateHUD(p.ecs).Score = s
}

func (p *Presenter) SetActiveCamera(id kick.CameraID) {
	camera := getOrCreateCamera(p.ecs)
	if camera.Active != id {
		startCameraBlend(camera, id)
	}
	camera.Active = id
}

func getOrCreateMarker(ecs *ecs.ECS) *components.MarkerData {
	entry, ok := components.Marker.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Marker))
	}
	return components.Marker.Get(entry)
}

func getOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.HUD))
		components.HUD.Get(entry).BannerScale = 1
	}
	return components.HUD.Get(entry)
}

func getOrCreateCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Camera))
	}
	return components.Camera.Get(entry)
}
