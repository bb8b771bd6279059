package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/penaltykick/assets"
	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/systems"
	"github.com/automoto/penaltykick/systems/factory"
	"github.com/automoto/penaltykick/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PitchScene runs one penalty session on the configured pitch.
type PitchScene struct {
	ecs   *ecs.ECS
	hudUI *ui.HUDUI
	once  sync.Once
}

func NewPitchScene() *PitchScene {
	return &PitchScene{}
}

func (ps *PitchScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	var hud *components.HUDData
	if entry, ok := components.HUD.First(ps.ecs.World); ok {
		hud = components.HUD.Get(entry)
	}
	ps.hudUI.Update(hud)
}

func (ps *PitchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.hudUI.Draw(screen)
}

// Err reports why the session stopped. kick.ErrQuit means the player asked
// to leave.
func (ps *PitchScene) Err() error {
	if ps.ecs == nil {
		return nil
	}
	return systems.SessionErr(ps.ecs)
}

func (ps *PitchScene) configure() {
	// Preload assets to avoid lag on the first kick
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: grass shader unavailable: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so last frame's sounds play immediately)
	ecs.AddSystem(systems.UpdateAudio)

	// Order matters: input feeds the controllers, which launch the ball
	// before physics moves it and collisions judge it.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateKick)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateHUD)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawPitch)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawDebug)

	ps.ecs = ecs
	ps.hudUI = ui.NewHUDUI()

	// Pitch first: it sets the spawn points and goal for everything else.
	pitchData := assets.MustLoadPitch(cfg.Pitch.LevelPath)
	factory.CreatePitch(ps.ecs, pitchData)

	kcfg := cfg.Kick
	pitchData.Apply(&kcfg)
	if cfg.Debug.Enabled {
		kcfg.Debugf = log.Printf
	}

	ball := factory.CreateBall(ps.ecs, kcfg.BallSpawn)
	goalie := factory.CreateGoalie(ps.ecs, kcfg.GoalieSpawn)
	factory.CreateMarker(ps.ecs, kcfg.MarkerSpawn)
	factory.CreateCamera(ps.ecs)
	factory.CreateHUD(ps.ecs)
	factory.CreateAudio(ps.ecs)

	_, err := factory.CreateSession(ps.ecs, kcfg, kick.Deps{
		Body:         components.RigidBody.Get(ball).Body,
		Input:        systems.NewKeyInput(ps.ecs),
		Presentation: systems.NewPresenter(ps.ecs),
		Goalie:       components.Goalie.Get(goalie).Keeper,
	})
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
}
