package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/fonts"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 14

// DrawDebug renders the aim readout and, in the aim view, the collision space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry).Session
	ball, game := session.Ball(), session.Game()

	lines := []string{
		fmt.Sprintf("ball %s  game %s  ticks %d", ball.Phase(), game.Phase(), session.Ticks()),
		fmt.Sprintf("aim %.1f deg  height %.2f  dist %.2f", ball.Rotation(), ball.TargetHeight(), ball.AimDistance()),
		fmt.Sprintf("launch %.2f", ball.LaunchVelocity()),
		fmt.Sprintf("goal dist %.2f  closest %.2f  goalie x %.2f", game.Distance(), game.ShortestDistance(), game.GoalieX()),
	}
	if pitchEntry, ok := components.Pitch.First(ecs.World); ok {
		data := components.Pitch.Get(pitchEntry).Layout
		lines = append(lines, fmt.Sprintf("pitch %s  %dx%d px  goal line %.2f", data.Name, data.MapWidth, data.MapHeight, data.Goal.Line))
	}
	if ballEntry, ok := tags.Ball.First(ecs.World); ok {
		rb := components.RigidBody.Get(ballEntry)
		lines = append(lines, fmt.Sprintf("pos %.2f  speed %.2f  spin %.2f  step %+v",
			rb.Body.Position(), rb.Body.Speed(), rb.Body.AngularVelocity().Len(), rb.LastStep))
	}

	face := fonts.Mono.Get()
	y := screen.Bounds().Dy() - cfg.UI.Margin - debugLineHeight*(len(lines)-1)
	for _, line := range lines {
		text.Draw(screen, line, face, cfg.UI.Margin, y, cfg.Debug.TextColor)
		y += debugLineHeight
	}

	if cfg.Debug.Hitboxes && getOrCreateCamera(ecs).Active == kick.CameraMain {
		drawPitchSpace(ecs, screen)
	}
}

// drawPitchSpace outlines every resolv object in the aim view.
func drawPitchSpace(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := collectScene(ecs, screen)
	if !ok {
		return
	}
	pitchEntry, _ := components.Pitch.First(ecs.World)
	pitch := components.Pitch.Get(pitchEntry).Pitch
	scale := cfg.Pitch.TopDownScale

	for _, obj := range pitch.Space().Objects() {
		x, z, w, d := pitch.WorldBounds(obj)
		tl := topDown(s, x, z+d)

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvGoal) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(tags.ResolvKeeper) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(w*scale), float32(d*scale), 1, c, false)
	}
}
