package systems

import (
	"image/color"
	stdmath "math"

	"github.com/automoto/penaltykick/assets"
	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/automoto/penaltykick/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	sideView   *ebiten.Image
	sideDrawOp = &ebiten.DrawImageOptions{}
)

// scene is everything the pitch renderers need for one frame.
type scene struct {
	layout  sim.Layout
	ball    mgl64.Vec3
	radius  float64
	keeper  mgl64.Vec3
	marker  components.MarkerData
	camera  *components.CameraData
	screenW float64
	screenH float64
}

// DrawPitch renders the top-down aim view, the side follow view, or a
// crossfade of both while the camera blend runs.
func DrawPitch(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := collectScene(ecs, screen)
	if !ok {
		return
	}

	blend := s.camera.BlendPos
	if blend < 1 {
		drawTopDown(screen, s)
	}
	if blend <= 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sideView == nil || sideView.Bounds().Dx() != w || sideView.Bounds().Dy() != h {
		sideView = ebiten.NewImage(w, h)
	}
	sideView.Clear()
	drawSide(sideView, s)

	sideDrawOp.ColorScale.Reset()
	sideDrawOp.ColorScale.ScaleAlpha(blend)
	screen.DrawImage(sideView, sideDrawOp)
}

func collectScene(ecs *ecs.ECS, screen *ebiten.Image) (scene, bool) {
	pitchEntry, ok := components.Pitch.First(ecs.World)
	if !ok {
		return scene{}, false
	}
	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return scene{}, false
	}
	goalieEntry, ok := tags.Goalie.First(ecs.World)
	if !ok {
		return scene{}, false
	}

	body := components.RigidBody.Get(ballEntry).Body
	return scene{
		layout:  components.Pitch.Get(pitchEntry).Pitch.Layout(),
		ball:    body.Position(),
		radius:  body.Params().Radius,
		keeper:  components.Goalie.Get(goalieEntry).Keeper.Position(),
		marker:  *getOrCreateMarker(ecs),
		camera:  getOrCreateCamera(ecs),
		screenW: float64(screen.Bounds().Dx()),
		screenH: float64(screen.Bounds().Dy()),
	}, true
}

// topDown maps ground-plane world (x, z) to aim view screen space.
func topDown(s scene, x, z float64) math.Vec2 {
	scale := cfg.Pitch.TopDownScale
	return math.Vec2{
		X: s.screenW/2 + x*scale,
		Y: s.screenH - (z+s.layout.Back)*scale,
	}
}

// side maps world (z, y) to follow view screen space.
func side(s scene, z, y float64) math.Vec2 {
	scale := cfg.Pitch.SideScale
	return math.Vec2{
		X: s.screenW/2 + (z-s.camera.Follow.X)*scale,
		Y: cfg.Pitch.SideHorizonY - y*scale,
	}
}

func drawTopDown(screen *ebiten.Image, s scene) {
	// Anchor the stripes to the near touch line
	drawGrass(screen, float32(stdmath.Mod(s.screenH, cfg.Pitch.StripeWidth)))

	l := s.layout
	scale := float32(cfg.Pitch.TopDownScale)
	line := cfg.Pitch.LineColor

	// Touch lines and goal line
	tl := topDown(s, -l.HalfWidth, l.Length)
	vector.StrokeRect(screen, float32(tl.X), float32(tl.Y),
		float32(2*l.HalfWidth)*scale, float32(l.Length+l.Back)*scale, 2, line, false)
	gl := topDown(s, -l.HalfWidth, l.GoalLine)
	vector.StrokeLine(screen, float32(gl.X), float32(gl.Y),
		float32(gl.X)+float32(2*l.HalfWidth)*scale, float32(gl.Y), 2, line, false)

	// Penalty area, 16.5 deep and 40.3 wide
	pa := topDown(s, l.GoalCenterX-20.15, l.GoalLine)
	vector.StrokeRect(screen, float32(pa.X), float32(pa.Y),
		40.3*scale, 16.5*scale, 1, line, false)

	// Goal and net
	net := topDown(s, l.GoalCenterX-l.GoalHalfWidth, l.GoalLine+l.GoalDepth)
	gw, gd := float32(2*l.GoalHalfWidth)*scale, float32(l.GoalDepth)*scale
	vector.DrawFilledRect(screen, float32(net.X), float32(net.Y), gw, gd, cfg.Pitch.NetColor, false)
	vector.StrokeRect(screen, float32(net.X), float32(net.Y), gw, gd, 2, cfg.Pitch.GoalColor, false)

	// Keeper
	k := topDown(s, s.keeper.X()-l.KeeperHalfWidth, s.keeper.Z()+l.KeeperDepth/2)
	vector.DrawFilledRect(screen, float32(k.X), float32(k.Y),
		float32(2*l.KeeperHalfWidth)*scale, float32(l.KeeperDepth)*scale, cfg.Pitch.KeeperColor, false)

	// Aim line and marker
	ball := topDown(s, s.ball.X(), s.ball.Z())
	if s.marker.Visible {
		m := topDown(s, s.marker.Position.X(), s.marker.Position.Z())
		vector.StrokeLine(screen, float32(ball.X), float32(ball.Y), float32(m.X), float32(m.Y), 1, cfg.Pitch.MarkerColor, false)
		// Marker grows with target height
		r := float32(3 + s.marker.Position.Y())
		vector.StrokeCircle(screen, float32(m.X), float32(m.Y), r, 2, cfg.Pitch.MarkerColor, false)
	}

	r := float32(stdmath.Max(s.radius*cfg.Pitch.TopDownScale, 3))
	// Lift the ball toward the viewer a little when airborne
	lift := float32(s.ball.Y()-s.radius) * 0.5 * scale
	vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), r, color.RGBA{A: 90}, false)
	vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y)-lift, r, cfg.Pitch.BallColor, false)
}

func drawSide(screen *ebiten.Image, s scene) {
	screen.Fill(cfg.Pitch.SkyColor)
	horizon := float32(cfg.Pitch.SideHorizonY)
	vector.DrawFilledRect(screen, 0, horizon, float32(s.screenW), float32(s.screenH)-horizon, cfg.Pitch.GrassDark, false)

	l := s.layout
	scale := float32(cfg.Pitch.SideScale)

	// Net, posts and crossbar
	post := side(s, l.GoalLine, l.GoalHeight)
	back := side(s, l.GoalLine+l.GoalDepth, 0)
	vector.DrawFilledRect(screen, float32(post.X), float32(post.Y),
		float32(back.X-post.X), float32(back.Y-post.Y), cfg.Pitch.NetColor, false)
	vector.StrokeLine(screen, float32(post.X), float32(post.Y), float32(post.X), horizon, 3, cfg.Pitch.GoalColor, false)
	vector.StrokeLine(screen, float32(post.X), float32(post.Y), float32(back.X), float32(post.Y), 3, cfg.Pitch.GoalColor, false)
	vector.StrokeLine(screen, float32(back.X), float32(post.Y), float32(back.X), horizon, 1, cfg.Pitch.GoalColor, false)

	// Keeper
	k := side(s, s.keeper.Z()-l.KeeperDepth/2, s.keeper.Y()+l.KeeperHeight)
	vector.DrawFilledRect(screen, float32(k.X), float32(k.Y),
		float32(l.KeeperDepth)*scale, float32(l.KeeperHeight)*scale, cfg.Pitch.KeeperColor, false)

	// Distance ticks every 5 units
	for z := 0.0; z <= l.Length; z += 5 {
		p := side(s, z, 0)
		vector.StrokeLine(screen, float32(p.X), horizon, float32(p.X), horizon+6, 1, cfg.Pitch.LineColor, false)
	}

	shadow := side(s, s.ball.Z(), 0)
	b := side(s, s.ball.Z(), s.ball.Y())
	r := float32(s.radius) * scale
	vector.DrawFilledRect(screen, float32(shadow.X)-r, horizon-1, 2*r, 2, color.RGBA{A: 90}, false)
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), r, cfg.Pitch.BallColor, true)
}

// drawGrass paints the mowing stripes, falling back to a flat fill when the
// shader is unavailable.
func drawGrass(screen *ebiten.Image, offset float32) {
	if assets.GrassShader == nil {
		screen.Fill(cfg.Pitch.GrassLight)
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Stripe": float32(cfg.Pitch.StripeWidth),
		"Offset": offset,
		"Light":  colorUniform(cfg.Pitch.GrassLight),
		"Dark":   colorUniform(cfg.Pitch.GrassDark),
	}
	screen.DrawRectShader(w, h, assets.GrassShader, op)
}

func colorUniform(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
