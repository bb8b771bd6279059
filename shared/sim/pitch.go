package sim

import (
	"math"

	"github.com/automoto/penaltykick/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Layout describes the pitch in world units. The ground plane is (x, z)
// with the goal at positive z; y is up.
type Layout struct {
	HalfWidth float64 // Pitch spans x in [-HalfWidth, HalfWidth]
	Back      float64 // Pitch spans z in [-Back, Length]
	Length    float64

	GoalLine      float64 // z of the goal mouth
	GoalCenterX   float64
	GoalHalfWidth float64
	GoalHeight    float64 // Crossbar
	GoalDepth     float64 // Net sits at GoalLine+GoalDepth

	KeeperHalfWidth float64
	KeeperHeight    float64
	KeeperDepth     float64

	SaveRestitution float64 // Fraction of forward speed returned by a save
	NetRestitution  float64

	UnitPx float64 // Collision space pixels per world unit
}

// DefaultLayout matches the default kick.Config goal and keeper.
func DefaultLayout() Layout {
	return Layout{
		HalfWidth:       30,
		Back:            5,
		Length:          40,
		GoalLine:        33,
		GoalHalfWidth:   3.66,
		GoalHeight:      2.44,
		GoalDepth:       2,
		KeeperHalfWidth: 0.5,
		KeeperHeight:    1.9,
		KeeperDepth:     0.8,
		SaveRestitution: 0.4,
		NetRestitution:  0.1,
		UnitPx:          16,
	}
}

// StepResult reports what the ball touched during a Step.
type StepResult struct {
	InGoal bool // Ball center inside the goal mouth, under the bar
	Saved  bool // Keeper blocked the ball
	Netted bool // Ball hit the back of the net
}

// Pitch wraps a resolv space holding the goal sensor and keeper box.
// Objects live in space coordinates: world x and z shifted to be positive,
// then scaled to pixels so every object spans at least one cell.
type Pitch struct {
	layout Layout
	unit   float64
	space  *resolv.Space
	ball   *resolv.Object
	sensor *resolv.Object
	keeper *resolv.Object
	radius float64
}

// NewPitch builds the collision space for a ball of the given radius.
func NewPitch(layout Layout, ballRadius float64) *Pitch {
	unit := layout.UnitPx
	if unit <= 0 {
		unit = DefaultLayout().UnitPx
	}
	d := 2 * ballRadius * unit
	gw, gd := 2*layout.GoalHalfWidth*unit, layout.GoalDepth*unit
	kw, kd := 2*layout.KeeperHalfWidth*unit, layout.KeeperDepth*unit

	// Cells no larger than the smallest object, which then always
	// occupies at least one of them.
	cell := max(1, int(math.Floor(min(d, gw, gd, kw, kd))))
	w := int(math.Ceil(2 * layout.HalfWidth * unit))
	h := int(math.Ceil((layout.Back + layout.Length) * unit))
	p := &Pitch{
		layout: layout,
		unit:   unit,
		space:  resolv.NewSpace(w, h, cell, cell),
		radius: ballRadius,
	}

	p.ball = resolv.NewObject(0, 0, d, d, tags.ResolvBall)
	p.ball.SetShape(resolv.NewRectangle(0, 0, d, d))

	gx, gy := p.toSpace(layout.GoalCenterX-layout.GoalHalfWidth, layout.GoalLine)
	p.sensor = resolv.NewObject(gx, gy, gw, gd, tags.ResolvGoal)
	p.sensor.SetShape(resolv.NewRectangle(0, 0, gw, gd))

	p.keeper = resolv.NewObject(0, 0, kw, kd, tags.ResolvKeeper)
	p.keeper.SetShape(resolv.NewRectangle(0, 0, kw, kd))

	p.space.Add(p.ball, p.sensor, p.keeper)
	return p
}

func (p *Pitch) Layout() Layout { return p.layout }

// Space exposes the collision space for debug drawing.
func (p *Pitch) Space() *resolv.Space { return p.space }

func (p *Pitch) toSpace(x, z float64) (float64, float64) {
	return (x + p.layout.HalfWidth) * p.unit, (z + p.layout.Back) * p.unit
}

// ToWorld converts space coordinates back to world x and z.
func (p *Pitch) ToWorld(sx, sy float64) (float64, float64) {
	return sx/p.unit - p.layout.HalfWidth, sy/p.unit - p.layout.Back
}

// WorldBounds returns an object's near corner in world x and z with its
// width and depth in world units.
func (p *Pitch) WorldBounds(obj *resolv.Object) (x, z, w, d float64) {
	x, z = p.ToWorld(obj.X, obj.Y)
	return x, z, obj.W / p.unit, obj.H / p.unit
}

// Contains reports whether a world position lies over the pitch.
func (p *Pitch) Contains(pos mgl64.Vec3) bool {
	return math.Abs(pos.X()) < p.layout.HalfWidth &&
		pos.Z() > -p.layout.Back && pos.Z() < p.layout.Length
}

// Step advances the body by dt, sub-stepping so the ball never moves more
// than its radius between collision checks.
func (p *Pitch) Step(body *Body, keeperPos mgl64.Vec3, dt float64) StepResult {
	var res StepResult
	if dt <= 0 {
		return res
	}

	steps := 1
	if travel := body.Speed() * dt; travel > p.radius {
		steps = int(math.Ceil(travel / p.radius))
	}
	sub := dt / float64(steps)

	p.placeKeeper(keeperPos)
	for i := 0; i < steps; i++ {
		body.Step(sub)
		r := p.collide(body, keeperPos)
		res.InGoal = res.InGoal || r.InGoal
		res.Saved = res.Saved || r.Saved
		res.Netted = res.Netted || r.Netted
	}
	return res
}

func (p *Pitch) placeKeeper(pos mgl64.Vec3) {
	x, y := p.toSpace(pos.X()-p.layout.KeeperHalfWidth, pos.Z()-p.layout.KeeperDepth/2)
	p.keeper.X = x
	p.keeper.Y = y
	p.keeper.Update()
}

func (p *Pitch) collide(body *Body, keeperPos mgl64.Vec3) StepResult {
	var res StepResult
	pos := body.Position()
	if !p.Contains(pos) {
		return res
	}

	x, y := p.toSpace(pos.X()-p.radius, pos.Z()-p.radius)
	p.ball.X = x
	p.ball.Y = y
	p.ball.Update()

	check := p.ball.Check(0, 0, tags.ResolvKeeper, tags.ResolvGoal)
	if check == nil {
		return res
	}

	// Check is cell-level; confirm real overlap before reacting.
	if keepers := check.ObjectsByTags(tags.ResolvKeeper); len(keepers) > 0 && p.overlaps(p.keeper) {
		if pos.Y()-p.radius < keeperPos.Y()+p.layout.KeeperHeight && body.Velocity().Z() > 0 {
			p.save(body, keeperPos)
			res.Saved = true
			return res
		}
	}

	if goals := check.ObjectsByTags(tags.ResolvGoal); len(goals) > 0 && p.inMouth(pos) {
		res.InGoal = true
		back := p.layout.GoalLine + p.layout.GoalDepth - p.radius
		if pos.Z() > back {
			vel := body.Velocity()
			body.SetPosition(mgl64.Vec3{pos.X(), pos.Y(), back})
			body.SetVelocity(mgl64.Vec3{vel.X() * 0.5, vel.Y(), -vel.Z() * p.layout.NetRestitution})
			res.Netted = true
		}
	}
	return res
}

func (p *Pitch) overlaps(obj *resolv.Object) bool {
	return p.ball.X < obj.X+obj.W && p.ball.X+p.ball.W > obj.X &&
		p.ball.Y < obj.Y+obj.H && p.ball.Y+p.ball.H > obj.Y
}

// inMouth checks the ball center is behind the line, between the posts and
// under the bar.
func (p *Pitch) inMouth(pos mgl64.Vec3) bool {
	l := p.layout
	return pos.Z() >= l.GoalLine &&
		math.Abs(pos.X()-l.GoalCenterX) <= l.GoalHalfWidth &&
		pos.Y() < l.GoalHeight
}

func (p *Pitch) save(body *Body, keeperPos mgl64.Vec3) {
	pos := body.Position()
	vel := body.Velocity()
	front := keeperPos.Z() - p.layout.KeeperDepth/2 - p.radius
	body.SetPosition(mgl64.Vec3{pos.X(), pos.Y(), math.Min(pos.Z(), front)})
	body.SetVelocity(mgl64.Vec3{vel.X(), vel.Y(), -vel.Z() * p.layout.SaveRestitution})
}
