// Package leveldata provides TMX pitch parsing shared by the game client and
// the headless simulator. It has no dependency on ebitengine or donburi.
package leveldata

import (
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/go-gl/mathgl/mgl64"
)

// PitchData holds the world-space layout parsed from a pitch TMX file.
// The penalty spot is the world origin; Tiled's downward y maps to -z.
type PitchData struct {
	Name      string
	MapWidth  int // Pixels
	MapHeight int
	UnitPx    float64 // Pixels per world unit (one tile)

	Ball   mgl64.Vec3
	Marker mgl64.Vec3
	Goalie mgl64.Vec3
	Goal   GoalRect

	HalfWidth float64
	Back      float64
	Length    float64
}

// GoalRect is the goal mouth: the sensor footprint plus the crossbar height.
type GoalRect struct {
	CenterX   float64
	HalfWidth float64
	Line      float64 // z of the goal line
	Depth     float64
	Height    float64
}

// Center returns the point the game measures shot distance against.
func (g GoalRect) Center() mgl64.Vec3 {
	return mgl64.Vec3{g.CenterX, g.Height / 2, g.Line}
}

// Apply overwrites the spawn points and goal geometry in cfg.
func (p *PitchData) Apply(cfg *kick.Config) {
	cfg.BallSpawn = p.Ball
	cfg.MarkerSpawn = p.Marker
	cfg.GoalieSpawn = p.Goalie
	cfg.GoalCenter = p.Goal.Center()
	cfg.GoalHalfWidth = p.Goal.HalfWidth
}

// Layout returns the physics layout, keeping keeper and bounce tuning from
// sim.DefaultLayout.
func (p *PitchData) Layout() sim.Layout {
	l := sim.DefaultLayout()
	l.HalfWidth = p.HalfWidth
	l.Back = p.Back
	l.Length = p.Length
	l.GoalLine = p.Goal.Line
	l.GoalCenterX = p.Goal.CenterX
	l.GoalHalfWidth = p.Goal.HalfWidth
	l.GoalHeight = p.Goal.Height
	l.GoalDepth = p.Goal.Depth
	if p.UnitPx > 0 {
		l.UnitPx = p.UnitPx
	}
	return l
}
