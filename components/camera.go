package components

import (
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Active kick.CameraID
	// Blend runs from 0 (aim view) to 1 (follow view) or back when Active changes
	Blend    *gween.Tween
	BlendPos float32
	// Follow is the side view focus in world (z, y)
	Follow math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
