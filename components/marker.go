package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MarkerData is the aim target the player moves before the kick.
type MarkerData struct {
	Position mgl64.Vec3
	Visible  bool
}

var Marker = donburi.NewComponentType[MarkerData]()
