package sim

import "github.com/go-gl/mathgl/mgl64"

// Keeper is the goalkeeper transform. The game controller moves it; the
// pitch reads it to block shots.
type Keeper struct {
	pos mgl64.Vec3
}

func NewKeeper(pos mgl64.Vec3) *Keeper {
	return &Keeper{pos: pos}
}

func (k *Keeper) Position() mgl64.Vec3     { return k.pos }
func (k *Keeper) SetPosition(p mgl64.Vec3) { k.pos = p }
