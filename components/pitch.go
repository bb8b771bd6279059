package components

import (
	"github.com/automoto/penaltykick/shared/leveldata"
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/yohamta/donburi"
)

// PitchData stores the loaded layout and its collision space (singleton).
type PitchData struct {
	Layout *leveldata.PitchData
	Pitch  *sim.Pitch
}

var Pitch = donburi.NewComponentType[PitchData]()
