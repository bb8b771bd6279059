package components

import (
	"github.com/automoto/penaltykick/shared/sim"
	"github.com/yohamta/donburi"
)

type GoalieData struct {
	Keeper *sim.Keeper
}

var Goalie = donburi.NewComponentType[GoalieData]()
