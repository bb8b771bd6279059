package tags

import "github.com/yohamta/donburi"

var (
	Ball   = donburi.NewTag().SetName("Ball")
	Marker = donburi.NewTag().SetName("Marker")
	Goalie = donburi.NewTag().SetName("Goalie")
	Pitch  = donburi.NewTag().SetName("Pitch")
)

// Resolv tags for physics collision
const (
	ResolvBall   = "ball"
	ResolvGoal   = "goal"
	ResolvKeeper = "keeper"
)
