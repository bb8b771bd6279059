package config

import "github.com/yohamta/donburi/ecs"

// Draw layers, back to front
const (
	Default ecs.LayerID = iota
	HUD
)
