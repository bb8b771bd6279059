package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds the text the game controller pushes to the screen (singleton).
type HUDData struct {
	Status string
	Prompt string
	Score  string

	// Device-specific text derived each frame from the last input method
	Hint        string
	PromptShown string

	// Banner pops the status text in when it changes
	Banner      *gween.Tween
	BannerScale float32
}

var HUD = donburi.NewComponentType[HUDData]()
