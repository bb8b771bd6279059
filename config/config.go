package config

import (
	"image/color"

	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/shared/sim"
)

// PitchConfig contains pitch asset and rendering configuration
type PitchConfig struct {
	LevelPath string

	// Top-down aim view
	TopDownScale float64 // Screen pixels per world unit
	StripeWidth  float64 // Mowing stripe width in screen pixels

	// Side follow view
	SideScale     float64 // Screen pixels per world unit
	SideHorizonY  float64 // Screen y of the ground line
	SideLookAhead float64 // World units the camera leads the ball by

	GrassLight  color.RGBA
	GrassDark   color.RGBA
	LineColor   color.RGBA
	GoalColor   color.RGBA
	NetColor    color.RGBA
	BallColor   color.RGBA
	MarkerColor color.RGBA
	KeeperColor color.RGBA
	SkyColor    color.RGBA
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HUDFontSize    float64
	BannerFontSize float64
	DebugFontSize  float64
	Margin         int

	HUDTextColor    color.RGBA
	ScoredColor     color.RGBA
	MissedColor     color.RGBA
	PromptColor     color.RGBA
	BannerPopFrames float32 // Tween length of the status banner pop-in
	BannerStartSize float32 // Scale the banner pops in from
	ScoreLabel      string

	// Controls line per device; KickKeyLabel in prompts is swapped for
	// the pad's kick button
	ControlsHint     string
	XboxHint         string
	PlayStationHint  string
	KickKeyLabel     string
	XboxKickLabel    string
	PlayStationLabel string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	BlendFrames     float32 // Tween length when switching views
	FollowSmoothing float64 // How fast the side camera follows the ball (0.0-1.0)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool `env:"DEBUG"` // Aim readout and core transition logging
	Hitboxes  bool `env:"DEBUG_HITBOXES"`
	TextColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width    int    `env:"WIDTH"`
	Height   int    `env:"HEIGHT"`
	Title    string `env:"TITLE"`
	TickRate int    `env:"TICK_RATE"`
}

// Global configuration instances
var C *Config
var Kick kick.Config
var Body sim.BodyParams
var Pitch PitchConfig
var UI UIConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		Title:    "Penalty Kick",
		TickRate: 60,
	}

	Kick = kick.DefaultConfig()

	Body = sim.DefaultBodyParams()
	Body.Gravity = Kick.Gravity

	Pitch = PitchConfig{
		LevelPath: "levels/pitch.tmx",

		TopDownScale: 8,
		StripeWidth:  24,

		SideScale:     24,
		SideHorizonY:  300,
		SideLookAhead: 4,

		GrassLight:  color.RGBA{R: 70, G: 150, B: 60, A: 255},
		GrassDark:   color.RGBA{R: 58, G: 130, B: 50, A: 255},
		LineColor:   White,
		GoalColor:   White,
		NetColor:    color.RGBA{R: 220, G: 220, B: 220, A: 120},
		BallColor:   White,
		MarkerColor: Orange,
		KeeperColor: color.RGBA{R: 230, G: 200, B: 30, A: 255},
		SkyColor:    color.RGBA{R: 120, G: 170, B: 230, A: 255},
	}

	UI = UIConfig{
		HUDFontSize:     14,
		BannerFontSize:  36,
		DebugFontSize:   12,
		Margin:          8,
		HUDTextColor:    White,
		ScoredColor:     BrightGreen,
		MissedColor:     LightRed,
		PromptColor:     BrightYellow,
		BannerPopFrames: 20,
		BannerStartSize: 2.5,
		ScoreLabel:      "Score: ",
		ControlsHint:    "W/S height  A/D aim  SPACE kick  ESC quit",

		XboxHint:         "Stick/D-Pad: Aim   A: Kick   Back: Quit",
		PlayStationHint:  "Stick/D-Pad: Aim   Cross: Kick   Share: Quit",
		KickKeyLabel:     "SPACEBAR",
		XboxKickLabel:    "A",
		PlayStationLabel: "CROSS",
	}

	Camera = CameraConfig{
		BlendFrames:     30,
		FollowSmoothing: 0.15,
	}

	Debug = DebugConfig{
		TextColor: Yellow,
	}
}
