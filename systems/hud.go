package systems

import (
	"strings"

	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var bannerDrawOp = &ebiten.DrawImageOptions{}

// UpdateHUD words the hint and prompt for the last used device and
// advances the status banner pop.
func UpdateHUD(ecs *ecs.ECS) {
	hud := getOrCreateHUD(ecs)
	method := getOrCreateInput(ecs).LastInputMethod
	hud.Hint = getControlsHint(method)
	hud.PromptShown = resolvePrompt(hud.Prompt, method)

	if hud.Banner == nil {
		return
	}
	scale, done := hud.Banner.Update(1)
	hud.BannerScale = scale
	if done {
		hud.Banner = nil
	}
}

// getControlsHint returns the controls line for the input method
func getControlsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return cfg.UI.PlayStationHint
	case components.InputXbox:
		return cfg.UI.XboxHint
	}
	return cfg.UI.ControlsHint
}

// resolvePrompt names the pad's kick button in place of the keyboard key
func resolvePrompt(prompt string, method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return strings.ReplaceAll(prompt, cfg.UI.KickKeyLabel, cfg.UI.PlayStationLabel)
	case components.InputXbox:
		return strings.ReplaceAll(prompt, cfg.UI.KickKeyLabel, cfg.UI.XboxKickLabel)
	}
	return prompt
}

func startBanner(hud *components.HUDData) {
	hud.Banner = gween.New(cfg.UI.BannerStartSize, 1, cfg.UI.BannerPopFrames, ease.OutBounce)
	hud.BannerScale = cfg.UI.BannerStartSize
}

// DrawHUD renders the SCORE / MISSED banner. Score and prompt labels are
// drawn by the scene's ebitenui layer.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := getOrCreateHUD(ecs)
	if hud.Status == "" {
		return
	}

	face := fonts.Banner.Get()
	bounds := text.BoundString(face, hud.Status)
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	clr := cfg.UI.MissedColor
	if hud.Status == cfg.Kick.ScoredStatus {
		clr = cfg.UI.ScoredColor
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bannerDrawOp.GeoM.Reset()
	bannerDrawOp.ColorScale.Reset()
	bannerDrawOp.GeoM.Translate(-float64(bounds.Min.X)-w/2, -float64(bounds.Min.Y)-h/2)
	bannerDrawOp.GeoM.Scale(float64(hud.BannerScale), float64(hud.BannerScale))
	bannerDrawOp.GeoM.Translate(float64(sw)/2, float64(sh)/3)
	bannerDrawOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, hud.Status, face, bannerDrawOp)
}
