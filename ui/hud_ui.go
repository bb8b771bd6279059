package ui

import (
	"bytes"

	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDUI shows the score, the controller prompt and the controls hint.
type HUDUI struct {
	UI *ebitenui.UI

	scoreLabel  *widget.Label
	promptLabel *widget.Label
	hintLabel   *widget.Label

	face      text.Face
	smallFace text.Face
}

// NewHUDUI builds the overlay. It panics if the bundled font fails to parse.
func NewHUDUI() *HUDUI {
	h := &HUDUI{}
	h.loadFonts()
	h.buildUI()
	return h
}

func (h *HUDUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	h.face = &text.GoTextFace{Source: fontSource, Size: cfg.UI.HUDFontSize}
	h.smallFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.HUDFontSize - 4}
}

func (h *HUDUI) buildUI() {
	// Transparent root so the pitch shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.Margin)),
		)),
	)

	topLeft := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.UI.ScoreLabel+"0", &h.face, &widget.LabelColor{
			Idle: cfg.UI.HUDTextColor,
		}),
	)
	topLeft.AddChild(h.scoreLabel)

	h.promptLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.face, &widget.LabelColor{
			Idle: cfg.UI.PromptColor,
		}),
	)
	topLeft.AddChild(h.promptLabel)
	rootContainer.AddChild(topLeft)

	bottom := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	h.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.UI.ControlsHint, &h.smallFace, &widget.LabelColor{
			Idle: cfg.UI.HUDTextColor,
		}),
	)
	bottom.AddChild(h.hintLabel)
	rootContainer.AddChild(bottom)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update copies the HUD component text into the labels and updates the UI.
func (h *HUDUI) Update(hud *components.HUDData) {
	if hud != nil {
		if hud.Score != "" {
			h.scoreLabel.Label = cfg.UI.ScoreLabel + hud.Score
		}
		h.promptLabel.Label = hud.PromptShown
		if hud.Hint != "" {
			h.hintLabel.Label = hud.Hint
		}
	}
	h.UI.Update()
}

func (h *HUDUI) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
