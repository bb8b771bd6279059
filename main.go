package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/fonts"
	"github.com/automoto/penaltykick/scenes"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Err() error
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPitchScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if err := g.scene.Err(); err != nil {
		if errors.Is(err, kick.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "show the aim readout and log controller transitions")
	hitboxes := flag.Bool("hitboxes", false, "outline collision objects (implies -debug)")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	// Flags win over the environment
	if *debug || *hitboxes {
		config.Debug.Enabled = true
	}
	if *hitboxes {
		config.Debug.Hitboxes = true
	}

	if err := fonts.LoadDefaults(config.UI.BannerFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetTPS(config.C.TickRate)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
