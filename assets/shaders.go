package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GrassShader paints mowing stripes across the pitch
	GrassShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	grassSrc, err := shaderFS.ReadFile("shaders/grass.kage")
	if err != nil {
		return err
	}
	GrassShader, err = ebiten.NewShader(grassSrc)
	if err != nil {
		return err
	}

	return nil
}
