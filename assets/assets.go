package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/penaltykick/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelFS exposes the embedded levels for the headless simulator.
func LevelFS() fs.FS {
	return assetFS
}

// MustLoadPitch parses an embedded pitch map, panicking on malformed assets.
func MustLoadPitch(path string) *leveldata.PitchData {
	data, err := leveldata.LoadPitch(assetFS, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load pitch %s: %v", path, err))
	}
	return data
}
