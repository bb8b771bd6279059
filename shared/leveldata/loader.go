package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// ErrMissingObject is returned when a pitch map lacks a required object.
var ErrMissingObject = errors.New("missing pitch object")

const pitchGroup = "Pitch"

// LoadPitch parses a TMX file and returns the pitch layout. It takes an fs.FS
// so callers can pass embed.FS (client) or os.DirFS (headless simulator).
func LoadPitch(fsys fs.FS, tmxPath string) (*PitchData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile width %d", tmxPath, levelMap.TileWidth)
	}

	objects := make(map[string]*tiled.Object)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != pitchGroup {
			continue
		}
		for _, o := range og.Objects {
			objects[o.Name] = o
		}
	}
	for _, name := range []string{"ball", "marker", "goal", "goalie"} {
		if objects[name] == nil {
			return nil, fmt.Errorf("load TMX %s: %w %q", tmxPath, ErrMissingObject, name)
		}
	}

	unit := float64(levelMap.TileWidth)
	spot := objects["ball"]
	// World coordinates relative to the ball spot, in tiles.
	toWorld := func(px, py, height float64) mgl64.Vec3 {
		return mgl64.Vec3{(px - spot.X) / unit, height, (spot.Y - py) / unit}
	}

	mapW := levelMap.Width * levelMap.TileWidth
	mapH := levelMap.Height * levelMap.TileHeight
	data := &PitchData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  mapW,
		MapHeight: mapH,
		UnitPx:    unit,
		Ball:      toWorld(spot.X, spot.Y, spot.Properties.GetFloat("height")),
		HalfWidth: max(spot.X, float64(mapW)-spot.X) / unit,
		Back:      (float64(mapH) - spot.Y) / unit,
		Length:    spot.Y / unit,
	}

	m := objects["marker"]
	data.Marker = toWorld(m.X, m.Y, m.Properties.GetFloat("height"))
	g := objects["goalie"]
	data.Goalie = toWorld(g.X, g.Y, g.Properties.GetFloat("height"))

	goal := objects["goal"]
	if goal.Width <= 0 || goal.Height <= 0 {
		return nil, fmt.Errorf("load TMX %s: goal must be a rectangle", tmxPath)
	}
	crossbar := goal.Properties.GetFloat("height")
	if crossbar <= 0 {
		return nil, fmt.Errorf("load TMX %s: goal height %v", tmxPath, crossbar)
	}
	left := toWorld(goal.X, goal.Y+goal.Height, 0)
	data.Goal = GoalRect{
		CenterX:   left.X() + goal.Width/unit/2,
		HalfWidth: goal.Width / unit / 2,
		Line:      left.Z(),
		Depth:     goal.Height / unit,
		Height:    crossbar,
	}

	return data, nil
}

// LoadAllPitches discovers all .tmx files in dir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllPitches(fsys fs.FS, dir string) (map[string]*PitchData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	pitches := make(map[string]*PitchData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadPitch(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		pitches[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return pitches, names, nil
}
