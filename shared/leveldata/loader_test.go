package leveldata

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/penaltykick/shared/kick"
	"github.com/go-gl/mathgl/mgl64"
)

const testPitch = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="30" tilewidth="10" tileheight="10" infinite="0" nextlayerid="2" nextobjectid="5">
 <objectgroup id="1" name="Pitch">
  <object id="1" name="ball" x="100" y="250">
   <properties><property name="height" type="float" value="0.2"/></properties>
   <point/>
  </object>
  <object id="2" name="marker" x="100" y="100">
   <properties><property name="height" type="float" value="2"/></properties>
   <point/>
  </object>
  <object id="3" name="goal" x="70" y="20" width="60" height="10">
   <properties><property name="height" type="float" value="2"/></properties>
  </object>
  %GOALIE%
 </objectgroup>
</map>`

const goalieObject = `<object id="4" name="goalie" x="110" y="30"><point/></object>`

func pitchFS(goalie string) fstest.MapFS {
	return fstest.MapFS{
		"levels/small.tmx": {Data: []byte(strings.Replace(testPitch, "%GOALIE%", goalie, 1))},
	}
}

func near(a, b mgl64.Vec3) bool {
	return nearTol(a, b, 1e-9)
}

func nearTol(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestLoadPitchConvertsToWorld(t *testing.T) {
	data, err := LoadPitch(pitchFS(goalieObject), "levels/small.tmx")
	if err != nil {
		t.Fatalf("LoadPitch: %v", err)
	}

	if data.Name != "small" || data.UnitPx != 10 {
		t.Errorf("name=%q unit=%v", data.Name, data.UnitPx)
	}
	if want := (mgl64.Vec3{0, 0.2, 0}); !near(data.Ball, want) {
		t.Errorf("ball = %v, want %v", data.Ball, want)
	}
	if want := (mgl64.Vec3{0, 2, 15}); !near(data.Marker, want) {
		t.Errorf("marker = %v, want %v", data.Marker, want)
	}
	if want := (mgl64.Vec3{1, 0, 22}); !near(data.Goalie, want) {
		t.Errorf("goalie = %v, want %v", data.Goalie, want)
	}

	g := data.Goal
	if math.Abs(g.CenterX) > 1e-9 || g.HalfWidth != 3 || g.Line != 22 || g.Depth != 1 || g.Height != 2 {
		t.Errorf("goal = %+v", g)
	}
	if data.HalfWidth != 10 || data.Back != 5 || data.Length != 25 {
		t.Errorf("extents = %v/%v/%v", data.HalfWidth, data.Back, data.Length)
	}
}

func TestLoadPitchErrors(t *testing.T) {
	if _, err := LoadPitch(pitchFS(""), "levels/small.tmx"); !errors.Is(err, ErrMissingObject) {
		t.Errorf("missing goalie: err = %v", err)
	}
	if _, err := LoadPitch(pitchFS(goalieObject), "levels/none.tmx"); err == nil {
		t.Error("missing file: want error")
	}
}

func TestPitchDataFeedsConfigAndLayout(t *testing.T) {
	data, err := LoadPitch(pitchFS(goalieObject), "levels/small.tmx")
	if err != nil {
		t.Fatalf("LoadPitch: %v", err)
	}

	cfg := kick.DefaultConfig()
	data.Apply(&cfg)
	if !near(cfg.GoalCenter, mgl64.Vec3{0, 1, 22}) || cfg.GoalHalfWidth != 3 {
		t.Errorf("goal in config = %v ±%v", cfg.GoalCenter, cfg.GoalHalfWidth)
	}
	if cfg.BallSpawn != data.Ball || cfg.MarkerSpawn != data.Marker || cfg.GoalieSpawn != data.Goalie {
		t.Error("spawns not copied")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("applied config invalid: %v", err)
	}

	l := data.Layout()
	if l.GoalLine != 22 || l.GoalDepth != 1 || l.GoalHeight != 2 || l.Length != 25 || l.UnitPx != 10 {
		t.Errorf("layout = %+v", l)
	}
}

func TestLoadAllPitchesFromAssets(t *testing.T) {
	pitches, names, err := LoadAllPitches(os.DirFS("../../assets"), "levels")
	if err != nil {
		t.Fatalf("LoadAllPitches: %v", err)
	}
	if len(names) == 0 || names[0] != "pitch" {
		t.Fatalf("names = %v", names)
	}

	// The shipped pitch matches the built-in defaults.
	p := pitches["pitch"]
	cfg := kick.DefaultConfig()
	for name, pair := range map[string][2]mgl64.Vec3{
		"ball":   {p.Ball, cfg.BallSpawn},
		"marker": {p.Marker, cfg.MarkerSpawn},
		"goalie": {p.Goalie, cfg.GoalieSpawn},
		"goal":   {p.Goal.Center(), cfg.GoalCenter},
	} {
		if !nearTol(pair[0], pair[1], 1e-6) {
			t.Errorf("%s = %v, want %v", name, pair[0], pair[1])
		}
	}
	if math.Abs(p.Goal.HalfWidth-cfg.GoalHalfWidth) > 1e-6 {
		t.Errorf("goal half width = %v", p.Goal.HalfWidth)
	}
}

func TestLoadAllPitchesEmptyDir(t *testing.T) {
	if _, _, err := LoadAllPitches(fstest.MapFS{}, "levels"); err == nil {
		t.Error("want error for empty dir")
	}
}
