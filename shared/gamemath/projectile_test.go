package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tol = 1e-9

// vecNear compares componentwise, so an exact zero tolerates float noise.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestSolveLaunchReachesApexAndRange(t *testing.T) {
	cases := []struct {
		name     string
		origin   mgl64.Vec3
		target   mgl64.Vec3
		theta    float64
		gravity  float64
		distance float64
	}{
		{"straight", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 5, 25}, 0, 9.81, 25},
		{"low lob", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 25}, 0, 9.81, 25},
		{"high lob", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 10, 25}, 0, 9.81, 25},
		{"turned", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{25 * math.Sin(0.3), 3, 25 * math.Cos(0.3)}, mgl64.RadToDeg(0.3), 9.81, 25},
		{"offset origin", mgl64.Vec3{2, 0, -1}, mgl64.Vec3{2, 4, 9}, 0, 9.81, 10},
		{"short", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 2, 0.5}, 0, 9.81, 0.5},
		{"moon", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 5, 25}, -40, 1.62, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := SolveLaunch(tc.origin, tc.target, tc.theta, tc.gravity)
			if v.Y() <= 0 {
				t.Fatalf("vertical speed = %f, want > 0", v.Y())
			}

			apex := ApexHeight(v.Y(), tc.gravity)
			if !ApproxEqual(apex, tc.target.Y(), 1e-6) {
				t.Errorf("apex = %f, want %f", apex, tc.target.Y())
			}

			horizontal := math.Hypot(v.X(), v.Z())
			tApex := v.Y() / tc.gravity
			if got := horizontal * tApex; !ApproxEqual(got, tc.distance, 1e-6) {
				t.Errorf("distance at apex = %f, want %f", got, tc.distance)
			}

			tLand := FlightTime(v.Y(), tc.gravity)
			landY := tc.origin.Y() + v.Y()*tLand - 0.5*tc.gravity*tLand*tLand
			if !ApproxEqual(landY, tc.origin.Y(), 1e-6) {
				t.Errorf("landing height = %f, want %f", landY, tc.origin.Y())
			}
			if got := horizontal * tLand; !ApproxEqual(got, 2*tc.distance, 1e-6) {
				t.Errorf("range = %f, want %f", got, 2*tc.distance)
			}

			heading := Forward(tc.theta)
			dir := mgl64.Vec3{v.X(), 0, v.Z()}.Normalize()
			if !vecNear(dir, heading, 1e-9) {
				t.Errorf("heading = %v, want %v", dir, heading)
			}
		})
	}
}

func TestSolveLaunchScenarioH5D25(t *testing.T) {
	v := SolveLaunch(mgl64.Vec3{}, mgl64.Vec3{0, 5, 25}, 0, 9.81)

	if v.Y() <= 0 {
		t.Fatalf("vertical speed = %f, want > 0", v.Y())
	}
	if math.Abs(v.X()) > tol {
		t.Errorf("sideways speed = %f, want 0", v.X())
	}
	flight := FlightTime(v.Y(), 9.81)
	if got := v.Z() * flight; math.Abs(got-50) > 1e-6 {
		t.Errorf("range = %f, want 50", got)
	}
	if got := v.Y(); math.Abs(got-math.Sqrt(2*9.81*5)) > tol {
		t.Errorf("vy = %f, want sqrt(2gH)", got)
	}
}

func TestForward(t *testing.T) {
	cases := []struct {
		theta float64
		want  mgl64.Vec3
	}{
		{0, mgl64.Vec3{0, 0, 1}},
		{90, mgl64.Vec3{1, 0, 0}},
		{-90, mgl64.Vec3{-1, 0, 0}},
		{180, mgl64.Vec3{0, 0, -1}},
		{360 + 90, mgl64.Vec3{1, 0, 0}},
		{-180, mgl64.Vec3{0, 0, -1}},
		{270, mgl64.Vec3{-1, 0, 0}},
	}
	for _, tc := range cases {
		if got := Forward(tc.theta); !vecNear(got, tc.want, 1e-9) {
			t.Errorf("Forward(%v) = %v, want %v", tc.theta, got, tc.want)
		}
	}
}

func TestHorizontalDistanceIgnoresHeight(t *testing.T) {
	got := HorizontalDistance(mgl64.Vec3{0, 0.15, 0}, mgl64.Vec3{3, 9, 4})
	if !ApproxEqual(got, 5, tol) {
		t.Errorf("HorizontalDistance = %f, want 5", got)
	}
}

func TestScalarHelpers(t *testing.T) {
	if got := Clamp(11, 1, 10); got != 10 {
		t.Errorf("Clamp high = %f", got)
	}
	if got := Clamp(-3, 1, 10); got != 1 {
		t.Errorf("Clamp low = %f", got)
	}
	if got := Lerp(0, 10, 0.8); !ApproxEqual(got, 8, tol) {
		t.Errorf("Lerp = %f, want 8", got)
	}
	if got := ApplyFriction(0.5, 1); got != 0 {
		t.Errorf("ApplyFriction small = %f, want 0", got)
	}
	if got := ApplyFriction(-3, 1); got != -2 {
		t.Errorf("ApplyFriction negative = %f, want -2", got)
	}
}
