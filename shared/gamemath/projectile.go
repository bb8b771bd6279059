package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward returns the horizontal facing for a yaw of thetaDeg degrees.
// Zero faces +Z, positive angles turn toward +X.
func Forward(thetaDeg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(thetaDeg)
	return mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}
}

// HorizontalDistance returns the distance between a and b on the ground plane.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	dx := b.X() - a.X()
	dz := b.Z() - a.Z()
	return math.Sqrt(dx*dx + dz*dz)
}

// SolveLaunch returns the initial velocity that carries a projectile from origin
// over a range of twice the horizontal origin-target distance while peaking
// target.Y above the launch point, heading along thetaDeg.
//
//	H = V² sin²φ / 2g
//	R = 2V² cosφ sinφ / g
//	φ = atan(4H / R), V = sqrt(2gH) / sin φ
//
// Callers must ensure target.Y > 0, gravity > 0 and a non-degenerate distance.
func SolveLaunch(origin, target mgl64.Vec3, thetaDeg, gravity float64) mgl64.Vec3 {
	maxHeight := target.Y()
	launchRange := 2 * HorizontalDistance(origin, target)
	phi := math.Atan((4 * maxHeight) / launchRange)

	speed := math.Sqrt(2*gravity*maxHeight) / math.Sin(phi)
	rot := mgl64.DegToRad(thetaDeg)

	return mgl64.Vec3{
		speed * math.Cos(phi) * math.Sin(rot),
		speed * math.Sin(phi),
		speed * math.Cos(phi) * math.Cos(rot),
	}
}

// FlightTime returns how long a projectile launched with vertical speed vy
// takes to come back to its launch height.
func FlightTime(vy, gravity float64) float64 {
	return 2 * vy / gravity
}

// ApexHeight returns the peak rise above the launch point for vertical speed vy.
func ApexHeight(vy, gravity float64) float64 {
	return vy * vy / (2 * gravity)
}
