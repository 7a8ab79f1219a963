package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world meters
// Y is up; the floor plan lives on the XZ plane
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// Flat drops the vertical component
func Flat(v Vec3F) Vec3F {
	return Vec3F{X: v.X, Z: v.Z}
}

// DistSqXZ returns squared horizontal distance, no sqrt for per-frame proximity checks
func DistSqXZ(ax, az, bx, bz float64) float64 {
	dx := ax - bx
	dz := az - bz
	return dx*dx + dz*dz
}

// RotateXZ rotates (x, z) by angle radians, counter-clockwise seen from above with Z pointing down-screen
func RotateXZ(x, z, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - z*sin, x*sin + z*cos
}
