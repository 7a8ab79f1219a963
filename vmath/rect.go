package vmath

import "math"

// Rect is an axis-aligned box on the XZ plane stored as min/max corners
type Rect struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// RectCentered builds a Rect from a center and full extents
func RectCentered(x, z, w, h float64) Rect {
	return Rect{
		MinX: x - w/2,
		MinZ: z - h/2,
		MaxX: x + w/2,
		MaxZ: z + h/2,
	}
}

// Contains is inclusive on all edges
func (r Rect) Contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// Center returns the rect midpoint
func (r Rect) Center() (float64, float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinZ + r.MaxZ) / 2
}

// Width along X
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Depth along Z
func (r Rect) Depth() float64 { return r.MaxZ - r.MinZ }

// Expand grows the rect by d on every side
func (r Rect) Expand(d float64) Rect {
	return Rect{r.MinX - d, r.MinZ - d, r.MaxX + d, r.MaxZ + d}
}

// ClosestPoint returns the point of r nearest to (x, z)
func (r Rect) ClosestPoint(x, z float64) (float64, float64) {
	return Clamp(x, r.MinX, r.MaxX), Clamp(z, r.MinZ, r.MaxZ)
}

// Distance is the euclidean distance from (x, z) to the nearest point of r, 0 inside
func (r Rect) Distance(x, z float64) float64 {
	nx, nz := r.ClosestPoint(x, z)
	return math.Sqrt(DistSqXZ(x, z, nx, nz))
}

// Clamp restricts v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
