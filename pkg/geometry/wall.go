package geometry

import (
	"math"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/material"
)

// Wall is a room boundary: an axis-aligned plane clipped to a rectangular
// extent. The five Cornell box boundaries are all walls, described
// uniformly instead of five hand-written plane tests.
type Wall struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Outward (room-facing) normal, axis-aligned
	Min, Max core.Vec3         // Rectangular extent; the normal axis component is ignored
	Material material.Material // Material of the wall
	// Texture, when set, overrides the material base color per hit point
	Texture func(point core.Vec3) core.Vec3
}

// NewWall creates a new bounded wall
func NewWall(point, normal, extentMin, extentMax core.Vec3, mat material.Material) *Wall {
	return &Wall{
		Point:    point,
		Normal:   normal.Normalize(),
		Min:      extentMin,
		Max:      extentMax,
		Material: mat,
	}
}

// Hit tests the ray against the wall plane and its rectangular extent.
// Near-parallel rays are rejected.
func (w *Wall) Hit(ray core.Ray) (*HitRecord, bool) {
	denom := w.Normal.Dot(ray.Direction)
	if math.Abs(denom) <= Epsilon {
		return nil, false
	}

	t := w.Point.Subtract(ray.Origin).Dot(w.Normal) / denom
	if t <= Epsilon {
		return nil, false
	}

	point := ray.At(t)
	if !w.contains(point) {
		return nil, false
	}

	mat := w.Material
	if w.Texture != nil {
		mat.Color = w.Texture(point)
	}

	return &HitRecord{
		T:        t,
		Point:    point,
		Normal:   w.Normal,
		Material: mat,
	}, true
}

// contains checks the extent on the two axes orthogonal to the wall normal
func (w *Wall) contains(p core.Vec3) bool {
	if math.Abs(w.Normal.X) < 0.5 && (p.X < w.Min.X || p.X > w.Max.X) {
		return false
	}
	if math.Abs(w.Normal.Y) < 0.5 && (p.Y < w.Min.Y || p.Y > w.Max.Y) {
		return false
	}
	if math.Abs(w.Normal.Z) < 0.5 && (p.Z < w.Min.Z || p.Z > w.Max.Z) {
		return false
	}
	return true
}
