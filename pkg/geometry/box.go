package geometry

import (
	"math"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/material"
)

// Box represents an axis-aligned box defined by its min/max corners
type Box struct {
	Min      core.Vec3
	Max      core.Vec3
	Material material.Material
	// Texture, when set, overrides the material base color per hit point.
	// The declared material color is only a placeholder then.
	Texture func(point, normal core.Vec3) core.Vec3
}

// NewBox creates a new axis-aligned box
func NewBox(minCorner, maxCorner core.Vec3, mat material.Material) *Box {
	return &Box{
		Min:      minCorner,
		Max:      maxCorner,
		Material: mat,
	}
}

// Center returns the center point of the box
func (b *Box) Center() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Hit tests the ray against the box using the slab method. A zero ray
// direction component divides to ±Inf, which the interval min/max logic
// handles under IEEE semantics without special cases.
func (b *Box) Hit(ray core.Ray) (*HitRecord, bool) {
	invDir := core.NewVec3(1/ray.Direction.X, 1/ray.Direction.Y, 1/ray.Direction.Z)

	// X slab
	tMin := (b.Min.X - ray.Origin.X) * invDir.X
	tMax := (b.Max.X - ray.Origin.X) * invDir.X
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}

	// Y slab
	tyMin := (b.Min.Y - ray.Origin.Y) * invDir.Y
	tyMax := (b.Max.Y - ray.Origin.Y) * invDir.Y
	if tyMin > tyMax {
		tyMin, tyMax = tyMax, tyMin
	}
	if tMin > tyMax || tyMin > tMax {
		return nil, false
	}
	tMin = math.Max(tMin, tyMin)
	tMax = math.Min(tMax, tyMax)

	// Z slab
	tzMin := (b.Min.Z - ray.Origin.Z) * invDir.Z
	tzMax := (b.Max.Z - ray.Origin.Z) * invDir.Z
	if tzMin > tzMax {
		tzMin, tzMax = tzMax, tzMin
	}
	if tMin > tzMax || tzMin > tMax {
		return nil, false
	}
	tMin = math.Max(tMin, tzMin)

	if tMin < Epsilon || tMin > MaxDistance {
		return nil, false
	}

	point := ray.At(tMin)
	normal := b.normalAt(point, ray)

	mat := b.Material
	if b.Texture != nil {
		mat.Color = b.Texture(point, normal)
	}

	return &HitRecord{
		T:        tMin,
		Point:    point,
		Normal:   normal,
		Material: mat,
	}, true
}

// normalAt determines which face was struck by comparing the hit point's
// proximity to each face plane together with the ray's direction sign on
// that axis. If nothing matches within tolerance (a corner or edge graze),
// the normalized center-to-hit vector is used as an approximation.
func (b *Box) normalAt(point core.Vec3, ray core.Ray) core.Vec3 {
	switch {
	case math.Abs(point.X-b.Min.X) < Epsilon && ray.Direction.X > 0:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(point.X-b.Max.X) < Epsilon && ray.Direction.X < 0:
		return core.NewVec3(1, 0, 0)
	case math.Abs(point.Y-b.Min.Y) < Epsilon && ray.Direction.Y > 0:
		return core.NewVec3(0, -1, 0)
	case math.Abs(point.Y-b.Max.Y) < Epsilon && ray.Direction.Y < 0:
		return core.NewVec3(0, 1, 0)
	case math.Abs(point.Z-b.Min.Z) < Epsilon && ray.Direction.Z > 0:
		return core.NewVec3(0, 0, -1)
	case math.Abs(point.Z-b.Max.Z) < Epsilon && ray.Direction.Z < 0:
		return core.NewVec3(0, 0, 1)
	}
	return point.Subtract(b.Center()).Normalize()
}
