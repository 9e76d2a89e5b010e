package geometry

import (
	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/material"
)

// Epsilon guards against a ray re-hitting the surface it just left,
// in scene units.
const Epsilon = 0.001

// MaxDistance is the far cutoff for intersection tests.
const MaxDistance = 1000.0

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64           // Parameter t along the ray
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Outward surface normal at intersection
	Material material.Material // Material of the hit object
}
