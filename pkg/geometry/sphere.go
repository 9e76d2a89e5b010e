package geometry

import (
	"math"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect solves |origin + t*dir - center|² = r² for the nearest valid t.
// The closer root is preferred; if it sits inside the epsilon guard the
// farther root is tried, which covers rays starting inside the sphere.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients: at² + 2*halfB*t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	t := (-halfB - sqrtD) / a
	if t > Epsilon {
		return t, true
	}
	t = (-halfB + sqrtD) / a
	return t, t > Epsilon
}

// Hit tests the ray against the sphere and fills a hit record with the
// radial outward normal at the intersection point.
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	t, ok := s.Intersect(ray)
	if !ok {
		return nil, false
	}

	point := ray.At(t)
	return &HitRecord{
		T:        t,
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		Material: s.Material,
	}, true
}
