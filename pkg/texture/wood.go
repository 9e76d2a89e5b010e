// Package texture provides procedural color functions for scene surfaces.
package texture

import (
	"math"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/noise"
)

// Wood maps a hit point and surface normal to a wood-grain color: a
// periodic sine stripe perturbed by gradient noise, folded and squared to
// sharpen the stripe edges, blended between a light and a dark base color.
// It is purely a color function and has no effect on geometry.
type Wood struct {
	LightColor    core.Vec3
	DarkColor     core.Vec3
	Scale         float64 // Texture frequency
	StripeDensity float64 // Smaller values produce wider stripes
	NoiseStrength float64 // Perturbation amplitude
	noise         *noise.Perlin
}

// NewWood creates a wood texture with the default grain parameters
func NewWood(perlin *noise.Perlin) *Wood {
	return &Wood{
		LightColor:    core.NewVec3(0.65, 0.45, 0.25),
		DarkColor:     core.NewVec3(0.45, 0.25, 0.1),
		Scale:         10.0,
		StripeDensity: 0.3,
		NoiseStrength: 0.3,
		noise:         perlin,
	}
}

// ColorAt returns the grain color at a hit point. The projection plane is
// chosen from the dominant normal axis so the stripes stay vertical on the
// side faces and run along Z on the top and bottom.
func (w *Wood) ColorAt(point, normal core.Vec3) core.Vec3 {
	var stripeCoord, noiseVal float64

	switch {
	case math.Abs(normal.Y) > 0.9:
		// Top/bottom faces project onto X-Z, stripes along Z
		stripeCoord = point.Z * w.Scale
		noiseVal = w.noise.Noise2D(point.X*w.Scale*0.5, point.Z*w.Scale*0.5)
	case math.Abs(normal.X) > 0.9:
		// X side faces project onto Y-Z, stripes along Y
		stripeCoord = point.Y * w.Scale
		noiseVal = w.noise.Noise2D(point.Y*w.Scale*0.5, point.Z*w.Scale*0.5)
	default:
		// Z side faces project onto X-Y, stripes along Y
		stripeCoord = point.Y * w.Scale
		noiseVal = w.noise.Noise2D(point.X*w.Scale*0.5, point.Y*w.Scale*0.5)
	}

	pattern := math.Sin(stripeCoord*2*math.Pi/w.StripeDensity + noiseVal*w.NoiseStrength*10)
	pattern = (pattern + 1) * 0.5
	// Fold and square to sharpen the stripe edges
	pattern = math.Abs(pattern-0.5) * 2
	pattern = pattern * pattern

	return w.LightColor.Lerp(w.DarkColor, pattern)
}

// FloorPlanks is the two-tone plank pattern for the Cornell box floor:
// a sine ripple along X modulating alternating stripes along Z. It is
// deliberately simpler than the box grain and uses no noise.
func FloorPlanks(point core.Vec3) core.Vec3 {
	ripple := math.Sin(point.X*15)*0.5 + 0.5

	base := core.NewVec3(0.45, 0.25, 0.1)
	if int(point.Z*8*5)%2 != 0 {
		base = core.NewVec3(0.55, 0.35, 0.15)
	}

	return base.Multiply(0.8 + ripple*0.2)
}
