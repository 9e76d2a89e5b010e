// Package material defines the surface model used by the tracer.
package material

import "github.com/xwu/go-cornell-raytracer/pkg/core"

// Kind selects which shading branch a material follows. The branches are
// mutually exclusive: a refractive material never reaches the reflective or
// diffuse paths.
type Kind int

const (
	// Diffuse surfaces use ambient + Lambert + Phong local illumination only
	Diffuse Kind = iota
	// Reflective surfaces add a mirror (or glossy) reflection term on top
	// of local illumination, weighted by Kr
	Reflective
	// Refractive surfaces are traced with Snell refraction and a Schlick
	// Fresnel blend, short-circuiting every other branch
	Refractive
)

// Material holds the shading coefficients for a surface.
type Material struct {
	Kind      Kind
	Color     core.Vec3 // Base color (overridden by procedural textures)
	Ka        float64   // Ambient coefficient
	Kd        float64   // Diffuse coefficient
	Ks        float64   // Specular coefficient
	Kr        float64   // Reflection coefficient, only meaningful for Reflective
	Shininess float64   // Phong exponent
	Eta       float64   // Refractive index, only meaningful for Refractive
	Roughness float64   // 0 = perfect mirror, >0 triggers glossy sampling
	Metallic  bool      // Metals tint highlights and reflections by Color
}

// NewDiffuse creates a matte material
func NewDiffuse(color core.Vec3, ka, kd, ks, shininess float64) Material {
	return Material{
		Kind:      Diffuse,
		Color:     color,
		Ka:        ka,
		Kd:        kd,
		Ks:        ks,
		Shininess: shininess,
		Eta:       1.0,
	}
}

// NewReflective creates a mirror-like material. Roughness above zero makes
// the reflection glossy via Monte Carlo perturbation; metallic materials
// tint the reflected color by their own base color.
func NewReflective(color core.Vec3, ka, kd, ks, kr, shininess, roughness float64, metallic bool) Material {
	return Material{
		Kind:      Reflective,
		Color:     color,
		Ka:        ka,
		Kd:        kd,
		Ks:        ks,
		Kr:        kr,
		Shininess: shininess,
		Roughness: roughness,
		Metallic:  metallic,
		Eta:       1.0,
	}
}

// NewRefractive creates a transparent material such as glass. Kr is left at
// zero by construction: reflection at a refractive surface is governed by
// the Fresnel term, not the reflective branch.
func NewRefractive(color core.Vec3, ks, eta float64) Material {
	return Material{
		Kind:  Refractive,
		Color: color,
		Ks:    ks,
		Eta:   eta,
	}
}
