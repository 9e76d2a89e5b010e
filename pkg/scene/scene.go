// Package scene owns the geometry, light, and camera of a rendered scene
// and implements the recursive trace algorithm.
package scene

import (
	"math"
	"math/rand"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/geometry"
	"github.com/xwu/go-cornell-raytracer/pkg/material"
)

// MaxDepth is the hard recursion cap for Trace. Reflective and refractive
// surfaces can recurse indefinitely between two facing mirrors, so the cap
// is unconditional.
const MaxDepth = 6

// glossySamples is the number of perturbed reflection rays averaged for a
// rough reflective surface.
const glossySamples = 16

// roughnessThreshold below which a reflection is treated as a perfect mirror
const roughnessThreshold = 0.001

// attenuationK is the quadratic falloff constant in 1/(1 + k*d²)
const attenuationK = 0.05

// PointLight is the scene's single light source
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
}

// View holds the camera parameters the renderer builds its basis from
type View struct {
	Position core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	FOV      float64 // Vertical field of view in radians
}

// Scene owns all primitives for its lifetime. Construction fixes the
// geometry; Trace only reads it, so a Scene is safe for concurrent tracing.
type Scene struct {
	Spheres    []*geometry.Sphere
	Boxes      []*geometry.Box
	Walls      []*geometry.Wall
	Light      PointLight
	Background core.Vec3
	Camera     View
}

// Trace returns the color visible along the ray. Recursion terminates
// unconditionally once depth exceeds MaxDepth, returning the background
// color. The random source drives glossy reflection sampling and must not
// be shared across goroutines.
func (s *Scene) Trace(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth > MaxDepth {
		return s.Background
	}

	hit, ok := s.nearestHit(ray)
	if !ok {
		return s.Background
	}
	mat := hit.Material

	// Refractive materials short-circuit: their reflection component comes
	// from the Fresnel term, never from the reflective branch below
	if mat.Kind == material.Refractive && depth < MaxDepth {
		return s.refractedColor(ray, hit, mat, depth, random)
	}

	finalColor := s.localIllumination(ray, hit, mat)

	if mat.Kind == material.Reflective && mat.Kr > 0 && depth < MaxDepth {
		reflected := s.reflectedColor(ray, hit, mat, depth, random)
		if mat.Metallic {
			reflected = reflected.MultiplyVec(mat.Color)
		}
		finalColor = finalColor.Multiply(1 - mat.Kr).Add(reflected.Multiply(mat.Kr))
	}

	return finalColor
}

// nearestHit scans every sphere, box, and wall for the globally nearest
// positive intersection. The scene has a handful of primitives, so a
// linear scan is sufficient.
func (s *Scene) nearestHit(ray core.Ray) (*geometry.HitRecord, bool) {
	var closest *geometry.HitRecord

	for _, sphere := range s.Spheres {
		if hit, ok := sphere.Hit(ray); ok && (closest == nil || hit.T < closest.T) {
			closest = hit
		}
	}
	for _, box := range s.Boxes {
		if hit, ok := box.Hit(ray); ok && (closest == nil || hit.T < closest.T) {
			closest = hit
		}
	}
	for _, wall := range s.Walls {
		if hit, ok := wall.Hit(ray); ok && (closest == nil || hit.T < closest.T) {
			closest = hit
		}
	}

	return closest, closest != nil
}

// localIllumination combines ambient, Lambertian diffuse, and Phong
// specular terms for the single point light, with inverse-quadratic
// distance attenuation. A point in full shadow receives ambient only, at
// half strength.
func (s *Scene) localIllumination(ray core.Ray, hit *geometry.HitRecord, mat material.Material) core.Vec3 {
	toLight := s.Light.Position.Subtract(hit.Point)
	lightDist := toLight.Length()
	lightDir := toLight.Normalize()

	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(geometry.Epsilon))
	if s.inShadow(core.NewRay(shadowOrigin, lightDir), lightDist) {
		return mat.Color.Multiply(mat.Ka * 0.5)
	}

	localColor := mat.Color.Multiply(mat.Ka)

	diff := math.Max(0, hit.Normal.Dot(lightDir))
	attenuation := 1.0 / (1.0 + attenuationK*lightDist*lightDist)

	diffuse := mat.Color.MultiplyVec(s.Light.Color).Multiply(mat.Kd * diff * attenuation)
	if mat.Metallic {
		// Metals barely scatter diffusely
		diffuse = diffuse.Multiply(0.1)
	}
	localColor = localColor.Add(diffuse)

	viewDir := ray.Origin.Subtract(hit.Point).Normalize()
	reflectDir := hit.Normal.Multiply(2 * hit.Normal.Dot(lightDir)).Subtract(lightDir).Normalize()
	spec := math.Pow(math.Max(0, viewDir.Dot(reflectDir)), mat.Shininess)

	// Metals tint the highlight by their own color, non-metals by the light
	highlight := s.Light.Color
	if mat.Metallic {
		highlight = mat.Color
	}
	localColor = localColor.Add(highlight.Multiply(mat.Ks * spec * attenuation))

	return localColor
}

// inShadow tests the shadow ray against every sphere and box. Walls never
// occlude the light: they bound the room the light sits inside.
func (s *Scene) inShadow(shadowRay core.Ray, lightDist float64) bool {
	for _, sphere := range s.Spheres {
		if t, ok := sphere.Intersect(shadowRay); ok && t < lightDist-geometry.Epsilon {
			return true
		}
	}
	for _, box := range s.Boxes {
		if hit, ok := box.Hit(shadowRay); ok && hit.T < lightDist-geometry.Epsilon {
			return true
		}
	}
	return false
}

// refractedColor traces a refractive surface: Snell refraction blended with
// a reflection ray by Schlick's Fresnel approximation. A negative
// discriminant is total internal reflection, not an error, and follows the
// pure reflection path.
func (s *Scene) refractedColor(ray core.Ray, hit *geometry.HitRecord, mat material.Material, depth int, random *rand.Rand) core.Vec3 {
	cosI := -ray.Direction.Dot(hit.Normal)
	eta := mat.Eta
	n := hit.Normal

	if cosI < 0 {
		// Exiting the medium: flip the normal and invert the ratio
		cosI = -cosI
		n = n.Negate()
		eta = 1.0 / eta
	}

	sinT2 := eta * eta * (1 - cosI*cosI)
	if sinT2 >= 1.0 {
		// Total internal reflection
		reflectDir := ray.Direction.Reflect(n).Normalize()
		reflectRay := core.NewRay(hit.Point.Add(n.Multiply(geometry.Epsilon)), reflectDir)
		return s.Trace(reflectRay, depth+1, random)
	}

	cosT := math.Sqrt(1 - sinT2)
	refractDir := ray.Direction.Multiply(eta).Add(n.Multiply(eta*cosI - cosT)).Normalize()
	refractRay := core.NewRay(hit.Point.Subtract(n.Multiply(geometry.Epsilon)), refractDir)
	refractColor := s.Trace(refractRay, depth+1, random)

	// Schlick approximation: R0 + (1-R0)(1-cosθ)⁵
	r0 := ((eta - 1) * (eta - 1)) / ((eta + 1) * (eta + 1))
	fresnel := r0 + (1-r0)*math.Pow(1-cosI, 5)

	reflectDir := ray.Direction.Reflect(hit.Normal).Normalize()
	reflectRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(geometry.Epsilon)), reflectDir)
	reflectColor := s.Trace(reflectRay, depth+1, random)

	return refractColor.Multiply(1 - fresnel).Add(reflectColor.Multiply(fresnel))
}

// reflectedColor computes the mirror reflection, Monte-Carlo perturbed into
// a 16-sample average when the surface is rough. Perturbations that cross
// to the back side of the normal fall back to the unperturbed direction.
func (s *Scene) reflectedColor(ray core.Ray, hit *geometry.HitRecord, mat material.Material, depth int, random *rand.Rand) core.Vec3 {
	reflectDir := ray.Direction.Reflect(hit.Normal).Normalize()

	samples := 1
	if mat.Roughness > roughnessThreshold {
		samples = glossySamples
	}

	sum := core.Vec3{}
	for i := 0; i < samples; i++ {
		dir := reflectDir
		if mat.Roughness > roughnessThreshold {
			perturbed := reflectDir.Add(randomUnitVector(random).Multiply(mat.Roughness)).Normalize()
			if perturbed.Dot(hit.Normal) >= 0 {
				dir = perturbed
			}
		}

		reflectRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(geometry.Epsilon)), dir)
		sum = sum.Add(s.Trace(reflectRay, depth+1, random))
	}

	return sum.Multiply(1.0 / float64(samples))
}

// randomUnitVector generates a uniformly-oriented unit vector
func randomUnitVector(random *rand.Rand) core.Vec3 {
	v := core.NewVec3(
		2*random.Float64()-1,
		2*random.Float64()-1,
		2*random.Float64()-1,
	)
	return v.Normalize()
}
