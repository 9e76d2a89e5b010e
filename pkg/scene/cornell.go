package scene

import (
	"math"
	"math/rand"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/geometry"
	"github.com/xwu/go-cornell-raytracer/pkg/material"
	"github.com/xwu/go-cornell-raytracer/pkg/noise"
	"github.com/xwu/go-cornell-raytracer/pkg/texture"
)

// NewCornellScene builds the reference Cornell box: red mirror sphere,
// glass sphere, rough gold sphere, a wood-grained crate, five bounded
// walls, and a point light near the ceiling. The room spans x in
// [-1.5, 1.5], y in [0, 3], z in [-1.5, 1.5] with the front left open.
// The random source seeds the wood grain's noise table.
func NewCornellScene(random *rand.Rand) *Scene {
	s := &Scene{
		Light: PointLight{
			Position: core.NewVec3(0, 2.9, 0),
			Color:    core.NewVec3(1.5, 1.5, 1.5),
		},
		Background: core.NewVec3(0.85, 0.85, 0.85),
		Camera: View{
			Position: core.NewVec3(0, 1.5, 2.5),
			LookAt:   core.NewVec3(0, 1.5, 0),
			Up:       core.NewVec3(0, 1, 0),
			FOV:      90 * math.Pi / 180,
		},
	}

	// Left: red mirror, no diffuse at all
	redMirror := material.NewReflective(core.NewVec3(0.9, 0.1, 0.1), 0.05, 0, 0.9, 1.0, 100, 0, false)
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(-1.0, 0.4, 0.5), 0.4, redMirror))

	// Center: glass
	glass := material.NewRefractive(core.NewVec3(0.95, 0.95, 0.95), 0.1, 1.5)
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0.0, 0.4, -0.2), 0.4, glass))

	// Right: rough gold, glossy reflections
	gold := material.NewReflective(core.NewVec3(1.0, 0.76, 0.33), 0.1, 0.05, 1.0, 0.9, 200, 0.2, true)
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0.85, 0.25, 0.6), 0.25, gold))

	// Wood crate in the back corner; the declared color is a placeholder
	// that the grain texture overwrites per hit
	wood := texture.NewWood(noise.New(random))
	crate := geometry.NewBox(
		core.NewVec3(0.5, 0, -1.3),
		core.NewVec3(1.3, 1.0, -0.5),
		material.NewDiffuse(core.NewVec3(0.5, 0.3, 0.15), 0.1, 0.75, 0.1, 15),
	)
	crate.Material.Roughness = 0.05
	crate.Texture = wood.ColorAt
	s.Boxes = append(s.Boxes, crate)

	s.Walls = cornellWalls()

	return s
}

// cornellWalls describes the five room boundaries as a uniform table of
// bounded planes. Normals face into the room.
func cornellWalls() []*geometry.Wall {
	const halfWidth, height = 1.5, 3.0

	white := material.NewDiffuse(core.NewVec3(0.85, 0.85, 0.85), 0.1, 0.8, 0.05, 32)
	red := material.NewDiffuse(core.NewVec3(0.75, 0.1, 0.1), 0.1, 0.8, 0.05, 32)
	green := material.NewDiffuse(core.NewVec3(0.1, 0.75, 0.1), 0.1, 0.8, 0.05, 32)

	floor := geometry.NewWall(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(-halfWidth, 0, -halfWidth), core.NewVec3(halfWidth, 0, halfWidth),
		material.NewDiffuse(core.NewVec3(0.5, 0.3, 0.15), 0.15, 0.75, 0.15, 20),
	)
	floor.Texture = texture.FloorPlanks

	ceiling := geometry.NewWall(
		core.NewVec3(0, height, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(-halfWidth, 0, -halfWidth), core.NewVec3(halfWidth, 0, halfWidth),
		white,
	)

	leftWall := geometry.NewWall(
		core.NewVec3(-halfWidth, 0, 0), core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -halfWidth), core.NewVec3(0, height, halfWidth),
		red,
	)

	rightWall := geometry.NewWall(
		core.NewVec3(halfWidth, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 0, -halfWidth), core.NewVec3(0, height, halfWidth),
		green,
	)

	backWall := geometry.NewWall(
		core.NewVec3(0, 0, -halfWidth), core.NewVec3(0, 0, 1),
		core.NewVec3(-halfWidth, 0, 0), core.NewVec3(halfWidth, height, 0),
		white,
	)

	return []*geometry.Wall{floor, ceiling, leftWall, rightWall, backWall}
}
