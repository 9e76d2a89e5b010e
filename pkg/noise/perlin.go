// Package noise implements 2D gradient noise used to perturb procedural
// texture boundaries.
package noise

import (
	"math"
	"math/rand"
)

// Perlin evaluates classic 2D gradient noise over a shuffled permutation
// table. The table is built once at construction and is immutable
// afterwards, so a Perlin value is safe for concurrent reads.
type Perlin struct {
	perm [512]int
}

// New creates a noise generator with a permutation table shuffled by the
// given random source. The same seed reproduces the same noise field.
func New(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := 0; i < 256; i++ {
		p.perm[i] = i
	}
	random.Shuffle(256, func(i, j int) {
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	})
	// Duplicate the table so corner lookups never need to wrap
	for i := 0; i < 256; i++ {
		p.perm[i+256] = p.perm[i]
	}
	return p
}

// Noise2D returns the gradient noise value at (x, y), roughly in [-1, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	// Hash the four corners of the grid cell
	a := p.perm[xi] + yi
	b := p.perm[xi+1] + yi

	return lerp(
		lerp(grad(p.perm[a], x, y), grad(p.perm[b], x-1, y), u),
		lerp(grad(p.perm[a+1], x, y-1), grad(p.perm[b+1], x-1, y-1), u),
		v,
	)
}

// fade is the standard quintic smoothing curve 6t⁵-15t⁴+10t³
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// grad maps a hash to one of eight fixed pseudo-gradient directions
func grad(hash int, x, y float64) float64 {
	switch hash & 0xF {
	case 0x0:
		return x + y
	case 0x1:
		return -x + y
	case 0x2:
		return x - y
	case 0x3:
		return -x - y
	case 0x4:
		return x
	case 0x5:
		return -x
	case 0x6:
		return y
	case 0x7:
		return -y
	default:
		return 0
	}
}
