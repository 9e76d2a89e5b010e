package noise

import (
	"math"
	"math/rand"
	"testing"
)

func TestPerlin_Deterministic(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.91
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("Same seed should produce identical noise at (%f, %f)", x, y)
		}
	}
}

func TestPerlin_SeedsDiffer(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)))
	b := New(rand.New(rand.NewSource(2)))

	differs := false
	for i := 0; i < 100; i++ {
		x := float64(i)*0.37 + 0.5
		y := float64(i)*0.91 + 0.5
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("Different seeds should produce different noise fields")
	}
}

func TestPerlin_Bounded(t *testing.T) {
	p := New(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		x := float64(i)*0.173 - 50
		y := float64(i)*0.311 - 50
		n := p.Noise2D(x, y)
		if math.IsNaN(n) || n < -2 || n > 2 {
			t.Fatalf("Noise out of expected range at (%f, %f): %f", x, y, n)
		}
	}
}

func TestPerlin_ZeroAtLatticePoints(t *testing.T) {
	// Gradient noise vanishes on integer lattice points since the
	// fractional offsets are zero for the nearest corner
	p := New(rand.New(rand.NewSource(3)))

	for i := -5; i <= 5; i++ {
		for j := -5; j <= 5; j++ {
			n := p.Noise2D(float64(i), float64(j))
			if math.Abs(n) > 1e-12 {
				t.Errorf("Expected zero at lattice point (%d, %d), got %f", i, j, n)
			}
		}
	}
}

func TestPerlin_Continuity(t *testing.T) {
	// Nearby samples must stay close; a jump would show a seam in the texture
	p := New(rand.New(rand.NewSource(11)))

	const step = 1e-4
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.49
		y := float64(i) * 0.23
		delta := math.Abs(p.Noise2D(x+step, y) - p.Noise2D(x, y))
		if delta > 0.01 {
			t.Fatalf("Discontinuity at (%f, %f): delta %f", x, y, delta)
		}
	}
}

func TestPerlin_NegativeCoordinates(t *testing.T) {
	p := New(rand.New(rand.NewSource(9)))

	// Must not panic and must stay bounded far into negative space
	n := p.Noise2D(-1234.5, -987.25)
	if math.IsNaN(n) {
		t.Error("Noise at negative coordinates returned NaN")
	}
}
