package material

import (
	"testing"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
)

func TestConstructors_Kind(t *testing.T) {
	tests := []struct {
		name     string
		mat      Material
		expected Kind
	}{
		{"diffuse", NewDiffuse(core.NewVec3(1, 0, 0), 0.1, 0.8, 0.2, 32), Diffuse},
		{"reflective", NewReflective(core.NewVec3(1, 1, 1), 0.05, 0, 0.9, 1.0, 100, 0, false), Reflective},
		{"refractive", NewRefractive(core.NewVec3(0.95, 0.95, 0.95), 0.1, 1.5), Refractive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mat.Kind != tt.expected {
				t.Errorf("Expected kind %v, got %v", tt.expected, tt.mat.Kind)
			}
		})
	}
}

func TestNewRefractive_NoReflectiveCoefficient(t *testing.T) {
	// Refractive surfaces get their reflection from the Fresnel term;
	// the Kr-driven branch must stay unreachable for them
	glass := NewRefractive(core.NewVec3(1, 1, 1), 0.1, 1.5)
	if glass.Kr != 0 {
		t.Errorf("Refractive material must not carry Kr, got %f", glass.Kr)
	}
	if glass.Eta != 1.5 {
		t.Errorf("Expected eta 1.5, got %f", glass.Eta)
	}
}

func TestNewDiffuse_DefaultEta(t *testing.T) {
	m := NewDiffuse(core.NewVec3(0.5, 0.5, 0.5), 0.1, 0.8, 0.2, 32)
	if m.Eta != 1.0 {
		t.Errorf("Expected neutral eta 1.0, got %f", m.Eta)
	}
}
