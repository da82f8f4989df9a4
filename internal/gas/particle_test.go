package gas

import (
	"math"
	"testing"

	"hardsphere/internal/vecn"
)

func TestParticleCreation(t *testing.T) {
	p := NewParticle(vecn.New(10, 20, 30), vecn.New(0.1, 0.2, 0.3), 1.0, 0.5)

	if p.Mass != 1.0 {
		t.Errorf("Expected mass 1.0, got %f", p.Mass)
	}
	if p.Position[0] != 10 || p.Position[1] != 20 || p.Position[2] != 30 {
		t.Errorf("Expected position (10,20,30), got %v", p.Position)
	}
	if p.Velocity[0] != 0.1 || p.Velocity[1] != 0.2 || p.Velocity[2] != 0.3 {
		t.Errorf("Expected velocity (0.1,0.2,0.3), got %v", p.Velocity)
	}
}

func TestParticleKineticEnergy(t *testing.T) {
	p := NewParticle(vecn.New(0, 0, 0), vecn.New(3, 4, 0), 2.0, 1.0) // |v| = 5

	ke := p.KineticEnergy()
	expected := 0.5 * 2.0 * 25.0

	if math.Abs(ke-expected) > 1e-9 {
		t.Errorf("Expected kinetic energy %f, got %f", expected, ke)
	}
}

func TestParticleOverlap(t *testing.T) {
	a := NewParticle(vecn.New(0, 0, 0), vecn.New(0, 0, 0), 1, 1)
	b := NewParticle(vecn.New(1.5, 0, 0), vecn.New(0, 0, 0), 1, 1)
	c := NewParticle(vecn.New(3, 0, 0), vecn.New(0, 0, 0), 1, 1)

	if !a.overlaps(b) {
		t.Errorf("Expected spheres 1.5 apart with radii 1+1 to overlap")
	}
	if a.overlaps(c) {
		t.Errorf("Expected spheres 3 apart with radii 1+1 not to overlap")
	}
}
