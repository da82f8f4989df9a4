package renderer

import (
	"testing"

	"hardsphere/internal/gas"
	"hardsphere/internal/physics"
	"hardsphere/internal/vecn"
)

func sphere(pos, vel vecn.Vec, radius float64) gas.Particle {
	return gas.NewParticle(pos, vel, 1.0, radius)
}

func TestParticleRendererDefaults(t *testing.T) {
	r := NewParticleRenderer()
	if r.GetParticleSize() == 0 {
		t.Error("particle size should have a default value")
	}
}

func TestSetParticlesUpdatesCount(t *testing.T) {
	r := NewParticleRenderer()
	particles := []gas.Particle{
		sphere(vecn.New(0, 0, 0), vecn.New(0, 0, 0), 1.0),
		sphere(vecn.New(10, 0, 0), vecn.New(0, 0, 0), 1.0),
		sphere(vecn.New(0, 0, 10), vecn.New(0, 0, 0), 1.0),
	}
	r.SetParticles(particles)

	if r.GetParticleCount() != len(particles) {
		t.Errorf("expected %d particles, got %d", len(particles), r.GetParticleCount())
	}
}

func TestColorMappingBySpeed(t *testing.T) {
	r := NewParticleRenderer()

	slow := sphere(vecn.New(0, 0, 0), vecn.New(0.1, 0, 0), 1.0)
	fast := sphere(vecn.New(0, 0, 0), vecn.New(10, 0, 0), 1.0)

	slowColor := r.GetParticleColor(slow, 10)
	fastColor := r.GetParticleColor(fast, 10)

	if slowColor.R == fastColor.R && slowColor.B == fastColor.B {
		t.Error("particles with different speeds should have different colors")
	}
	if fastColor.R <= slowColor.R {
		t.Error("faster particle should shift toward red")
	}
	if fastColor.B >= slowColor.B {
		t.Error("faster particle should shift away from blue")
	}
}

func TestScaledParticleSizeTracksRadius(t *testing.T) {
	r := NewParticleRenderer()
	r.SetParticleSize(2.0)

	small := sphere(vecn.New(0, 0, 0), vecn.New(0, 0, 0), 1.0)
	large := sphere(vecn.New(0, 0, 0), vecn.New(0, 0, 0), 10.0)

	if r.GetScaledParticleSize(large) <= r.GetScaledParticleSize(small) {
		t.Error("larger radius should produce a larger render size")
	}
}

func TestCullingDropsParticlesBeyondRange(t *testing.T) {
	r := NewParticleRenderer()
	r.SetViewpoint(physics.NewVec3(0, 0, 0))
	r.SetVisibleRange(50)

	particles := []gas.Particle{
		sphere(vecn.New(0, 0, -10), vecn.New(0, 0, 0), 1.0),  // within range
		sphere(vecn.New(0, 0, -200), vecn.New(0, 0, 0), 1.0), // beyond range
		sphere(vecn.New(30, 0, 30), vecn.New(0, 0, 0), 1.0),  // within range
	}

	r.SetParticles(particles)
	r.EnableCulling(true)

	if got := r.GetVisibleParticleCount(); got != 2 {
		t.Errorf("expected 2 visible particles, got %d", got)
	}
	if got := len(r.GetVisibleParticles()); got != 2 {
		t.Errorf("expected 2 particles from GetVisibleParticles, got %d", got)
	}
}

func TestCullingDisabledReturnsEverything(t *testing.T) {
	r := NewParticleRenderer()
	particles := []gas.Particle{
		sphere(vecn.New(0, 0, -10), vecn.New(0, 0, 0), 1.0),
		sphere(vecn.New(0, 0, -2000), vecn.New(0, 0, 0), 1.0),
	}
	r.SetParticles(particles)

	if got := r.GetVisibleParticleCount(); got != len(particles) {
		t.Errorf("expected all %d particles visible with culling off, got %d", len(particles), got)
	}
}
