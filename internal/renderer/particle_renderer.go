// Package renderer turns a snapshot of the gas box into drawable state: a
// speed-heatmap color per sphere, a simple distance cutoff so a crowded
// box doesn't waste draw calls on particles far from the viewer, and
// the live raylib window that drives the simulation frame by frame.
package renderer

import (
	"math"

	"hardsphere/internal/gas"
	"hardsphere/internal/physics"
)

// Color represents an RGBA color in the [0,1] range raylib expects to be
// scaled into bytes.
type Color struct {
	R, G, B, A float32
}

// ParticleRenderer maps a store snapshot to per-sphere draw state: color by
// speed and a distance-based visibility cutoff from the viewer.
type ParticleRenderer struct {
	particles    []gas.Particle
	viewpoint    physics.Vec3
	visibleRange float64
	culling      bool
	particleSize float32

	visibleCount int
}

// NewParticleRenderer creates a renderer with culling disabled and a
// particle size multiplier of 1.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{
		particleSize: 1.0,
		visibleRange: math.Inf(1),
	}
}

// SetParticles sets the particles to render, as a snapshot of the current
// store state.
func (r *ParticleRenderer) SetParticles(particles []gas.Particle) {
	r.particles = particles
	r.updateVisibleCount()
}

// GetParticleCount returns the number of particles in the current snapshot.
func (r *ParticleRenderer) GetParticleCount() int {
	return len(r.particles)
}

// GetParticleSize returns the base particle size multiplier.
func (r *ParticleRenderer) GetParticleSize() float32 {
	return r.particleSize
}

// SetParticleSize sets the base particle size multiplier.
func (r *ParticleRenderer) SetParticleSize(size float32) {
	r.particleSize = size
}

// GetParticleColor returns the color for a particle based on its speed:
// slow spheres are bluish, fast ones reddish, matching a conventional
// speed-heatmap visualization of a Maxwell-Boltzmann gas.
func (r *ParticleRenderer) GetParticleColor(particle gas.Particle, maxSpeed float64) Color {
	speedNorm := 0.0
	if maxSpeed > 0 {
		speedNorm = math.Min(particle.Velocity.Length()/maxSpeed, 1.0)
	}

	return Color{
		R: float32(speedNorm),
		G: float32(0.5),
		B: float32(1.0 - speedNorm),
		A: 1.0,
	}
}

// GetScaledParticleSize returns the render size for a particle, scaled by
// its physical radius.
func (r *ParticleRenderer) GetScaledParticleSize(particle gas.Particle) float32 {
	return r.particleSize * float32(particle.Radius)
}

// SetViewpoint sets the point culling distance is measured from.
func (r *ParticleRenderer) SetViewpoint(p physics.Vec3) {
	r.viewpoint = p
	r.updateVisibleCount()
}

// EnableCulling turns the visible-range cutoff on or off. When disabled
// every particle in the snapshot counts as visible.
func (r *ParticleRenderer) EnableCulling(enable bool) {
	r.culling = enable
	r.updateVisibleCount()
}

// SetVisibleRange sets the distance beyond which a particle is dropped from
// the visible set when culling is enabled.
func (r *ParticleRenderer) SetVisibleRange(d float64) {
	r.visibleRange = d
	r.updateVisibleCount()
}

// GetVisibleParticleCount returns the number of particles the last
// SetParticles/SetViewpoint/EnableCulling call left visible.
func (r *ParticleRenderer) GetVisibleParticleCount() int {
	return r.visibleCount
}

// GetVisibleParticles returns the particles within range of the viewpoint,
// or every particle in the snapshot if culling is disabled.
func (r *ParticleRenderer) GetVisibleParticles() []gas.Particle {
	if !r.culling {
		return r.particles
	}

	visible := make([]gas.Particle, 0, r.visibleCount)
	for _, p := range r.particles {
		if r.isVisible(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

func (r *ParticleRenderer) isVisible(p gas.Particle) bool {
	d := physics.Vec3FromVecN(p.Position).Sub(r.viewpoint).Length()
	return d <= r.visibleRange
}

func (r *ParticleRenderer) updateVisibleCount() {
	if !r.culling {
		r.visibleCount = len(r.particles)
		return
	}
	count := 0
	for _, p := range r.particles {
		if r.isVisible(p) {
			count++
		}
	}
	r.visibleCount = count
}
