// Package gas holds the particle store: the fixed-size array of sphere
// states the scheduler advances and the resolver mutates. Particles are
// created only by the initializer and are never added or removed once a
// Store exists.
package gas

import "hardsphere/internal/vecn"

// Particle is a single rigid sphere: a position, a velocity, a mass and a
// radius. Once constructed, only Position and Velocity ever change.
type Particle struct {
	Position vecn.Vec
	Velocity vecn.Vec
	Mass     float64
	Radius   float64
}

// NewParticle creates a particle with the given position and velocity
// components (which must agree in dimension), mass and radius.
func NewParticle(position, velocity vecn.Vec, mass, radius float64) Particle {
	return Particle{
		Position: position.Clone(),
		Velocity: velocity.Clone(),
		Mass:     mass,
		Radius:   radius,
	}
}

// KineticEnergy returns 1/2 * m * |v|^2 for this particle.
func (p Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * p.Velocity.LengthSquared()
}

// overlaps reports whether p and other's spheres intersect, i.e.
// ||p_i - p_j|| < r_i + r_j.
func (p Particle) overlaps(other Particle) bool {
	r := p.Radius + other.Radius
	return p.Position.Sub(other.Position).LengthSquared() < r*r
}
