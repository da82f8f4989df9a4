package gas

import (
	"fmt"
	"math/rand"

	"hardsphere/internal/vecn"
)

// maxPlacementAttemptsPerParticle bounds the rejection-sampling retry loop
// used while placing non-overlapping spheres. Exceeding the budget across
// all particles means the requested packing fraction cannot be satisfied.
const maxPlacementAttemptsPerParticle = 20000

// InitParams describes the parameters needed to build an initial Store.
type InitParams struct {
	N      int
	Mass   float64
	Radius float64
	Speed  float64
	Box    *Container
	Rand   *rand.Rand // must be non-nil; the driver owns seeding
}

// Validate checks the structural preconditions every initializer needs:
// positive N, mass, radius, and box side lengths, and a radius small enough
// that a single sphere fits along every axis. Whether N spheres fit without
// overlap is decided by NewStore's placement retry budget.
func (p InitParams) Validate() error {
	if p.N <= 0 {
		return fmt.Errorf("gas: invalid particle count %d", p.N)
	}
	if p.Mass <= 0 {
		return fmt.Errorf("gas: invalid mass %g", p.Mass)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("gas: invalid radius %g", p.Radius)
	}
	if p.Box == nil || p.Box.Dim() == 0 {
		return fmt.Errorf("gas: invalid container")
	}
	for k, l := range p.Box.Lengths {
		if l <= 0 {
			return fmt.Errorf("gas: invalid box length %g on axis %d", l, k)
		}
		if l-2*p.Radius <= 0 {
			return fmt.Errorf("gas: radius %g too large for box length %g on axis %d", p.Radius, l, k)
		}
	}
	if p.Rand == nil {
		return fmt.Errorf("gas: nil random source")
	}
	return nil
}

// NewStore builds a Store of N non-overlapping particles placed uniformly
// at random in the container interior, each given an isotropically-directed
// velocity of magnitude Speed. It fails with an error (never panics) if the
// configuration is structurally invalid or if non-overlapping placement
// cannot be found within the retry budget (packing fraction too high).
func NewStore(p InitParams) (*Store, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dim := p.Box.Dim()
	particles := make([]Particle, 0, p.N)

	attemptsLeft := maxPlacementAttemptsPerParticle * p.N
	for len(particles) < p.N {
		position := randomInteriorPosition(p.Rand, p.Box, p.Radius, dim)
		velocity := randomUnitVector(p.Rand, dim).Scale(p.Speed)
		candidate := NewParticle(position, velocity, p.Mass, p.Radius)

		collides := false
		for _, existing := range particles {
			if candidate.overlaps(existing) {
				collides = true
				break
			}
		}
		if !collides {
			particles = append(particles, candidate)
			continue
		}

		attemptsLeft--
		if attemptsLeft <= 0 {
			return nil, fmt.Errorf("gas: could not place %d non-overlapping spheres of radius %g in box %v within %d attempts (packing fraction too high)",
				p.N, p.Radius, p.Box.Lengths, maxPlacementAttemptsPerParticle*p.N)
		}
	}

	return &Store{Particles: particles, Box: p.Box}, nil
}

func randomInteriorPosition(r *rand.Rand, box *Container, radius float64, dim int) vecn.Vec {
	pos := make(vecn.Vec, dim)
	for k := 0; k < dim; k++ {
		available := box.Lengths[k] - 2*radius
		pos[k] = r.Float64()*available + radius
	}
	return pos
}

// randomUnitVector draws a vector uniformly distributed over the unit
// sphere in dim dimensions: dim independent standard normals, normalized.
func randomUnitVector(r *rand.Rand, dim int) vecn.Vec {
	v := make(vecn.Vec, dim)
	for k := 0; k < dim; k++ {
		v[k] = r.NormFloat64()
	}
	return v.Normalize()
}
