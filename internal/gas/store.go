package gas

// Store is the dense, index-addressable array of particle records that the
// scheduler owns for the duration of a run. N is fixed at construction and
// never changes: Store never reorders or resizes its Particles slice.
type Store struct {
	Particles []Particle
	Box       *Container
}

// N returns the particle count.
func (s *Store) N() int {
	return len(s.Particles)
}

// Dim returns the number of spatial dimensions.
func (s *Store) Dim() int {
	return s.Box.Dim()
}

// AdvanceAll moves every particle along its current velocity by dt:
// position[i] += velocity[i] * dt.
func (s *Store) AdvanceAll(dt float64) {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
	}
}

// KineticEnergy returns the total kinetic energy of the system,
// Sum_i 1/2 m_i |v_i|^2.
func (s *Store) KineticEnergy() float64 {
	total := 0.0
	for _, p := range s.Particles {
		total += p.KineticEnergy()
	}
	return total
}

// WithinBox reports whether particle i's sphere sits entirely inside the
// container, per axis: r_i <= position[i][k] <= L_k - r_i.
func (s *Store) WithinBox(i int) bool {
	p := s.Particles[i]
	for k := 0; k < s.Dim(); k++ {
		lo := p.Radius
		hi := s.Box.Lengths[k] - p.Radius
		if p.Position[k] < lo || p.Position[k] > hi {
			return false
		}
	}
	return true
}

// ParticleCountOK implements the end-of-run conservation check: it returns
// true iff at most one particle is currently outside the box. The particle
// that just collided may sit fractionally outside its bound until the next
// advance brings it back in; any more than one out-of-bounds particle
// indicates a genuine invariant breach.
func (s *Store) ParticleCountOK() bool {
	inBox := 0
	for i := range s.Particles {
		if s.WithinBox(i) {
			inBox++
		}
	}
	return inBox >= s.N()-1
}
