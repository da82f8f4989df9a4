// Package scheduler advances the system from one collision to the next: it
// finds the globally earliest pending event, advances every particle to
// that instant, resolves the collision (wall reflection or elastic pair
// exchange), refreshes the event series for the particles that just moved,
// and re-arms the re-collision guard.
package scheduler

import (
	"fmt"
	"math"

	"hardsphere/internal/event"
	"hardsphere/internal/gas"
	"hardsphere/internal/gpu"
)

// SimulationError reports that the end-of-run conservation check failed:
// more than one particle was found outside the container.
type SimulationError struct {
	Observed int
	Total    int
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("scheduler: invariant breach: %d of %d particles accounted for inside the box", e.Observed, e.Total)
}

// System couples a particle store with its event series and the counters
// the scheduler accumulates as it runs.
type System struct {
	Store          *gas.Store
	Series         *event.Series
	GlobalTime     float64
	CollisionCount int
	NetImpulse     float64
}

// NewSystem builds a System whose event series is fully populated from the
// store's current state, with the global clock starting at zero. Refreshes
// route the pair-collision-time kernel through a KernelBackend in Auto
// mode, so the choice of CPU or GPU evaluation is made once per refresh and
// its timings are available via Backend's GetPerformanceStats.
func NewSystem(store *gas.Store) *System {
	series := event.Init(store, 0)
	series.Backend = gpu.NewKernelBackend()
	return &System{
		Store:  store,
		Series: series,
	}
}

// SimulateEvent advances the system by exactly one event: it finds the
// earliest pending collision, advances every particle to that instant,
// resolves the collision, refreshes the affected event-series entries, and
// forbids immediate re-collision of the pair that just fired.
func (s *System) SimulateEvent() {
	key, at := s.Series.Min()
	dt := at - s.GlobalTime
	if math.IsInf(dt, 1) {
		panic("scheduler: no finite event remains; system has reached a stationary configuration")
	}
	if dt < -1e-9 {
		panic(fmt.Sprintf("scheduler: popped event time %g is behind global time %g: logic error", at, s.GlobalTime))
	}
	if dt < 0 {
		dt = 0
	}

	s.Store.AdvanceAll(dt)
	s.GlobalTime += dt
	s.CollisionCount++

	switch key.Kind {
	case event.KindWall:
		s.resolveWall(key)
		s.Series.Refresh(key.I, s.Store, s.GlobalTime)
	case event.KindPair:
		s.resolvePair(key)
		s.Series.Refresh(key.I, s.Store, s.GlobalTime)
		s.Series.Refresh(key.J, s.Store, s.GlobalTime)
	}

	s.Series.Forbid(key)
}

// resolveWall accumulates the wall impulse and specularly reflects the
// particle's velocity component perpendicular to the wall.
func (s *System) resolveWall(key event.Key) {
	p := &s.Store.Particles[key.I]
	s.NetImpulse += 2 * p.Mass * math.Abs(p.Velocity[key.Axis])
	p.Velocity[key.Axis] = -p.Velocity[key.Axis]
}

// resolvePair performs the elastic exchange of momentum along the line of
// centres between the two colliding spheres.
func (s *System) resolvePair(key event.Key) {
	a := &s.Store.Particles[key.I]
	b := &s.Store.Particles[key.J]

	n := b.Position.Sub(a.Position).Normalize()
	dv := b.Velocity.Sub(a.Velocity)
	k := (2 * a.Mass * b.Mass) / (a.Mass + b.Mass) * dv.Dot(n)

	a.Velocity = a.Velocity.Add(n.Scale(k / a.Mass))
	b.Velocity = b.Velocity.Sub(n.Scale(k / b.Mass))
}

// ParticleCountOK reports the end-of-run conservation check (spec.md §6):
// true iff at most one particle sits outside the box.
func (s *System) ParticleCountOK() bool {
	return s.Store.ParticleCountOK()
}

// CheckConservation returns a *SimulationError if the conservation check
// fails, or nil if the system is in a valid final state.
func (s *System) CheckConservation() error {
	if s.Store.ParticleCountOK() {
		return nil
	}
	observed := 0
	for i := 0; i < s.Store.N(); i++ {
		if s.Store.WithinBox(i) {
			observed++
		}
	}
	return &SimulationError{Observed: observed, Total: s.Store.N()}
}
