// Package simulation wires a Config into a running gas system: it builds
// the particle store, the scheduler, and exposes the step-by-step and
// run-to-completion entry points the driver and the renderer both use.
package simulation

import (
	"math/rand"

	"hardsphere/internal/config"
	"hardsphere/internal/gas"
	"hardsphere/internal/observable"
	"hardsphere/internal/scheduler"
	"hardsphere/internal/spectrum"
	"hardsphere/internal/vecn"
)

// trackedParticle is the index whose velocity the simulation samples at
// every event boundary for the autocorrelation diagnostic.
const trackedParticle = 0

// Simulation holds the entire state of one hard-sphere gas run: its
// configuration, the particle store, the event-driven scheduler and the
// conservation ledger accumulated as it advances.
type Simulation struct {
	Config *config.Config
	System *scheduler.System
	Ledger *observable.Ledger

	// trackedSpeed records particle trackedParticle's speed at every event
	// boundary, feeding the autocorrelation diagnostic in internal/spectrum.
	trackedSpeed []float64
}

// NewSimulation validates cfg, builds a particle store via rejection
// sampling and wraps it in a scheduler.System with a fully populated event
// series.
func NewSimulation(cfg *config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	box := gas.NewContainer(vecn.Vec(cfg.BoxLengths))
	store, err := gas.NewStore(gas.InitParams{
		N:      cfg.NumParticles,
		Mass:   cfg.Mass,
		Radius: cfg.Radius,
		Speed:  cfg.InitialSpeed,
		Box:    box,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
	})
	if err != nil {
		return nil, err
	}

	return &Simulation{
		Config: cfg,
		System: scheduler.NewSystem(store),
		Ledger: &observable.Ledger{},
	}, nil
}

// Step advances the simulation by exactly one collision event and samples
// the conservation ledger and the tracked-particle speed at the new event
// boundary.
func (s *Simulation) Step() {
	s.System.SimulateEvent()
	s.Ledger.Sample(s.System)
	if trackedParticle < s.System.Store.N() {
		s.trackedSpeed = append(s.trackedSpeed, s.System.Store.Particles[trackedParticle].Velocity.Length())
	}
}

// DecorrelationTime returns the number of events after which the tracked
// particle's speed autocorrelation first drops to or below threshold, via
// internal/spectrum's FFT-based estimator. A short decorrelation time
// relative to CollisionCount means collisions are efficiently randomizing
// that particle's speed.
func (s *Simulation) DecorrelationTime(threshold float64) int {
	return spectrum.DecorrelationTime(s.trackedSpeed, threshold)
}

// Run advances the simulation until it has processed cfg.Collisions events,
// then returns the result of the end-of-run CheckConservation.
func (s *Simulation) Run() error {
	for s.System.CollisionCount < s.Config.Collisions {
		s.Step()
	}
	return s.System.CheckConservation()
}

// GetParticles returns the current particle store.
func (s *Simulation) GetParticles() []gas.Particle {
	return s.System.Store.Particles
}

// GetConfig returns the simulation configuration.
func (s *Simulation) GetConfig() *config.Config {
	return s.Config
}

// Snapshot returns the current observable summary.
func (s *Simulation) Snapshot() observable.Summary {
	return observable.Snapshot(s.System)
}
