// Package integration_test exercises the full hard-sphere gas pipeline —
// configuration, initialization, scheduling and observables — end to end,
// the way tests/integration/simulation_test.go does for the teacher's
// gravity simulation.
package integration_test

import (
	"math"
	"testing"

	"hardsphere/internal/config"
	"hardsphere/internal/observable"
	"hardsphere/internal/simulation"
)

func reducedConfig() *config.Config {
	const (
		boltzmann = 1.380649e-23
		mass      = 3.3e-27
		temp      = 300.0
	)
	cfg := config.DefaultConfig()
	cfg.NumParticles = 60
	cfg.Mass = mass
	cfg.Radius = 2.5e-11
	cfg.BoxLengths = []float64{5e-8, 5e-8, 5e-8}
	cfg.Dimensions = 3
	cfg.InitialSpeed = math.Sqrt(3 * boltzmann * temp / mass)
	cfg.Collisions = 2000
	cfg.Seed = 42
	return cfg
}

// TestFullSimulation builds a reduced-scale gas, runs it to its collision
// budget, and checks every universal invariant from spec.md section 8 holds
// at the final event boundary.
func TestFullSimulation(t *testing.T) {
	cfg := reducedConfig()

	sim, err := simulation.NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	if len(sim.GetParticles()) != cfg.NumParticles {
		t.Fatalf("Expected %d particles, got %d", cfg.NumParticles, len(sim.GetParticles()))
	}

	if err := sim.Run(); err != nil {
		t.Fatalf("Run failed conservation check: %v", err)
	}

	if sim.System.CollisionCount != cfg.Collisions {
		t.Errorf("Expected %d collisions, got %d", cfg.Collisions, sim.System.CollisionCount)
	}
	if sim.System.GlobalTime <= 0 {
		t.Errorf("Expected positive global time, got %f", sim.System.GlobalTime)
	}
	if sim.System.NetImpulse < 0 {
		t.Errorf("Expected non-negative net impulse, got %f", sim.System.NetImpulse)
	}

	if sim.Ledger.EnergyDrift() > 1e-6 {
		t.Errorf("Energy drifted by %e across the run", sim.Ledger.EnergyDrift())
	}
	if !sim.Ledger.AllCountsOK() {
		t.Errorf("Expected every sampled event boundary to pass the particle-count check")
	}

	store := sim.System.Store
	for i := 0; i < store.N(); i++ {
		if !store.WithinBox(i) {
			t.Errorf("Particle %d left the container: %v", i, store.Particles[i].Position)
		}
		for j := i + 1; j < store.N(); j++ {
			dist := store.Particles[i].Position.Sub(store.Particles[j].Position).Length()
			minDist := store.Particles[i].Radius + store.Particles[j].Radius
			if dist < minDist-1e-6 {
				t.Errorf("Particles %d and %d overlap: dist=%f, want >= %f", i, j, dist, minDist)
			}
		}
	}
}

// TestPressureSanity reproduces reference scenario 5's shape (though at
// reduced N and collision count for test speed): the ideal-gas relation
// pressure*volume ~= N*kB*T should hold within a loose tolerance once the
// system has thermalized through several thousand collisions.
func TestPressureSanity(t *testing.T) {
	cfg := reducedConfig()
	cfg.NumParticles = 80
	cfg.Collisions = 4000

	sim, err := simulation.NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	if err := sim.Run(); err != nil {
		t.Fatalf("Run failed conservation check: %v", err)
	}

	summary := sim.Snapshot()
	pv := summary.Pressure * summary.Volume
	nkt := float64(summary.N) * observable.BoltzmannConstant * summary.Temperature

	if nkt == 0 {
		t.Fatal("Expected nonzero N*kB*T")
	}
	relErr := math.Abs(pv-nkt) / nkt
	if relErr > 0.5 {
		t.Errorf("pressure*volume deviates from N*kB*T by %.1f%% (pv=%e, nkt=%e)", relErr*100, pv, nkt)
	}
}

// TestSpeedDistributionIsWellFormed exercises the chi-squared diagnostic
// path scenario 6 describes, checking it produces a well-formed statistic
// rather than asserting a specific fit (which would make the test flaky at
// this reduced scale).
func TestSpeedDistributionIsWellFormed(t *testing.T) {
	cfg := reducedConfig()
	cfg.NumParticles = 100
	cfg.Collisions = 3000

	sim, err := simulation.NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	if err := sim.Run(); err != nil {
		t.Fatalf("Run failed conservation check: %v", err)
	}

	speeds := observable.Speeds(sim.System.Store)
	maxSpeed := 0.0
	for _, s := range speeds {
		if s > maxSpeed {
			maxSpeed = s
		}
	}

	h := observable.NewHistogram(speeds, 10, maxSpeed*1.1)
	statistic, p := h.ChiSquaredMB(cfg.Mass, sim.Snapshot().Temperature)

	if math.IsNaN(statistic) || statistic < 0 {
		t.Errorf("Expected a non-negative chi-squared statistic, got %f", statistic)
	}
	if p < 0 || p > 1 {
		t.Errorf("Expected a p-value in [0,1], got %f", p)
	}
}
