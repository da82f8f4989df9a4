package simulation

import (
	"testing"

	"hardsphere/internal/config"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.NumParticles = 12
	cfg.BoxLengths = []float64{10, 10, 10}
	cfg.Mass = 1
	cfg.Radius = 0.1
	cfg.InitialSpeed = 1
	cfg.Collisions = 50
	cfg.Seed = 7
	return cfg
}

func TestNewSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.NumParticles = 0
	if _, err := NewSimulation(cfg); err == nil {
		t.Errorf("Expected an error for an invalid configuration")
	}
}

func TestRunAdvancesToCollisionBudget(t *testing.T) {
	cfg := smallConfig()
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	if err := sim.Run(); err != nil {
		t.Fatalf("Run failed conservation check: %v", err)
	}

	if sim.System.CollisionCount != cfg.Collisions {
		t.Errorf("Expected %d collisions, got %d", cfg.Collisions, sim.System.CollisionCount)
	}
	if len(sim.Ledger.Records) != cfg.Collisions {
		t.Errorf("Expected %d ledger records, got %d", cfg.Collisions, len(sim.Ledger.Records))
	}
	if sim.Ledger.EnergyDrift() > 1e-6 {
		t.Errorf("Expected negligible energy drift, got %f", sim.Ledger.EnergyDrift())
	}
}

func TestSnapshotReflectsParticleCount(t *testing.T) {
	cfg := smallConfig()
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	if len(sim.GetParticles()) != cfg.NumParticles {
		t.Errorf("Expected %d particles, got %d", cfg.NumParticles, len(sim.GetParticles()))
	}

	snap := sim.Snapshot()
	if snap.N != cfg.NumParticles {
		t.Errorf("Expected snapshot N=%d, got %d", cfg.NumParticles, snap.N)
	}
}

func TestDecorrelationTimeWithinRecordedHistory(t *testing.T) {
	cfg := smallConfig()
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	if err := sim.Run(); err != nil {
		t.Fatalf("Run failed conservation check: %v", err)
	}

	dt := sim.DecorrelationTime(0.1)
	if dt < 0 || dt > cfg.Collisions {
		t.Errorf("Expected a decorrelation time in [0, %d], got %d", cfg.Collisions, dt)
	}
}
