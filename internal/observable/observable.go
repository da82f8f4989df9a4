// Package observable computes the macroscopic, read-only quantities the
// scheduler's bookkeeping makes possible: temperature from kinetic energy,
// pressure from accumulated wall impulse, and the speed distribution used
// to validate against Maxwell-Boltzmann.
package observable

import (
	"hardsphere/internal/gas"
	"hardsphere/internal/scheduler"
)

// BoltzmannConstant is k_B in SI units, matching the reference scenario's
// use of physically dimensioned masses, radii and box lengths.
const BoltzmannConstant = 1.380649e-23

// Temperature returns 2*KE_total / (k_B * N * d), equating the kinetic
// energy per degree of freedom to 1/2 k_B T (equipartition).
func Temperature(s *scheduler.System) float64 {
	ke := s.Store.KineticEnergy()
	n := float64(s.Store.N())
	d := float64(s.Store.Dim())
	return 2 * ke / (BoltzmannConstant * n * d)
}

// Volume returns the product of the container's side lengths.
func Volume(s *scheduler.System) float64 {
	return s.Store.Box.Volume()
}

// Pressure returns net_impulse / (global_time * wall_area), or 0 before the
// first event, when global_time is still zero.
func Pressure(s *scheduler.System) float64 {
	if s.GlobalTime == 0 {
		return 0
	}
	return s.NetImpulse / (s.GlobalTime * s.Store.Box.WallArea())
}

// Summary is the key-value table persisted alongside the final particle
// state, per the core's external-interface contract.
type Summary struct {
	Pressure    float64
	Volume      float64
	Temperature float64
	N           int
	Collisions  int
	Time        float64
}

// Snapshot captures the current observable summary of a system.
func Snapshot(s *scheduler.System) Summary {
	return Summary{
		Pressure:    Pressure(s),
		Volume:      Volume(s),
		Temperature: Temperature(s),
		N:           s.Store.N(),
		Collisions:  s.CollisionCount,
		Time:        s.GlobalTime,
	}
}

// Speeds returns the instantaneous speed of every particle in the store.
func Speeds(store *gas.Store) []float64 {
	speeds := make([]float64, store.N())
	for i, p := range store.Particles {
		speeds[i] = p.Velocity.Length()
	}
	return speeds
}
