// Package geometry is the closed-form predictor for the next impact time
// between a sphere and a container wall, or between two spheres. It never
// returns an error: non-events are reported as +Inf, per the scheduler's
// total-arithmetic contract.
package geometry

import (
	"math"

	"hardsphere/internal/gas"
)

// Side identifies which face of the container a wall event belongs to.
type Side int

const (
	// Min is the face at the lower bound of an axis.
	Min Side = iota
	// Max is the face at the upper bound of an axis.
	Max
)

func (s Side) String() string {
	if s == Min {
		return "Min"
	}
	return "Max"
}

// TimeToWall returns the time until particle p next reaches the wall on the
// given axis and side, or +Inf if it never will on its current trajectory.
func TimeToWall(p gas.Particle, axis int, side Side, box *gas.Container) float64 {
	x := p.Position[axis]
	v := p.Velocity[axis]

	var target float64
	if side == Min {
		target = p.Radius
	} else {
		target = box.Lengths[axis] - p.Radius
	}

	if x == target {
		return 0
	}
	if v == 0 {
		return math.Inf(1)
	}

	t := (target - x) / v
	if t > 0 {
		return t
	}
	return math.Inf(1)
}

// discriminantTolerance treats a discriminant within this distance of zero
// as a grazing double root rather than a true complex pair.
const discriminantTolerance = 1e-12

// TimeToPair returns the time until spheres a and b next touch, or +Inf if
// they never will on their current trajectories. It reproduces the source
// simulator's straddling-root behaviour verbatim: if the quadratic's two
// real roots straddle zero (the spheres currently overlap within slack),
// the larger root is returned rather than +Inf. See the open question on
// this branch in the design notes — callers running a fresh, valid system
// should never observe it fire after the re-collision guard takes effect.
func TimeToPair(a, b gas.Particle) float64 {
	dp := b.Position.Sub(a.Position)
	dv := b.Velocity.Sub(a.Velocity)
	r := a.Radius + b.Radius

	coefA := dv.Dot(dv)
	if coefA == 0 {
		return math.Inf(1)
	}
	coefB := 2 * dv.Dot(dp)
	coefC := dp.Dot(dp) - r*r

	disc := coefB*coefB - 4*coefA*coefC
	if disc < -discriminantTolerance {
		return math.Inf(1)
	}
	if disc < 0 {
		disc = 0
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-coefB - sqrtDisc) / (2 * coefA)
	t2 := (-coefB + sqrtDisc) / (2 * coefA)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	switch {
	case t2 <= 0:
		// Approach already past.
		return math.Inf(1)
	case t1 <= 0 && t2 > 0:
		// Roots straddle zero: spheres are currently overlapping.
		return t2
	default:
		return t1
	}
}

// BatchTimeToPair evaluates TimeToPair for p against every particle in
// others, in order. It is the unit of work the compute backend dispatches
// as a single call instead of one geometry call per partner.
func BatchTimeToPair(p gas.Particle, others []gas.Particle) []float64 {
	times := make([]float64, len(others))
	for i, other := range others {
		times[i] = TimeToPair(p, other)
	}
	return times
}

// WallKeys returns the 2*d (axis, side) combinations that a particle store
// of dimension d exposes per particle.
func WallKeys(dim int) []struct {
	Axis int
	Side Side
} {
	keys := make([]struct {
		Axis int
		Side Side
	}, 0, 2*dim)
	for axis := 0; axis < dim; axis++ {
		keys = append(keys, struct {
			Axis int
			Side Side
		}{axis, Min})
		keys = append(keys, struct {
			Axis int
			Side Side
		}{axis, Max})
	}
	return keys
}
