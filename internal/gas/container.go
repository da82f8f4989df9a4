package gas

import "hardsphere/internal/vecn"

// Container is a d-dimensional axis-aligned box with positive side lengths.
// The interior a sphere of radius r may occupy along axis k is
// [r, Lengths[k] - r].
type Container struct {
	Lengths vecn.Vec
}

// NewContainer returns a Container with the given side lengths.
func NewContainer(lengths vecn.Vec) *Container {
	return &Container{Lengths: lengths.Clone()}
}

// Dim returns the number of spatial dimensions.
func (c *Container) Dim() int {
	return c.Lengths.Dim()
}

// Volume returns the product of the side lengths.
func (c *Container) Volume() float64 {
	v := 1.0
	for _, l := range c.Lengths {
		v *= l
	}
	return v
}

// WallArea returns the total area of all 2*d walls: for each axis k the pair
// of opposite faces each have area Prod_{j != k} L_j.
func (c *Container) WallArea() float64 {
	total := 0.0
	for k := range c.Lengths {
		area := 1.0
		for j, l := range c.Lengths {
			if j == k {
				continue
			}
			area *= l
		}
		total += 2 * area
	}
	return total
}
