// Package persist writes the two artifacts the core's external-interface
// contract names: the final per-particle state and the scalar summary
// table, both as CSV so a results directory can be loaded by any
// spreadsheet or plotting tool without a bespoke reader.
//
// There is no CSV or tabular-output library anywhere in the example
// corpus; this package is built directly on the standard library's
// encoding/csv, documented in DESIGN.md as the one place this codebase
// falls back to stdlib for lack of a grounded third-party alternative.
package persist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"hardsphere/internal/gas"
	"hardsphere/internal/observable"
)

// WriteParticles writes one row per particle: id, position components,
// velocity components, mass, radius. Column count adapts to the store's
// dimensionality.
func WriteParticles(w io.Writer, store *gas.Store) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	d := store.Dim()
	header := make([]string, 0, 2+2*d+2)
	header = append(header, "id")
	for k := 0; k < d; k++ {
		header = append(header, fmt.Sprintf("position_%d", k))
	}
	for k := 0; k < d; k++ {
		header = append(header, fmt.Sprintf("velocity_%d", k))
	}
	header = append(header, "mass", "radius")
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, p := range store.Particles {
		row[0] = strconv.Itoa(i)
		for k := 0; k < d; k++ {
			row[1+k] = strconv.FormatFloat(p.Position[k], 'g', -1, 64)
			row[1+d+k] = strconv.FormatFloat(p.Velocity[k], 'g', -1, 64)
		}
		row[1+2*d] = strconv.FormatFloat(p.Mass, 'g', -1, 64)
		row[2+2*d] = strconv.FormatFloat(p.Radius, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteSummary writes the observable summary as a two-column key,value
// table.
func WriteSummary(w io.Writer, summary observable.Summary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][2]string{
		{"pressure", strconv.FormatFloat(summary.Pressure, 'g', -1, 64)},
		{"volume", strconv.FormatFloat(summary.Volume, 'g', -1, 64)},
		{"temperature", strconv.FormatFloat(summary.Temperature, 'g', -1, 64)},
		{"n", strconv.Itoa(summary.N)},
		{"collisions", strconv.Itoa(summary.Collisions)},
		{"time", strconv.FormatFloat(summary.Time, 'g', -1, 64)},
	}

	if err := cw.Write([]string{"key", "value"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r[:]); err != nil {
			return err
		}
	}
	return cw.Error()
}
