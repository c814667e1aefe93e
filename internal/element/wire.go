// Package element defines the typed detector elements materialized from
// the raw volume tree: enclosures own modules and optical detectors,
// modules own wire planes, planes own wires, and auxiliary detectors hang
// off the detector root. Ownership is strictly tree-shaped; elements are
// referenced by value-based IDs, never by back-pointers.
package element

import (
	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/geoid"
	"tpc-geom/pkg/geometry"
)

// Wire is the finest-grained sense element: a straight segment with a
// world-frame center, unit direction and half-length.
type Wire struct {
	ID         geoid.WireID
	Trans      geometry.Transform
	Center     r3.Vec
	Dir        r3.Vec
	HalfLength float64
}

// Endpoints returns the two world-frame endpoints of the wire.
func (w *Wire) Endpoints() (r3.Vec, r3.Vec) {
	d := r3.Vec{
		X: w.Dir.X * w.HalfLength,
		Y: w.Dir.Y * w.HalfLength,
		Z: w.Dir.Z * w.HalfLength,
	}
	start := r3.Vec{X: w.Center.X - d.X, Y: w.Center.Y - d.Y, Z: w.Center.Z - d.Z}
	end := r3.Vec{X: w.Center.X + d.X, Y: w.Center.Y + d.Y, Z: w.Center.Z + d.Z}
	return start, end
}

// Length returns the full wire length.
func (w *Wire) Length() float64 { return 2 * w.HalfLength }
