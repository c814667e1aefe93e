package element

import (
	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/geoid"
	"tpc-geom/pkg/geometry"
)

// AuxDet is an auxiliary detector outside the enclosures, such as a
// scintillator paddle. It keeps its volume name for external bookkeeping.
type AuxDet struct {
	ID     geoid.AuxDetID
	Name   string
	Trans  geometry.Transform
	Center r3.Vec
	Half   r3.Vec
}

// Bounds returns the world-frame bounding box of the auxiliary detector.
func (a *AuxDet) Bounds() geometry.Box {
	return geometry.NewBox(a.Center, a.Half)
}
