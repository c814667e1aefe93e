package element

import (
	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/geoid"
	"tpc-geom/pkg/geometry"
)

// OpDet is an optical detector mounted inside an enclosure.
type OpDet struct {
	ID     geoid.OpDetID
	Trans  geometry.Transform
	Center r3.Vec
	Half   r3.Vec
}

// Bounds returns the world-frame bounding box of the optical detector.
func (o *OpDet) Bounds() geometry.Box {
	return geometry.NewBox(o.Center, o.Half)
}
