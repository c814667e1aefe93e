package element

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/geoid"
	"tpc-geom/pkg/geometry"
)

// DriftDirection encodes the axis and sign of charge-carrier travel toward
// the sense planes. It is derived from the geometry, never configured.
type DriftDirection int

const (
	DriftUnknown DriftDirection = iota
	DriftPosX
	DriftNegX
	DriftPosY
	DriftNegY
	DriftPosZ
	DriftNegZ
)

func (d DriftDirection) String() string {
	switch d {
	case DriftPosX:
		return "+X"
	case DriftNegX:
		return "-X"
	case DriftPosY:
		return "+Y"
	case DriftNegY:
		return "-Y"
	case DriftPosZ:
		return "+Z"
	case DriftNegZ:
		return "-Z"
	default:
		return "unknown"
	}
}

// Module is one drift volume housing a stack of wire planes.
type Module struct {
	ID       geoid.ModuleID
	Trans    geometry.Transform
	Center   r3.Vec
	Half     r3.Vec
	Planes   []*Plane
	DriftDir DriftDirection
}

// NPlanes returns the number of wire planes in the module.
func (m *Module) NPlanes() int { return len(m.Planes) }

// Plane returns the plane at the given index, or nil if out of range.
func (m *Module) Plane(i int) *Plane {
	if i < 0 || i >= len(m.Planes) {
		return nil
	}
	return m.Planes[i]
}

// Bounds returns the world-frame bounding box of the module.
func (m *Module) Bounds() geometry.Box {
	return geometry.NewBox(m.Center, m.Half)
}

// UpdateAfterSorting stamps the module and its planes with contiguous IDs
// and re-derives the drift direction. Idempotent on a sorted module.
func (m *Module) UpdateAfterSorting(id geoid.ModuleID) {
	m.ID = id
	for i, p := range m.Planes {
		p.UpdateAfterSorting(geoid.PlaneID{ModuleID: id, Plane: uint32(i)})
	}
	m.DriftDir = m.detectDriftDirection()
}

// detectDriftDirection compares the module center against the first
// plane's center. The planes cover most of the module face, so the largest
// coordinate difference identifies the drift axis, and its sign the drift
// direction.
func (m *Module) detectDriftDirection() DriftDirection {
	if len(m.Planes) == 0 {
		return DriftUnknown
	}

	d := r3.Vec{
		X: m.Planes[0].Center.X - m.Center.X,
		Y: m.Planes[0].Center.Y - m.Center.Y,
		Z: m.Planes[0].Center.Z - m.Center.Z,
	}

	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)
	switch {
	case ax > ay && ax > az:
		if d.X > 0 {
			return DriftPosX
		}
		return DriftNegX
	case ay > az:
		if d.Y > 0 {
			return DriftPosY
		}
		return DriftNegY
	default:
		if d.Z > 0 {
			return DriftPosZ
		}
		return DriftNegZ
	}
}
