package element

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/geoid"
	"tpc-geom/pkg/geometry"
)

// Plane is a 2D array of parallel sense wires sharing one orientation and
// pitch. Wires live in the world Y-Z plane; the pitch direction is the
// in-plane unit vector along which the wire coordinate increases.
type Plane struct {
	ID     geoid.PlaneID
	Trans  geometry.Transform
	Center r3.Vec
	Half   r3.Vec
	Wires  []*Wire

	pitch     float64
	orthY     float64 // pitch direction, Y component
	orthZ     float64 // pitch direction, Z component
	wireAngle float64
}

// NWires returns the number of wires in the plane.
func (p *Plane) NWires() int { return len(p.Wires) }

// Wire returns the wire at the given index, or nil if out of range.
func (p *Plane) Wire(i int) *Wire {
	if i < 0 || i >= len(p.Wires) {
		return nil
	}
	return p.Wires[i]
}

// WirePitch returns the center-to-center wire spacing.
func (p *Plane) WirePitch() float64 { return p.pitch }

// WireAngle returns the angle of the pitch direction, measured in the Y-Z
// plane from the +Z axis toward +Y, in radians. Two planes with the same
// wire angle have parallel wires.
func (p *Plane) WireAngle() float64 { return p.wireAngle }

// WireCoordinate projects a world (y, z) position onto the pitch axis and
// returns it in units of wire pitch, with wire 0 at coordinate zero. The
// value is continuous; rounding it yields the nearest wire index.
func (p *Plane) WireCoordinate(y, z float64) float64 {
	if len(p.Wires) == 0 || p.pitch == 0 {
		return 0
	}
	first := p.Wires[0].Center
	return ((y-first.Y)*p.orthY + (z-first.Z)*p.orthZ) / p.pitch
}

// UpdateAfterSorting stamps the plane and its wires with contiguous IDs
// and rebuilds the wire-coordinate projection from the sorted wires. It is
// idempotent on an already-sorted plane.
func (p *Plane) UpdateAfterSorting(id geoid.PlaneID) {
	p.ID = id
	for i, w := range p.Wires {
		w.ID = geoid.WireID{PlaneID: id, Wire: uint32(i)}
	}
	p.updateProjection()
}

// updateProjection derives the pitch direction and spacing from the first
// two sorted wires. The direction points from wire 0 to wire 1, so the
// wire coordinate always increases with the wire index.
func (p *Plane) updateProjection() {
	if len(p.Wires) < 2 {
		// Single-wire plane: pick the in-plane perpendicular of the wire
		// direction so projections stay well defined.
		if len(p.Wires) == 1 {
			d := p.Wires[0].Dir
			n := math.Hypot(d.Z, d.Y)
			if n > 0 {
				p.orthY, p.orthZ = d.Z/n, -d.Y/n
			}
			p.pitch = 1
			p.wireAngle = math.Atan2(p.orthY, p.orthZ)
		}
		return
	}

	c0 := p.Wires[0].Center
	c1 := p.Wires[1].Center
	dy, dz := c1.Y-c0.Y, c1.Z-c0.Z
	p.pitch = math.Hypot(dy, dz)
	if p.pitch > 0 {
		p.orthY, p.orthZ = dy/p.pitch, dz/p.pitch
	}
	p.wireAngle = math.Atan2(p.orthY, p.orthZ)
}
