package geocore

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/geoerr"
	"tpc-geom/internal/geoid"
	"tpc-geom/pkg/geometry"
)

// ensureBounds lazily builds the boundary tables from transforms and
// dimensions. The tables live inside the snapshot, so a reload swaps them
// out atomically with the element tree.
func (s *snapshot) ensureBounds() {
	s.boundsOnce.Do(func() {
		s.encBounds = make([]geometry.Box, len(s.enclosures))
		s.modBounds = make([][]geometry.Box, len(s.enclosures))
		for e, enc := range s.enclosures {
			s.encBounds[e] = enc.Bounds()
			s.modBounds[e] = make([]geometry.Box, len(enc.Modules))
			for m, mod := range enc.Modules {
				s.modBounds[e][m] = mod.Bounds()
			}
		}
	})
}

// FindEnclosureAtPosition returns the ID of the enclosure containing the
// world point. All six box faces are scaled by (1 + wiggle) to absorb
// floating-point roundoff at the boundaries.
func (c *Core) FindEnclosureAtPosition(p r3.Vec) (geoid.EnclosureID, error) {
	snap, err := c.current()
	if err != nil {
		return geoid.InvalidEnclosureID(), err
	}
	return snap.findEnclosure(p)
}

func (s *snapshot) findEnclosure(p r3.Vec) (geoid.EnclosureID, error) {
	s.ensureBounds()
	scale := 1 + s.wiggle
	for e := range s.encBounds {
		if s.encBounds[e].ContainsScaled(p, scale) {
			return geoid.NewEnclosureID(uint32(e)), nil
		}
	}
	return geoid.InvalidEnclosureID(),
		fmt.Errorf("geocore: no enclosure at (%g, %g, %g): %w", p.X, p.Y, p.Z, geoerr.ErrNotFound)
}

// FindModuleAtPosition returns the ID of the module containing the world
// point, testing hierarchically: enclosure first, then its modules.
func (c *Core) FindModuleAtPosition(p r3.Vec) (geoid.ModuleID, error) {
	snap, err := c.current()
	if err != nil {
		return geoid.InvalidModuleID(), err
	}

	encID, err := snap.findEnclosure(p)
	if err != nil {
		return geoid.InvalidModuleID(), err
	}

	scale := 1 + snap.wiggle
	for m := range snap.modBounds[encID.Enclosure] {
		if snap.modBounds[encID.Enclosure][m].ContainsScaled(p, scale) {
			return geoid.ModuleID{EnclosureID: encID, Module: uint32(m)}, nil
		}
	}
	return geoid.InvalidModuleID(),
		fmt.Errorf("geocore: no module at (%g, %g, %g): %w", p.X, p.Y, p.Z, geoerr.ErrNotFound)
}

// WireCoordinate projects a world point onto the plane's pitch axis and
// returns the continuous wire coordinate, in units of pitch with wire 0
// at zero.
func (c *Core) WireCoordinate(p r3.Vec, id geoid.PlaneID) (float64, error) {
	snap, err := c.current()
	if err != nil {
		return 0, err
	}
	plane, err := snap.plane(id)
	if err != nil {
		return 0, err
	}
	return plane.WireCoordinate(p.Y, p.Z), nil
}

// NearestWireID returns the wire of the plane closest to the world point.
// The continuous coordinate rounds with floor(c + 0.5), so the midpoint
// between two wires resolves toward the higher index. A point outside the
// plane's wire range returns the clamped wire ID together with a
// *geoerr.InvalidWireIndexError carrying both the raw and clamped
// indices, letting callers clamp instead of fail.
func (c *Core) NearestWireID(p r3.Vec, id geoid.PlaneID) (geoid.WireID, error) {
	snap, err := c.current()
	if err != nil {
		return geoid.InvalidWireID(), err
	}
	return snap.nearestWire(p, id)
}

func (s *snapshot) nearestWire(p r3.Vec, id geoid.PlaneID) (geoid.WireID, error) {
	plane, err := s.plane(id)
	if err != nil {
		return geoid.InvalidWireID(), err
	}

	coord := math.Floor(plane.WireCoordinate(p.Y, p.Z) + 0.5)
	if coord < 0 || coord >= float64(plane.NWires()) {
		clamped := 0
		if coord >= float64(plane.NWires()) {
			clamped = plane.NWires() - 1
		}
		return geoid.WireID{PlaneID: id, Wire: uint32(clamped)},
			&geoerr.InvalidWireIndexError{Plane: id, Raw: saturateIndex(coord), Clamped: clamped}
	}
	return geoid.WireID{PlaneID: id, Wire: uint32(coord)}, nil
}

// saturateIndex converts a rounded wire coordinate to int, saturating far
// outside any real plane so the float-to-int conversion stays defined for
// arbitrarily distant points.
func saturateIndex(v float64) int {
	const limit = math.MaxInt32
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return int(v)
}

// NearestChannel returns the readout channel of the wire closest to the
// world point on the given plane.
func (c *Core) NearestChannel(p r3.Vec, id geoid.PlaneID) (geoid.ChannelID, error) {
	snap, err := c.current()
	if err != nil {
		return geoid.InvalidChannel, err
	}
	wid, err := snap.nearestWire(p, id)
	if err != nil {
		return geoid.InvalidChannel, err
	}
	return snap.chanMap.PlaneWireToChannel(wid)
}
