package geocore

import (
	"fmt"
	"math"

	"tpc-geom/internal/geoerr"
	"tpc-geom/internal/geoid"
	"tpc-geom/pkg/geometry"
)

// WireIntersection is the crossing point of two wires, in world Y-Z
// coordinates, together with the module both wires belong to.
type WireIntersection struct {
	Y      float64
	Z      float64
	Module geoid.ModuleID
}

func noIntersection() WireIntersection {
	return WireIntersection{
		Y:      math.Inf(1),
		Z:      math.Inf(1),
		Module: geoid.InvalidModuleID(),
	}
}

// WireIDsIntersect computes the crossing point of two wires projected
// onto the world Y-Z plane. The wires must be valid, belong to the same
// module and lie on different planes; violating that is an invalid
// argument, not a miss. Parallel wires and crossings outside either wire
// span report no intersection without error.
func (c *Core) WireIDsIntersect(a, b geoid.WireID) (WireIntersection, bool, error) {
	snap, err := c.current()
	if err != nil {
		return noIntersection(), false, err
	}

	if err := checkComparable(a, b); err != nil {
		return noIntersection(), false, err
	}

	wa, err := snap.wire(a)
	if err != nil {
		return noIntersection(), false, err
	}
	wb, err := snap.wire(b)
	if err != nil {
		return noIntersection(), false, err
	}

	sa, ea := wa.Endpoints()
	sb, eb := wb.Endpoints()
	segA := geometry.NewSegment2D(sa.Y, sa.Z, ea.Y, ea.Z)
	segB := geometry.NewSegment2D(sb.Y, sb.Z, eb.Y, eb.Z)

	pt, ok := geometry.IntersectSegments(segA, segB)
	if !ok {
		return noIntersection(), false, nil
	}
	return WireIntersection{Y: pt.X, Z: pt.Y, Module: a.ModuleID}, true, nil
}

// checkComparable verifies that two wires are a meaningful intersection
// pair: both valid, same module, different planes.
func checkComparable(a, b geoid.WireID) error {
	if !a.Valid || !b.Valid {
		return fmt.Errorf("geocore: intersection of invalid wire IDs %s and %s: %w",
			a, b, geoerr.ErrInvalidArgument)
	}
	if a.ModuleID.Cmp(b.ModuleID) != 0 {
		return fmt.Errorf("geocore: wires %s and %s are in different modules: %w",
			a, b, geoerr.ErrInvalidArgument)
	}
	if a.Plane == b.Plane {
		return fmt.Errorf("geocore: wires %s and %s are on the same plane: %w",
			a, b, geoerr.ErrInvalidArgument)
	}
	return nil
}
