package geocore

import (
	"fmt"
	"math"

	"tpc-geom/internal/geoerr"
	"tpc-geom/internal/geoid"
)

// minSlope guards the slope inversions below; slopes closer to zero than
// this are clamped before dividing.
const minSlope = 0.001

// flatSlopeSentinel stands in for an infinite third-plane slope when the
// projected combination comes out exactly flat.
const flatSlopeSentinel = 999.

// ComputeThirdPlaneSlope combines the slopes of a line segment as seen on
// two wire planes into the slope the same segment shows on a third plane.
// Angles are the planes' wire angles; slopes are in time-tick versus
// wire-coordinate units normalized to a common pitch.
//
// Slopes below the clamp cannot be resolved: with both inputs that small
// the result is the clamp itself, and with one that small the formula is
// skipped entirely so its 1/slope terms never divide by a near-zero
// value, yielding a steep slope of 1/clamp instead.
func ComputeThirdPlaneSlope(angle1, slope1, angle2, slope2, angle3 float64) float64 {
	if math.Abs(slope1) < minSlope && math.Abs(slope2) < minSlope {
		return minSlope
	}

	slope3 := minSlope
	if math.Abs(slope1) > minSlope && math.Abs(slope2) > minSlope {
		slope3 = ((1/slope1)*math.Sin(angle3-angle2) -
			(1/slope2)*math.Sin(angle3-angle1)) / math.Sin(angle1-angle2)
	}

	if slope3 != 0 {
		return 1 / slope3
	}
	return flatSlopeSentinel
}

// ComputeThirdPlaneDTDW is ComputeThirdPlaneSlope in physical
// time-per-distance units: the input slopes carry their planes' pitches
// and the result carries the third plane's.
func ComputeThirdPlaneDTDW(angle1, dtdw1, pitch1, angle2, dtdw2, pitch2, angle3, pitch3 float64) float64 {
	slope1 := dtdw1 / pitch1
	slope2 := dtdw2 / pitch2
	return pitch3 * ComputeThirdPlaneSlope(angle1, slope1, angle2, slope2, angle3)
}

// ThirdPlane returns the remaining plane of a three-plane module given
// two distinct planes of it.
func (c *Core) ThirdPlane(p1, p2 geoid.PlaneID) (geoid.PlaneID, error) {
	snap, err := c.current()
	if err != nil {
		return geoid.InvalidPlaneID(), err
	}
	return snap.thirdPlane(p1, p2)
}

func (s *snapshot) thirdPlane(p1, p2 geoid.PlaneID) (geoid.PlaneID, error) {
	if err := s.checkIndependentPlanes(p1, p2); err != nil {
		return geoid.InvalidPlaneID(), err
	}
	third := 0 + 1 + 2 - int(p1.Plane) - int(p2.Plane)
	return geoid.PlaneID{ModuleID: p1.ModuleID, Plane: uint32(third)}, nil
}

// checkIndependentPlanes verifies that the pair identifies a third plane
// unambiguously: same module, different planes, exactly three planes.
func (s *snapshot) checkIndependentPlanes(p1, p2 geoid.PlaneID) error {
	if !p1.Valid || !p2.Valid {
		return fmt.Errorf("geocore: invalid plane pair %s, %s: %w",
			p1, p2, geoerr.ErrInvalidArgument)
	}
	if p1.ModuleID.Cmp(p2.ModuleID) != 0 {
		return fmt.Errorf("geocore: planes %s and %s are in different modules: %w",
			p1, p2, geoerr.ErrInvalidArgument)
	}
	if p1.Plane == p2.Plane {
		return fmt.Errorf("geocore: need two distinct planes, got %s twice: %w",
			p1, geoerr.ErrInvalidArgument)
	}
	mod, err := s.module(p1.ModuleID)
	if err != nil {
		return err
	}
	if mod.NPlanes() != 3 {
		return fmt.Errorf("geocore: module %s has %d planes, third-plane queries need 3: %w",
			p1.ModuleID, mod.NPlanes(), geoerr.ErrInvalidArgument)
	}
	if int(p1.Plane) >= 3 || int(p2.Plane) >= 3 {
		return fmt.Errorf("geocore: plane index out of range in pair %s, %s: %w",
			p1, p2, geoerr.ErrInvalidArgument)
	}
	return nil
}

// ThirdPlaneSlope projects the slopes seen on two planes onto the
// remaining plane of the module.
func (c *Core) ThirdPlaneSlope(p1 geoid.PlaneID, slope1 float64, p2 geoid.PlaneID, slope2 float64) (float64, error) {
	snap, err := c.current()
	if err != nil {
		return 0, err
	}
	third, err := snap.thirdPlane(p1, p2)
	if err != nil {
		return 0, err
	}
	return snap.thirdPlaneSlopeOn(p1, slope1, p2, slope2, third)
}

// ThirdPlaneSlopeOn projects the slopes seen on two planes onto an
// explicitly chosen output plane of the same module.
func (c *Core) ThirdPlaneSlopeOn(p1 geoid.PlaneID, slope1 float64, p2 geoid.PlaneID, slope2 float64, out geoid.PlaneID) (float64, error) {
	snap, err := c.current()
	if err != nil {
		return 0, err
	}
	if err := snap.checkIndependentPlanes(p1, p2); err != nil {
		return 0, err
	}
	if out.ModuleID.Cmp(p1.ModuleID) != 0 {
		return 0, fmt.Errorf("geocore: output plane %s is in a different module: %w",
			out, geoerr.ErrInvalidArgument)
	}
	return snap.thirdPlaneSlopeOn(p1, slope1, p2, slope2, out)
}

func (s *snapshot) thirdPlaneSlopeOn(p1 geoid.PlaneID, slope1 float64, p2 geoid.PlaneID, slope2 float64, out geoid.PlaneID) (float64, error) {
	pl1, err := s.plane(p1)
	if err != nil {
		return 0, err
	}
	pl2, err := s.plane(p2)
	if err != nil {
		return 0, err
	}
	pl3, err := s.plane(out)
	if err != nil {
		return 0, err
	}
	return ComputeThirdPlaneSlope(
		pl1.WireAngle(), slope1,
		pl2.WireAngle(), slope2,
		pl3.WireAngle(),
	), nil
}

// ThirdPlaneDTDW is ThirdPlaneSlope with the slopes expressed in physical
// time-per-distance units along each plane's pitch.
func (c *Core) ThirdPlaneDTDW(p1 geoid.PlaneID, dtdw1 float64, p2 geoid.PlaneID, dtdw2 float64) (float64, error) {
	snap, err := c.current()
	if err != nil {
		return 0, err
	}
	third, err := snap.thirdPlane(p1, p2)
	if err != nil {
		return 0, err
	}
	return snap.thirdPlaneDTDWOn(p1, dtdw1, p2, dtdw2, third)
}

// ThirdPlaneDTDWOn is ThirdPlaneSlopeOn in physical time-per-distance
// units.
func (c *Core) ThirdPlaneDTDWOn(p1 geoid.PlaneID, dtdw1 float64, p2 geoid.PlaneID, dtdw2 float64, out geoid.PlaneID) (float64, error) {
	snap, err := c.current()
	if err != nil {
		return 0, err
	}
	if err := snap.checkIndependentPlanes(p1, p2); err != nil {
		return 0, err
	}
	if out.ModuleID.Cmp(p1.ModuleID) != 0 {
		return 0, fmt.Errorf("geocore: output plane %s is in a different module: %w",
			out, geoerr.ErrInvalidArgument)
	}
	return snap.thirdPlaneDTDWOn(p1, dtdw1, p2, dtdw2, out)
}

func (s *snapshot) thirdPlaneDTDWOn(p1 geoid.PlaneID, dtdw1 float64, p2 geoid.PlaneID, dtdw2 float64, out geoid.PlaneID) (float64, error) {
	pl1, err := s.plane(p1)
	if err != nil {
		return 0, err
	}
	pl2, err := s.plane(p2)
	if err != nil {
		return 0, err
	}
	pl3, err := s.plane(out)
	if err != nil {
		return 0, err
	}
	return ComputeThirdPlaneDTDW(
		pl1.WireAngle(), dtdw1, pl1.WirePitch(),
		pl2.WireAngle(), dtdw2, pl2.WirePitch(),
		pl3.WireAngle(), pl3.WirePitch(),
	), nil
}
