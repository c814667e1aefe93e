package geocore

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"tpc-geom/internal/geoerr"
	"tpc-geom/internal/geoid"
)

func TestComputeThirdPlaneSlopeSymmetricPlanes(t *testing.T) {
	// Wire angles 60, 120 and 90 degrees with equal slopes 1/sqrt(3) on
	// the first two planes project to exactly 0.5 on the third.
	got := ComputeThirdPlaneSlope(
		math.Pi/3, 1/math.Sqrt(3),
		2*math.Pi/3, 1/math.Sqrt(3),
		math.Pi/2,
	)
	if !scalar.EqualWithinAbs(got, 0.5, 1e-6) {
		t.Errorf("third-plane slope = %g, want 0.5", got)
	}
}

func TestComputeThirdPlaneSlopeConsistentAcrossPairings(t *testing.T) {
	a1, a2, a3 := math.Pi/3, 2*math.Pi/3, math.Pi/2
	s1, s2 := 1/math.Sqrt(3), 1/math.Sqrt(3)

	s3 := ComputeThirdPlaneSlope(a1, s1, a2, s2, a3)

	// Feeding any two planes back must reproduce the third.
	back1 := ComputeThirdPlaneSlope(a2, s2, a3, s3, a1)
	if !scalar.EqualWithinAbs(back1, s1, 1e-6) {
		t.Errorf("pairing (2,3) gives %g on plane 1, want %g", back1, s1)
	}
	back2 := ComputeThirdPlaneSlope(a3, s3, a1, s1, a2)
	if !scalar.EqualWithinAbs(back2, s2, 1e-6) {
		t.Errorf("pairing (3,1) gives %g on plane 2, want %g", back2, s2)
	}
}

func TestComputeThirdPlaneSlopeBothFlat(t *testing.T) {
	// Two unresolvably flat slopes resolve to the clamp value itself.
	if got := ComputeThirdPlaneSlope(math.Pi/3, 0, 2*math.Pi/3, 0, math.Pi/2); got != minSlope {
		t.Errorf("both-flat inputs gave %g, want %g", got, minSlope)
	}
	if got := ComputeThirdPlaneSlope(math.Pi/3, 5e-4, 2*math.Pi/3, -5e-4, math.Pi/2); got != minSlope {
		t.Errorf("both-small inputs gave %g, want %g", got, minSlope)
	}
}

func TestComputeThirdPlaneSlopeOneFlat(t *testing.T) {
	// One unresolvable slope skips the formula: its 1/slope terms would
	// blow up, so the result is the steep 1/clamp slope instead.
	cases := []struct {
		name           string
		slope1, slope2 float64
	}{
		{"first flat", 1e-5, 1.0},
		{"second flat", 1.0, 1e-5},
		{"first zero", 0, 0.7},
		{"exactly at clamp", minSlope, 1.0},
	}
	for _, tc := range cases {
		got := ComputeThirdPlaneSlope(math.Pi/3, tc.slope1, 2*math.Pi/3, tc.slope2, math.Pi/2)
		if !scalar.EqualWithinAbs(got, 1/minSlope, 1e-9) {
			t.Errorf("%s: got %g, want %g", tc.name, got, 1/minSlope)
		}
	}
}

func TestComputeThirdPlaneDTDWScalesWithPitch(t *testing.T) {
	a1, a2, a3 := math.Pi/3, 2*math.Pi/3, math.Pi/2
	s := 1 / math.Sqrt(3)

	// Unit pitches reduce to the plain slope form.
	same := ComputeThirdPlaneDTDW(a1, s, 1, a2, s, 1, a3, 1)
	if !scalar.EqualWithinAbs(same, 0.5, 1e-6) {
		t.Errorf("unit-pitch dT/dW = %g, want 0.5", same)
	}

	// Doubling the output pitch doubles the result.
	scaled := ComputeThirdPlaneDTDW(a1, s, 1, a2, s, 1, a3, 2)
	if !scalar.EqualWithinAbs(scaled, 1.0, 1e-6) {
		t.Errorf("doubled-pitch dT/dW = %g, want 1.0", scaled)
	}
}

func TestThirdPlaneResolvesRemainingPlane(t *testing.T) {
	core := loadLayout(t, "standard")

	cases := []struct {
		p1, p2 uint32
		want   uint32
	}{
		{0, 1, 2},
		{0, 2, 1},
		{1, 2, 0},
		{2, 1, 0},
	}
	for _, tc := range cases {
		got, err := core.ThirdPlane(geoid.NewPlaneID(0, 0, tc.p1), geoid.NewPlaneID(0, 0, tc.p2))
		if err != nil {
			t.Errorf("planes %d,%d: %v", tc.p1, tc.p2, err)
			continue
		}
		if got != geoid.NewPlaneID(0, 0, tc.want) {
			t.Errorf("planes %d,%d: got %s, want plane %d", tc.p1, tc.p2, got, tc.want)
		}
	}
}

func TestThirdPlaneSlopeOnStandardLayout(t *testing.T) {
	// Standard wire angles are +30, -30 and 0 degrees. With unit slopes on
	// the tilted planes the collection plane sees sqrt(3)/2.
	core := loadLayout(t, "standard")

	got, err := core.ThirdPlaneSlope(geoid.NewPlaneID(0, 0, 0), 1, geoid.NewPlaneID(0, 0, 1), 1)
	if err != nil {
		t.Fatalf("third-plane slope: %v", err)
	}
	if !scalar.EqualWithinAbs(got, math.Sqrt(3)/2, 1e-9) {
		t.Errorf("slope = %g, want %g", got, math.Sqrt(3)/2)
	}

	// The explicit-output form agrees when pointed at the same plane.
	explicit, err := core.ThirdPlaneSlopeOn(
		geoid.NewPlaneID(0, 0, 0), 1,
		geoid.NewPlaneID(0, 0, 1), 1,
		geoid.NewPlaneID(0, 0, 2),
	)
	if err != nil {
		t.Fatalf("explicit third-plane slope: %v", err)
	}
	if explicit != got {
		t.Errorf("explicit form gives %g, auto form %g", explicit, got)
	}
}

func TestThirdPlaneDTDWOnStandardLayout(t *testing.T) {
	// All standard planes share pitch 0.5, so dT/dW scales the slope form
	// by one pitch.
	core := loadLayout(t, "standard")

	got, err := core.ThirdPlaneDTDW(geoid.NewPlaneID(0, 0, 0), 0.5, geoid.NewPlaneID(0, 0, 1), 0.5)
	if err != nil {
		t.Fatalf("third-plane dT/dW: %v", err)
	}
	if !scalar.EqualWithinAbs(got, 0.5*math.Sqrt(3)/2, 1e-9) {
		t.Errorf("dT/dW = %g, want %g", got, 0.5*math.Sqrt(3)/2)
	}
}

func TestThirdPlaneInvalidPairs(t *testing.T) {
	core := loadLayout(t, "standard")

	if _, err := core.ThirdPlane(geoid.NewPlaneID(0, 0, 1), geoid.NewPlaneID(0, 0, 1)); !errors.Is(err, geoerr.ErrInvalidArgument) {
		t.Errorf("same plane twice: got %v, want ErrInvalidArgument", err)
	}
	if _, err := core.ThirdPlane(geoid.NewPlaneID(0, 0, 0), geoid.NewPlaneID(0, 1, 1)); !errors.Is(err, geoerr.ErrInvalidArgument) {
		t.Errorf("cross-module pair: got %v, want ErrInvalidArgument", err)
	}
	if _, err := core.ThirdPlane(geoid.InvalidPlaneID(), geoid.NewPlaneID(0, 0, 1)); !errors.Is(err, geoerr.ErrInvalidArgument) {
		t.Errorf("invalid plane: got %v, want ErrInvalidArgument", err)
	}

	// Two-plane modules cannot answer third-plane queries.
	two := loadLayout(t, "crossgrid")
	if _, err := two.ThirdPlane(geoid.NewPlaneID(0, 0, 0), geoid.NewPlaneID(0, 0, 1)); !errors.Is(err, geoerr.ErrInvalidArgument) {
		t.Errorf("two-plane module: got %v, want ErrInvalidArgument", err)
	}
}
