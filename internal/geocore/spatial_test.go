package geocore

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/geoerr"
	"tpc-geom/internal/geoid"
)

// Standard-layout landmarks: enclosures centered at X = -60 and +60,
// modules at X = -82.5, -37.5, +37.5, +82.5. The collection plane
// (plane 2) has 100 wires at 0.5 pitch, wire 0 at Z = -24.75.

func TestFindEnclosureAtPosition(t *testing.T) {
	core := loadLayout(t, "standard")

	id, err := core.FindEnclosureAtPosition(r3.Vec{X: -60})
	if err != nil {
		t.Fatalf("lookup at enclosure 0 center: %v", err)
	}
	if id != geoid.NewEnclosureID(0) {
		t.Errorf("got %s, want E:0", id)
	}

	id, err = core.FindEnclosureAtPosition(r3.Vec{X: 60, Y: 10, Z: -10})
	if err != nil {
		t.Fatalf("lookup inside enclosure 1: %v", err)
	}
	if id != geoid.NewEnclosureID(1) {
		t.Errorf("got %s, want E:1", id)
	}

	// The gap between the enclosures belongs to neither.
	if _, err := core.FindEnclosureAtPosition(r3.Vec{}); !errors.Is(err, geoerr.ErrNotFound) {
		t.Errorf("origin lookup: got %v, want ErrNotFound", err)
	}
	if _, err := core.FindEnclosureAtPosition(r3.Vec{X: 1e6}); !errors.Is(err, geoerr.ErrNotFound) {
		t.Errorf("far lookup: got %v, want ErrNotFound", err)
	}
}

func TestFindModuleAtPosition(t *testing.T) {
	core := loadLayout(t, "standard")

	cases := []struct {
		pos  r3.Vec
		want geoid.ModuleID
	}{
		{r3.Vec{X: -82.5}, geoid.NewModuleID(0, 0)},
		{r3.Vec{X: -37.5}, geoid.NewModuleID(0, 1)},
		{r3.Vec{X: 37.5}, geoid.NewModuleID(1, 0)},
		{r3.Vec{X: 82.5, Y: 5, Z: 5}, geoid.NewModuleID(1, 1)},
	}
	for _, tc := range cases {
		id, err := core.FindModuleAtPosition(tc.pos)
		if err != nil {
			t.Errorf("lookup at %+v: %v", tc.pos, err)
			continue
		}
		if id != tc.want {
			t.Errorf("lookup at %+v: got %s, want %s", tc.pos, id, tc.want)
		}
	}

	// Inside the enclosure but between the modules.
	if _, err := core.FindModuleAtPosition(r3.Vec{X: -60}); !errors.Is(err, geoerr.ErrNotFound) {
		t.Errorf("inter-module gap: got %v, want ErrNotFound", err)
	}
}

func TestFindPositionUnloaded(t *testing.T) {
	core := New(Config{})
	if _, err := core.FindModuleAtPosition(r3.Vec{}); !errors.Is(err, geoerr.ErrNoChannelMap) {
		t.Errorf("got %v, want ErrNoChannelMap", err)
	}
}

func TestWireCoordinate(t *testing.T) {
	core := loadLayout(t, "standard")
	plane := geoid.NewPlaneID(0, 0, 2)

	// Wire k of the collection plane sits at Z = -24.75 + 0.5k.
	coord, err := core.WireCoordinate(r3.Vec{Z: -24.75 + 0.5*10}, plane)
	if err != nil {
		t.Fatalf("coordinate: %v", err)
	}
	if math.Abs(coord-10) > 1e-9 {
		t.Errorf("coordinate = %g, want 10", coord)
	}

	// Halfway between wires 10 and 11.
	coord, err = core.WireCoordinate(r3.Vec{Z: -24.75 + 0.5*10.5}, plane)
	if err != nil {
		t.Fatalf("coordinate: %v", err)
	}
	if math.Abs(coord-10.5) > 1e-9 {
		t.Errorf("coordinate = %g, want 10.5", coord)
	}
}

func TestNearestWireID(t *testing.T) {
	core := loadLayout(t, "standard")
	plane := geoid.NewPlaneID(0, 0, 2)

	wireZ := func(k float64) r3.Vec { return r3.Vec{Z: -24.75 + 0.5*k} }

	id, err := core.NearestWireID(wireZ(10), plane)
	if err != nil {
		t.Fatalf("nearest at wire 10 center: %v", err)
	}
	if id.Wire != 10 {
		t.Errorf("got wire %d, want 10", id.Wire)
	}

	// Within half a pitch the answer does not change.
	id, err = core.NearestWireID(wireZ(10.4), plane)
	if err != nil {
		t.Fatalf("nearest at 10.4: %v", err)
	}
	if id.Wire != 10 {
		t.Errorf("got wire %d, want 10", id.Wire)
	}

	// The exact midpoint resolves toward the higher index.
	id, err = core.NearestWireID(wireZ(10.5), plane)
	if err != nil {
		t.Fatalf("nearest at midpoint: %v", err)
	}
	if id.Wire != 11 {
		t.Errorf("midpoint resolved to wire %d, want 11", id.Wire)
	}
}

func TestNearestWireIDOutOfRange(t *testing.T) {
	core := loadLayout(t, "standard")
	plane := geoid.NewPlaneID(0, 0, 2)

	// Beyond the last wire: coordinate 109.5 rounds to 110.
	id, err := core.NearestWireID(r3.Vec{Z: 30}, plane)
	if !errors.Is(err, geoerr.ErrInvalidWireIndex) {
		t.Fatalf("got %v, want ErrInvalidWireIndex", err)
	}
	var wireErr *geoerr.InvalidWireIndexError
	if !errors.As(err, &wireErr) {
		t.Fatalf("error %T does not carry the wire detail", err)
	}
	if wireErr.Raw != 110 || wireErr.Clamped != 99 {
		t.Errorf("raw %d clamped %d, want 110 and 99", wireErr.Raw, wireErr.Clamped)
	}
	if !id.Valid || id.Wire != 99 {
		t.Errorf("returned ID %s, want the clamped last wire", id)
	}

	// Before the first wire.
	id, err = core.NearestWireID(r3.Vec{Z: -30}, plane)
	if !errors.As(err, &wireErr) {
		t.Fatalf("got %v, want InvalidWireIndexError", err)
	}
	if wireErr.Clamped != 0 || id.Wire != 0 {
		t.Errorf("clamped %d, ID %s; want wire 0", wireErr.Clamped, id)
	}

	if _, err := core.NearestWireID(r3.Vec{}, geoid.NewPlaneID(0, 0, 9)); !errors.Is(err, geoerr.ErrNotFound) {
		t.Errorf("unknown plane: got %v, want ErrNotFound", err)
	}
}

func TestNearestWireIDExtremePositions(t *testing.T) {
	// Coordinates far beyond any int range still clamp cleanly instead of
	// overflowing the conversion.
	core := loadLayout(t, "standard")
	plane := geoid.NewPlaneID(0, 0, 2)

	id, err := core.NearestWireID(r3.Vec{Z: 1e18}, plane)
	var wireErr *geoerr.InvalidWireIndexError
	if !errors.As(err, &wireErr) {
		t.Fatalf("got %v, want InvalidWireIndexError", err)
	}
	if wireErr.Raw != math.MaxInt32 || wireErr.Clamped != 99 {
		t.Errorf("raw %d clamped %d, want saturated raw and 99", wireErr.Raw, wireErr.Clamped)
	}
	if id.Wire != 99 {
		t.Errorf("returned wire %d, want 99", id.Wire)
	}

	id, err = core.NearestWireID(r3.Vec{Z: -1e18}, plane)
	if !errors.As(err, &wireErr) {
		t.Fatalf("got %v, want InvalidWireIndexError", err)
	}
	if wireErr.Raw != -math.MaxInt32 || wireErr.Clamped != 0 || id.Wire != 0 {
		t.Errorf("raw %d clamped %d wire %d, want saturated negative raw and 0",
			wireErr.Raw, wireErr.Clamped, id.Wire)
	}
}

func TestNearestChannel(t *testing.T) {
	core := loadLayout(t, "standard")

	// Plane (0,0,2) starts at channel 200; wire 10 reads out on 210.
	ch, err := core.NearestChannel(r3.Vec{Z: -24.75 + 0.5*10}, geoid.NewPlaneID(0, 0, 2))
	if err != nil {
		t.Fatalf("nearest channel: %v", err)
	}
	if ch != 210 {
		t.Errorf("channel = %d, want 210", ch)
	}

	// The channel agrees with the explicit wire-then-map composition.
	wid, err := core.NearestWireID(r3.Vec{Z: -24.75 + 0.5*10}, geoid.NewPlaneID(0, 0, 2))
	if err != nil {
		t.Fatalf("nearest wire: %v", err)
	}
	mapped, err := core.PlaneWireToChannel(wid)
	if err != nil {
		t.Fatalf("wire to channel: %v", err)
	}
	if mapped != ch {
		t.Errorf("composition disagrees: %d vs %d", mapped, ch)
	}
}

func TestChannelWireRoundTripThroughCore(t *testing.T) {
	core := loadLayout(t, "standard")

	for _, ch := range []geoid.ChannelID{0, 99, 100, 599, 600, 1199} {
		wires, err := core.ChannelToWire(ch)
		if err != nil {
			t.Fatalf("channel %d: %v", ch, err)
		}
		if len(wires) != 1 {
			t.Fatalf("channel %d feeds %d wires, want 1", ch, len(wires))
		}
		back, err := core.PlaneWireToChannel(wires[0])
		if err != nil {
			t.Fatalf("wire %s: %v", wires[0], err)
		}
		if back != ch {
			t.Errorf("channel %d round-trips to %d", ch, back)
		}
	}
}

func TestCoreViewsAndSignals(t *testing.T) {
	core := loadLayout(t, "standard")

	views, err := core.Views()
	if err != nil {
		t.Fatalf("views: %v", err)
	}
	if len(views) != 3 {
		t.Errorf("got %d views, want 3", len(views))
	}

	planes, err := core.PlaneIDs()
	if err != nil {
		t.Fatalf("plane IDs: %v", err)
	}
	if len(planes) != 12 {
		t.Errorf("got %d planes, want 12", len(planes))
	}

	// Plane 2 of every module collects; the tilted planes induce.
	sig, err := core.PlaneSignalType(geoid.NewPlaneID(1, 1, 2))
	if err != nil {
		t.Fatalf("signal type: %v", err)
	}
	if sig.String() != "collection" {
		t.Errorf("plane 2 signal = %s, want collection", sig)
	}
	sig, err = core.SignalType(0)
	if err != nil {
		t.Fatalf("channel signal type: %v", err)
	}
	if sig.String() != "induction" {
		t.Errorf("channel 0 signal = %s, want induction", sig)
	}
}
