package geoid

import "testing"

// gridCounts is a rectangular fake geometry: every enclosure has the same
// number of modules, and so on down the hierarchy.
type gridCounts struct {
	encs, mods, planes, wires int
}

func (g gridCounts) NEnclosures() int         { return g.encs }
func (g gridCounts) NModules(EnclosureID) int { return g.mods }
func (g gridCounts) NPlanes(ModuleID) int     { return g.planes }
func (g gridCounts) NWires(PlaneID) int       { return g.wires }

// raggedCounts has an empty middle enclosure and a plane without wires, to
// exercise the skip logic.
type raggedCounts struct{}

func (raggedCounts) NEnclosures() int { return 3 }

func (raggedCounts) NModules(id EnclosureID) int {
	if id.Enclosure == 1 {
		return 0
	}
	return 2
}

func (raggedCounts) NPlanes(ModuleID) int { return 2 }

func (raggedCounts) NWires(id PlaneID) int {
	if id.Enclosure == 0 && id.Module == 0 && id.Plane == 0 {
		return 0
	}
	return 3
}

func TestEnclosureIterCoversAll(t *testing.T) {
	it := NewEnclosureIter(gridCounts{encs: 4})
	for want := uint32(0); want < 4; want++ {
		id, ok := it.Next()
		if !ok {
			t.Fatalf("iterator exhausted at %d", want)
		}
		if !id.Valid || id.Enclosure != want {
			t.Fatalf("got %v, want enclosure %d", id, want)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("iterator must stop after the last enclosure")
	}
}

func TestModuleIterCarriesIntoEnclosure(t *testing.T) {
	it := NewModuleIter(gridCounts{encs: 2, mods: 2})
	want := []ModuleID{
		NewModuleID(0, 0), NewModuleID(0, 1),
		NewModuleID(1, 0), NewModuleID(1, 1),
	}
	for i, w := range want {
		id, ok := it.Next()
		if !ok {
			t.Fatalf("exhausted at step %d", i)
		}
		if id != w {
			t.Fatalf("step %d: got %v, want %v", i, id, w)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("iterator must stop after the last module")
	}
}

func TestModuleIterSkipsEmptyEnclosure(t *testing.T) {
	it := NewModuleIter(raggedCounts{})
	var got []ModuleID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		got = append(got, id)
	}
	want := []ModuleID{
		NewModuleID(0, 0), NewModuleID(0, 1),
		NewModuleID(2, 0), NewModuleID(2, 1),
	}
	if len(got) != len(want) {
		t.Fatalf("yielded %d IDs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWireIterFullCoverageAndOrder(t *testing.T) {
	counts := gridCounts{encs: 2, mods: 2, planes: 3, wires: 5}
	it := NewWireIter(counts)

	var n int
	prev := InvalidWireID()
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		if n > 0 && prev.Cmp(id) != -1 {
			t.Fatalf("order violated: %v then %v", prev, id)
		}
		prev = id
		n++
	}
	if want := 2 * 2 * 3 * 5; n != want {
		t.Errorf("yielded %d wires, want %d", n, want)
	}
}

func TestWireIterSkipsWirelessPlane(t *testing.T) {
	it := NewWireIter(raggedCounts{})
	var n int
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		if id.Enclosure == 0 && id.Module == 0 && id.Plane == 0 {
			t.Fatalf("yielded wire %v from an empty plane", id)
		}
		n++
	}
	// 2 enclosures x 2 modules x 2 planes x 3 wires, minus one empty plane.
	if want := 2*2*2*3 - 3; n != want {
		t.Errorf("yielded %d wires, want %d", n, want)
	}
}

func TestIteratorReset(t *testing.T) {
	it := NewPlaneIter(gridCounts{encs: 1, mods: 2, planes: 2})

	var first []PlaneID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		first = append(first, id)
	}

	it.Reset()
	var second []PlaneID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		second = append(second, id)
	}

	if len(first) != 4 || len(second) != len(first) {
		t.Fatalf("runs yielded %d and %d IDs, want 4 each", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("step %d differs after reset: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestIteratorsOnEmptyGeometry(t *testing.T) {
	counts := gridCounts{}
	if _, ok := NewEnclosureIter(counts).Next(); ok {
		t.Error("enclosure iterator yielded from empty geometry")
	}
	if _, ok := NewModuleIter(counts).Next(); ok {
		t.Error("module iterator yielded from empty geometry")
	}
	if _, ok := NewPlaneIter(counts).Next(); ok {
		t.Error("plane iterator yielded from empty geometry")
	}
	if _, ok := NewWireIter(counts).Next(); ok {
		t.Error("wire iterator yielded from empty geometry")
	}
}
