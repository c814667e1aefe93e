package sorter

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/element"
)

func TestSortModulesByPosition(t *testing.T) {
	mods := []*element.Module{
		{Center: r3.Vec{X: 10}},
		{Center: r3.Vec{X: -10}},
		{Center: r3.Vec{X: 0, Y: 5}},
		{Center: r3.Vec{X: 0, Y: -5}},
	}

	NewStandard().SortModules(mods)

	wantX := []float64{-10, 0, 0, 10}
	wantY := []float64{0, -5, 5, 0}
	for i, m := range mods {
		if m.Center.X != wantX[i] || m.Center.Y != wantY[i] {
			t.Errorf("position %d: center (%g, %g), want (%g, %g)",
				i, m.Center.X, m.Center.Y, wantX[i], wantY[i])
		}
	}
}

func TestSortWiresByZThenY(t *testing.T) {
	wires := []*element.Wire{
		{Center: r3.Vec{Z: 3}},
		{Center: r3.Vec{Z: -1, Y: 2}},
		{Center: r3.Vec{Z: -1, Y: -2}},
		{Center: r3.Vec{Z: 0}},
	}

	NewStandard().SortWires(wires)

	want := []r3.Vec{
		{Z: -1, Y: -2},
		{Z: -1, Y: 2},
		{Z: 0},
		{Z: 3},
	}
	for i, w := range wires {
		if w.Center != want[i] {
			t.Errorf("position %d: center %+v, want %+v", i, w.Center, want[i])
		}
	}
}

func TestSortOpDetsDecreasing(t *testing.T) {
	ods := []*element.OpDet{
		{Center: r3.Vec{Z: -5}},
		{Center: r3.Vec{Z: 5}},
		{Center: r3.Vec{Z: 0, Y: 1}},
		{Center: r3.Vec{Z: 0, Y: 3}},
	}

	NewStandard().SortOpDets(ods)

	want := []r3.Vec{
		{Z: 5},
		{Z: 0, Y: 3},
		{Z: 0, Y: 1},
		{Z: -5},
	}
	for i, od := range ods {
		if od.Center != want[i] {
			t.Errorf("position %d: center %+v, want %+v", i, od.Center, want[i])
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	s := NewStandard()
	wires := []*element.Wire{
		{Center: r3.Vec{Z: 2}},
		{Center: r3.Vec{Z: -2}},
		{Center: r3.Vec{Z: 0}},
	}

	s.SortWires(wires)
	first := []*element.Wire{wires[0], wires[1], wires[2]}
	s.SortWires(wires)
	for i := range wires {
		if wires[i] != first[i] {
			t.Fatalf("re-sorting changed the order at position %d", i)
		}
	}
}

func TestSortStableOnTies(t *testing.T) {
	// Identical centers keep discovery order.
	a := &element.AuxDet{Name: "first"}
	b := &element.AuxDet{Name: "second"}
	ads := []*element.AuxDet{a, b}

	NewStandard().SortAuxDets(ads)
	if ads[0] != a || ads[1] != b {
		t.Error("tied elements must keep discovery order")
	}
}
