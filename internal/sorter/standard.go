package sorter

import (
	"sort"

	"tpc-geom/internal/element"
)

// Standard is the default detector ordering convention: enclosures,
// modules and planes by increasing world position (X, then Y, then Z),
// wires by increasing position along the pitch axis, optical detectors by
// decreasing Z then Y then X, auxiliary detectors by increasing Z then Y
// then X. Stable sorts keep discovery order on exact ties.
type Standard struct{}

// NewStandard returns the standard sorting strategy.
func NewStandard() *Standard { return &Standard{} }

func (*Standard) SortEnclosures(encs []*element.Enclosure) {
	sort.SliceStable(encs, func(i, j int) bool {
		return lessXYZ(
			encs[i].Center.X, encs[i].Center.Y, encs[i].Center.Z,
			encs[j].Center.X, encs[j].Center.Y, encs[j].Center.Z)
	})
}

func (*Standard) SortModules(mods []*element.Module) {
	sort.SliceStable(mods, func(i, j int) bool {
		return lessXYZ(
			mods[i].Center.X, mods[i].Center.Y, mods[i].Center.Z,
			mods[j].Center.X, mods[j].Center.Y, mods[j].Center.Z)
	})
}

func (*Standard) SortPlanes(planes []*element.Plane) {
	sort.SliceStable(planes, func(i, j int) bool {
		return lessXYZ(
			planes[i].Center.X, planes[i].Center.Y, planes[i].Center.Z,
			planes[j].Center.X, planes[j].Center.Y, planes[j].Center.Z)
	})
}

// SortWires orders wires so the wire coordinate increases with the index:
// increasing Z, then Y. The channel map derives its pitch direction from
// the sorted order, so any consistent convention works as long as it is
// total.
func (*Standard) SortWires(wires []*element.Wire) {
	sort.SliceStable(wires, func(i, j int) bool {
		if wires[i].Center.Z != wires[j].Center.Z {
			return wires[i].Center.Z < wires[j].Center.Z
		}
		return wires[i].Center.Y < wires[j].Center.Y
	})
}

func (*Standard) SortOpDets(ods []*element.OpDet) {
	sort.SliceStable(ods, func(i, j int) bool {
		if ods[i].Center.Z != ods[j].Center.Z {
			return ods[i].Center.Z > ods[j].Center.Z
		}
		if ods[i].Center.Y != ods[j].Center.Y {
			return ods[i].Center.Y > ods[j].Center.Y
		}
		return ods[i].Center.X > ods[j].Center.X
	})
}

func (*Standard) SortAuxDets(ads []*element.AuxDet) {
	sort.SliceStable(ads, func(i, j int) bool {
		return lessXYZ(
			ads[i].Center.Z, ads[i].Center.Y, ads[i].Center.X,
			ads[j].Center.Z, ads[j].Center.Y, ads[j].Center.X)
	})
}

func lessXYZ(a1, a2, a3, b1, b2, b3 float64) bool {
	if a1 != b1 {
		return a1 < b1
	}
	if a2 != b2 {
		return a2 < b2
	}
	return a3 < b3
}
