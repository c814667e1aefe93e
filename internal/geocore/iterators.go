package geocore

import "tpc-geom/internal/geoid"

// emptyCounts backs iterators created before any geometry is loaded.
type emptyCounts struct{}

func (emptyCounts) NEnclosures() int               { return 0 }
func (emptyCounts) NModules(geoid.EnclosureID) int { return 0 }
func (emptyCounts) NPlanes(geoid.ModuleID) int     { return 0 }
func (emptyCounts) NWires(geoid.PlaneID) int       { return 0 }

// iterCounts pins the iterator to the geometry current at creation time,
// so a reload mid-iteration cannot mix two geometries.
func (c *Core) iterCounts() geoid.Counts {
	snap := c.currentOrNil()
	if snap == nil {
		return emptyCounts{}
	}
	return snap
}

// EveryEnclosureID iterates over all enclosure IDs of the current
// geometry in increasing order.
func (c *Core) EveryEnclosureID() *geoid.EnclosureIter {
	return geoid.NewEnclosureIter(c.iterCounts())
}

// EveryModuleID iterates over all module IDs of the current geometry in
// lexicographic order.
func (c *Core) EveryModuleID() *geoid.ModuleIter {
	return geoid.NewModuleIter(c.iterCounts())
}

// EveryPlaneID iterates over all plane IDs of the current geometry in
// lexicographic order.
func (c *Core) EveryPlaneID() *geoid.PlaneIter {
	return geoid.NewPlaneIter(c.iterCounts())
}

// EveryWireID iterates over all wire IDs of the current geometry in
// lexicographic order.
func (c *Core) EveryWireID() *geoid.WireIter {
	return geoid.NewWireIter(c.iterCounts())
}
