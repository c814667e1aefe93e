package geocore

import "tpc-geom/internal/geoid"

// Count accessors report zero for invalid IDs or an unloaded engine, so
// they can back the ID iterators without an error path.

// NEnclosures returns the number of enclosures.
func (c *Core) NEnclosures() int {
	snap := c.currentOrNil()
	if snap == nil {
		return 0
	}
	return snap.NEnclosures()
}

// NModules returns the number of modules in an enclosure.
func (c *Core) NModules(id geoid.EnclosureID) int {
	snap := c.currentOrNil()
	if snap == nil {
		return 0
	}
	return snap.NModules(id)
}

// NPlanes returns the number of wire planes in a module.
func (c *Core) NPlanes(id geoid.ModuleID) int {
	snap := c.currentOrNil()
	if snap == nil {
		return 0
	}
	return snap.NPlanes(id)
}

// NWires returns the number of wires in a plane.
func (c *Core) NWires(id geoid.PlaneID) int {
	snap := c.currentOrNil()
	if snap == nil {
		return 0
	}
	return snap.NWires(id)
}

// NOpDets returns the number of optical detectors in an enclosure.
func (c *Core) NOpDets(id geoid.EnclosureID) int {
	snap := c.currentOrNil()
	if snap == nil {
		return 0
	}
	enc, err := snap.enclosure(id)
	if err != nil {
		return 0
	}
	return len(enc.OpDets)
}

// NAuxDets returns the number of auxiliary detectors.
func (c *Core) NAuxDets() int {
	snap := c.currentOrNil()
	if snap == nil {
		return 0
	}
	return len(snap.auxDets)
}

// NChannels returns the number of readout channels.
func (c *Core) NChannels() int {
	snap := c.currentOrNil()
	if snap == nil {
		return 0
	}
	return snap.chanMap.ChannelCount()
}

// The snapshot itself satisfies geoid.Counts, pinning an iteration to one
// geometry even across reloads.

func (s *snapshot) NEnclosures() int { return len(s.enclosures) }

func (s *snapshot) NModules(id geoid.EnclosureID) int {
	enc, err := s.enclosure(id)
	if err != nil {
		return 0
	}
	return len(enc.Modules)
}

func (s *snapshot) NPlanes(id geoid.ModuleID) int {
	mod, err := s.module(id)
	if err != nil {
		return 0
	}
	return len(mod.Planes)
}

func (s *snapshot) NWires(id geoid.PlaneID) int {
	plane, err := s.plane(id)
	if err != nil {
		return 0
	}
	return len(plane.Wires)
}
