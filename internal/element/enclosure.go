package element

import (
	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/geoid"
	"tpc-geom/pkg/geometry"
)

// Enclosure is the outermost detector sub-volume, housing one or more
// drift modules and the optical detectors.
type Enclosure struct {
	ID     geoid.EnclosureID
	Trans  geometry.Transform
	Center r3.Vec
	Half   r3.Vec

	Modules []*Module
	OpDets  []*OpDet
}

// NModules returns the number of modules in the enclosure.
func (e *Enclosure) NModules() int { return len(e.Modules) }

// Module returns the module at the given index, or nil if out of range.
func (e *Enclosure) Module(i int) *Module {
	if i < 0 || i >= len(e.Modules) {
		return nil
	}
	return e.Modules[i]
}

// NOpDets returns the number of optical detectors in the enclosure.
func (e *Enclosure) NOpDets() int { return len(e.OpDets) }

// Bounds returns the world-frame bounding box of the enclosure.
func (e *Enclosure) Bounds() geometry.Box {
	return geometry.NewBox(e.Center, e.Half)
}

// UpdateAfterSorting stamps the enclosure and all owned elements with
// contiguous IDs. Idempotent on a sorted enclosure.
func (e *Enclosure) UpdateAfterSorting(id geoid.EnclosureID) {
	e.ID = id
	for i, m := range e.Modules {
		m.UpdateAfterSorting(geoid.ModuleID{EnclosureID: id, Module: uint32(i)})
	}
	for i, o := range e.OpDets {
		o.ID = geoid.OpDetID{EnclosureID: id, OpDet: uint32(i)}
	}
}
