// Package sorter defines the pluggable strategy that imposes canonical
// sibling order on each nesting level of the element tree. Exactly one
// strategy is active per geometry load; the order it produces must be
// total and reproducible, with position ties broken by original discovery
// order.
package sorter

import "tpc-geom/internal/element"

// Sorter reorders mutable sibling collections in place, one method per
// nesting level. Implementations must be deterministic: running a sort
// twice yields the identical order.
type Sorter interface {
	SortEnclosures([]*element.Enclosure)
	SortModules([]*element.Module)
	SortPlanes([]*element.Plane)
	SortWires([]*element.Wire)
	SortOpDets([]*element.OpDet)
	SortAuxDets([]*element.AuxDet)
}
