// Package geoid defines the compact hierarchical identifiers of the
// detector elements and the iteration machinery over them.
//
// Each ID level extends the previous one with one more 0-based index:
// EnclosureID < ModuleID < PlaneID < WireID. Comparison is lexicographic
// by nesting order, enclosure first. Every ID carries an explicit validity
// flag; the invalid index sentinel is the maximum uint32 and must never be
// used as a real index.
package geoid

import "fmt"

// InvalidIndex is the reserved sentinel for an index that does not point
// at any element.
const InvalidIndex = ^uint32(0)

// ChannelID identifies a physical readout channel.
type ChannelID uint32

// InvalidChannel is the sentinel for a channel that does not exist.
const InvalidChannel = ChannelID(^uint32(0))

// EnclosureID identifies one detector enclosure.
type EnclosureID struct {
	Enclosure uint32
	Valid     bool
}

// NewEnclosureID creates a valid EnclosureID.
func NewEnclosureID(e uint32) EnclosureID {
	return EnclosureID{Enclosure: e, Valid: true}
}

// InvalidEnclosureID returns the invalid sentinel ID.
func InvalidEnclosureID() EnclosureID {
	return EnclosureID{Enclosure: InvalidIndex}
}

// Cmp returns -1, 0 or +1 comparing two IDs lexicographically.
func (id EnclosureID) Cmp(other EnclosureID) int {
	return cmpIndex(id.Enclosure, other.Enclosure)
}

func (id EnclosureID) String() string {
	return fmt.Sprintf("E:%d", id.Enclosure)
}

// ModuleID identifies one drift module within an enclosure.
type ModuleID struct {
	EnclosureID
	Module uint32
}

// NewModuleID creates a valid ModuleID.
func NewModuleID(e, m uint32) ModuleID {
	return ModuleID{EnclosureID: NewEnclosureID(e), Module: m}
}

// InvalidModuleID returns the invalid sentinel ID.
func InvalidModuleID() ModuleID {
	return ModuleID{EnclosureID: InvalidEnclosureID(), Module: InvalidIndex}
}

// Cmp returns -1, 0 or +1 comparing two IDs lexicographically, enclosure
// before module.
func (id ModuleID) Cmp(other ModuleID) int {
	if c := id.EnclosureID.Cmp(other.EnclosureID); c != 0 {
		return c
	}
	return cmpIndex(id.Module, other.Module)
}

func (id ModuleID) String() string {
	return fmt.Sprintf("%s M:%d", id.EnclosureID, id.Module)
}

// PlaneID identifies one wire plane within a module.
type PlaneID struct {
	ModuleID
	Plane uint32
}

// NewPlaneID creates a valid PlaneID.
func NewPlaneID(e, m, p uint32) PlaneID {
	return PlaneID{ModuleID: NewModuleID(e, m), Plane: p}
}

// InvalidPlaneID returns the invalid sentinel ID.
func InvalidPlaneID() PlaneID {
	return PlaneID{ModuleID: InvalidModuleID(), Plane: InvalidIndex}
}

// Cmp returns -1, 0 or +1 comparing two IDs lexicographically, parent
// levels first.
func (id PlaneID) Cmp(other PlaneID) int {
	if c := id.ModuleID.Cmp(other.ModuleID); c != 0 {
		return c
	}
	return cmpIndex(id.Plane, other.Plane)
}

func (id PlaneID) String() string {
	return fmt.Sprintf("%s P:%d", id.ModuleID, id.Plane)
}

// WireID identifies one sense wire within a plane.
type WireID struct {
	PlaneID
	Wire uint32
}

// NewWireID creates a valid WireID.
func NewWireID(e, m, p, w uint32) WireID {
	return WireID{PlaneID: NewPlaneID(e, m, p), Wire: w}
}

// InvalidWireID returns the invalid sentinel ID.
func InvalidWireID() WireID {
	return WireID{PlaneID: InvalidPlaneID(), Wire: InvalidIndex}
}

// Cmp returns -1, 0 or +1 comparing two IDs lexicographically, parent
// levels first.
func (id WireID) Cmp(other WireID) int {
	if c := id.PlaneID.Cmp(other.PlaneID); c != 0 {
		return c
	}
	return cmpIndex(id.Wire, other.Wire)
}

func (id WireID) String() string {
	return fmt.Sprintf("%s W:%d", id.PlaneID, id.Wire)
}

// OpDetID identifies one optical detector within an enclosure.
type OpDetID struct {
	EnclosureID
	OpDet uint32
}

// NewOpDetID creates a valid OpDetID.
func NewOpDetID(e, o uint32) OpDetID {
	return OpDetID{EnclosureID: NewEnclosureID(e), OpDet: o}
}

// Cmp returns -1, 0 or +1 comparing two IDs lexicographically.
func (id OpDetID) Cmp(other OpDetID) int {
	if c := id.EnclosureID.Cmp(other.EnclosureID); c != 0 {
		return c
	}
	return cmpIndex(id.OpDet, other.OpDet)
}

func (id OpDetID) String() string {
	return fmt.Sprintf("%s O:%d", id.EnclosureID, id.OpDet)
}

// AuxDetID identifies one auxiliary detector. Auxiliary detectors hang off
// the detector root and have no enclosure parent.
type AuxDetID struct {
	AuxDet uint32
	Valid  bool
}

// NewAuxDetID creates a valid AuxDetID.
func NewAuxDetID(a uint32) AuxDetID {
	return AuxDetID{AuxDet: a, Valid: true}
}

// Cmp returns -1, 0 or +1 comparing two IDs.
func (id AuxDetID) Cmp(other AuxDetID) int {
	return cmpIndex(id.AuxDet, other.AuxDet)
}

func (id AuxDetID) String() string {
	return fmt.Sprintf("A:%d", id.AuxDet)
}

func cmpIndex(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}
