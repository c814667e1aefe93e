package geoid

// Counts supplies the number of valid elements at each hierarchy level.
// Levels with an invalid or out-of-range parent report zero.
type Counts interface {
	NEnclosures() int
	NModules(EnclosureID) int
	NPlanes(ModuleID) int
	NWires(PlaneID) int
}

// EnclosureIter yields every valid EnclosureID in increasing order.
// Iterators are lazy, finite and restartable; mutating the underlying
// geometry while an iteration is active is undefined.
type EnclosureIter struct {
	counts Counts
	next   uint32
}

// NewEnclosureIter creates an iterator positioned before the first ID.
func NewEnclosureIter(counts Counts) *EnclosureIter {
	return &EnclosureIter{counts: counts}
}

// Next returns the next valid ID, or false once the sequence is exhausted.
func (it *EnclosureIter) Next() (EnclosureID, bool) {
	if int(it.next) >= it.counts.NEnclosures() {
		return InvalidEnclosureID(), false
	}
	id := NewEnclosureID(it.next)
	it.next++
	return id, true
}

// Reset rewinds the iterator to the first ID.
func (it *EnclosureIter) Reset() { it.next = 0 }

// ModuleIter yields every valid ModuleID in lexicographic order: the
// module index increments first and carries into the enclosure index on
// overflow. Enclosures without modules are skipped.
type ModuleIter struct {
	counts Counts
	enc    uint32
	mod    uint32
}

// NewModuleIter creates an iterator positioned before the first ID.
func NewModuleIter(counts Counts) *ModuleIter {
	return &ModuleIter{counts: counts}
}

// Next returns the next valid ID, or false once the sequence is exhausted.
func (it *ModuleIter) Next() (ModuleID, bool) {
	for int(it.enc) < it.counts.NEnclosures() {
		if int(it.mod) < it.counts.NModules(NewEnclosureID(it.enc)) {
			id := NewModuleID(it.enc, it.mod)
			it.mod++
			return id, true
		}
		it.enc++
		it.mod = 0
	}
	return InvalidModuleID(), false
}

// Reset rewinds the iterator to the first ID.
func (it *ModuleIter) Reset() { it.enc, it.mod = 0, 0 }

// PlaneIter yields every valid PlaneID in lexicographic order with carry
// into the parent indices on overflow.
type PlaneIter struct {
	modules *ModuleIter
	cur     ModuleID
	plane   uint32
	started bool
}

// NewPlaneIter creates an iterator positioned before the first ID.
func NewPlaneIter(counts Counts) *PlaneIter {
	return &PlaneIter{modules: NewModuleIter(counts)}
}

// Next returns the next valid ID, or false once the sequence is exhausted.
func (it *PlaneIter) Next() (PlaneID, bool) {
	for {
		if !it.started || int(it.plane) >= it.modules.counts.NPlanes(it.cur) {
			mod, ok := it.modules.Next()
			if !ok {
				return InvalidPlaneID(), false
			}
			it.cur = mod
			it.plane = 0
			it.started = true
			continue
		}
		id := PlaneID{ModuleID: it.cur, Plane: it.plane}
		it.plane++
		return id, true
	}
}

// Reset rewinds the iterator to the first ID.
func (it *PlaneIter) Reset() {
	it.modules.Reset()
	it.plane = 0
	it.started = false
}

// WireIter yields every valid WireID in lexicographic order with carry
// into the parent indices on overflow.
type WireIter struct {
	planes  *PlaneIter
	cur     PlaneID
	wire    uint32
	started bool
}

// NewWireIter creates an iterator positioned before the first ID.
func NewWireIter(counts Counts) *WireIter {
	return &WireIter{planes: NewPlaneIter(counts)}
}

// Next returns the next valid ID, or false once the sequence is exhausted.
func (it *WireIter) Next() (WireID, bool) {
	for {
		if !it.started || int(it.wire) >= it.planes.modules.counts.NWires(it.cur) {
			plane, ok := it.planes.Next()
			if !ok {
				return InvalidWireID(), false
			}
			it.cur = plane
			it.wire = 0
			it.started = true
			continue
		}
		id := WireID{PlaneID: it.cur, Wire: it.wire}
		it.wire++
		return id, true
	}
}

// Reset rewinds the iterator to the first ID.
func (it *WireIter) Reset() {
	it.planes.Reset()
	it.wire = 0
	it.started = false
}
