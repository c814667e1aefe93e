// Package geocore orchestrates the geometry pipeline and serves the query
// surface. A load runs build, sort, ID assignment and channel-map
// construction single-threaded, then publishes the result as an immutable
// snapshot; all queries are pure reads over the current snapshot and are
// safe for unsynchronized concurrent use between loads.
package geocore

import (
	"fmt"
	"sync"

	"tpc-geom/internal/builder"
	"tpc-geom/internal/chanmap"
	"tpc-geom/internal/element"
	"tpc-geom/internal/geoerr"
	"tpc-geom/internal/geoid"
	"tpc-geom/internal/sorter"
	"tpc-geom/internal/volume"
	"tpc-geom/pkg/geometry"
)

// DefaultWiggle is the multiplicative tolerance applied to bounding-box
// faces in containment tests.
const DefaultWiggle = 1e-4

// Config carries the load-time parameters of the engine.
type Config struct {
	// Wiggle is the multiplicative containment tolerance; zero selects
	// DefaultWiggle.
	Wiggle float64

	// MaxDepth bounds the recursion into the raw volume tree; zero
	// selects builder.DefaultMaxDepth.
	MaxDepth int
}

// Core is the geometry engine. The zero value is not usable; construct
// with New and populate with Load.
type Core struct {
	cfg Config

	mu   sync.RWMutex
	snap *snapshot
}

// snapshot holds one fully built geometry: the sorted element tree, the
// initialized channel map, and the lazily built boundary tables. A
// snapshot is immutable after construction except for the bounds cache,
// which is populated once under its own guard.
type snapshot struct {
	enclosures []*element.Enclosure
	auxDets    []*element.AuxDet
	chanMap    chanmap.ChannelMap
	wiggle     float64

	boundsOnce sync.Once
	encBounds  []geometry.Box
	modBounds  [][]geometry.Box
}

// New creates an empty engine with the given configuration.
func New(cfg Config) *Core {
	if cfg.Wiggle == 0 {
		cfg.Wiggle = DefaultWiggle
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = builder.DefaultMaxDepth
	}
	return &Core{cfg: cfg}
}

// Load builds a complete geometry from the raw volume tree using the
// given sorting and channel-mapping strategies, then swaps it in as the
// current snapshot. On error the previous snapshot stays untouched; a
// partially initialized geometry is never exposed. The channel map is
// owned by the new snapshot afterwards, so each load needs a fresh
// instance; reusing one would rewrite the mapping under the previous
// snapshot.
func (c *Core) Load(root *volume.Node, s sorter.Sorter, m chanmap.ChannelMap) error {
	if s == nil || m == nil {
		return fmt.Errorf("geocore: nil strategy: %w", geoerr.ErrInvalidArgument)
	}

	enclosures, auxDets, err := builder.Build(root, c.cfg.MaxDepth)
	if err != nil {
		return err
	}

	sortTree(enclosures, auxDets, s)
	assignIDs(enclosures, auxDets)

	if err := m.Initialize(enclosures); err != nil {
		return fmt.Errorf("geocore: channel map initialization failed: %w", err)
	}

	snap := &snapshot{
		enclosures: enclosures,
		auxDets:    auxDets,
		chanMap:    m,
		wiggle:     c.cfg.Wiggle,
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
	return nil
}

// sortTree applies the sorting strategy at every nesting level.
func sortTree(enclosures []*element.Enclosure, auxDets []*element.AuxDet, s sorter.Sorter) {
	s.SortEnclosures(enclosures)
	for _, enc := range enclosures {
		s.SortModules(enc.Modules)
		s.SortOpDets(enc.OpDets)
		for _, mod := range enc.Modules {
			s.SortPlanes(mod.Planes)
			for _, plane := range mod.Planes {
				s.SortWires(plane.Wires)
			}
		}
	}
	s.SortAuxDets(auxDets)
}

// assignIDs stamps contiguous 0-based compound IDs over the sorted tree.
// Re-running it on an already sorted tree reproduces identical IDs.
func assignIDs(enclosures []*element.Enclosure, auxDets []*element.AuxDet) {
	for i, enc := range enclosures {
		enc.UpdateAfterSorting(geoid.NewEnclosureID(uint32(i)))
	}
	for i, ad := range auxDets {
		ad.ID = geoid.NewAuxDetID(uint32(i))
	}
}

// current returns the current snapshot, or an error when no geometry has
// been loaded yet.
func (c *Core) current() (*snapshot, error) {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap == nil {
		return nil, fmt.Errorf("geocore: no geometry loaded: %w", geoerr.ErrNoChannelMap)
	}
	return snap, nil
}

// currentOrNil returns the current snapshot without error reporting, for
// count accessors that report zero on an empty engine.
func (c *Core) currentOrNil() *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Enclosure returns the enclosure with the given ID.
func (c *Core) Enclosure(id geoid.EnclosureID) (*element.Enclosure, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.enclosure(id)
}

// Module returns the module with the given ID.
func (c *Core) Module(id geoid.ModuleID) (*element.Module, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.module(id)
}

// Plane returns the plane with the given ID.
func (c *Core) Plane(id geoid.PlaneID) (*element.Plane, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.plane(id)
}

// Wire returns the wire with the given ID.
func (c *Core) Wire(id geoid.WireID) (*element.Wire, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.wire(id)
}

// AuxDet returns the auxiliary detector with the given ID.
func (c *Core) AuxDet(id geoid.AuxDetID) (*element.AuxDet, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	if !id.Valid || int(id.AuxDet) >= len(snap.auxDets) {
		return nil, fmt.Errorf("geocore: no aux detector %s: %w", id, geoerr.ErrNotFound)
	}
	return snap.auxDets[id.AuxDet], nil
}

// OpDet returns the optical detector with the given ID.
func (c *Core) OpDet(id geoid.OpDetID) (*element.OpDet, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	enc, err := snap.enclosure(id.EnclosureID)
	if err != nil {
		return nil, err
	}
	if int(id.OpDet) >= len(enc.OpDets) {
		return nil, fmt.Errorf("geocore: no optical detector %s: %w", id, geoerr.ErrNotFound)
	}
	return enc.OpDets[id.OpDet], nil
}

func (s *snapshot) enclosure(id geoid.EnclosureID) (*element.Enclosure, error) {
	if !id.Valid || int(id.Enclosure) >= len(s.enclosures) {
		return nil, fmt.Errorf("geocore: no enclosure %s: %w", id, geoerr.ErrNotFound)
	}
	return s.enclosures[id.Enclosure], nil
}

func (s *snapshot) module(id geoid.ModuleID) (*element.Module, error) {
	enc, err := s.enclosure(id.EnclosureID)
	if err != nil {
		return nil, err
	}
	if int(id.Module) >= len(enc.Modules) {
		return nil, fmt.Errorf("geocore: no module %s: %w", id, geoerr.ErrNotFound)
	}
	return enc.Modules[id.Module], nil
}

func (s *snapshot) plane(id geoid.PlaneID) (*element.Plane, error) {
	mod, err := s.module(id.ModuleID)
	if err != nil {
		return nil, err
	}
	if int(id.Plane) >= len(mod.Planes) {
		return nil, fmt.Errorf("geocore: no plane %s: %w", id, geoerr.ErrNotFound)
	}
	return mod.Planes[id.Plane], nil
}

func (s *snapshot) wire(id geoid.WireID) (*element.Wire, error) {
	plane, err := s.plane(id.PlaneID)
	if err != nil {
		return nil, err
	}
	if int(id.Wire) >= len(plane.Wires) {
		return nil, fmt.Errorf("geocore: no wire %s: %w", id, geoerr.ErrNotFound)
	}
	return plane.Wires[id.Wire], nil
}
