package chanmap

import (
	"fmt"
	"math"

	"tpc-geom/internal/element"
	"tpc-geom/internal/geoerr"
	"tpc-geom/internal/geoid"
)

// viewAngleEpsilon separates "vertical pitch" planes from tilted ones when
// classifying views from the wire angle.
const viewAngleEpsilon = 1e-6

// Standard maps one channel per wire, numbering channels contiguously in
// wire order across planes, modules and enclosures. Per-plane baselines
// (the number of wires in all planes before this one in the hierarchy)
// make both directions of the mapping closed-form.
type Standard struct {
	initialized bool
	nchannels   uint32

	// Indexed [enclosure][module][plane].
	baselines  [][][]uint32
	wireCounts [][][]uint32
	signals    [][][]SignalType
	views      [][][]View

	presentViews []View
	planeIDs     []geoid.PlaneID
}

// NewStandard returns an uninitialized standard channel map.
func NewStandard() *Standard { return &Standard{} }

// Initialize builds the channel tables from the sorted element tree. The
// tables are assembled off to the side and committed only once the whole
// build succeeded, so a failed rebuild leaves a previously initialized map
// fully intact.
func (m *Standard) Initialize(enclosures []*element.Enclosure) error {
	if len(enclosures) == 0 {
		return fmt.Errorf("chanmap: no enclosures to map: %w", geoerr.ErrNotFound)
	}

	baselines := make([][][]uint32, len(enclosures))
	wireCounts := make([][][]uint32, len(enclosures))
	signals := make([][][]SignalType, len(enclosures))
	views := make([][][]View, len(enclosures))
	var presentViews []View
	var planeIDs []geoid.PlaneID

	seen := make(map[View]bool)
	var channel uint32

	for e, enc := range enclosures {
		baselines[e] = make([][]uint32, len(enc.Modules))
		wireCounts[e] = make([][]uint32, len(enc.Modules))
		signals[e] = make([][]SignalType, len(enc.Modules))
		views[e] = make([][]View, len(enc.Modules))

		for t, mod := range enc.Modules {
			nPlanes := len(mod.Planes)
			baselines[e][t] = make([]uint32, nPlanes)
			wireCounts[e][t] = make([]uint32, nPlanes)
			signals[e][t] = make([]SignalType, nPlanes)
			views[e][t] = make([]View, nPlanes)

			for p, plane := range mod.Planes {
				if plane.NWires() == 0 {
					return fmt.Errorf("chanmap: plane %s has no wires: %w",
						plane.ID, geoerr.ErrNotFound)
				}
				baselines[e][t][p] = channel
				wireCounts[e][t][p] = uint32(plane.NWires())
				signals[e][t][p] = classifySignal(p, nPlanes)
				v := classifyView(plane.WireAngle())
				views[e][t][p] = v
				planeIDs = append(planeIDs, plane.ID)
				if !seen[v] {
					seen[v] = true
					presentViews = append(presentViews, v)
				}
				channel += uint32(plane.NWires())
			}
		}
	}

	m.baselines, m.wireCounts = baselines, wireCounts
	m.signals, m.views = signals, views
	m.presentViews, m.planeIDs = presentViews, planeIDs
	m.nchannels = channel
	m.initialized = true
	return nil
}

// classifySignal marks the last plane of each module as collection and all
// planes before it as induction.
func classifySignal(plane, nPlanes int) SignalType {
	if plane == nPlanes-1 {
		return SignalCollection
	}
	return SignalInduction
}

// classifyView derives the view from the wire angle: positive pitch tilt
// toward +Y is U, negative is V, and a pitch direction along the Z axis is
// the vertical-wire Z view.
func classifyView(wireAngle float64) View {
	switch {
	case math.Abs(wireAngle) < viewAngleEpsilon:
		return ViewZ
	case math.Abs(math.Abs(wireAngle)-math.Pi/2) < viewAngleEpsilon:
		return ViewZ
	case wireAngle > 0:
		return ViewU
	default:
		return ViewV
	}
}

// ChannelCount returns the total number of channels.
func (m *Standard) ChannelCount() int { return int(m.nchannels) }

// ChannelToWire returns the single wire feeding the channel, or an empty
// slice for an out-of-range channel or an uninitialized map.
func (m *Standard) ChannelToWire(ch geoid.ChannelID) []geoid.WireID {
	if !m.initialized || uint32(ch) >= m.nchannels {
		return nil
	}
	c := uint32(ch)
	for e := range m.baselines {
		for t := range m.baselines[e] {
			for p := range m.baselines[e][t] {
				base := m.baselines[e][t][p]
				if c >= base && c < base+m.wireCounts[e][t][p] {
					return []geoid.WireID{
						geoid.NewWireID(uint32(e), uint32(t), uint32(p), c-base),
					}
				}
			}
		}
	}
	return nil
}

// PlaneWireToChannel returns the channel reading out the wire.
func (m *Standard) PlaneWireToChannel(id geoid.WireID) (geoid.ChannelID, error) {
	base, count, err := m.planeTable(id.PlaneID)
	if err != nil {
		return geoid.InvalidChannel, err
	}
	if !id.Valid || id.Wire >= count {
		return geoid.InvalidChannel, fmt.Errorf("chanmap: wire %s unmapped: %w",
			id, geoerr.ErrNotFound)
	}
	return geoid.ChannelID(base + id.Wire), nil
}

// SignalType classifies a channel by the plane it reads out.
func (m *Standard) SignalType(ch geoid.ChannelID) (SignalType, error) {
	wires := m.ChannelToWire(ch)
	if len(wires) == 0 {
		if !m.initialized {
			return SignalUnknown, geoerr.ErrNoChannelMap
		}
		return SignalUnknown, fmt.Errorf("chanmap: channel %d unmapped: %w",
			ch, geoerr.ErrNotFound)
	}
	return m.PlaneSignalType(wires[0].PlaneID)
}

// PlaneSignalType classifies a plane.
func (m *Standard) PlaneSignalType(id geoid.PlaneID) (SignalType, error) {
	if _, _, err := m.planeTable(id); err != nil {
		return SignalUnknown, err
	}
	return m.signals[id.Enclosure][id.Module][id.Plane], nil
}

// View returns the view of a channel.
func (m *Standard) View(ch geoid.ChannelID) (View, error) {
	wires := m.ChannelToWire(ch)
	if len(wires) == 0 {
		if !m.initialized {
			return ViewUnknown, geoerr.ErrNoChannelMap
		}
		return ViewUnknown, fmt.Errorf("chanmap: channel %d unmapped: %w",
			ch, geoerr.ErrNotFound)
	}
	return m.PlaneView(wires[0].PlaneID)
}

// PlaneView returns the view of a plane.
func (m *Standard) PlaneView(id geoid.PlaneID) (View, error) {
	if _, _, err := m.planeTable(id); err != nil {
		return ViewUnknown, err
	}
	return m.views[id.Enclosure][id.Module][id.Plane], nil
}

// Views returns the distinct views present in the detector, in first-seen
// order.
func (m *Standard) Views() []View {
	out := make([]View, len(m.presentViews))
	copy(out, m.presentViews)
	return out
}

// PlaneIDs returns every plane known to the map, in channel order.
func (m *Standard) PlaneIDs() []geoid.PlaneID {
	out := make([]geoid.PlaneID, len(m.planeIDs))
	copy(out, m.planeIDs)
	return out
}

func (m *Standard) planeTable(id geoid.PlaneID) (base, count uint32, err error) {
	if !m.initialized {
		return 0, 0, geoerr.ErrNoChannelMap
	}
	if !id.Valid ||
		int(id.Enclosure) >= len(m.baselines) ||
		int(id.Module) >= len(m.baselines[id.Enclosure]) ||
		int(id.Plane) >= len(m.baselines[id.Enclosure][id.Module]) {
		return 0, 0, fmt.Errorf("chanmap: plane %s unmapped: %w", id, geoerr.ErrNotFound)
	}
	return m.baselines[id.Enclosure][id.Module][id.Plane],
		m.wireCounts[id.Enclosure][id.Module][id.Plane], nil
}
