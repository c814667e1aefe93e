// Package chanmap defines the pluggable mapping between sense wires and
// physical readout channels, plus the view and signal-type classification
// of planes and channels.
//
// A channel map is initialized exactly once, after the element tree has
// been sorted and stamped with IDs, and is read-only afterwards. Topology
// changes require a full rebuild from a freshly sorted tree; the map is
// never patched in place.
package chanmap

import (
	"tpc-geom/internal/element"
	"tpc-geom/internal/geoid"
)

// SignalType classifies the purpose of a plane or channel.
type SignalType int

const (
	SignalUnknown SignalType = iota
	// SignalInduction planes sense the passing charge without collecting it.
	SignalInduction
	// SignalCollection planes collect the drifting charge.
	SignalCollection
)

func (s SignalType) String() string {
	switch s {
	case SignalInduction:
		return "induction"
	case SignalCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// View classifies a plane's wire orientation.
type View int

const (
	ViewUnknown View = iota
	ViewU
	ViewV
	ViewZ
)

func (v View) String() string {
	switch v {
	case ViewU:
		return "U"
	case ViewV:
		return "V"
	case ViewZ:
		return "Z"
	default:
		return "unknown"
	}
}

// ChannelMap is the strategy interface mapping wires to readout channels.
// A channel may aggregate one or more wires; a wire maps to exactly one
// channel.
type ChannelMap interface {
	// Initialize builds the mapping from a sorted, ID-stamped element
	// tree. It runs exactly once per geometry load; on error the load is
	// aborted and the map must not be queried.
	Initialize(enclosures []*element.Enclosure) error

	// ChannelCount returns the total number of readout channels.
	ChannelCount() int

	// ChannelToWire returns the wires feeding a channel. An out-of-range
	// or unmapped channel yields an empty slice, not an error.
	ChannelToWire(ch geoid.ChannelID) []geoid.WireID

	// PlaneWireToChannel returns the channel reading out the given wire.
	PlaneWireToChannel(id geoid.WireID) (geoid.ChannelID, error)

	// SignalType classifies a channel.
	SignalType(ch geoid.ChannelID) (SignalType, error)

	// PlaneSignalType classifies a plane.
	PlaneSignalType(id geoid.PlaneID) (SignalType, error)

	// View returns the wire-orientation view of a channel.
	View(ch geoid.ChannelID) (View, error)

	// PlaneView returns the wire-orientation view of a plane.
	PlaneView(id geoid.PlaneID) (View, error)

	// Views returns the distinct views present in the detector.
	Views() []View

	// PlaneIDs returns every plane ID known to the map.
	PlaneIDs() []geoid.PlaneID
}
