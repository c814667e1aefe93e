package geocore

import (
	"tpc-geom/internal/chanmap"
	"tpc-geom/internal/geoid"
)

// Channel queries delegate to the snapshot's channel map, so a query and
// the geometry it runs against always agree even across reloads.

// ChannelToWire returns the wires feeding a readout channel. An unmapped
// channel yields an empty slice.
func (c *Core) ChannelToWire(ch geoid.ChannelID) ([]geoid.WireID, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.chanMap.ChannelToWire(ch), nil
}

// PlaneWireToChannel returns the channel reading out the given wire.
func (c *Core) PlaneWireToChannel(id geoid.WireID) (geoid.ChannelID, error) {
	snap, err := c.current()
	if err != nil {
		return geoid.InvalidChannel, err
	}
	return snap.chanMap.PlaneWireToChannel(id)
}

// SignalType classifies a readout channel as induction or collection.
func (c *Core) SignalType(ch geoid.ChannelID) (chanmap.SignalType, error) {
	snap, err := c.current()
	if err != nil {
		return chanmap.SignalUnknown, err
	}
	return snap.chanMap.SignalType(ch)
}

// PlaneSignalType classifies a wire plane as induction or collection.
func (c *Core) PlaneSignalType(id geoid.PlaneID) (chanmap.SignalType, error) {
	snap, err := c.current()
	if err != nil {
		return chanmap.SignalUnknown, err
	}
	return snap.chanMap.PlaneSignalType(id)
}

// View returns the wire-orientation view of a readout channel.
func (c *Core) View(ch geoid.ChannelID) (chanmap.View, error) {
	snap, err := c.current()
	if err != nil {
		return chanmap.ViewUnknown, err
	}
	return snap.chanMap.View(ch)
}

// PlaneView returns the wire-orientation view of a plane.
func (c *Core) PlaneView(id geoid.PlaneID) (chanmap.View, error) {
	snap, err := c.current()
	if err != nil {
		return chanmap.ViewUnknown, err
	}
	return snap.chanMap.PlaneView(id)
}

// Views returns the distinct views present in the detector.
func (c *Core) Views() ([]chanmap.View, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.chanMap.Views(), nil
}

// PlaneIDs returns every plane ID known to the channel map, in increasing
// ID order.
func (c *Core) PlaneIDs() ([]geoid.PlaneID, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return snap.chanMap.PlaneIDs(), nil
}
