// Package geoerr defines the error taxonomy shared by the geometry engine.
//
// Build and channel-map initialization failures are fatal to a geometry
// load; per-query failures are local to the call and never corrupt shared
// state.
package geoerr

import (
	"errors"
	"fmt"

	"tpc-geom/internal/geoid"
)

var (
	// ErrNotFound reports that no element, channel or intersection exists
	// at the requested input.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument reports inputs that are not comparable, such as
	// wires from different modules or from the same plane.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDepthExceeded reports a malformed input tree nesting deeper than
	// the configured bound.
	ErrDepthExceeded = errors.New("volume tree depth exceeded")

	// ErrNoChannelMap reports that no channel map has been successfully
	// initialized for the current geometry.
	ErrNoChannelMap = errors.New("channel map not initialized")

	// ErrInvalidWireIndex reports a computed wire coordinate outside the
	// valid range of a plane. It is carried by InvalidWireIndexError.
	ErrInvalidWireIndex = errors.New("wire index out of range")
)

// InvalidWireIndexError reports a nearest-wire computation that landed
// outside a plane's valid wire range. It carries both the raw computed
// index and the index clamped into range, letting callers choose to clamp
// instead of fail.
type InvalidWireIndexError struct {
	Plane   geoid.PlaneID
	Raw     int
	Clamped int
}

func (e *InvalidWireIndexError) Error() string {
	return fmt.Sprintf("wire index %d out of range on plane %s (nearest valid: %d)",
		e.Raw, e.Plane, e.Clamped)
}

// Unwrap makes the error match ErrInvalidWireIndex under errors.Is.
func (e *InvalidWireIndexError) Unwrap() error { return ErrInvalidWireIndex }
