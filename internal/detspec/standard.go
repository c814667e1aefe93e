package detspec

import "math"

// Standard returns the reference detector layout: 2 enclosures of 2 drift
// modules each, 3 wire planes per module (two induction planes tilted at
// +/-30 degrees and a vertical-pitch collection plane), 100 wires per
// plane at 0.5 cm pitch.
func Standard() Config {
	return Config{
		SpecName:            "standard",
		Enclosures:          2,
		ModulesPerEnclosure: 2,
		PlanesPerModule:     3,
		WiresPerPlane:       100,
		WirePitch:           0.5,
		WireHalfLength:      25,
		PlaneAngles:         []float64{math.Pi / 6, -math.Pi / 6, 0},
		PlaneGap:            0.5,
		DriftHalfDepth:      20,
		OpDetsPerEnclosure:  4,
		AuxDets:             2,
	}
}

// CrossGrid returns a two-plane layout whose wires run at 0 and 90
// degrees, so every wire of one plane crosses every wire of the other at
// right angles. Useful for exercising intersection queries.
func CrossGrid() Config {
	return Config{
		SpecName:            "crossgrid",
		Enclosures:          1,
		ModulesPerEnclosure: 1,
		PlanesPerModule:     2,
		WiresPerPlane:       20,
		WirePitch:           1,
		WireHalfLength:      15,
		PlaneAngles:         []float64{0, math.Pi / 2},
		PlaneGap:            0.5,
		DriftHalfDepth:      20,
	}
}

// Mini returns the smallest useful layout, for quick checks.
func Mini() Config {
	return Config{
		SpecName:            "mini",
		Enclosures:          1,
		ModulesPerEnclosure: 1,
		PlanesPerModule:     2,
		WiresPerPlane:       5,
		WirePitch:           1,
		WireHalfLength:      5,
		PlaneAngles:         []float64{math.Pi / 6, 0},
		PlaneGap:            0.5,
		DriftHalfDepth:      10,
	}
}

// Registry of known detector descriptions.
var registry = make(map[string]Config)

// Register adds a description to the registry, replacing any previous one
// with the same name.
func Register(c Config) {
	registry[c.Name()] = c
}

// Get returns a registered description and whether it exists.
func Get(name string) (Config, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns the names of all registered descriptions.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func init() {
	Register(Standard())
	Register(CrossGrid())
	Register(Mini())
}
