// Package detspec provides fully-dimensioned canned detector descriptions
// and a registry of known layouts. Each description emits a raw volume
// tree suitable for the geometry builder; it stands in for the external
// loader in tests and diagnostic tools.
package detspec

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/builder"
	"tpc-geom/internal/volume"
	"tpc-geom/pkg/geometry"
)

// Config describes a rectangular detector layout: enclosures spread along
// the X (drift) axis, each housing a row of drift modules whose wire
// planes sit near the +X face. All lengths are in centimeters; plane
// angles give the pitch direction of each plane, measured in the Y-Z
// plane from +Z toward +Y, in radians.
type Config struct {
	SpecName string

	Enclosures          int
	ModulesPerEnclosure int
	PlanesPerModule     int
	WiresPerPlane       int

	WirePitch      float64
	WireHalfLength float64
	PlaneAngles    []float64
	PlaneGap       float64 // spacing between adjacent planes along X
	DriftHalfDepth float64 // module half-extent along X

	OpDetsPerEnclosure int
	AuxDets            int
}

// Name returns the registered name of the description.
func (c Config) Name() string { return c.SpecName }

// Validate checks the description for internal consistency.
func (c Config) Validate() error {
	if c.SpecName == "" {
		return fmt.Errorf("detector spec name is required")
	}
	if c.Enclosures <= 0 || c.ModulesPerEnclosure <= 0 ||
		c.PlanesPerModule <= 0 || c.WiresPerPlane <= 0 {
		return fmt.Errorf("element counts must be positive")
	}
	if c.WirePitch <= 0 || c.WireHalfLength <= 0 {
		return fmt.Errorf("wire pitch and half-length must be positive")
	}
	if len(c.PlaneAngles) != c.PlanesPerModule {
		return fmt.Errorf("need %d plane angles, got %d",
			c.PlanesPerModule, len(c.PlaneAngles))
	}
	return nil
}

// halfTransverse returns the transverse half-extent needed to contain a
// full wire plane.
func (c Config) halfTransverse() float64 {
	return 0.5*float64(c.WiresPerPlane-1)*c.WirePitch + c.WireHalfLength
}

// ModuleSpacing returns the center-to-center module distance along X.
func (c Config) ModuleSpacing() float64 {
	return 2*c.DriftHalfDepth + 5
}

// EnclosureSpacing returns the center-to-center enclosure distance along X.
func (c Config) EnclosureSpacing() float64 {
	return float64(c.ModulesPerEnclosure)*c.ModuleSpacing() + 30
}

// BuildTree emits the raw volume tree for the description.
func (c Config) BuildTree() *volume.Node {
	ht := c.halfTransverse()
	modHalf := r3.Vec{X: c.DriftHalfDepth, Y: ht + 1, Z: ht + 1}
	encHalf := r3.Vec{
		X: float64(c.ModulesPerEnclosure)*c.ModuleSpacing()/2 + 5,
		Y: ht + 5,
		Z: ht + 5,
	}

	worldHalf := r3.Vec{
		X: float64(c.Enclosures)*c.EnclosureSpacing()/2 + 50,
		Y: encHalf.Y + 100,
		Z: encHalf.Z + 100,
	}
	world := volume.NewNode("volWorld", geometry.Identity(), worldHalf)

	for e := 0; e < c.Enclosures; e++ {
		encX := (float64(e) - float64(c.Enclosures-1)/2) * c.EnclosureSpacing()
		enc := world.AddChild(volume.NewNode(
			fmt.Sprintf("%s%d", builder.PrefixEnclosure, e),
			geometry.Translation(r3.Vec{X: encX}),
			encHalf,
		))

		for m := 0; m < c.ModulesPerEnclosure; m++ {
			modX := (float64(m) - float64(c.ModulesPerEnclosure-1)/2) * c.ModuleSpacing()
			mod := enc.AddChild(volume.NewNode(
				fmt.Sprintf("%s%d", builder.PrefixModule, m),
				geometry.Translation(r3.Vec{X: modX}),
				modHalf,
			))
			c.addPlanes(mod)
		}

		for o := 0; o < c.OpDetsPerEnclosure; o++ {
			odZ := (float64(o) - float64(c.OpDetsPerEnclosure-1)/2) * 20
			enc.AddChild(volume.NewNode(
				fmt.Sprintf("%s%d", builder.PrefixOpDet, o),
				geometry.Translation(r3.Vec{X: -encHalf.X + 1, Z: odZ}),
				r3.Vec{X: 0.5, Y: 10, Z: 10},
			))
		}
	}

	for a := 0; a < c.AuxDets; a++ {
		adZ := (float64(a) - float64(c.AuxDets-1)/2) * 50
		world.AddChild(volume.NewNode(
			fmt.Sprintf("%s%d", builder.PrefixAuxDet, a),
			geometry.Translation(r3.Vec{Y: encHalf.Y + 50, Z: adZ}),
			r3.Vec{X: 20, Y: 1, Z: 20},
		))
	}

	return world
}

// addPlanes stacks the wire planes near the +X face of the module, so the
// drift direction comes out as +X.
func (c Config) addPlanes(mod *volume.Node) {
	ht := c.halfTransverse()
	planeHalf := r3.Vec{X: 0.15, Y: ht, Z: ht}

	for p := 0; p < c.PlanesPerModule; p++ {
		planeX := c.DriftHalfDepth/2 + float64(p)*c.PlaneGap
		plane := mod.AddChild(volume.NewNode(
			fmt.Sprintf("%s%d", builder.PrefixPlane, p),
			geometry.Translation(r3.Vec{X: planeX}),
			planeHalf,
		))

		angle := c.PlaneAngles[p]
		// The wire volume's local Z axis is the wire direction; rotate it
		// about X so the pitch direction ends up at the requested angle.
		rot := geometry.RotationX(-(angle + math.Pi/2))
		for w := 0; w < c.WiresPerPlane; w++ {
			t := (float64(w) - float64(c.WiresPerPlane-1)/2) * c.WirePitch
			local := geometry.Translation(r3.Vec{
				Y: t * math.Sin(angle),
				Z: t * math.Cos(angle),
			}).Compose(rot)
			plane.AddChild(volume.NewNode(
				fmt.Sprintf("%s%d", builder.PrefixWire, w),
				local,
				r3.Vec{X: 0.01, Y: 0.01, Z: c.WireHalfLength},
			))
		}
	}
}
