// Package builder materializes typed detector elements from a raw volume
// tree. Node names are matched against reserved role prefixes; transforms
// are composed along the path from the root, and bounding dimensions are
// captured from each node.
package builder

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/internal/element"
	"tpc-geom/internal/geoerr"
	"tpc-geom/internal/volume"
	"tpc-geom/pkg/geometry"
)

// Reserved volume-name prefixes identifying element roles.
const (
	PrefixEnclosure = "volEnclosure"
	PrefixModule    = "volModule"
	PrefixPlane     = "volPlane"
	PrefixWire      = "volWire"
	PrefixOpDet     = "volOpDet"
	PrefixAuxDet    = "volAuxDet"
)

// DefaultMaxDepth bounds the recursion into the volume tree. Real
// descriptions nest at most 8 levels; anything deeper is malformed input.
const DefaultMaxDepth = 8

// Build walks the raw tree and returns the materialized enclosures and
// auxiliary detectors with exclusive top-down ownership. Elements come out
// in discovery order; sorting and ID assignment happen afterwards.
func Build(root *volume.Node, maxDepth int) ([]*element.Enclosure, []*element.AuxDet, error) {
	if root == nil {
		return nil, nil, fmt.Errorf("build: nil volume tree: %w", geoerr.ErrNotFound)
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	b := &treeBuilder{maxDepth: maxDepth}
	if err := b.walkWorld(root, geometry.Identity(), 0); err != nil {
		return nil, nil, err
	}
	if len(b.enclosures) == 0 {
		return nil, nil, fmt.Errorf("build: no %s volume in tree: %w", PrefixEnclosure, geoerr.ErrNotFound)
	}
	return b.enclosures, b.auxDets, nil
}

type treeBuilder struct {
	maxDepth   int
	enclosures []*element.Enclosure
	auxDets    []*element.AuxDet
}

func (b *treeBuilder) checkDepth(depth int) error {
	if depth > b.maxDepth {
		return fmt.Errorf("build: nesting depth %d exceeds limit %d: %w",
			depth, b.maxDepth, geoerr.ErrDepthExceeded)
	}
	return nil
}

// walkWorld scans for enclosures and auxiliary detectors, descending
// through container volumes that carry no reserved role.
func (b *treeBuilder) walkWorld(n *volume.Node, parent geometry.Transform, depth int) error {
	if err := b.checkDepth(depth); err != nil {
		return err
	}
	world := parent.Compose(n.Local)

	switch {
	case strings.HasPrefix(n.Name, PrefixEnclosure):
		enc, err := b.buildEnclosure(n, world, depth)
		if err != nil {
			return err
		}
		b.enclosures = append(b.enclosures, enc)
		return nil
	case strings.HasPrefix(n.Name, PrefixAuxDet):
		b.auxDets = append(b.auxDets, &element.AuxDet{
			Name:   n.Name,
			Trans:  world,
			Center: world.Trans,
			Half:   n.Half,
		})
		return nil
	}

	for _, child := range n.Children {
		if err := b.walkWorld(child, world, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (b *treeBuilder) buildEnclosure(n *volume.Node, world geometry.Transform, depth int) (*element.Enclosure, error) {
	enc := &element.Enclosure{
		Trans:  world,
		Center: world.Trans,
		Half:   n.Half,
	}
	if err := b.collectEnclosure(n, world, depth, enc); err != nil {
		return nil, err
	}
	if len(enc.Modules) == 0 {
		return nil, fmt.Errorf("build: enclosure %q has no %s volume: %w",
			n.Name, PrefixModule, geoerr.ErrNotFound)
	}
	return enc, nil
}

func (b *treeBuilder) collectEnclosure(n *volume.Node, world geometry.Transform, depth int, enc *element.Enclosure) error {
	for _, child := range n.Children {
		if err := b.checkDepth(depth + 1); err != nil {
			return err
		}
		childWorld := world.Compose(child.Local)
		switch {
		case strings.HasPrefix(child.Name, PrefixModule):
			mod, err := b.buildModule(child, childWorld, depth+1)
			if err != nil {
				return err
			}
			enc.Modules = append(enc.Modules, mod)
		case strings.HasPrefix(child.Name, PrefixOpDet):
			enc.OpDets = append(enc.OpDets, &element.OpDet{
				Trans:  childWorld,
				Center: childWorld.Trans,
				Half:   child.Half,
			})
		default:
			if err := b.collectEnclosure(child, childWorld, depth+1, enc); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *treeBuilder) buildModule(n *volume.Node, world geometry.Transform, depth int) (*element.Module, error) {
	mod := &element.Module{
		Trans:  world,
		Center: world.Trans,
		Half:   n.Half,
	}
	if err := b.collectModule(n, world, depth, mod); err != nil {
		return nil, err
	}
	if len(mod.Planes) == 0 {
		return nil, fmt.Errorf("build: module %q has no %s volume: %w",
			n.Name, PrefixPlane, geoerr.ErrNotFound)
	}
	return mod, nil
}

func (b *treeBuilder) collectModule(n *volume.Node, world geometry.Transform, depth int, mod *element.Module) error {
	for _, child := range n.Children {
		if err := b.checkDepth(depth + 1); err != nil {
			return err
		}
		childWorld := world.Compose(child.Local)
		if strings.HasPrefix(child.Name, PrefixPlane) {
			plane, err := b.buildPlane(child, childWorld, depth+1)
			if err != nil {
				return err
			}
			mod.Planes = append(mod.Planes, plane)
			continue
		}
		if err := b.collectModule(child, childWorld, depth+1, mod); err != nil {
			return err
		}
	}
	return nil
}

func (b *treeBuilder) buildPlane(n *volume.Node, world geometry.Transform, depth int) (*element.Plane, error) {
	plane := &element.Plane{
		Trans:  world,
		Center: world.Trans,
		Half:   n.Half,
	}
	if err := b.collectPlane(n, world, depth, plane); err != nil {
		return nil, err
	}
	if len(plane.Wires) == 0 {
		return nil, fmt.Errorf("build: plane %q has no %s volume: %w",
			n.Name, PrefixWire, geoerr.ErrNotFound)
	}
	return plane, nil
}

func (b *treeBuilder) collectPlane(n *volume.Node, world geometry.Transform, depth int, plane *element.Plane) error {
	for _, child := range n.Children {
		if err := b.checkDepth(depth + 1); err != nil {
			return err
		}
		childWorld := world.Compose(child.Local)
		if strings.HasPrefix(child.Name, PrefixWire) {
			plane.Wires = append(plane.Wires, buildWire(child, childWorld))
			continue
		}
		if err := b.collectPlane(child, childWorld, depth+1, plane); err != nil {
			return err
		}
	}
	return nil
}

// buildWire captures a wire's world center, direction and half-length.
// The wire axis is the local Z axis of the wire volume; its half-length is
// the Z half-extent.
func buildWire(n *volume.Node, world geometry.Transform) *element.Wire {
	return &element.Wire{
		Trans:      world,
		Center:     world.Trans,
		Dir:        world.ApplyVector(r3.Vec{Z: 1}),
		HalfLength: n.Half.Z,
	}
}
