// Package volume defines the raw volume-node tree handed to the geometry
// builder. External loaders parse a geometry description into this form;
// the engine itself never reads files.
package volume

import (
	"gonum.org/v1/gonum/spatial/r3"

	"tpc-geom/pkg/geometry"
)

// Node is one physical volume in the unordered hierarchical description:
// a name identifying its role, a local transform relative to its parent,
// half-extents of its bounding shape along the local axes, and child
// volumes.
type Node struct {
	Name     string
	Local    geometry.Transform
	Half     r3.Vec
	Children []*Node
}

// NewNode creates a node with the given name, local transform and
// half-extents.
func NewNode(name string, local geometry.Transform, half r3.Vec) *Node {
	return &Node{Name: name, Local: local, Half: half}
}

// AddChild appends a child volume and returns it for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}
