// Package dataflow contains the graph of data processing steps a chart compiles to.
// Data flows from parents to children; each root is a data source.
package dataflow

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"

	"github.com/cube2222/vlcompiler/graph"
	"github.com/cube2222/vlcompiler/vega"
)

type Node interface {
	graph.Visualizer

	ID() string
	Parent() Node
	Children() []Node
	// Clone returns a copy of the node without any edges.
	Clone() Node

	base() *BaseNode
}

// TransformNode is a node which contributes transforms to the dataset it's part of.
// Assemble may return nil placeholders, which are dropped when assembling the data section.
type TransformNode interface {
	Node
	Assemble() []*vega.Transform
}

// BaseNode carries the identity and edges of a node. It's meant to be embedded.
type BaseNode struct {
	id       ulid.ULID
	parent   Node
	children []Node
}

func newBaseNode() BaseNode {
	return BaseNode{
		id: ulid.MustNew(ulid.Now(), rand.Reader),
	}
}

func (n *BaseNode) ID() string {
	return n.id.String()
}

func (n *BaseNode) Parent() Node {
	return n.parent
}

func (n *BaseNode) Children() []Node {
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *BaseNode) base() *BaseNode {
	return n
}

func (n *BaseNode) indexOf(child Node) int {
	for i := range n.children {
		if n.children[i] == child {
			return i
		}
	}
	return -1
}

// Link makes child the last child of parent, detaching it from its previous parent.
func Link(parent, child Node) {
	if oldParent := child.Parent(); oldParent != nil {
		Unlink(oldParent, child)
	}
	child.base().parent = parent
	parent.base().children = append(parent.base().children, child)
}

// Unlink removes the edge between parent and child, if there is one.
func Unlink(parent, child Node) {
	parentBase := parent.base()
	i := parentBase.indexOf(child)
	if i == -1 {
		return
	}
	parentBase.children = append(parentBase.children[:i:i], parentBase.children[i+1:]...)
	child.base().parent = nil
}

// Remove takes the node out of the graph. Its children take its place under its parent.
func Remove(node Node) {
	nodeBase := node.base()
	children := nodeBase.children
	nodeBase.children = nil

	parent := nodeBase.parent
	nodeBase.parent = nil
	i := -1
	if parent != nil {
		i = parent.base().indexOf(node)
	}
	// Without a parent listing the node, its children become roots.
	if i == -1 {
		for _, child := range children {
			child.base().parent = nil
		}
		return
	}

	parentBase := parent.base()
	newChildren := make([]Node, 0, len(parentBase.children)-1+len(children))
	newChildren = append(newChildren, parentBase.children[:i]...)
	newChildren = append(newChildren, children...)
	newChildren = append(newChildren, parentBase.children[i+1:]...)
	parentBase.children = newChildren

	for _, child := range children {
		child.base().parent = parent
	}
}

// InsertAsParentOf puts node between other and its parent. Node must be detached.
func InsertAsParentOf(node, other Node) {
	nodeBase := node.base()
	otherBase := other.base()

	if parent := otherBase.parent; parent != nil {
		parentBase := parent.base()
		parentBase.children[parentBase.indexOf(other)] = node
		nodeBase.parent = parent
	}
	otherBase.parent = node
	nodeBase.children = append(nodeBase.children, other)
}

// CloneTree clones the node together with everything below it.
// The clones are linked with each other but share no edges with the originals.
func CloneTree(node Node) Node {
	out := node.Clone()
	for _, child := range node.base().children {
		Link(out, CloneTree(child))
	}
	return out
}

func visualizeChildren(n *graph.Node, node Node) {
	for _, child := range node.Children() {
		n.AddChild("child", child.Visualize())
	}
}

// Walk calls fn for the node and all its descendants, parents first.
func Walk(node Node, fn func(node Node)) {
	fn(node)
	for _, child := range node.base().children {
		Walk(child, fn)
	}
}
