package optimizer

import (
	. "github.com/cube2222/vlcompiler/dataflow"
)

// Transformers visits the dataflow parents first.
// NodeTransformer may restructure the graph below the node it's given; the children to visit are read afterwards.
type Transformers struct {
	NodeTransformer func(node Node) (changed bool)
}

func (t *Transformers) TransformNode(node Node) bool {
	changed := false
	if t.NodeTransformer != nil && t.NodeTransformer(node) {
		changed = true
	}
	for _, child := range node.Children() {
		if t.TransformNode(child) {
			changed = true
		}
	}
	return changed
}
