package optimizer

import (
	. "github.com/cube2222/vlcompiler/dataflow"
)

// RemoveDeadEnds removes transform nodes which don't lead to any output, as their work would be thrown away.
func RemoveDeadEnds(root Node) bool {
	var deadEnds []Node
	t := Transformers{
		NodeTransformer: func(node Node) bool {
			if _, ok := node.(TransformNode); ok && len(node.Children()) == 0 {
				deadEnds = append(deadEnds, node)
			}
			return false
		},
	}
	t.TransformNode(root)

	for _, node := range deadEnds {
		Remove(node)
	}
	return len(deadEnds) > 0
}
