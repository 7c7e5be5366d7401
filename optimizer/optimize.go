package optimizer

import (
	. "github.com/cube2222/vlcompiler/dataflow"
)

var defaultOptimizationRules = []func(Node) (changed bool){
	RemoveDeadEnds,
	MergeFilterInvalid,
}

// Optimize rewrites the dataflow trees in place until no rule applies anymore.
func Optimize(roots ...*SourceNode) {
	changed := true
	for changed {
		changed = false
		for _, root := range roots {
			for _, rule := range defaultOptimizationRules {
				if rule(root) {
					changed = true
				}
			}
		}
	}
}
