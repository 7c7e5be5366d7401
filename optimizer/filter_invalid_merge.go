package optimizer

import (
	. "github.com/cube2222/vlcompiler/dataflow"
)

// MergeFilterInvalid merges a filter invalid node into its parent filter invalid node, if it's the parent's only child.
// Nodes which disagree on the scale type of a shared field are left alone.
func MergeFilterInvalid(root Node) bool {
	t := Transformers{
		NodeTransformer: func(node Node) bool {
			parent, ok := node.(*FilterInvalidNode)
			if !ok {
				return false
			}
			children := parent.Children()
			if len(children) != 1 {
				return false
			}
			child, ok := children[0].(*FilterInvalidNode)
			if !ok {
				return false
			}

			merged, ok := mergeFilterInvalid(parent, child)
			if !ok {
				return false
			}

			InsertAsParentOf(merged, parent)
			Remove(parent)
			Remove(child)
			return true
		},
	}
	return t.TransformNode(root)
}

func mergeFilterInvalid(parent, child *FilterInvalidNode) (*FilterInvalidNode, bool) {
	filter := parent.Filter()
	fieldDefs := NewFieldDefMap()
	for _, field := range filter.Keys() {
		fieldDefs.Set(field, parent.FieldDef(field))
	}

	childFilter := child.Filter()
	for _, field := range childFilter.Keys() {
		childScaleType, _ := childFilter.Get(field)
		if scaleType, ok := filter.Get(field); ok {
			if scaleType != childScaleType {
				return nil, false
			}
			if parent.FieldDef(field) == nil {
				fieldDefs.Set(field, child.FieldDef(field))
			}
			continue
		}
		filter.Set(field, childScaleType)
		fieldDefs.Set(field, child.FieldDef(field))
	}

	return NewFilterInvalidNode(filter, fieldDefs), true
}
