package dataflow

import (
	"github.com/cube2222/vlcompiler/expression"
	"github.com/cube2222/vlcompiler/graph"
	"github.com/cube2222/vlcompiler/model"
	"github.com/cube2222/vlcompiler/vega"
	"github.com/cube2222/vlcompiler/vegalite"
)

// FilterInvalidNode removes records with invalid values (null, NaN and, for log and sqrt scales, non-positive)
// in fields which feed a continuous scale.
type FilterInvalidNode struct {
	BaseNode

	filter    *ScaleTypeMap
	fieldDefs *FieldDefMap
}

func NewFilterInvalidNode(filter *ScaleTypeMap, fieldDefs *FieldDefMap) *FilterInvalidNode {
	if filter == nil {
		filter = NewFieldMap[vegalite.ScaleType]()
	}
	if fieldDefs == nil {
		fieldDefs = NewFieldMap[*vegalite.FieldDef]()
	}
	return &FilterInvalidNode{
		BaseNode:  newBaseNode(),
		filter:    filter,
		fieldDefs: fieldDefs,
	}
}

// MakeFilterInvalid returns nil if no field needs filtering.
func MakeFilterInvalid(m model.ModelWithField) *FilterInvalidNode {
	filter := NewFieldMap[vegalite.ScaleType]()
	fieldDefs := NewFieldMap[*vegalite.FieldDef]()

	m.ForEachFieldDef(func(fieldDef *vegalite.FieldDef, channel vegalite.Channel) {
		if fieldDef == nil || !vegalite.IsScaleChannel(channel) {
			return
		}
		scaleComponent := m.ScaleComponent(channel)
		if scaleComponent == nil {
			return
		}

		// Discrete domain scales can handle invalid values, and aggregates are already clean.
		if vegalite.HasContinuousDomain(scaleComponent.Type) && !fieldDef.IsAggregate() {
			filter.Set(fieldDef.Field, scaleComponent.Type)
			fieldDefs.Set(fieldDef.Field, fieldDef)
		}
	})

	if filter.Len() == 0 {
		return nil
	}

	return NewFilterInvalidNode(filter, fieldDefs)
}

// Filter returns the scale type of each filtered field. The returned map is a copy.
func (n *FilterInvalidNode) Filter() *ScaleTypeMap {
	return n.filter.Copy()
}

// FieldDef returns the field def the field was filtered for, or nil if there is none.
func (n *FilterInvalidNode) FieldDef(field string) *vegalite.FieldDef {
	fieldDef, _ := n.fieldDefs.Get(field)
	return fieldDef
}

func (n *FilterInvalidNode) Clone() Node {
	return NewFilterInvalidNode(n.filter.Copy(), n.fieldDefs.Copy())
}

// Assemble returns a filter transform for each filtered field, in field order.
// A field for which no condition applies gets a nil placeholder.
func (n *FilterInvalidNode) Assemble() []*vega.Transform {
	out := make([]*vega.Transform, 0, n.filter.Len())
	for _, field := range n.filter.keys {
		out = append(out, n.assembleField(field))
	}
	return out
}

func (n *FilterInvalidNode) assembleField(field string) *vega.Transform {
	scaleType := n.filter.values[field]
	fieldDef := n.FieldDef(field)

	var filters []string
	if vegalite.IsUndefinedAtZero(scaleType) {
		filters = append(filters, expression.GreaterThanZero(field))
	} else if fieldDef != nil {
		filters = append(filters, expression.NotNull(field), expression.NotNaN(field))
	}

	if len(filters) == 0 {
		return nil
	}
	return vega.FilterTransform(expression.And(filters...))
}

// Expression returns the filter expression of the field, or an empty string if no condition applies to it.
func (n *FilterInvalidNode) Expression(field string) string {
	if !n.filter.Has(field) {
		return ""
	}
	transform := n.assembleField(field)
	if transform == nil {
		return ""
	}
	return transform.Expr
}

func (n *FilterInvalidNode) Visualize() *graph.Node {
	out := graph.NewNode("filter invalid")
	for _, field := range n.filter.keys {
		out.AddField(field, string(n.filter.values[field]))
	}
	visualizeChildren(out, n)
	return out
}
