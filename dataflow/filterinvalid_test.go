package dataflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube2222/vlcompiler/model"
	"github.com/cube2222/vlcompiler/vega"
	"github.com/cube2222/vlcompiler/vegalite"
)

type stubEncoding struct {
	channel  vegalite.Channel
	fieldDef *vegalite.FieldDef
}

type stubModel struct {
	encodings []stubEncoding
	scales    map[vegalite.Channel]vegalite.ScaleType
}

func (m *stubModel) ForEachFieldDef(fn func(fieldDef *vegalite.FieldDef, channel vegalite.Channel)) {
	for _, encoding := range m.encodings {
		fn(encoding.fieldDef, encoding.channel)
	}
}

func (m *stubModel) ScaleComponent(channel vegalite.Channel) *model.ScaleComponent {
	scaleType, ok := m.scales[channel]
	if !ok {
		return nil
	}
	return &model.ScaleComponent{Type: scaleType}
}

func quantitative(field string) *vegalite.FieldDef {
	return &vegalite.FieldDef{Field: field, Type: vegalite.FieldTypeQuantitative}
}

func TestMakeFilterInvalid_Scenario(t *testing.T) {
	m := &stubModel{
		encodings: []stubEncoding{
			{channel: vegalite.ChannelX, fieldDef: quantitative("x")},
			{channel: vegalite.ChannelY, fieldDef: quantitative("y")},
			{channel: vegalite.ChannelSize, fieldDef: &vegalite.FieldDef{Field: "count", Type: vegalite.FieldTypeQuantitative, Aggregate: vegalite.AggregateSum}},
		},
		scales: map[vegalite.Channel]vegalite.ScaleType{
			vegalite.ChannelX:    vegalite.ScaleTypeLinear,
			vegalite.ChannelY:    vegalite.ScaleTypeLog,
			vegalite.ChannelSize: vegalite.ScaleTypeLinear,
		},
	}

	node := MakeFilterInvalid(m)
	require.NotNil(t, node)

	filter := node.Filter()
	assert.Equal(t, []string{"x", "y"}, filter.Keys())
	x, _ := filter.Get("x")
	y, _ := filter.Get("y")
	assert.Equal(t, vegalite.ScaleTypeLinear, x)
	assert.Equal(t, vegalite.ScaleTypeLog, y)
	assert.False(t, filter.Has("count"))

	assert.Equal(t, []*vega.Transform{
		{Type: vega.TransformTypeFilter, Expr: `datum["x"] !== null && !isNaN(datum["x"])`},
		{Type: vega.TransformTypeFilter, Expr: `datum["y"] > 0`},
	}, node.Assemble())
}

func TestMakeFilterInvalid_Qualification(t *testing.T) {
	tests := []struct {
		name      string
		channel   vegalite.Channel
		fieldDef  *vegalite.FieldDef
		scaleType vegalite.ScaleType
		scaled    bool
		want      bool
	}{
		{name: "linear", channel: vegalite.ChannelX, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypeLinear, scaled: true, want: true},
		{name: "time", channel: vegalite.ChannelX, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypeTime, scaled: true, want: true},
		{name: "sequential color", channel: vegalite.ChannelColor, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypeSequential, scaled: true, want: true},
		{name: "pow size", channel: vegalite.ChannelSize, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypePow, scaled: true, want: true},
		{name: "ordinal", channel: vegalite.ChannelColor, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypeOrdinal, scaled: true, want: false},
		{name: "band", channel: vegalite.ChannelX, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypeBand, scaled: true, want: false},
		{name: "point", channel: vegalite.ChannelY, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypePoint, scaled: true, want: false},
		{name: "no scale component", channel: vegalite.ChannelX, fieldDef: quantitative("a"), scaled: false, want: false},
		{name: "not a scale channel", channel: vegalite.ChannelText, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypeLinear, scaled: true, want: false},
		{name: "x2 isn't scaled on its own", channel: vegalite.ChannelX2, fieldDef: quantitative("a"), scaleType: vegalite.ScaleTypeLinear, scaled: true, want: false},
		{name: "missing field def", channel: vegalite.ChannelX, fieldDef: nil, scaleType: vegalite.ScaleTypeLinear, scaled: true, want: false},
		{
			name:      "aggregated",
			channel:   vegalite.ChannelY,
			fieldDef:  &vegalite.FieldDef{Field: "a", Type: vegalite.FieldTypeQuantitative, Aggregate: vegalite.AggregateMean},
			scaleType: vegalite.ScaleTypeLinear,
			scaled:    true,
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &stubModel{
				encodings: []stubEncoding{{channel: tt.channel, fieldDef: tt.fieldDef}},
				scales:    map[vegalite.Channel]vegalite.ScaleType{},
			}
			if tt.scaled {
				m.scales[tt.channel] = tt.scaleType
			}

			node := MakeFilterInvalid(m)
			if !tt.want {
				assert.Nil(t, node)
				return
			}
			require.NotNil(t, node)
			scaleType, ok := node.Filter().Get("a")
			assert.True(t, ok)
			assert.Equal(t, tt.scaleType, scaleType)
			assert.Same(t, tt.fieldDef, node.FieldDef("a"))
		})
	}
}

func TestMakeFilterInvalid_SkipsMissingFieldDefs(t *testing.T) {
	m := &stubModel{
		encodings: []stubEncoding{
			{channel: vegalite.ChannelX, fieldDef: nil},
			{channel: vegalite.ChannelY, fieldDef: quantitative("y")},
		},
		scales: map[vegalite.Channel]vegalite.ScaleType{
			vegalite.ChannelX: vegalite.ScaleTypeLinear,
			vegalite.ChannelY: vegalite.ScaleTypeLinear,
		},
	}

	node := MakeFilterInvalid(m)
	require.NotNil(t, node)
	assert.Equal(t, []string{"y"}, node.Filter().Keys())
}

func TestMakeFilterInvalid_DoesNotMutateModel(t *testing.T) {
	fieldDef := quantitative("a")
	m := &stubModel{
		encodings: []stubEncoding{{channel: vegalite.ChannelX, fieldDef: fieldDef}},
		scales:    map[vegalite.Channel]vegalite.ScaleType{vegalite.ChannelX: vegalite.ScaleTypeLinear},
	}
	MakeFilterInvalid(m)

	assert.Equal(t, quantitative("a"), fieldDef)
	assert.Equal(t, map[vegalite.Channel]vegalite.ScaleType{vegalite.ChannelX: vegalite.ScaleTypeLinear}, m.scales)
}

func TestMakeFilterInvalid_SameFieldOnTwoChannels(t *testing.T) {
	m := &stubModel{
		encodings: []stubEncoding{
			{channel: vegalite.ChannelX, fieldDef: quantitative("a")},
			{channel: vegalite.ChannelY, fieldDef: quantitative("b")},
			{channel: vegalite.ChannelSize, fieldDef: quantitative("a")},
		},
		scales: map[vegalite.Channel]vegalite.ScaleType{
			vegalite.ChannelX:    vegalite.ScaleTypeLinear,
			vegalite.ChannelY:    vegalite.ScaleTypeLinear,
			vegalite.ChannelSize: vegalite.ScaleTypeSqrt,
		},
	}

	node := MakeFilterInvalid(m)
	require.NotNil(t, node)
	assert.Equal(t, []string{"a", "b"}, node.Filter().Keys())
	assert.Equal(t, []*vega.Transform{
		vega.FilterTransform(`datum["a"] > 0`),
		vega.FilterTransform(`datum["b"] !== null && !isNaN(datum["b"])`),
	}, node.Assemble())
}

func TestFilterInvalidNode_Assemble(t *testing.T) {
	tests := []struct {
		name      string
		scaleType vegalite.ScaleType
		fieldDef  *vegalite.FieldDef
		want      *vega.Transform
	}{
		{
			name:      "log with field def",
			scaleType: vegalite.ScaleTypeLog,
			fieldDef:  quantitative("f"),
			want:      vega.FilterTransform(`datum["f"] > 0`),
		},
		{
			name:      "log without field def",
			scaleType: vegalite.ScaleTypeLog,
			want:      vega.FilterTransform(`datum["f"] > 0`),
		},
		{
			name:      "sqrt without field def",
			scaleType: vegalite.ScaleTypeSqrt,
			want:      vega.FilterTransform(`datum["f"] > 0`),
		},
		{
			name:      "linear with field def",
			scaleType: vegalite.ScaleTypeLinear,
			fieldDef:  quantitative("f"),
			want:      vega.FilterTransform(`datum["f"] !== null && !isNaN(datum["f"])`),
		},
		{
			name:      "time with field def",
			scaleType: vegalite.ScaleTypeTime,
			fieldDef:  &vegalite.FieldDef{Field: "f", Type: vegalite.FieldTypeTemporal},
			want:      vega.FilterTransform(`datum["f"] !== null && !isNaN(datum["f"])`),
		},
		{
			name:      "linear without field def",
			scaleType: vegalite.ScaleTypeLinear,
			want:      nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewFieldMap[vegalite.ScaleType]()
			filter.Set("f", tt.scaleType)
			fieldDefs := NewFieldMap[*vegalite.FieldDef]()
			if tt.fieldDef != nil {
				fieldDefs.Set("f", tt.fieldDef)
			}

			got := NewFilterInvalidNode(filter, fieldDefs).Assemble()
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestFilterInvalidNode_AssembleKeepsPlaceholders(t *testing.T) {
	filter := NewFieldMap[vegalite.ScaleType]()
	filter.Set("a", vegalite.ScaleTypeLinear)
	filter.Set("b", vegalite.ScaleTypeLinear)
	filter.Set("c", vegalite.ScaleTypeSqrt)
	fieldDefs := NewFieldMap[*vegalite.FieldDef]()
	fieldDefs.Set("a", quantitative("a"))
	fieldDefs.Set("b", nil)

	assert.Equal(t, []*vega.Transform{
		vega.FilterTransform(`datum["a"] !== null && !isNaN(datum["a"])`),
		nil,
		vega.FilterTransform(`datum["c"] > 0`),
	}, NewFilterInvalidNode(filter, fieldDefs).Assemble())
}

func TestFilterInvalidNode_AssembleQuotesFields(t *testing.T) {
	filter := NewFieldMap[vegalite.ScaleType]()
	filter.Set(`a "quoted" field.name`, vegalite.ScaleTypeLog)
	filter.Set(`back\slash`, vegalite.ScaleTypeLinear)
	fieldDefs := NewFieldMap[*vegalite.FieldDef]()
	fieldDefs.Set(`back\slash`, quantitative(`back\slash`))

	assert.Equal(t, []*vega.Transform{
		vega.FilterTransform(`datum["a \"quoted\" field.name"] > 0`),
		vega.FilterTransform(`datum["back\\slash"] !== null && !isNaN(datum["back\\slash"])`),
	}, NewFilterInvalidNode(filter, fieldDefs).Assemble())
}

func TestFilterInvalidNode_AssembleIsRepeatable(t *testing.T) {
	filter := NewFieldMap[vegalite.ScaleType]()
	filter.Set("a", vegalite.ScaleTypeLinear)
	filter.Set("b", vegalite.ScaleTypeLog)
	fieldDefs := NewFieldMap[*vegalite.FieldDef]()
	fieldDefs.Set("a", quantitative("a"))
	fieldDefs.Set("b", quantitative("b"))
	node := NewFilterInvalidNode(filter, fieldDefs)

	assert.Equal(t, node.Assemble(), node.Assemble())
}

func TestFilterInvalidNode_FilterIsReadOnly(t *testing.T) {
	filter := NewFieldMap[vegalite.ScaleType]()
	filter.Set("a", vegalite.ScaleTypeLinear)
	node := NewFilterInvalidNode(filter, nil)

	exposed := node.Filter()
	exposed.Set("b", vegalite.ScaleTypeLog)
	exposed.Delete("a")

	assert.Equal(t, []string{"a"}, node.Filter().Keys())
	assert.Nil(t, node.FieldDef("a"))
}

func TestFilterInvalidNode_Clone(t *testing.T) {
	filter := NewFieldMap[vegalite.ScaleType]()
	filter.Set("a", vegalite.ScaleTypeLinear)
	filter.Set("b", vegalite.ScaleTypeLog)
	fieldDefs := NewFieldMap[*vegalite.FieldDef]()
	aDef := quantitative("a")
	fieldDefs.Set("a", aDef)
	original := NewFilterInvalidNode(filter, fieldDefs)
	parent := NewSourceNode(vegalite.DataSpec{URL: "data.json"})
	Link(parent, original)
	Link(original, NewOutputNode(MainDataName))

	clone := original.Clone().(*FilterInvalidNode)
	assert.Equal(t, original.Assemble(), clone.Assemble())
	assert.NotEqual(t, original.ID(), clone.ID())
	assert.Nil(t, clone.Parent())
	assert.Empty(t, clone.Children())
	assert.Same(t, aDef, clone.FieldDef("a"), "field defs are shared values")

	clone.filter.Set("c", vegalite.ScaleTypeSqrt)
	clone.filter.Delete("a")
	clone.fieldDefs.Delete("a")
	otherParent := NewSourceNode(vegalite.DataSpec{URL: "other.json"})
	Link(otherParent, clone)

	assert.Equal(t, []string{"a", "b"}, original.Filter().Keys())
	assert.Same(t, aDef, original.FieldDef("a"))
	assert.Same(t, parent, original.Parent())
	assert.Len(t, original.Children(), 1)
	assert.Equal(t, []*vega.Transform{
		vega.FilterTransform(`datum["a"] !== null && !isNaN(datum["a"])`),
		vega.FilterTransform(`datum["b"] > 0`),
	}, original.Assemble())
}

func TestFilterInvalidNode_Visualize(t *testing.T) {
	filter := NewFieldMap[vegalite.ScaleType]()
	filter.Set("a", vegalite.ScaleTypeLinear)
	node := NewFilterInvalidNode(filter, nil)
	Link(node, NewOutputNode(MainDataName))

	n := node.Visualize()
	assert.Equal(t, "filter invalid", n.Name)
	require.Len(t, n.Fields, 1)
	assert.Equal(t, "a", n.Fields[0].Name)
	assert.Equal(t, "linear", n.Fields[0].Value)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "output", n.Children[0].Node.Name)
}

func TestFilterInvalidNode_Expression(t *testing.T) {
	filter := NewFieldMap[vegalite.ScaleType]()
	filter.Set("a", vegalite.ScaleTypeLog)
	filter.Set("b", vegalite.ScaleTypeLinear)
	filter.Set("c", vegalite.ScaleTypeTime)
	fieldDefs := NewFieldMap[*vegalite.FieldDef]()
	fieldDefs.Set("a", quantitative("a"))
	fieldDefs.Set("c", &vegalite.FieldDef{Field: "c", Type: vegalite.FieldTypeTemporal})
	node := NewFilterInvalidNode(filter, fieldDefs)

	assert.Equal(t, `datum["a"] > 0`, node.Expression("a"))
	assert.Equal(t, "", node.Expression("b"))
	assert.Equal(t, `datum["c"] !== null && !isNaN(datum["c"])`, node.Expression("c"))
	assert.Equal(t, "", node.Expression("missing"))
}
