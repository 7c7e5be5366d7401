package model

import (
	"github.com/cube2222/vlcompiler/vegalite"
)

// ModelWithField is what compilation stages see of a chart: its encoded fields and the scales resolved for them.
type ModelWithField interface {
	// ForEachFieldDef calls fn for every field definition, together with the channel it's encoded on, in encoding order.
	ForEachFieldDef(fn func(fieldDef *vegalite.FieldDef, channel vegalite.Channel))
	// ScaleComponent returns the resolved scale of the channel, or nil if the channel isn't scaled.
	ScaleComponent(channel vegalite.Channel) *ScaleComponent
}

type ScaleComponent struct {
	Type vegalite.ScaleType
	// Explicit is set when the type was stated in the spec rather than picked by the resolver.
	Explicit bool
}

type UnitModel struct {
	spec   *vegalite.UnitSpec
	scales map[vegalite.Channel]*ScaleComponent
}

func NewUnitModel(spec *vegalite.UnitSpec) *UnitModel {
	scales := make(map[vegalite.Channel]*ScaleComponent)
	for _, channelDef := range spec.Encoding {
		if component := resolveScale(spec.Mark, channelDef.Channel, channelDef.FieldDef); component != nil {
			scales[channelDef.Channel] = component
		}
	}

	return &UnitModel{
		spec:   spec,
		scales: scales,
	}
}

func (m *UnitModel) ForEachFieldDef(fn func(fieldDef *vegalite.FieldDef, channel vegalite.Channel)) {
	for _, channelDef := range m.spec.Encoding {
		if channelDef.FieldDef == nil {
			continue
		}
		fn(channelDef.FieldDef, channelDef.Channel)
	}
}

func (m *UnitModel) ScaleComponent(channel vegalite.Channel) *ScaleComponent {
	return m.scales[channel]
}

func (m *UnitModel) Spec() *vegalite.UnitSpec {
	return m.spec
}

func (m *UnitModel) Data() vegalite.DataSpec {
	return m.spec.Data
}

// InvalidValues says how invalid values should be handled, defaulting to filtering them out.
func (m *UnitModel) InvalidValues() vegalite.InvalidValuesMode {
	if m.spec.Config.InvalidValues == "" {
		return vegalite.InvalidValuesFilter
	}
	return m.spec.Config.InvalidValues
}
