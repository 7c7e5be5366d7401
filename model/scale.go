package model

import (
	"github.com/cube2222/vlcompiler/vegalite"
)

func resolveScale(mark string, channel vegalite.Channel, fieldDef *vegalite.FieldDef) *ScaleComponent {
	if fieldDef == nil || !vegalite.IsScaleChannel(channel) || fieldDef.DisableScale {
		return nil
	}
	if fieldDef.Scale != nil && fieldDef.Scale.Type != "" {
		return &ScaleComponent{
			Type:     fieldDef.Scale.Type,
			Explicit: true,
		}
	}

	return &ScaleComponent{
		Type: DefaultScaleType(mark, channel, fieldDef),
	}
}

// DefaultScaleType picks the scale type used when the spec doesn't state one.
func DefaultScaleType(mark string, channel vegalite.Channel, fieldDef *vegalite.FieldDef) vegalite.ScaleType {
	switch fieldDef.Type {
	case vegalite.FieldTypeNominal, vegalite.FieldTypeOrdinal:
		if vegalite.IsPositionChannel(channel) {
			if mark == "bar" || mark == "rect" {
				return vegalite.ScaleTypeBand
			}
			return vegalite.ScaleTypePoint
		}
		return vegalite.ScaleTypeOrdinal

	case vegalite.FieldTypeTemporal:
		switch channel {
		case vegalite.ChannelColor:
			return vegalite.ScaleTypeSequential
		case vegalite.ChannelShape:
			return vegalite.ScaleTypeOrdinal
		}
		return vegalite.ScaleTypeTime

	default:
		if fieldDef.Bin {
			if channel == vegalite.ChannelColor || channel == vegalite.ChannelShape {
				return vegalite.ScaleTypeBinOrdinal
			}
			return vegalite.ScaleTypeBinLinear
		}
		switch channel {
		case vegalite.ChannelColor:
			return vegalite.ScaleTypeSequential
		case vegalite.ChannelShape:
			return vegalite.ScaleTypeOrdinal
		}
		return vegalite.ScaleTypeLinear
	}
}
