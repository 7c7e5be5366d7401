package vegalite

import (
	"github.com/pkg/errors"
)

type ScaleType string

const (
	ScaleTypeLinear     ScaleType = "linear"
	ScaleTypeBinLinear  ScaleType = "bin-linear"
	ScaleTypeLog        ScaleType = "log"
	ScaleTypePow        ScaleType = "pow"
	ScaleTypeSqrt       ScaleType = "sqrt"
	ScaleTypeTime       ScaleType = "time"
	ScaleTypeUTC        ScaleType = "utc"
	ScaleTypeSequential ScaleType = "sequential"
	ScaleTypeOrdinal    ScaleType = "ordinal"
	ScaleTypeBinOrdinal ScaleType = "bin-ordinal"
	ScaleTypePoint      ScaleType = "point"
	ScaleTypeBand       ScaleType = "band"
)

var ScaleTypes = []ScaleType{
	ScaleTypeLinear,
	ScaleTypeBinLinear,
	ScaleTypeLog,
	ScaleTypePow,
	ScaleTypeSqrt,
	ScaleTypeTime,
	ScaleTypeUTC,
	ScaleTypeSequential,
	ScaleTypeOrdinal,
	ScaleTypeBinOrdinal,
	ScaleTypePoint,
	ScaleTypeBand,
}

var continuousDomainScales = map[ScaleType]bool{
	ScaleTypeLinear:     true,
	ScaleTypeBinLinear:  true,
	ScaleTypeLog:        true,
	ScaleTypePow:        true,
	ScaleTypeSqrt:       true,
	ScaleTypeTime:       true,
	ScaleTypeUTC:        true,
	ScaleTypeSequential: true,
}

// HasContinuousDomain reports whether the scale maps an ordered numeric or time range,
// as opposed to a discrete set of categories.
func HasContinuousDomain(scaleType ScaleType) bool {
	return continuousDomainScales[scaleType]
}

// IsUndefinedAtZero reports whether the scale is undefined or discontinuous for values <= 0.
func IsUndefinedAtZero(scaleType ScaleType) bool {
	return scaleType == ScaleTypeLog || scaleType == ScaleTypeSqrt
}

func ParseScaleType(s string) (ScaleType, error) {
	for _, scaleType := range ScaleTypes {
		if string(scaleType) == s {
			return scaleType, nil
		}
	}
	return "", errors.Errorf("invalid scale type: %s", s)
}

func (t ScaleType) String() string {
	return string(t)
}

// ScaleDef is the scale property of an encoding as written in the chart spec.
type ScaleDef struct {
	// Type is empty when the spec leaves the choice to the scale resolver.
	Type ScaleType
}
