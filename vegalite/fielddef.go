package vegalite

import (
	"fmt"

	"github.com/pkg/errors"
)

type FieldType string

const (
	FieldTypeQuantitative FieldType = "quantitative"
	FieldTypeTemporal     FieldType = "temporal"
	FieldTypeOrdinal      FieldType = "ordinal"
	FieldTypeNominal      FieldType = "nominal"
)

var fieldTypeShorthands = map[string]FieldType{
	"q": FieldTypeQuantitative,
	"t": FieldTypeTemporal,
	"o": FieldTypeOrdinal,
	"n": FieldTypeNominal,
}

func ParseFieldType(s string) (FieldType, error) {
	switch FieldType(s) {
	case FieldTypeQuantitative, FieldTypeTemporal, FieldTypeOrdinal, FieldTypeNominal:
		return FieldType(s), nil
	}
	if fieldType, ok := fieldTypeShorthands[s]; ok {
		return fieldType, nil
	}
	return "", errors.Errorf("invalid field type: %s", s)
}

type AggregateOp string

const (
	AggregateCount    AggregateOp = "count"
	AggregateValid    AggregateOp = "valid"
	AggregateMissing  AggregateOp = "missing"
	AggregateDistinct AggregateOp = "distinct"
	AggregateSum      AggregateOp = "sum"
	AggregateMean     AggregateOp = "mean"
	AggregateAverage  AggregateOp = "average"
	AggregateVariance AggregateOp = "variance"
	AggregateStdev    AggregateOp = "stdev"
	AggregateMedian   AggregateOp = "median"
	AggregateQ1       AggregateOp = "q1"
	AggregateQ3       AggregateOp = "q3"
	AggregateMin      AggregateOp = "min"
	AggregateMax      AggregateOp = "max"
	AggregateArgmin   AggregateOp = "argmin"
	AggregateArgmax   AggregateOp = "argmax"
)

var aggregateOps = map[AggregateOp]bool{
	AggregateCount:    true,
	AggregateValid:    true,
	AggregateMissing:  true,
	AggregateDistinct: true,
	AggregateSum:      true,
	AggregateMean:     true,
	AggregateAverage:  true,
	AggregateVariance: true,
	AggregateStdev:    true,
	AggregateMedian:   true,
	AggregateQ1:       true,
	AggregateQ3:       true,
	AggregateMin:      true,
	AggregateMax:      true,
	AggregateArgmin:   true,
	AggregateArgmax:   true,
}

func ParseAggregateOp(s string) (AggregateOp, error) {
	if !aggregateOps[AggregateOp(s)] {
		return "", errors.Errorf("invalid aggregate operation: %s", s)
	}
	return AggregateOp(s), nil
}

// FieldDef describes a data field bound to an encoding channel.
type FieldDef struct {
	Field     string
	Type      FieldType
	Aggregate AggregateOp
	Bin       bool
	TimeUnit  string

	// Scale is nil when the spec doesn't mention a scale. DisableScale is set for "scale": null.
	Scale        *ScaleDef
	DisableScale bool
}

// IsAggregate reports whether the field is the result of summarizing multiple records.
func (fieldDef *FieldDef) IsAggregate() bool {
	return fieldDef.Aggregate != ""
}

func (fieldDef *FieldDef) String() string {
	if fieldDef.IsAggregate() {
		return fmt.Sprintf("%s(%s)", fieldDef.Aggregate, fieldDef.Field)
	}
	if fieldDef.Bin {
		return fmt.Sprintf("bin(%s)", fieldDef.Field)
	}
	if fieldDef.TimeUnit != "" {
		return fmt.Sprintf("%s(%s)", fieldDef.TimeUnit, fieldDef.Field)
	}
	return fieldDef.Field
}
