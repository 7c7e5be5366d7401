package parser

import (
	"log"
	"regexp"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/cube2222/vlcompiler/vegalite"
)

// SupportedVersions is the range of Vega-Lite schema versions the compiler understands.
const SupportedVersions = ">= 2.0.0, < 3.0.0"

var schemaURLRegexp = regexp.MustCompile(`/vega-lite/v([0-9][0-9a-z.\-]*)\.json$`)

func ParseSpec(data []byte) (*vegalite.UnitSpec, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't parse spec json")
	}
	if v.Type() != fastjson.TypeObject {
		return nil, errors.Errorf("spec should be an object, got %s", v.Type())
	}

	var spec vegalite.UnitSpec

	if schema := v.Get("$schema"); schema != nil {
		spec.Schema = string(schema.GetStringBytes())
		if err := CheckSchemaVersion(spec.Schema); err != nil {
			return nil, err
		}
	}

	if data := v.Get("data"); data != nil {
		dataSpec, err := ParseData(data)
		if err != nil {
			return nil, errors.Wrap(err, "couldn't parse data")
		}
		spec.Data = dataSpec
	}

	mark, err := parseMark(v.Get("mark"))
	if err != nil {
		return nil, errors.Wrap(err, "couldn't parse mark")
	}
	spec.Mark = mark

	if encoding := v.Get("encoding"); encoding != nil {
		parsed, err := ParseEncoding(encoding)
		if err != nil {
			return nil, errors.Wrap(err, "couldn't parse encoding")
		}
		spec.Encoding = parsed
	}

	if config := v.Get("config"); config != nil {
		parsed, err := parseConfig(config)
		if err != nil {
			return nil, errors.Wrap(err, "couldn't parse config")
		}
		spec.Config = parsed
	}

	return &spec, nil
}

// CheckSchemaVersion verifies the $schema url points at a supported Vega-Lite version.
func CheckSchemaVersion(schema string) error {
	matches := schemaURLRegexp.FindStringSubmatch(schema)
	if matches == nil {
		return errors.Errorf("$schema %s isn't a Vega-Lite schema url", schema)
	}
	version, err := semver.NewVersion(matches[1])
	if err != nil {
		return errors.Wrapf(err, "couldn't parse schema version %s", matches[1])
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		log.Fatalf("[BUG] invalid supported versions constraint: %s", err)
	}
	if !constraint.Check(version) {
		return errors.Errorf("unsupported Vega-Lite version %s, supported: %s", version, SupportedVersions)
	}
	return nil
}

func parseMark(v *fastjson.Value) (string, error) {
	if v == nil {
		return "", errors.New("mark is required")
	}
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes()), nil
	case fastjson.TypeObject:
		markType := v.Get("type")
		if markType == nil || markType.Type() != fastjson.TypeString {
			return "", errors.New("mark definition should have a string type")
		}
		return string(markType.GetStringBytes()), nil
	default:
		return "", errors.Errorf("mark should be a string or an object, got %s", v.Type())
	}
}

func ParseEncoding(v *fastjson.Value) (vegalite.Encoding, error) {
	obj, err := v.Object()
	if err != nil {
		return nil, errors.Wrap(err, "encoding should be an object")
	}

	var encoding vegalite.Encoding
	obj.Visit(func(key []byte, value *fastjson.Value) {
		if err != nil {
			return
		}
		channel, ok := vegalite.ParseChannel(string(key))
		if !ok {
			log.Printf("ignoring unknown channel %s", key)
			return
		}
		if value.Type() != fastjson.TypeObject {
			log.Printf("ignoring %s encoding of type %s", channel, value.Type())
			return
		}

		var fieldDef *vegalite.FieldDef
		fieldDef, err = ParseFieldDef(value)
		if err != nil {
			err = errors.Wrapf(err, "couldn't parse %s encoding", channel)
			return
		}
		if fieldDef == nil {
			return
		}
		encoding = append(encoding, vegalite.ChannelDef{
			Channel:  channel,
			FieldDef: fieldDef,
		})
	})
	if err != nil {
		return nil, err
	}

	return encoding, nil
}

// ParseFieldDef parses a single channel definition. It returns nil for value definitions, which don't reference a field.
func ParseFieldDef(v *fastjson.Value) (*vegalite.FieldDef, error) {
	var fieldDef vegalite.FieldDef

	if aggregate := v.Get("aggregate"); aggregate != nil {
		op, err := vegalite.ParseAggregateOp(string(aggregate.GetStringBytes()))
		if err != nil {
			return nil, err
		}
		fieldDef.Aggregate = op
	}

	field := v.Get("field")
	switch {
	case field != nil:
		if field.Type() != fastjson.TypeString {
			return nil, errors.Errorf("field should be a string, got %s", field.Type())
		}
		fieldDef.Field = string(field.GetStringBytes())
	case fieldDef.Aggregate == vegalite.AggregateCount:
		fieldDef.Field = "*"
	default:
		return nil, nil
	}

	if fieldType := v.Get("type"); fieldType != nil {
		parsed, err := vegalite.ParseFieldType(string(fieldType.GetStringBytes()))
		if err != nil {
			return nil, err
		}
		fieldDef.Type = parsed
	} else if fieldDef.Aggregate == vegalite.AggregateCount {
		fieldDef.Type = vegalite.FieldTypeQuantitative
	} else {
		return nil, errors.Errorf("missing type for field %s", fieldDef.Field)
	}

	if bin := v.Get("bin"); bin != nil {
		fieldDef.Bin = bin.Type() == fastjson.TypeTrue || bin.Type() == fastjson.TypeObject
	}

	if timeUnit := v.Get("timeUnit"); timeUnit != nil {
		fieldDef.TimeUnit = string(timeUnit.GetStringBytes())
	}

	if scale := v.Get("scale"); scale != nil {
		switch scale.Type() {
		case fastjson.TypeNull:
			fieldDef.DisableScale = true
		case fastjson.TypeObject:
			scaleDef := &vegalite.ScaleDef{}
			if scaleType := scale.Get("type"); scaleType != nil {
				parsed, err := vegalite.ParseScaleType(string(scaleType.GetStringBytes()))
				if err != nil {
					return nil, err
				}
				scaleDef.Type = parsed
			}
			fieldDef.Scale = scaleDef
		default:
			return nil, errors.Errorf("scale should be an object or null, got %s", scale.Type())
		}
	}

	return &fieldDef, nil
}

func parseConfig(v *fastjson.Value) (vegalite.Config, error) {
	var config vegalite.Config
	invalidValues := v.Get("invalidValues")
	if invalidValues == nil {
		return config, nil
	}

	switch invalidValues.Type() {
	case fastjson.TypeNull:
		config.InvalidValues = vegalite.InvalidValuesKeep
	case fastjson.TypeString:
		if mode := string(invalidValues.GetStringBytes()); mode != string(vegalite.InvalidValuesFilter) {
			return config, errors.Errorf("invalid invalidValues mode: %s", mode)
		}
		config.InvalidValues = vegalite.InvalidValuesFilter
	default:
		return config, errors.Errorf("invalidValues should be a string or null, got %s", invalidValues.Type())
	}

	return config, nil
}
