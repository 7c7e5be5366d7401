package parser

import (
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/cube2222/vlcompiler/vegalite"
)

func ParseData(v *fastjson.Value) (vegalite.DataSpec, error) {
	var out vegalite.DataSpec
	if v.Type() != fastjson.TypeObject {
		return out, errors.Errorf("data should be an object, got %s", v.Type())
	}

	out.Name = string(v.GetStringBytes("name"))
	out.URL = string(v.GetStringBytes("url"))

	if values := v.Get("values"); values != nil {
		records, err := ParseRecords(values)
		if err != nil {
			return out, errors.Wrap(err, "couldn't parse inline values")
		}
		out.Values = records
	}

	return out, nil
}

// ParseRecords converts a json array of objects into records.
func ParseRecords(v *fastjson.Value) ([]map[string]interface{}, error) {
	arr, err := v.Array()
	if err != nil {
		return nil, errors.Wrap(err, "records should be an array")
	}

	out := make([]map[string]interface{}, len(arr))
	for i := range arr {
		if arr[i].Type() != fastjson.TypeObject {
			return nil, errors.Errorf("record with index %d should be an object, got %s", i, arr[i].Type())
		}
		out[i] = GoValue(arr[i]).(map[string]interface{})
	}

	return out, nil
}

// GoValue converts a json value into its plain Go counterpart: float64, string, bool, nil, []interface{} or map[string]interface{}.
func GoValue(v *fastjson.Value) interface{} {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeArray:
		arr := v.GetArray()
		out := make([]interface{}, len(arr))
		for i := range arr {
			out[i] = GoValue(arr[i])
		}
		return out
	case fastjson.TypeObject:
		out := make(map[string]interface{})
		v.GetObject().Visit(func(key []byte, value *fastjson.Value) {
			out[string(key)] = GoValue(value)
		})
		return out
	default:
		return nil
	}
}
