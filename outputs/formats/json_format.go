package formats

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/valyala/fastjson"

	"github.com/cube2222/vlcompiler/expression"
	"github.com/cube2222/vlcompiler/vega"
)

// WriteJSON writes the data section as {"data": [...]}.
func WriteJSON(w io.Writer, data []*vega.Data) error {
	var arena fastjson.Arena

	arr := arena.NewArray()
	for i := range data {
		arr.SetArrayItem(i, DataToJSON(&arena, data[i]))
	}
	obj := arena.NewObject()
	obj.Set("data", arr)

	buf := MarshalValue(nil, obj)
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

func DataToJSON(arena *fastjson.Arena, data *vega.Data) *fastjson.Value {
	obj := arena.NewObject()
	obj.Set("name", arena.NewString(data.Name))
	if data.Source != "" {
		obj.Set("source", arena.NewString(data.Source))
	}
	if data.URL != "" {
		obj.Set("url", arena.NewString(data.URL))
	}
	if len(data.Values) > 0 {
		values := arena.NewArray()
		for i := range data.Values {
			values.SetArrayItem(i, ValueToJSON(arena, data.Values[i]))
		}
		obj.Set("values", values)
	}
	if len(data.Transform) > 0 {
		obj.Set("transform", TransformsToJSON(arena, data.Transform))
	}
	return obj
}

// TransformsToJSON keeps empty placeholders as nulls.
func TransformsToJSON(arena *fastjson.Arena, transforms []*vega.Transform) *fastjson.Value {
	arr := arena.NewArray()
	for i, transform := range transforms {
		if transform == nil {
			arr.SetArrayItem(i, arena.NewNull())
			continue
		}
		obj := arena.NewObject()
		obj.Set("type", arena.NewString(string(transform.Type)))
		obj.Set("expr", arena.NewString(transform.Expr))
		arr.SetArrayItem(i, obj)
	}
	return arr
}

// ValueToJSON converts plain Go values, as produced by decoding json, back to json. Object keys are sorted.
func ValueToJSON(arena *fastjson.Arena, value interface{}) *fastjson.Value {
	switch value := value.(type) {
	case nil:
		return arena.NewNull()
	case bool:
		if value {
			return arena.NewTrue()
		}
		return arena.NewFalse()
	case float64:
		return arena.NewNumberFloat64(value)
	case int:
		return arena.NewNumberInt(value)
	case string:
		return arena.NewString(value)
	case []interface{}:
		arr := arena.NewArray()
		for i := range value {
			arr.SetArrayItem(i, ValueToJSON(arena, value[i]))
		}
		return arr
	case map[string]interface{}:
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := arena.NewObject()
		for _, k := range keys {
			obj.Set(k, ValueToJSON(arena, value[k]))
		}
		return obj
	default:
		log.Printf("Invalid value of type %T to print. Using its string representation.", value)
		return arena.NewString(fmt.Sprint(value))
	}
}

// MarshalValue appends the json encoding of v to dst.
// fastjson's own marshalling quotes strings with control characters Go-style, which isn't valid json,
// so strings and object keys are encoded here.
func MarshalValue(dst []byte, v *fastjson.Value) []byte {
	switch v.Type() {
	case fastjson.TypeObject:
		dst = append(dst, '{')
		first := true
		v.GetObject().Visit(func(key []byte, value *fastjson.Value) {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			dst = append(dst, expression.StringValue(string(key))...)
			dst = append(dst, ':')
			dst = MarshalValue(dst, value)
		})
		return append(dst, '}')
	case fastjson.TypeArray:
		dst = append(dst, '[')
		for i, item := range v.GetArray() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = MarshalValue(dst, item)
		}
		return append(dst, ']')
	case fastjson.TypeString:
		return append(dst, expression.StringValue(string(v.GetStringBytes()))...)
	default:
		return v.MarshalTo(dst)
	}
}
