package dataflow

import (
	"github.com/cube2222/vlcompiler/vegalite"
)

// FieldMap maps field keys to values, iterating in insertion order.
type FieldMap[V any] struct {
	keys   []string
	values map[string]V
}

type ScaleTypeMap = FieldMap[vegalite.ScaleType]

// FieldDefMap may hold nil field defs.
type FieldDefMap = FieldMap[*vegalite.FieldDef]

func NewFieldMap[V any]() *FieldMap[V] {
	return &FieldMap[V]{
		values: make(map[string]V),
	}
}

func NewScaleTypeMap() *ScaleTypeMap {
	return NewFieldMap[vegalite.ScaleType]()
}

func NewFieldDefMap() *FieldDefMap {
	return NewFieldMap[*vegalite.FieldDef]()
}

// Set stores the value. A key which is already present keeps its position.
func (m *FieldMap[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *FieldMap[V]) Get(key string) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

func (m *FieldMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *FieldMap[V]) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i := range m.keys {
		if m.keys[i] == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m *FieldMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *FieldMap[V]) Len() int {
	return len(m.keys)
}

// Copy returns a new map with the same entries. The values themselves aren't copied.
func (m *FieldMap[V]) Copy() *FieldMap[V] {
	out := &FieldMap[V]{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]V, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}
