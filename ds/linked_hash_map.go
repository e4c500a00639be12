package ds

import (
	"bytes"
	"encoding/json"
)

// LinkedHashMap is a map that keeps keys in insertion order.
type LinkedHashMap[K comparable, V any] struct {
	hashMap map[K]V
	keys    []K
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap: map[K]V{},
		keys:    []K{},
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return len(r.keys)
}

// Keys returns a copy of the keys in insertion order.
func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Values returns the values in key insertion order.
func (r *LinkedHashMap[K, V]) Values() []V {
	values := make([]V, 0, len(r.keys))
	for _, key := range r.keys {
		values = append(values, r.hashMap[key])
	}
	return values
}

// Put keeps the original position of a key that is already present.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.hashMap[key]; !existed {
		r.keys = append(r.keys, key)
	}
	r.hashMap[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0))

	buf.WriteRune('{')
	for i, key := range r.keys {
		keyBs, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		// non-string keys are quoted so the output stays a valid object
		if len(keyBs) == 0 || keyBs[0] != '"' {
			keyBs, err = json.Marshal(string(keyBs))
			if err != nil {
				return nil, err
			}
		}
		buf.Write(keyBs)
		buf.WriteRune(':')

		valueBs, err := json.Marshal(r.hashMap[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)

		if i != len(r.keys)-1 {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')

	return buf.Bytes(), nil
}
