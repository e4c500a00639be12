package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.Equal(t, 0, lhm.Len())
	assert.Empty(t, lhm.Keys())

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("a", 3)

	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
	assert.Equal(t, []int{3, 2}, lhm.Values())
	assert.Equal(t, 2, lhm.Len())
}

func TestLinkedHashMap_Get(t *testing.T) {
	lhm := NewLinkedHashMap[uint32, string]()
	lhm.Put(7, "seven")

	value, ok := lhm.Get(7)
	assert.True(t, ok)
	assert.Equal(t, "seven", value)

	_, ok = lhm.Get(8)
	assert.False(t, ok)
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("def", 2)
	lhm.Put("abc", 1)

	bs, err := lhm.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"def":2,"abc":1}`, string(bs))
}

func TestLinkedHashMap_MarshalJSON_NumberKeys(t *testing.T) {
	lhm := NewLinkedHashMap[int, bool]()
	lhm.Put(2, true)
	lhm.Put(1, false)

	bs, err := lhm.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"2":true,"1":false}`, string(bs))
}
