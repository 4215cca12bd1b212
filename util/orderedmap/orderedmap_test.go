package orderedmap_test

import (
	"testing"

	om "github.com/justincpresley/esat-wifi/util/orderedmap"
	assert "github.com/stretchr/testify/assert"
)

func TestBasicFeatures(t *testing.T) {
	n := 100
	m := om.New[uint8, int]()

	for i := range n {
		assert.Equal(t, i, m.Len())
		present := m.Set(uint8(i), 2*i)
		assert.Equal(t, i+1, m.Len())
		assert.False(t, present)
	}

	for i := range n {
		value, present := m.Get(uint8(i))
		assert.Equal(t, 2*i, value)
		assert.True(t, present)
		assert.True(t, m.Has(uint8(i)))
	}
	assert.False(t, m.Has(uint8(n)))
}

func TestUpdateKeepsFirstPosition(t *testing.T) {
	m := om.New[string, any]()
	m.Set("foo", "bar")
	m.Set("wk", 28)
	m.Set("po", 100)
	m.Set("bar", "baz")
	present := m.Set("po", 102)
	assert.True(t, present)

	assertOrderedPairsEqual(t, m,
		[]string{"foo", "wk", "po", "bar"},
		[]any{"bar", 28, 102, "baz"})
	assert.Equal(t, []string{"foo", "wk", "po", "bar"}, m.Keys())
}

func TestEmptyMapOperations(t *testing.T) {
	m := om.New[string, any]()

	val, present := m.Get("foo")
	assert.Nil(t, val)
	assert.False(t, present)

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Front())
	assert.Empty(t, m.Keys())
}

func assertOrderedPairsEqual[V any](t *testing.T, m *om.OrderedMap[string, V], expectedKeys []string, expectedValues []V) {
	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), m.Len()) {
		i := 0
		for e := m.Front(); e != nil; e = e.Next() {
			assert.Equal(t, expectedKeys[i], e.Value.Key)
			assert.Equal(t, expectedValues[i], e.Value.Value)
			i++
		}
	}
}
