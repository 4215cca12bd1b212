package orderedmap

import (
	list "github.com/bahlo/generic-list-go"
)

// OrderedMap iterates in insertion order. Updating a key keeps the
// position of its first insertion.
type OrderedMap[K comparable, V any] struct {
	kv map[K]*list.Element[Pair[K, V]]
	ll *list.List[Pair[K, V]]
}

func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		kv: make(map[K]*list.Element[Pair[K, V]]),
		ll: list.New[Pair[K, V]](),
	}
}

func (om *OrderedMap[K, V]) Len() int                         { return len(om.kv) }
func (om *OrderedMap[K, V]) Front() *list.Element[Pair[K, V]] { return om.ll.Front() }

func (om *OrderedMap[K, V]) Get(key K) (val V, ok bool) {
	e, ok := om.kv[key]
	if ok {
		val = e.Value.Value
	}
	return
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, ok := om.kv[key]
	return ok
}

// Set stores the value and reports whether the key was already present.
func (om *OrderedMap[K, V]) Set(key K, value V) bool {
	e, ok := om.kv[key]
	if ok {
		e.Value.Value = value
		return true
	}
	om.kv[key] = om.ll.PushBack(Pair[K, V]{Key: key, Value: value})
	return false
}

func (om *OrderedMap[K, V]) Keys() []K {
	ret := make([]K, 0, len(om.kv))
	for e := om.Front(); e != nil; e = e.Next() {
		ret = append(ret, e.Value.Key)
	}
	return ret
}
