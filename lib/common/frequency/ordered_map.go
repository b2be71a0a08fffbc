package frequency

import (
	"cmp"

	"github.com/emirpasic/gods/v2/maps/treemap"
)

// OrderedMap is a typed ordered map. Traversal follows cmp.Compare on the
// key, which for strings is byte-lexicographic order.
type OrderedMap[K cmp.Ordered, V any] struct {
	tree *treemap.Map[K, V]
}

func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		tree: treemap.New[K, V](),
	}
}

// FindOrInsert returns the value stored under key, or stores and returns the
// value built by create. The boolean is true when create was called.
func (r *OrderedMap[K, V]) FindOrInsert(key K, create func() V) (V, bool) {
	if value, found := r.tree.Get(key); found {
		return value, false
	}
	value := create()
	r.tree.Put(key, value)
	return value, true
}

// ForEachInOrder visits every pair in increasing key order and stops at the
// first error returned by visit.
func (r *OrderedMap[K, V]) ForEachInOrder(visit func(key K, value V) error) error {
	it := r.tree.Iterator()
	for it.Next() {
		if err := visit(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderedMap[K, V]) Len() int {
	return r.tree.Size()
}

func (r *OrderedMap[K, V]) Clear() {
	r.tree.Clear()
}
