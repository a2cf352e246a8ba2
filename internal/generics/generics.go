// Package generics implements generic data structure functions missing from the stdlib.
package generics

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SortedKeys returns an iterator over the sorted keys of the given map.
//
// It extracts the keys, sort them and then iterate over, so it's convenient but not fast.
func SortedKeys[M interface{ ~map[K]V }, K cmp.Ordered, V any](m M) iter.Seq[K] {
	sortedKeys := slices.Collect(maps.Keys(m))
	slices.Sort(sortedKeys)
	return slices.Values(sortedKeys)
}

// SortedKeysAndValues returns an iterator over keys and values of a map m sorted by the keys.
func SortedKeysAndValues[M interface{ ~map[K]V }, K cmp.Ordered, V any](m M) iter.Seq2[K, V] {
	sortedKeys := slices.Collect(maps.Keys(m))
	slices.Sort(sortedKeys)
	return func(yield func(K, V) bool) {
		for _, key := range sortedKeys {
			if !yield(key, m[key]) {
				break
			}
		}
	}
}

// Set implements a Set for the key type T.
type Set[T comparable] map[T]struct{}

// MakeSet returns an empty Set of the given type. Size is optional, and if given
// will reserve the expected size.
func MakeSet[T comparable](size ...int) Set[T] {
	if len(size) == 0 {
		return make(Set[T])
	}
	return make(Set[T], size[0])
}

// Has returns true if Set s has the given key.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// Insert keys into set.
func (s Set[T]) Insert(keys ...T) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}
