package generics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"wet": 3, "default": 0, "full": 2}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []string{"default", "full", "wet"}
	for range 100 {
		got := slices.Collect(SortedKeys(m))
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSortedKeysAndValues(t *testing.T) {
	m := map[int]string{15: "8 bees", 2: "1 bee", 7: "1 bee"}
	var keys []int
	var values []string
	for range 100 {
		keys, values = keys[:0], values[:0]
		for k, v := range SortedKeysAndValues(m) {
			keys = append(keys, k)
			values = append(values, v)
		}
		assert.Equal(t, []int{2, 7, 15}, keys)
		assert.Equal(t, []string{"1 bee", "1 bee", "8 bees"}, values)
	}

	// Breaking out of the loop early.
	for k := range SortedKeysAndValues(m) {
		assert.Equal(t, 2, k)
		break
	}
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	// Inserting twice doesn't change the set.
	s.Insert(3)
	assert.Len(t, s, 2)

	// Pointer keys: identity, not contents.
	type unit struct{ armor int }
	u1, u2 := &unit{1}, &unit{1}
	s3 := MakeSet[*unit]()
	s3.Insert(u1)
	assert.True(t, s3.Has(u1))
	assert.False(t, s3.Has(u2))
}
