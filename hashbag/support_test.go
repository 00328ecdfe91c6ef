package hashbag_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"

	h "github.com/STBoyden/go-multiset/hashbag"
)

func TestSupport(t *testing.T) {
	set := h.Support(strBag{"a": 3, "b": 1})

	assert.True(t, set.Equal(mapset.NewSet("a", "b")))
	assert.Equal(t, 0, h.Support(h.New[string]()).Cardinality())
}

func TestFromThreadUnsafeSet(t *testing.T) {
	bag := h.FromSet(mapset.NewThreadUnsafeSet("a", "b"))

	assert.Equal(t, strBag{"a": 1, "b": 1}, bag)
}

func TestSupportCombinesWithSets(t *testing.T) {
	support := h.Support(h.Of("a", "b"))

	assert.NotPanics(t, func() {
		union := support.Union(mapset.NewSet("c"))
		assert.True(t, union.Equal(mapset.NewSet("a", "b", "c")))
	})
	assert.NotPanics(t, func() {
		assert.True(t, support.IsSubset(mapset.NewSet("a", "b", "c")))
	})
}

func TestFromSet(t *testing.T) {
	bag := h.FromSet(mapset.NewSet("a", "b"))

	assert.Equal(t, strBag{"a": 1, "b": 1}, bag)
	assert.Equal(t, strBag{}, h.FromSet(mapset.NewSet[string]()))
}

func TestSupportRoundTrip(t *testing.T) {
	bag := strBag{"a": 3, "b": 1}

	assert.True(t, h.Inclusion(h.FromSet(h.Support(bag)), bag))
}
