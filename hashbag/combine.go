package hashbag

import (
	"maps"
	"math"
)

// Combinator merges the counts an element has in two bags. An element whose
// combined count is 0 is left out of the resulting bag.
type Combinator func(x, y uint32) uint32

func Max(x, y uint32) uint32 {
	return max(x, y)
}

func Min(x, y uint32) uint32 {
	return min(x, y)
}

// Add sums two counts, saturating at math.MaxUint32 instead of wrapping.
func Add(x, y uint32) uint32 {
	if x > math.MaxUint32-y {
		return math.MaxUint32
	}

	return x + y
}

// IntersectionWith builds a bag of the elements present in both a and b, each
// mapped to fn(count in b, count in a). The argument order only matters for a
// non-commutative fn. Elements for which fn returns 0 are left out.
func IntersectionWith[K comparable](a, b HashBag[K], fn Combinator) HashBag[K] {
	intersection := New[K]()

	for key, countB := range b {
		countA, ok := a[key]
		if !ok {
			continue
		}

		if count := fn(countB, countA); count > 0 {
			intersection[key] = count
		}
	}

	return intersection
}

// UnionWith builds a bag of the elements present in either a or b. Elements
// found in only one bag keep their count; shared elements take the value
// IntersectionWith gives them, and are left out when that value is 0.
func UnionWith[K comparable](a, b HashBag[K], fn Combinator) HashBag[K] {
	union := make(HashBag[K], max(len(a), len(b)))

	maps.Copy(union, b)
	maps.Copy(union, a)

	for key, countB := range b {
		countA, ok := a[key]
		if !ok {
			continue
		}

		if count := fn(countB, countA); count > 0 {
			union[key] = count
		} else {
			delete(union, key)
		}
	}

	return union
}
