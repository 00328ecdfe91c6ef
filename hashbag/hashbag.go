// Package hashbag implements a generic multiset (bag): a map from element to
// a strictly positive occurrence count.
//
// Insert, InsertN, Remove and RemoveAll mutate the bag they are given and
// return it for chaining. Every other operation only reads its arguments and,
// where it produces a bag, returns a newly allocated one. A nil HashBag reads
// as an empty bag. Nothing here is safe for concurrent mutation.
package hashbag

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/go-errors/errors"

	e "github.com/STBoyden/go-multiset/error"
)

// HashBag maps each element to its occurrence count. A stored count is never
// zero.
type HashBag[K comparable] map[K]uint32

func New[K comparable]() HashBag[K] {
	return make(map[K]uint32)
}

// Of returns a bag holding one occurrence for every argument, so repeated
// arguments accumulate.
func Of[K comparable](elems ...K) HashBag[K] {
	bag := make(HashBag[K], len(elems))

	for _, elem := range elems {
		bag[elem]++
	}

	return bag
}

// FromMap copies an existing element to count mapping into a new bag. A zero
// count cannot be represented and is reported as a ZeroCountError.
func FromMap[K comparable](m map[K]uint32) (HashBag[K], error) {
	bag := make(HashBag[K], len(m))

	for key, count := range m {
		if count == 0 {
			return nil, errors.Wrap(e.New(e.ZeroCountError, fmt.Sprintf("element %v", key)), 0)
		}

		bag[key] = count
	}

	return bag, nil
}

func Has[K comparable](bag HashBag[K], key K) bool {
	_, ok := bag[key]
	return ok
}

// Search returns the number of occurrences of key, 0 when it is absent.
func Search[K comparable](bag HashBag[K], key K) uint32 {
	return bag[key]
}

func Insert[K comparable](bag HashBag[K], key K) HashBag[K] {
	return InsertN(bag, key, 1)
}

// InsertN adds n occurrences of key. The count saturates at math.MaxUint32.
func InsertN[K comparable](bag HashBag[K], key K, n uint32) HashBag[K] {
	if n == 0 {
		return bag
	}

	bag[key] = Add(bag[key], n)

	return bag
}

// Remove drops a single occurrence of key, deleting the entry once its count
// reaches zero. Removing an absent key does nothing.
func Remove[K comparable](bag HashBag[K], key K) HashBag[K] {
	if bag[key] > 1 {
		bag[key]--
		return bag
	}

	delete(bag, key)

	return bag
}

func RemoveAll[K comparable](bag HashBag[K], key K) HashBag[K] {
	delete(bag, key)
	return bag
}

// Size is the total number of occurrences held by the bag.
func Size[K comparable](bag HashBag[K]) uint64 {
	var size uint64

	for _, count := range bag {
		size += uint64(count)
	}

	return size
}

// Len is the number of distinct elements held by the bag.
func Len[K comparable](bag HashBag[K]) int {
	return len(bag)
}

func Clone[K comparable](bag HashBag[K]) HashBag[K] {
	if bag == nil {
		return New[K]()
	}

	return maps.Clone(bag)
}

// Equal reports whether both bags hold the same elements with the same
// counts. A nil bag equals an empty one.
func Equal[K comparable](a, b HashBag[K]) bool {
	return maps.Equal(a, b)
}

// All yields every element with its count, in no particular order.
func All[K comparable](bag HashBag[K]) iter.Seq2[K, uint32] {
	return maps.All(bag)
}

// Elements yields each element as many times as it occurs.
func Elements[K comparable](bag HashBag[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for key, count := range bag {
			for range count {
				if !yield(key) {
					return
				}
			}
		}
	}
}

// String formats the bag as hashbag[elem:count ...] with elements in fmt's
// sorted map order.
func (bag HashBag[K]) String() string {
	return "hashbag" + strings.TrimPrefix(fmt.Sprint(map[K]uint32(bag)), "map")
}
