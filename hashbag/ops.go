package hashbag

// Union keeps every element of a and b with the larger of its two counts.
func Union[K comparable](a, b HashBag[K]) HashBag[K] {
	return UnionWith(a, b, Max)
}

// Intersection keeps the elements found in both a and b with the smaller of
// their two counts.
func Intersection[K comparable](a, b HashBag[K]) HashBag[K] {
	return IntersectionWith(a, b, Min)
}

// Sum keeps every element of a and b with its counts added together.
func Sum[K comparable](a, b HashBag[K]) HashBag[K] {
	return UnionWith(a, b, Add)
}

// Minus subtracts the counts in b from those in a. Elements whose count would
// fall to zero or below are dropped, and elements only found in b never
// appear.
func Minus[K comparable](a, b HashBag[K]) HashBag[K] {
	difference := New[K]()

	for key, count := range a {
		if other := Search(b, key); count > other {
			difference[key] = count - other
		}
	}

	return difference
}

// Inclusion reports whether a is a sub-multiset of b: every element of a
// occurs in b at least as many times. An empty a is included in any b.
func Inclusion[K comparable](a, b HashBag[K]) bool {
	for key, count := range a {
		if Search(b, key) < count {
			return false
		}
	}

	return true
}
