package hashbag

import mapset "github.com/deckarep/golang-set/v2"

// Support returns the set of distinct elements in the bag. The set is the
// thread-safe kind built by mapset.NewSet, so it combines with other sets
// from that constructor.
func Support[K comparable](bag HashBag[K]) mapset.Set[K] {
	set := mapset.NewSet[K]()

	for key := range bag {
		set.Add(key)
	}

	return set
}

// FromSet lifts a set into a bag holding each member once.
func FromSet[K comparable](set mapset.Set[K]) HashBag[K] {
	bag := make(HashBag[K], set.Cardinality())

	set.Each(func(key K) bool {
		bag[key] = 1
		return false
	})

	return bag
}
