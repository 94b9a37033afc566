package samplableset

// entry is a single (element, weight) pair stored inside one group's dense
// array. Position within the array is the entry's handle until it moves
// (swap-remove relocates the last entry into a vacated slot).
type entry[E comparable] struct {
	element E
	weight  float64
}

// Pair is the external, ordered (element, weight) shape used by FromPairs
// and returned by Sample/SampleN/Iterator.
type Pair[E comparable] struct {
	Element E
	Weight  float64
}

// config holds construction-time options assembled by the functional
// Option values in options.go: a plain struct mutated by
// closures, with no exported fields beyond what a caller legitimately
// tunes.
type config[E comparable] struct {
	seed    uint64
	hasSeed bool
	log     logger
	hasher  Hasher[E]
}

func defaultConfig[E comparable]() config[E] {
	return config[E]{
		seed:    defaultSeed,
		hasSeed: false,
		log:     nopLogger{},
		hasher:  nil,
	}
}
