package hashmap

import "iter"

const (
	// DefaultCapacity is the number of buckets used by NewDefault.
	DefaultCapacity = 100

	// DefaultLoadThreshold is the load threshold used by NewDefault.
	DefaultLoadThreshold = 0.75
)

// Hashable is the capability a key type must provide to be stored in a Table.
//
// Equal keys must produce equal hashes. Keys are always compared with Equal, never by identity.
type Hashable[K any] interface {
	Hash() uint64
	Equal(K) bool
}

// BaseTable is the associative contract: keys are unique, and a Put of an existing key replaces its value.
type BaseTable[K any, V any] interface {
	// Put adds or replaces the entry for the given key. Put always succeeds.
	Put(K, V)

	// Contains returns true iff an entry with the given key exists.
	Contains(K) bool

	// Get returns the value associated with the given key, or a *KeyNotFoundError if there is none.
	Get(K) (V, error)

	// Range iterates over the table's key/value pairs. If the callback function returns false, iteration stops.
	Range(func(K, V) (contd bool))
}

type Table[K any, V any] interface {
	BaseTable[K, V]

	// Keys returns a sequence over every key currently in the table.
	Keys() iter.Seq[K]

	Len() int
}
