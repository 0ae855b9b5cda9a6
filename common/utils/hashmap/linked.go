package hashmap

import (
	"iter"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/shopspring/decimal"
)

type entry[K any, V any] struct {
	key   K
	value V
}

// LinkedHashTable is a hash table with separate chaining.
//
// Each bucket is an ordered slice of entries. A key always lives in bucket hash(key) % capacity, so
// lookups only ever scan one bucket. Once a new key brings the size up to floor(capacity * loadThreshold),
// the table grows by that same amount and every entry is relocated to its recomputed bucket.
//
// LinkedHashTable is not safe for concurrent use.
type LinkedHashTable[K Hashable[K], V any] struct {
	buckets       [][]*entry[K, V]
	size          int
	loadThreshold decimal.Decimal
	resizes       int // The number of times the table has grown.

	log logger.Logger
}

// New creates a LinkedHashTable with the given number of buckets.
//
// The load threshold is the fraction of the capacity that, once reached by the size, causes the table to grow.
// New returns an error wrapping ErrInvalidConfiguration if capacity is not positive or if the load threshold
// is not in (0, 1].
func New[K Hashable[K], V any](capacity int, loadThreshold float64) (*LinkedHashTable[K, V], error) {
	if err := ValidateConfiguration(capacity, loadThreshold); err != nil {
		return nil, err
	}

	table := &LinkedHashTable[K, V]{
		buckets:       make([][]*entry[K, V], capacity),
		loadThreshold: decimal.NewFromFloat(loadThreshold),
	}

	config.InitLogger(&table.log, "LinkedHashTable ")

	return table, nil
}

// NewDefault creates a LinkedHashTable with DefaultCapacity buckets and DefaultLoadThreshold.
func NewDefault[K Hashable[K], V any]() *LinkedHashTable[K, V] {
	return Must[K, V](New[K, V](DefaultCapacity, DefaultLoadThreshold))
}

// Must panics if err is non-nil and returns the table otherwise.
func Must[K Hashable[K], V any](table *LinkedHashTable[K, V], err error) *LinkedHashTable[K, V] {
	if err != nil {
		panic(err)
	}

	return table
}

// Put adds a new entry for the key, or replaces the value of the existing entry. Put always succeeds.
//
// Adding a new key may grow the table, which relocates every entry.
func (t *LinkedHashTable[K, V]) Put(key K, value V) {
	idx := t.index(key)
	if i := lookup(key, t.buckets[idx]); i >= 0 {
		t.buckets[idx][i].value = value
		return
	}

	t.buckets[idx] = append(t.buckets[idx], &entry[K, V]{key: key, value: value})
	t.size += 1

	if t.size >= t.threshold() {
		t.resize()
	}
}

// Contains returns true iff an entry with the given key exists.
func (t *LinkedHashTable[K, V]) Contains(key K) bool {
	return lookup(key, t.buckets[t.index(key)]) >= 0
}

// Get returns the value associated with the given key.
//
// If there is no such key, Get returns the zero value and a *KeyNotFoundError wrapping ErrKeyNotFound.
func (t *LinkedHashTable[K, V]) Get(key K) (ret V, err error) {
	bucket := t.buckets[t.index(key)]
	if i := lookup(key, bucket); i >= 0 {
		return bucket[i].value, nil
	}

	return ret, &KeyNotFoundError[K]{Key: key}
}

// Keys returns a sequence over the table's keys in bucket order, then insertion order within a bucket.
//
// Every call returns a fresh sequence that reflects the table at the time it is ranged over.
// The table must not be modified while the sequence is being consumed.
func (t *LinkedHashTable[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, bucket := range t.buckets {
			for _, e := range bucket {
				if !yield(e.key) {
					return
				}
			}
		}
	}
}

// All returns a sequence over the table's key/value pairs in the same order as Keys.
func (t *LinkedHashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range t.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Range calls cb for every key/value pair in the same order as Keys. If cb returns false, iteration stops.
func (t *LinkedHashTable[K, V]) Range(cb func(K, V) bool) {
	for k, v := range t.All() {
		if !cb(k, v) {
			return
		}
	}
}

// Len returns the number of entries in the table.
func (t *LinkedHashTable[K, V]) Len() int {
	return t.size
}

// Capacity returns the current number of buckets.
func (t *LinkedHashTable[K, V]) Capacity() int {
	return len(t.buckets)
}

// LoadThreshold returns the fraction of the capacity at which the table grows.
func (t *LinkedHashTable[K, V]) LoadThreshold() float64 {
	return t.loadThreshold.InexactFloat64()
}

// threshold returns floor(capacity * loadThreshold), but never less than 1.
func (t *LinkedHashTable[K, V]) threshold() int {
	return t.growth(len(t.buckets))
}

func (t *LinkedHashTable[K, V]) growth(capacity int) int {
	n := int(t.loadThreshold.Mul(decimal.NewFromInt(int64(capacity))).Floor().IntPart())
	if n < 1 {
		return 1
	}

	return n
}

// resize grows the table by floor(capacity * loadThreshold) buckets and relocates every entry.
func (t *LinkedHashTable[K, V]) resize() {
	oldCapacity := len(t.buckets)
	newCapacity := oldCapacity + t.growth(oldCapacity)

	buckets := make([][]*entry[K, V], newCapacity)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			idx := e.key.Hash() % uint64(newCapacity)
			buckets[idx] = append(buckets[idx], e)
		}
	}

	t.buckets = buckets
	t.resizes += 1

	t.log.Debug("Resized table from %d to %d bucket(s). Size: %d. Next resize at size %d.",
		oldCapacity, newCapacity, t.size, t.threshold())
}

func (t *LinkedHashTable[K, V]) index(key K) uint64 {
	return key.Hash() % uint64(len(t.buckets))
}

func lookup[K Hashable[K], V any](key K, bucket []*entry[K, V]) int {
	for i, e := range bucket {
		if e.key.Equal(key) {
			return i
		}
	}
	return -1
}
