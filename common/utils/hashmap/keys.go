package hashmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

var (
	_ Table[String, any] = (*LinkedHashTable[String, any])(nil)
	_ Table[Int, any]    = (*LinkedHashTable[Int, any])(nil)
	_ Table[UUID, any]   = (*LinkedHashTable[UUID, any])(nil)
)

// String is a string key.
type String string

func (s String) Hash() uint64 {
	return xxhash.Sum64String(string(s))
}

func (s String) Equal(other String) bool {
	return s == other
}

func (s String) String() string {
	return string(s)
}

// Int is an integer key.
type Int int64

func (i Int) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(i))
	return xxhash.Sum64(buf[:])
}

func (i Int) Equal(other Int) bool {
	return i == other
}

// UUID is a key wrapping a uuid.UUID.
type UUID uuid.UUID

// NewUUID returns a random (version 4) UUID key.
func NewUUID() UUID {
	return UUID(uuid.New())
}

func (u UUID) Hash() uint64 {
	return xxhash.Sum64(u[:])
}

func (u UUID) Equal(other UUID) bool {
	return u == other
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}
