package hashmap

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrKeyNotFound          = errors.New("non existent key in hash table")
	ErrInvalidConfiguration = errors.New("invalid hash table configuration")
)

// KeyNotFoundError is returned by Get when the requested key is not in the table.
type KeyNotFoundError[K any] struct {
	// Key is the key that was not found.
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("%v: %v", ErrKeyNotFound, e.Key)
}

func (e *KeyNotFoundError[K]) Unwrap() error {
	return ErrKeyNotFound
}

// ValidateConfiguration returns an error wrapping ErrInvalidConfiguration if the
// capacity is not positive or the load threshold is not in (0, 1].
func ValidateConfiguration(capacity int, loadThreshold float64) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfiguration, capacity)
	}

	// Written this way so that NaN is rejected too.
	if !(loadThreshold > 0 && loadThreshold <= 1) {
		return fmt.Errorf("%w: load threshold must be in (0, 1], got %v", ErrInvalidConfiguration, loadThreshold)
	}

	return nil
}
