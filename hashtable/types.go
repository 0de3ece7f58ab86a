package hashtable

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the hash table.
var (
	// ErrKeyNotFound indicates that no live slot holds the requested key.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrNilHasher indicates that New was called without a hash function.
	ErrNilHasher = errors.New("hashtable: hasher is nil")

	// ErrBadCapacity indicates a non-positive initial capacity.
	ErrBadCapacity = errors.New("hashtable: capacity must be at least 1")

	// ErrBadLoadFactor indicates a load factor outside (0, 1).
	ErrBadLoadFactor = errors.New("hashtable: load factor must be in (0, 1)")
)

const (
	// DefaultCapacity is the initial number of slots.
	DefaultCapacity = 16

	// DefaultLoadFactor is the live-entry ratio that triggers a resize.
	DefaultLoadFactor = 0.75
)

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K any] func(key K) uint64

// Options configures a Table.
//
// Capacity   – initial slot count (≥ 1). Default DefaultCapacity.
// LoadFactor – resize threshold in (0, 1). Default DefaultLoadFactor.
type Options struct {
	Capacity   int
	LoadFactor float64
}

// Option is a functional option for New.
type Option func(*Options)

// WithCapacity sets the initial number of slots.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// WithLoadFactor sets the ratio of live entries to capacity above which the
// table grows.
func WithLoadFactor(f float64) Option {
	return func(o *Options) { o.LoadFactor = f }
}

// DefaultOptions returns the defaults used by New before options apply.
func DefaultOptions() Options {
	return Options{
		Capacity:   DefaultCapacity,
		LoadFactor: DefaultLoadFactor,
	}
}

func (o Options) validate() error {
	if o.Capacity < 1 {
		return fmt.Errorf("%w: got %d", ErrBadCapacity, o.Capacity)
	}
	// written this way so NaN fails too
	if !(o.LoadFactor > 0 && o.LoadFactor < 1) {
		return fmt.Errorf("%w: got %v", ErrBadLoadFactor, o.LoadFactor)
	}

	return nil
}

// slotState tags a slot; the zero value is empty.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}
