package hashtable

import "fmt"

// Table is an open-addressing hash table from K to V.
// Construct with New; the zero value is not usable.
type Table[K comparable, V any] struct {
	slots      []slot[K, V]
	count      int
	hash       Hasher[K]
	loadFactor float64
}

// New returns an empty table that hashes keys with hash.
//
// Errors:
//   - ErrNilHasher if hash is nil.
//   - ErrBadCapacity, ErrBadLoadFactor for invalid options.
func New[K comparable, V any](hash Hasher[K], opts ...Option) (*Table[K, V], error) {
	if hash == nil {
		return nil, ErrNilHasher
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Table[K, V]{
		slots:      make([]slot[K, V], cfg.Capacity),
		hash:       hash,
		loadFactor: cfg.LoadFactor,
	}, nil
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int { return t.count }

// Cap returns the current number of slots.
func (t *Table[K, V]) Cap() int { return len(t.slots) }

// IsEmpty reports whether the table holds no live entries.
func (t *Table[K, V]) IsEmpty() bool { return t.count == 0 }

// LoadFactor returns Len()/Cap().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.slots))
}

// home returns the first slot of key's probe sequence.
func (t *Table[K, V]) home(key K) int {
	return int(t.hash(key) % uint64(len(t.slots)))
}

// Insert associates value with key. An existing live entry for key is
// overwritten in place; otherwise the entry takes the first tombstone on
// the probe path, or the empty slot that ends it.
//
// Complexity: O(1) amortized; O(n) when the insertion triggers a resize.
func (t *Table[K, V]) Insert(key K, value V) {
	for float64(t.count+1) > float64(len(t.slots))*t.loadFactor {
		t.resize(2 * len(t.slots))
	}

	capacity := len(t.slots)
	idx := t.home(key)
	reuse := -1
probe:
	for i := 0; i < capacity; i++ {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			if reuse < 0 {
				reuse = idx
			}
			break probe
		case slotTombstone:
			if reuse < 0 {
				reuse = idx
			}
		case slotOccupied:
			if s.key == key {
				s.value = value
				return
			}
		}
		idx = (idx + 1) % capacity
	}

	// reuse >= 0 holds: count+1 <= capacity*loadFactor < capacity leaves a free slot
	t.slots[reuse] = slot[K, V]{state: slotOccupied, key: key, value: value}
	t.count++
}

// resize reallocates storage with the given capacity and re-inserts every
// live entry in storage order. Tombstones are dropped.
func (t *Table[K, V]) resize(capacity int) {
	old := t.slots
	t.slots = make([]slot[K, V], capacity)
	t.count = 0
	for i := range old {
		if old[i].state == slotOccupied {
			t.Insert(old[i].key, old[i].value)
		}
	}
}

// find returns the index of key's live slot, or -1.
func (t *Table[K, V]) find(key K) int {
	capacity := len(t.slots)
	idx := t.home(key)
	for i := 0; i < capacity; i++ {
		s := &t.slots[idx]
		if s.state == slotEmpty {
			return -1
		}
		if s.state == slotOccupied && s.key == key {
			return idx
		}
		idx = (idx + 1) % capacity
	}

	return -1
}

// Get returns the value stored for key, or an error wrapping ErrKeyNotFound.
func (t *Table[K, V]) Get(key K) (V, error) {
	idx := t.find(key)
	if idx < 0 {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return t.slots[idx].value, nil
}

// Lookup returns the value stored for key and whether it was present.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	idx := t.find(key)
	if idx < 0 {
		var zero V
		return zero, false
	}

	return t.slots[idx].value, true
}

// Contains reports whether key has a live entry.
func (t *Table[K, V]) Contains(key K) bool { return t.find(key) >= 0 }

// Update replaces the value of an existing entry. It never inserts.
func (t *Table[K, V]) Update(key K, value V) error {
	idx := t.find(key)
	if idx < 0 {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	t.slots[idx].value = value

	return nil
}

// Delete turns key's slot into a tombstone.
func (t *Table[K, V]) Delete(key K) error {
	idx := t.find(key)
	if idx < 0 {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	var zero slot[K, V]
	zero.state = slotTombstone
	t.slots[idx] = zero
	t.count--

	return nil
}

// Range calls fn for every live entry in storage order until fn returns
// false. fn must not mutate the table.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}
		if !fn(t.slots[i].key, t.slots[i].value) {
			return
		}
	}
}
