package probetab

import "errors"

const (
	slotEmpty uint8 = 0x00
	slotFull  uint8 = 0x01

	// DefaultCapacity is used when New is given a non-positive capacity.
	DefaultCapacity = 1000

	maxLoadFactor = 0.7
)

// ErrTableFull means a probe wrapped all the way around without finding a
// free slot. The load-factor bound makes this unreachable; seeing it is a
// logic defect in the table itself, not a condition callers can recover from.
var ErrTableFull = errors.New("probetab: table full despite load factor bound")

// Item is one occupied slot.
type Item struct {
	Key   string
	Value int
}

// CounterTable is an open-addressing counter mapping text keys to
// non-negative integer values. Collisions resolve by linear probing and the
// table doubles its capacity whenever an insert would push occupancy past
// 70%, rehashing every live entry against the new capacity.
//
// The table is not safe for concurrent use; callers must serialize access.
// There is no delete, so occupied slots never turn back into empty ones and
// probe chains stay intact without tombstones.
type CounterTable struct {
	// One control byte per slot next to parallel key/value slices.
	// The control byte rather than a "" key marks a slot empty, so the
	// empty string stays a valid key.
	ctrls  []uint8
	keys   []string
	values []int

	capacity int
	occupied int

	hashFunc HashFunc
}

type Option func(t *CounterTable)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(t *CounterTable) {
		t.hashFunc = f
	}
}

// Returns a new table with the given initial slot count.
func New(capacity int, opts ...Option) *CounterTable {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	t := &CounterTable{
		ctrls:    make([]uint8, capacity),
		keys:     make([]string, capacity),
		values:   make([]int, capacity),
		capacity: capacity,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = PolyHash
	}

	return t
}

// Put associates value with key, overwriting any prior value. Updates of an
// existing key never resize; a new key resizes first when it would push the
// load factor past the bound, since growing moves every home index.
func (t *CounterTable) Put(key string, value int) error {
	if idx, ok := t.lookup(key); ok {
		t.values[idx] = value
		return nil
	}

	if float64(t.occupied+1) > maxLoadFactor*float64(t.capacity) {
		if err := t.resize(); err != nil {
			return err
		}
	}

	return t.insert(key, value)
}

// Get returns the value stored for key, or 0 if the key is absent.
// Absence is a normal outcome, not an error.
func (t *CounterTable) Get(key string) int {
	if idx, ok := t.lookup(key); ok {
		return t.values[idx]
	}

	return 0
}

// Increment adds 1 to the count for key, creating it at 1 if absent.
func (t *CounterTable) Increment(key string) error {
	return t.Put(key, t.Get(key)+1)
}

// Items returns one (key, value) pair per occupied slot, in slot order.
// An empty table yields an empty slice.
func (t *CounterTable) Items() []Item {
	items := make([]Item, 0, t.occupied)

	for i, c := range t.ctrls {
		if c != slotFull {
			continue
		}

		items = append(items, Item{Key: t.keys[i], Value: t.values[i]})
	}

	return items
}

// lookup walks the probe chain from key's home index until it finds the key
// or hits an empty slot. Read-only; never triggers a resize.
func (t *CounterTable) lookup(key string) (int, bool) {
	home := t.hashFunc(key, t.capacity)

	idx := home
	for t.ctrls[idx] == slotFull {
		if t.keys[idx] == key {
			return idx, true
		}

		idx = (idx + 1) % t.capacity
		if idx == home {
			break
		}
	}

	return 0, false
}

// insert claims the first free slot on key's probe chain. Callers guarantee
// the key is absent: Put looks it up first, resize reinserts distinct keys.
// It does not check the load factor; resize relies on that to reinsert
// without cascading.
func (t *CounterTable) insert(key string, value int) error {
	home := t.hashFunc(key, t.capacity)

	idx := home
	for t.ctrls[idx] == slotFull {
		idx = (idx + 1) % t.capacity
		if idx == home {
			return ErrTableFull
		}
	}

	t.ctrls[idx] = slotFull
	t.keys[idx] = key
	t.values[idx] = value
	t.occupied++

	return nil
}

// resize doubles the capacity and reinserts every live entry. Each key's
// home index is recomputed against the new capacity; the old hash targets
// are meaningless once the modulus changes.
func (t *CounterTable) resize() error {
	var (
		oldCtrls  = t.ctrls
		oldKeys   = t.keys
		oldValues = t.values
	)

	t.capacity *= 2
	t.ctrls = make([]uint8, t.capacity)
	t.keys = make([]string, t.capacity)
	t.values = make([]int, t.capacity)
	t.occupied = 0

	for i, c := range oldCtrls {
		if c != slotFull {
			continue
		}

		if err := t.insert(oldKeys[i], oldValues[i]); err != nil {
			return err
		}
	}

	return nil
}
