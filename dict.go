package dict

import (
	"errors"
	"fmt"
)

const (
	// DefaultInitialCapacity is the bucket count a table starts with unless
	// construction requests otherwise.
	DefaultInitialCapacity = 8

	// DefaultLoadFactor is the size/capacity ratio at which the table grows.
	DefaultLoadFactor = 2.0 / 3.0
)

var (
	// ErrKeyNotFound is reported by Get and Delete for a key that is not in
	// the table.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidKey is reported by NewWith when an initial key is outside the
	// hashable key space.
	ErrInvalidKey = errors.New("key is not hashable")
)

// Entry is one stored key-value pair together with the hash the key had when
// it was placed. The cached hash is diagnostic; key comparison always uses
// interface equality, which distinguishes equal values of different types.
type Entry struct {
	Key   any
	Value any
	Hash  uint64
}

// Dict is a hash table over heterogeneous comparable keys. The zero value is
// not usable; construct with New or NewWith. Not safe for concurrent use.
type Dict struct {
	buckets    [][]Entry
	size       int
	capacity   int
	loadFactor float64
}

// New returns an empty table with DefaultInitialCapacity buckets and
// DefaultLoadFactor.
func New() *Dict {
	d, _ := NewWith(DefaultInitialCapacity, DefaultLoadFactor, nil)
	return d
}

// NewWith returns a table with the given geometry, pre-populated from
// entries. All keys are validated before any are placed; an unhashable key
// fails with ErrInvalidKey. Capacity is sized once for the whole batch by the
// growth search seeded from initialCapacity, so no per-entry resize checks
// run during population.
func NewWith(initialCapacity int, loadFactor float64, entries map[any]any) (*Dict, error) {
	if initialCapacity < 1 {
		return nil, fmt.Errorf("initial capacity must be positive, got %d", initialCapacity)
	}
	if loadFactor <= 0 || loadFactor >= 1 {
		return nil, fmt.Errorf("load factor must be in (0, 1), got %v", loadFactor)
	}
	for key := range entries {
		if _, ok := hashKey(key); !ok {
			return nil, fmt.Errorf("key %v (%T): %w", key, key, ErrInvalidKey)
		}
	}

	d := &Dict{
		size:       len(entries),
		capacity:   growTarget(initialCapacity, len(entries), loadFactor),
		loadFactor: loadFactor,
	}
	d.buckets = make([][]Entry, d.capacity)
	for key, value := range entries {
		h, _ := hashKey(key)
		d.place(d.placementIndex(key, h), key, value, h)
	}
	return d, nil
}

// Set inserts a key-value pair, overwriting the value and cached hash of an
// existing equal key of the same type. The growth check runs before
// placement, against the speculatively incremented size. Set panics if the
// key is outside the hashable key space, like the builtin map.
func (d *Dict) Set(key, value any) {
	h := mustHash(key)
	d.size++
	if float64(d.size)/float64(d.capacity) >= d.loadFactor {
		d.resize(growTarget(d.capacity, d.size, d.loadFactor))
	}
	if !d.place(d.placementIndex(key, h), key, value, h) {
		// Overwrote an existing key: no entry was added.
		d.size--
	}
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (d *Dict) Get(key any) (any, error) {
	h, ok := hashKey(key)
	if ok {
		if idx, err := d.bucketIndex(key, h); err == nil {
			for i := range d.buckets[idx] {
				if d.buckets[idx][i].Key == key {
					return d.buckets[idx][i].Value, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("get %v: %w", key, ErrKeyNotFound)
}

// Delete removes the entry stored for key, halving capacity when occupancy
// drops below a quarter. Reports ErrKeyNotFound for an absent key.
func (d *Dict) Delete(key any) error {
	h, ok := hashKey(key)
	if ok {
		if idx, err := d.bucketIndex(key, h); err == nil {
			b := d.buckets[idx]
			for i := range b {
				if b[i].Key != key {
					continue
				}
				copy(b[i:], b[i+1:])
				b[len(b)-1] = Entry{}
				d.buckets[idx] = b[:len(b)-1]
				d.size--
				if d.size < d.capacity/4 {
					d.resize(shrinkTarget(d.capacity, d.size, d.loadFactor))
				}
				return nil
			}
		}
	}
	return fmt.Errorf("delete %v: %w", key, ErrKeyNotFound)
}

// Contains reports whether key is in the table. It never mutates the table
// and never surfaces a lookup failure.
func (d *Dict) Contains(key any) bool {
	_, err := d.Get(key)
	return err == nil
}

// Len returns the number of live entries.
func (d *Dict) Len() int { return d.size }

// Cap returns the current bucket count.
func (d *Dict) Cap() int { return d.capacity }

// Range calls fn for every key-value pair, visiting buckets in index order
// and entries within a bucket in storage order. Traversal stops when fn
// returns false. Each call walks the state current at call time; mutating the
// table during Range is undefined.
func (d *Dict) Range(fn func(key, value any) bool) {
	for _, b := range d.buckets {
		for i := range b {
			if !fn(b[i].Key, b[i].Value) {
				return
			}
		}
	}
}

// Buckets returns a copy of the raw bucket contents for inspection. The
// outer index is the bucket index; entries keep their storage order.
func (d *Dict) Buckets() [][]Entry {
	out := make([][]Entry, len(d.buckets))
	for i, b := range d.buckets {
		if len(b) > 0 {
			out[i] = append([]Entry(nil), b...)
		}
	}
	return out
}

// bucketIndex probes for a key's home bucket starting at hash mod capacity.
// A non-empty bucket whose entries all fail to match spills the probe to the
// next index; an empty bucket ends the probe and its index is where a new
// entry for this key belongs. Wrapping back to the start means the key is
// absent and the table has no bucket to offer.
func (d *Dict) bucketIndex(key any, h uint64) (int, error) {
	start := int(h % uint64(d.capacity))
	idx := start
	for len(d.buckets[idx]) > 0 {
		for i := range d.buckets[idx] {
			if d.buckets[idx][i].Key == key {
				return idx, nil
			}
		}
		idx = (idx + 1) % d.capacity
		if idx == start {
			return 0, ErrKeyNotFound
		}
	}
	return idx, nil
}

// placementIndex resolves the bucket a key should occupy. The growth check
// preceding every placement keeps at least one bucket empty, so the probe
// cannot wrap; if it ever does, grow and retry rather than corrupt the table.
func (d *Dict) placementIndex(key any, h uint64) int {
	for {
		idx, err := d.bucketIndex(key, h)
		if err == nil {
			return idx
		}
		d.resize(growTarget(d.capacity, d.size, d.loadFactor))
	}
}

// place overwrites a matching entry in bucket idx or appends a new one.
// Reports whether an entry was appended.
func (d *Dict) place(idx int, key, value any, h uint64) bool {
	b := d.buckets[idx]
	for i := range b {
		if b[i].Key == key {
			b[i] = Entry{Key: key, Value: value, Hash: h}
			return false
		}
	}
	d.buckets[idx] = append(b, Entry{Key: key, Value: value, Hash: h})
	return true
}

// resize rehashes every entry into a fresh bucket array. Hashes are
// recomputed and entries appended straight to hash mod newCapacity in
// encounter order; probing happens only at lookup and placement time, so a
// same-capacity rehash still packs spilled entries back into their home
// buckets. The new array is staged completely before the swap.
func (d *Dict) resize(newCapacity int) {
	fresh := make([][]Entry, newCapacity)
	for _, b := range d.buckets {
		for i := range b {
			h := mustHash(b[i].Key)
			idx := int(h % uint64(newCapacity))
			fresh[idx] = append(fresh[idx], Entry{Key: b[i].Key, Value: b[i].Value, Hash: h})
		}
	}
	d.buckets = fresh
	d.capacity = newCapacity
}

// growTarget finds the smallest repeated doubling of prev whose load
// threshold covers size.
func growTarget(prev, size int, loadFactor float64) int {
	for float64(prev)*loadFactor < float64(size) {
		prev *= 2
	}
	return prev
}

// shrinkTarget keeps halving while the halved capacity's load threshold
// still exceeds size. Capacity never drops below 1.
func shrinkTarget(prev, size int, loadFactor float64) int {
	for prev > 1 && float64(prev)/2*loadFactor > float64(size) {
		prev /= 2
	}
	return prev
}
