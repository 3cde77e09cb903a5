// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

import "github.com/google/btree"

// --- optional (nullable non-polymorphic) values ---

// WriteOptionalValue writes a one-byte presence tag followed by the
// encoding of *v when present. A nil v writes the tag alone.
func WriteOptionalValue[T any](buf *Buffer, mgr *Manager, v *T, writeElem func(*Buffer, *Manager, T)) {
	if v == nil {
		buf.WriteByte(0)
		return
	}
	buf.WriteByte(1)
	writeElem(buf, mgr, *v)
}

// ReadOptionalValue reads a presence tag and, if set, the inner value via
// readElem. A clear tag returns (nil, nil).
func ReadOptionalValue[T any](buf *Buffer, mgr *Manager, readElem func(*Buffer, *Manager) (T, error)) (*T, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == 0 {
		return nil, nil
	}
	v, err := readElem(buf, mgr)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteOptionalString is the common case of WriteOptionalValue for strings,
// using the default bit7 field framing.
func WriteOptionalString(buf *Buffer, mgr *Manager, v *string) {
	WriteOptionalValue(buf, mgr, v, func(b *Buffer, m *Manager, s string) { m.WriteFieldString(b, s) })
}

// ReadOptionalString is the common case of ReadOptionalValue for strings.
func ReadOptionalString(buf *Buffer, mgr *Manager) (*string, error) {
	return ReadOptionalValue(buf, mgr, func(b *Buffer, m *Manager) (string, error) { return m.ReadFieldString(b) })
}

// --- ordered sequences ---

// WriteSequence writes a bit7 count followed by each element's encoding via
// writeElem, in slice order.
func WriteSequence[T any](buf *Buffer, mgr *Manager, items []T, writeElem func(*Buffer, *Manager, T)) {
	buf.WriteVarU64(uint64(len(items)))
	for _, it := range items {
		writeElem(buf, mgr, it)
	}
}

// ReadSequence reads a bit7 count, honoring the manager's configured
// WithMaxCollectionLen bound, then that many elements via readElem.
func ReadSequence[T any](buf *Buffer, mgr *Manager, readElem func(*Buffer, *Manager) (T, error)) ([]T, error) {
	n, err := buf.ReadVarU64()
	if err != nil {
		return nil, err
	}
	if max := mgr.opts.maxCollectionLen; max > 0 && n > uint64(max) {
		return nil, errCollectionTooLarge(n, max)
	}
	items := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := readElem(buf, mgr)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// --- hash-keyed maps ---
//
// A Go native map[K]V already is the ecosystem's hash-keyed associative
// container; no third-party library improves on it for this role.

// WriteHashMap writes a bit7 count followed by that many (key, value)
// pairs, in map iteration order (unordered, per spec).
func WriteHashMap[K comparable, V any](buf *Buffer, mgr *Manager, m map[K]V, writeKey func(*Buffer, *Manager, K), writeVal func(*Buffer, *Manager, V)) {
	buf.WriteVarU64(uint64(len(m)))
	for k, v := range m {
		writeKey(buf, mgr, k)
		writeVal(buf, mgr, v)
	}
}

// ReadHashMap reads a bit7 count, honoring WithMaxCollectionLen, then that
// many (key, value) pairs into a fresh map.
func ReadHashMap[K comparable, V any](buf *Buffer, mgr *Manager, readKey func(*Buffer, *Manager) (K, error), readVal func(*Buffer, *Manager) (V, error)) (map[K]V, error) {
	n, err := buf.ReadVarU64()
	if err != nil {
		return nil, err
	}
	if max := mgr.opts.maxCollectionLen; max > 0 && n > uint64(max) {
		return nil, errCollectionTooLarge(n, max)
	}
	m := make(map[K]V, n)
	for i := uint64(0); i < n; i++ {
		k, err := readKey(buf, mgr)
		if err != nil {
			return nil, err
		}
		v, err := readVal(buf, mgr)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// --- key-ordered maps ---
//
// Backed by github.com/google/btree, harvested from the example pack's
// moby-moby dependency manifest. This gives real ascending-key iteration
// rather than a hand-rolled sorted-slice container.

type orderedEntry[K cmp128Ordered, V any] struct {
	Key   K
	Value V
}

// cmp128Ordered is a locally declared constraint with the same type set as
// the standard cmp.Ordered, so this file does not import the cmp package.
type cmp128Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// OrderedMap is a key-ordered associative container. Ascend iterates keys
// in ascending order, matching the wire's requirement that a key-ordered
// map reconstruct with its container's own ordering.
type OrderedMap[K cmp128Ordered, V any] struct {
	t *btree.BTreeG[orderedEntry[K, V]]
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K cmp128Ordered, V any]() *OrderedMap[K, V] {
	less := func(a, b orderedEntry[K, V]) bool { return a.Key < b.Key }
	return &OrderedMap[K, V]{t: btree.NewG[orderedEntry[K, V]](32, less)}
}

// Set inserts or replaces the value at k.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	m.t.ReplaceOrInsert(orderedEntry[K, V]{Key: k, Value: v})
}

// Get returns the value at k, if present.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	item, ok := m.t.Get(orderedEntry[K, V]{Key: k})
	return item.Value, ok
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return m.t.Len() }

// Ascend calls fn for every entry in ascending key order, stopping early if
// fn returns false.
func (m *OrderedMap[K, V]) Ascend(fn func(k K, v V) bool) {
	m.t.Ascend(func(e orderedEntry[K, V]) bool { return fn(e.Key, e.Value) })
}

// WriteOrderedMap writes a bit7 count followed by that many (key, value)
// pairs in ascending key order.
func WriteOrderedMap[K cmp128Ordered, V any](buf *Buffer, mgr *Manager, m *OrderedMap[K, V], writeKey func(*Buffer, *Manager, K), writeVal func(*Buffer, *Manager, V)) {
	buf.WriteVarU64(uint64(m.Len()))
	m.Ascend(func(k K, v V) bool {
		writeKey(buf, mgr, k)
		writeVal(buf, mgr, v)
		return true
	})
}

// ReadOrderedMap reads a bit7 count, honoring WithMaxCollectionLen, then
// that many (key, value) pairs into a fresh OrderedMap.
func ReadOrderedMap[K cmp128Ordered, V any](buf *Buffer, mgr *Manager, readKey func(*Buffer, *Manager) (K, error), readVal func(*Buffer, *Manager) (V, error)) (*OrderedMap[K, V], error) {
	n, err := buf.ReadVarU64()
	if err != nil {
		return nil, err
	}
	if max := mgr.opts.maxCollectionLen; max > 0 && n > uint64(max) {
		return nil, errCollectionTooLarge(n, max)
	}
	m := NewOrderedMap[K, V]()
	for i := uint64(0); i < n; i++ {
		k, err := readKey(buf, mgr)
		if err != nil {
			return nil, err
		}
		v, err := readVal(buf, mgr)
		if err != nil {
			return nil, err
		}
		m.Set(k, v)
	}
	return m, nil
}
