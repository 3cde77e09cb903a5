// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

import "go.uber.org/zap"

// Manager owns the type registry and drives recursive encoding and decoding
// of any value implementing [Node]. It implements reference deduplication
// so that a graph with cycles and shared nodes is serialized exactly once
// per distinct node.
//
// A Manager holds no references to user objects outside of the identity
// maps carried on whichever [Buffer] is active for the current top-level
// call; the caller owns the graph.
type Manager struct {
	reg  registry
	opts managerOptions
}

// NewManager returns a ready-to-use Manager with no registered types.
func NewManager(opts ...ManagerOption) *Manager {
	o := defaultManagerOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &Manager{opts: o}
}

// Register binds id to factory, overwriting any previous factory at id.
// Id 0 is reserved to mean "null" on the wire; registering it is refused.
func (m *Manager) Register(id TypeID, factory Factory) error {
	return m.reg.register(id, factory)
}

// Create returns a fresh default instance for id via the registered
// factory, or a *DecodeError if id is unregistered.
func (m *Manager) Create(id TypeID) (Node, error) {
	return m.reg.create(id)
}

func (m *Manager) logDecodeErr(err error) {
	if err == nil {
		return
	}
	de, ok := err.(*DecodeError)
	if !ok {
		m.opts.logger.Warn("graphwire: decode failed", zap.Error(err))
		return
	}
	m.opts.logger.Warn("graphwire: decode failed",
		zap.Uint32("code", uint32(de.Code)),
		zap.String("detail", de.Detail),
	)
}

// WriteRoot clears the buffer's write identity map and writes root as a
// polymorphic shared reference. Call this once per encode; use
// [WriteShared] from inside a node's own WriteFields method for nested
// references, which does not clear the map.
func (m *Manager) WriteRoot(buf *Buffer, root Node) {
	buf.writeIdentity = make(map[Node]uint32)
	m.writeCore(buf, root)
}

// ReadRoot clears the buffer's read identity map, reads a polymorphic
// shared reference, and returns the reconstructed root. It fails if the
// decoded root would be null. The read identity map is cleared again on
// return so the buffer is ready for a fresh top-level read.
func (m *Manager) ReadRoot(buf *Buffer) (Node, error) {
	buf.readIdentity = make(map[uint32]Node)
	node, err := m.readCore(buf, nil, nil)
	buf.readIdentity = nil
	if err != nil {
		m.logDecodeErr(err)
		return nil, err
	}
	if node == nil {
		err = errNullReference("ReadRoot: root must not be null")
		m.logDecodeErr(err)
		return nil, err
	}
	return node, nil
}

// writeCore implements the polymorphic shared-reference wire format
// (spec §4.2): type id, then slot number. A fresh object additionally
// emits its own fields immediately after the slot.
func (m *Manager) writeCore(buf *Buffer, node Node) {
	if node == nil {
		buf.WriteVarU16(nullTypeID)
		return
	}
	if slot, ok := buf.writeIdentity[node]; ok {
		buf.WriteVarU16(node.NodeTypeID())
		buf.WriteVarU32(slot)
		return
	}
	slot := uint32(len(buf.writeIdentity)) + 1
	buf.writeIdentity[node] = slot
	buf.WriteVarU16(node.NodeTypeID())
	buf.WriteVarU32(slot)
	node.WriteFields(buf, m)
}

// readCore implements the symmetric decode side. When expected is non-nil,
// a decoded type id that disagrees with *expected is a type mismatch
// error, even for a back-reference (the wire always carries the
// referenced node's true type id). When into is non-nil and the reference
// turns out to be fresh, into is populated in place instead of creating a
// new instance via the registry.
func (m *Manager) readCore(buf *Buffer, expected *TypeID, into Node) (Node, error) {
	id, err := buf.ReadVarU16()
	if err != nil {
		return nil, err
	}
	if id == nullTypeID {
		return nil, nil
	}
	if expected != nil && id != *expected {
		return nil, errTypeMismatch(*expected, id)
	}
	slot, err := buf.ReadVarU32()
	if err != nil {
		return nil, err
	}
	n := uint32(len(buf.readIdentity))
	if slot == n+1 {
		node := into
		if node == nil {
			node, err = m.reg.create(id)
			if err != nil {
				return nil, err
			}
		}
		buf.readIdentity[slot] = node
		if err := node.ReadFields(buf, m); err != nil {
			return nil, err
		}
		return node, nil
	}
	if slot >= 1 && slot <= n {
		node, ok := buf.readIdentity[slot]
		if !ok {
			return nil, errSlotOutOfRange(slot, n)
		}
		return node, nil
	}
	return nil, errSlotOutOfRange(slot, n)
}

// WriteField writes a polymorphic shared reference from inside a node's own
// WriteFields method. It does not clear the write identity map.
func (m *Manager) WriteField(buf *Buffer, node Node) {
	m.writeCore(buf, node)
}

// WriteShared writes p as a polymorphic shared reference. A nil p is
// written as null.
func WriteShared[T any, PT NodePtr[T]](buf *Buffer, mgr *Manager, p PT) {
	if p == nil {
		mgr.writeCore(buf, nil)
		return
	}
	mgr.writeCore(buf, Node(p))
}

// ReadShared reads a polymorphic shared reference expected to be of
// concrete type PT. A decoded type id that does not match PT's type id is a
// *DecodeError with ErrCodeTypeMismatch. A null reference returns (nil, nil).
func ReadShared[T any, PT NodePtr[T]](buf *Buffer, mgr *Manager) (PT, error) {
	var zero PT
	id := zero.NodeTypeID()
	node, err := mgr.readCore(buf, &id, nil)
	if err != nil {
		mgr.logDecodeErr(err)
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	p, ok := node.(PT)
	if !ok {
		err = errTypeMismatch(id, node.NodeTypeID())
		mgr.logDecodeErr(err)
		return nil, err
	}
	return p, nil
}

// ReadSharedInto reads a polymorphic shared reference in place into target
// when the reference turns out to be fresh (first occurrence), instead of
// constructing a new instance via the registry. This mirrors the source's
// support for decoding into an already-existing object. If the reference is
// a back-reference to a previously decoded node, target is left untouched
// and the previously reconstructed node is returned instead.
func ReadSharedInto[T any, PT NodePtr[T]](buf *Buffer, mgr *Manager, target PT) (PT, error) {
	var zero PT
	id := zero.NodeTypeID()
	node, err := mgr.readCore(buf, &id, Node(target))
	if err != nil {
		mgr.logDecodeErr(err)
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	p, ok := node.(PT)
	if !ok {
		err = errTypeMismatch(id, node.NodeTypeID())
		mgr.logDecodeErr(err)
		return nil, err
	}
	return p, nil
}

// WriteWeak writes the shared reference obtained by upgrading w. If w
// cannot be upgraded (the target is gone) or was never set, it writes a
// null reference — weak references never keep their target alive or force
// an encode error.
func WriteWeak[T any, PT NodePtr[T]](buf *Buffer, mgr *Manager, w WeakRef[T]) {
	p := w.Upgrade()
	if p == nil {
		mgr.writeCore(buf, nil)
		return
	}
	mgr.writeCore(buf, Node(PT(p)))
}

// ReadWeak reads a shared reference and downgrades it to a [WeakRef].
func ReadWeak[T any, PT NodePtr[T]](buf *Buffer, mgr *Manager) (WeakRef[T], error) {
	var zero PT
	id := zero.NodeTypeID()
	node, err := mgr.readCore(buf, &id, nil)
	if err != nil {
		mgr.logDecodeErr(err)
		return WeakRef[T]{}, err
	}
	if node == nil {
		return WeakRef[T]{}, nil
	}
	p, ok := node.(PT)
	if !ok {
		err = errTypeMismatch(id, node.NodeTypeID())
		mgr.logDecodeErr(err)
		return WeakRef[T]{}, err
	}
	return MakeWeakRef[T, PT](p), nil
}

// WriteFieldString writes s as a bit7 length-framed UTF-8 string, the
// default string framing for a node's field list.
func (m *Manager) WriteFieldString(buf *Buffer, s string) {
	buf.WriteStringFramed(s, FramingBit7)
}

// ReadFieldString reads a bit7 length-framed UTF-8 string, honoring the
// manager's configured WithMaxCollectionLen bound.
func (m *Manager) ReadFieldString(buf *Buffer) (string, error) {
	return buf.ReadStringFramed(FramingBit7, m.opts.maxCollectionLen)
}
