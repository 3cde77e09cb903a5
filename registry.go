// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

// TypeID is the stable 16-bit identifier for a concrete node type. Id 0 is
// reserved on the wire to mean "null reference" and must not be used by any
// registered type.
type TypeID = uint16

// nullTypeID is the reserved wire value meaning "no object follows".
const nullTypeID TypeID = 0

// Node is the Writable/Readable capability every concrete, registered
// object type must implement. It is the Go rendering of the source's
// trait-object capability: an interface value over a concrete pointer type
// dispatches to that type's WriteFields/ReadFields exactly the way a trait
// object's vtable would.
//
// A concrete type must advertise the same id from both NodeTypeID (the
// per-instance accessor) and its own package-level type-id constant; the
// manager trusts NodeTypeID alone, but a mismatch between the two is a
// programming error in the concrete type, not something the manager can
// detect.
type Node interface {
	// NodeTypeID returns this node's registered type id.
	NodeTypeID() TypeID

	// WriteFields emits this node's fields, in a fixed order, to buf. Writes
	// never fail: buffer growth is assumed infallible.
	WriteFields(buf *Buffer, mgr *Manager)

	// ReadFields reads this node's fields, in the same fixed order
	// WriteFields used, from buf. A failure returns a *DecodeError.
	ReadFields(buf *Buffer, mgr *Manager) error
}

// Factory constructs a fresh, default-initialized Node for decode-time
// reconstruction.
type Factory func() Node

// registry is a fixed 65536-slot type-id → factory table. Index 0 is never
// populated: Register refuses id 0 outright, closing the "type-id 0
// collision" gap the source leaves open (spec Design Notes: "Reimplementations
// should reject registration of id 0 explicitly").
type registry struct {
	factories [1 << 16]Factory
}

// register binds id to factory, overwriting any previous binding. It
// refuses id 0.
func (r *registry) register(id TypeID, factory Factory) error {
	if id == nullTypeID {
		return errReservedTypeID()
	}
	r.factories[id] = factory
	return nil
}

// create returns a fresh instance for id, or a *DecodeError if id has no
// registered factory.
func (r *registry) create(id TypeID) (Node, error) {
	if id == nullTypeID {
		return nil, errNullReference("create: type id 0 never has a factory")
	}
	factory := r.factories[id]
	if factory == nil {
		return nil, errUnknownType(id)
	}
	return factory(), nil
}
