// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

import "weak"

// NodePtr constrains PT to be a pointer to T whose method set implements
// Node. It is the generic-era spelling of "T, viewed through a pointer,
// satisfies this interface" and lets WeakRef and the generic read/write
// helpers work over any registered concrete node type without repeating
// per-type glue code.
type NodePtr[T any] interface {
	*T
	Node
}

// WeakRef is a non-owning observer of a shared polymorphic node. Unlike a
// plain *T, holding a WeakRef does not keep the pointee alive; the garbage
// collector may reclaim the pointee once nothing else references it, after
// which Upgrade returns nil.
//
// WeakRef is built directly on the standard library's weak package (added
// in Go 1.24), which is the one weak-pointer primitive the language
// actually offers — a closer fit than hand-rolling a generation-counter or
// side-table scheme to emulate the source's weak handle.
type WeakRef[T any] struct {
	w weak.Pointer[T]
}

// MakeWeakRef builds a WeakRef observing p. Passing a nil p yields a
// WeakRef whose Upgrade always returns nil, matching an unset weak
// reference on the wire.
func MakeWeakRef[T any, PT NodePtr[T]](p PT) WeakRef[T] {
	if p == nil {
		return WeakRef[T]{}
	}
	return WeakRef[T]{w: weak.Make((*T)(p))}
}

// Upgrade returns the observed node if it is still reachable, or nil if the
// target has already been garbage collected or the WeakRef was never set.
func (r WeakRef[T]) Upgrade() *T {
	return r.w.Value()
}
