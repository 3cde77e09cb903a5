// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

import "go.uber.org/zap"

// managerOptions configures a Manager.
type managerOptions struct {
	logger           *zap.Logger
	maxCollectionLen int
}

var defaultManagerOptions = managerOptions{
	logger:           zap.NewNop(),
	maxCollectionLen: 0, // unlimited, matching the source's unbounded decode
}

// ManagerOption configures a [Manager] constructed with [NewManager].
type ManagerOption func(*managerOptions)

// WithLogger attaches a structured logger. When set, the manager logs a
// structured warning (diagnostic code and detail string) whenever ReadRoot,
// ReadShared, ReadSharedInto or ReadWeak returns a failure, before returning
// it to the caller; a failure inside a nested reference is logged again at
// each of those calls it passes through. Type id and slot are not separate
// log fields. The error remains the authoritative result, the log entry is
// observability only. The default is a no-op logger.
func WithLogger(logger *zap.Logger) ManagerOption {
	return func(o *managerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxCollectionLen bounds the decoded element count accepted by
// ReadSequence, ReadHashMap and ReadOrderedMap, and the byte length accepted
// by Manager.ReadFieldString (and so ReadOptionalString). Buffer's own
// ReadBytesFramed and ReadStringFramed take their maxLen argument instead and
// do not consult this option. A hostile or
// corrupt stream can claim an arbitrary bit7-encoded count before any
// element bytes are read; this is the graph-shaped analogue of the
// teacher's own stream-level ReadLimit guard. n <= 0 means unlimited,
// matching spec-default behavior.
func WithMaxCollectionLen(n int) ManagerOption {
	return func(o *managerOptions) {
		if n > 0 {
			o.maxCollectionLen = n
		}
	}
}
