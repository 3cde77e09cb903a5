// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package graphwire implements a binary object-graph serialization engine.
//
// It encodes and decodes arbitrary typed object graphs — including shared
// references, weak back-references, and recursive cycles — to and from a
// compact byte stream. Callers register concrete node types by a stable
// 16-bit type id; the engine then recursively walks a root object and
// serializes every reachable node exactly once, preserving pointer identity
// across the encode/decode round trip.
//
// Two pieces do essentially all of the work:
//
//   - [Buffer]: an append-on-write, cursor-read byte container with
//     fixed-width big/little-endian primitive codecs, a variable-length
//     ("bit7") integer codec, and three length-prefixed bytes/string
//     framings.
//   - [Manager]: owns the type registry and drives recursive encoding and
//     decoding of any value implementing [Node], deduplicating shared nodes
//     via a per-operation identity map.
//
// Semantics and design:
//   - Wire compatibility assumes the encoder and decoder share the exact
//     type-id-to-layout mapping; there is no schema evolution story.
//   - Shared polymorphic nodes are plain Go pointers; the garbage collector
//     keeps them alive for as long as anything in the graph or the caller
//     references them. Weak back-references use [WeakRef], built on the
//     standard library weak package, and do not extend lifetime.
//   - Single-threaded, synchronous: no operation suspends or blocks. A
//     [Buffer] is not safe for concurrent encode-and-decode; two concurrent
//     encodings must use distinct buffers because the identity maps live on
//     the buffer and are mutated while encoding.
package graphwire
