// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

import (
	"encoding/binary"
	"math"
)

// Buffer is an append-on-write, cursor-read byte container. Writes always
// append at the current length, never at the cursor; reads consume from the
// cursor forward. The zero value is ready to use.
//
// A Buffer also carries the two identity maps used while one encode or one
// decode operation is in flight (see [Manager]). They are logically
// per-operation state, not part of the wire data, and are cleared by the
// top-level Manager entry points.
//
// A Buffer is not safe for concurrent encode-and-decode, and two concurrent
// encodings must use distinct buffers: the identity maps are mutated while
// encoding.
type Buffer struct {
	data []byte
	pos  int

	writeIdentity map[Node]uint32
	readIdentity  map[uint32]Node
}

// NewBuffer returns an empty Buffer ready for writing, or for reading once
// bytes have been loaded with [Buffer.SetBytes].
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferFromBytes returns a Buffer positioned at the start of b, ready
// for reading. b is not copied; callers should not mutate it while the
// Buffer is in use.
func NewBufferFromBytes(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Bytes returns the buffer's full contents. The returned slice aliases the
// Buffer's internal storage and must not be retained across further writes.
func (b *Buffer) Bytes() []byte { return b.data }

// SetBytes replaces the buffer's contents and resets the cursor to 0. It
// does not touch the identity maps.
func (b *Buffer) SetBytes(data []byte) {
	b.data = data
	b.pos = 0
}

// Len returns the number of bytes currently stored in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Reset truncates the buffer to zero length and resets the cursor to 0.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.pos = 0
}

// Position returns the current read cursor offset.
func (b *Buffer) Position() int { return b.pos }

// SetPosition moves the read cursor to off. off must not exceed Len();
// violating that invariant returns a *DecodeError with ErrCodeInvalidPosition
// and leaves the cursor unchanged.
func (b *Buffer) SetPosition(off int) error {
	if off < 0 || off > len(b.data) {
		return errInvalidPosition(off, len(b.data))
	}
	b.pos = off
	return nil
}

func (b *Buffer) remaining() int { return len(b.data) - b.pos }

// --- byte-level primitives ---

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(v byte) {
	b.data = append(b.data, v)
}

// WriteBytes appends p verbatim.
func (b *Buffer) WriteBytes(p []byte) {
	b.data = append(b.data, p...)
}

// ReadByte consumes and returns a single byte from the cursor.
func (b *Buffer) ReadByte() (byte, error) {
	if b.remaining() < 1 {
		return 0, errTruncated("ReadByte: 1 byte required")
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

// ReadBytes consumes and returns exactly n bytes from the cursor. The
// returned slice aliases the buffer's storage.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 || b.remaining() < n {
		return nil, errTruncated("ReadBytes: not enough bytes remaining")
	}
	v := b.data[b.pos : b.pos+n]
	b.pos += n
	return v, nil
}

// WriteBool encodes v as a single byte: 1 for true, 0 for false.
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.WriteByte(1)
	} else {
		b.WriteByte(0)
	}
}

// ReadBool decodes a single byte as a bool. Any value other than 1 is
// taken as false, matching the source's permissive decode.
func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadByte()
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// --- fixed-width primitive codecs, big- and little-endian ---

func (b *Buffer) WriteU8(v uint8)   { b.WriteByte(v) }
func (b *Buffer) ReadU8() (uint8, error) { return b.ReadByte() }

func (b *Buffer) WriteI8(v int8) { b.WriteByte(byte(v)) }
func (b *Buffer) ReadI8() (int8, error) {
	v, err := b.ReadByte()
	return int8(v), err
}

func (b *Buffer) WriteU16BE(v uint16) { b.appendFixed16(v, binary.BigEndian) }
func (b *Buffer) WriteU16LE(v uint16) { b.appendFixed16(v, binary.LittleEndian) }
func (b *Buffer) ReadU16BE() (uint16, error) { return b.readFixed16(binary.BigEndian) }
func (b *Buffer) ReadU16LE() (uint16, error) { return b.readFixed16(binary.LittleEndian) }

func (b *Buffer) WriteI16BE(v int16) { b.WriteU16BE(uint16(v)) }
func (b *Buffer) WriteI16LE(v int16) { b.WriteU16LE(uint16(v)) }
func (b *Buffer) ReadI16BE() (int16, error) { v, err := b.ReadU16BE(); return int16(v), err }
func (b *Buffer) ReadI16LE() (int16, error) { v, err := b.ReadU16LE(); return int16(v), err }

func (b *Buffer) WriteU32BE(v uint32) { b.appendFixed32(v, binary.BigEndian) }
func (b *Buffer) WriteU32LE(v uint32) { b.appendFixed32(v, binary.LittleEndian) }
func (b *Buffer) ReadU32BE() (uint32, error) { return b.readFixed32(binary.BigEndian) }
func (b *Buffer) ReadU32LE() (uint32, error) { return b.readFixed32(binary.LittleEndian) }

func (b *Buffer) WriteI32BE(v int32) { b.WriteU32BE(uint32(v)) }
func (b *Buffer) WriteI32LE(v int32) { b.WriteU32LE(uint32(v)) }
func (b *Buffer) ReadI32BE() (int32, error) { v, err := b.ReadU32BE(); return int32(v), err }
func (b *Buffer) ReadI32LE() (int32, error) { v, err := b.ReadU32LE(); return int32(v), err }

func (b *Buffer) WriteU64BE(v uint64) { b.appendFixed64(v, binary.BigEndian) }
func (b *Buffer) WriteU64LE(v uint64) { b.appendFixed64(v, binary.LittleEndian) }
func (b *Buffer) ReadU64BE() (uint64, error) { return b.readFixed64(binary.BigEndian) }
func (b *Buffer) ReadU64LE() (uint64, error) { return b.readFixed64(binary.LittleEndian) }

func (b *Buffer) WriteI64BE(v int64) { b.WriteU64BE(uint64(v)) }
func (b *Buffer) WriteI64LE(v int64) { b.WriteU64LE(uint64(v)) }
func (b *Buffer) ReadI64BE() (int64, error) { v, err := b.ReadU64BE(); return int64(v), err }
func (b *Buffer) ReadI64LE() (int64, error) { v, err := b.ReadU64LE(); return int64(v), err }

func (b *Buffer) WriteF32BE(v float32) { b.WriteU32BE(math.Float32bits(v)) }
func (b *Buffer) WriteF32LE(v float32) { b.WriteU32LE(math.Float32bits(v)) }
func (b *Buffer) ReadF32BE() (float32, error) {
	v, err := b.ReadU32BE()
	return math.Float32frombits(v), err
}
func (b *Buffer) ReadF32LE() (float32, error) {
	v, err := b.ReadU32LE()
	return math.Float32frombits(v), err
}

func (b *Buffer) WriteF64BE(v float64) { b.WriteU64BE(math.Float64bits(v)) }
func (b *Buffer) WriteF64LE(v float64) { b.WriteU64LE(math.Float64bits(v)) }
func (b *Buffer) ReadF64BE() (float64, error) {
	v, err := b.ReadU64BE()
	return math.Float64frombits(v), err
}
func (b *Buffer) ReadF64LE() (float64, error) {
	v, err := b.ReadU64LE()
	return math.Float64frombits(v), err
}

func (b *Buffer) appendFixed16(v uint16, bo binary.ByteOrder) {
	var tmp [2]byte
	bo.PutUint16(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) appendFixed32(v uint32, bo binary.ByteOrder) {
	var tmp [4]byte
	bo.PutUint32(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) appendFixed64(v uint64, bo binary.ByteOrder) {
	var tmp [8]byte
	bo.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) readFixed16(bo binary.ByteOrder) (uint16, error) {
	p, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return bo.Uint16(p), nil
}

func (b *Buffer) readFixed32(bo binary.ByteOrder) (uint32, error) {
	p, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return bo.Uint32(p), nil
}

func (b *Buffer) readFixed64(bo binary.ByteOrder) (uint64, error) {
	p, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return bo.Uint64(p), nil
}
