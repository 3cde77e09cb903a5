// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

import (
	"strings"
	"unicode/utf8"
)

// Framing selects how a length-prefixed byte slice or string is prefixed.
//
// Single source of truth — framing → length prefix encoding:
//   - FramingBit7:    variable-length ("bit7") u64 prefix.
//   - FramingFixed:   32-bit big-endian prefix.
//   - FramingFixedLE: 32-bit little-endian prefix.
//
// All three framings carry the payload bytes unmodified after the prefix.
// FramingBit7 is the framing the node field-list encoding uses for strings
// (see manager.go); the other two exist for wire compatibility with formats
// that use a fixed-width length prefix.
type Framing uint8

const (
	FramingBit7 Framing = iota
	FramingFixed
	FramingFixedLE
)

// WriteBytesFramed appends p prefixed with its length, encoded per f.
func (b *Buffer) WriteBytesFramed(p []byte, f Framing) {
	switch f {
	case FramingFixed:
		b.WriteU32BE(uint32(len(p)))
	case FramingFixedLE:
		b.WriteU32LE(uint32(len(p)))
	default:
		b.WriteVarU64(uint64(len(p)))
	}
	b.WriteBytes(p)
}

// ReadBytesFramed reads a length-prefixed byte slice per f. maxLen, if
// nonzero, rejects a decoded length greater than maxLen with
// ErrCodeCollectionTooLarge before attempting to read the payload (guards
// against an attacker-controlled length prefix driving a huge allocation).
func (b *Buffer) ReadBytesFramed(f Framing, maxLen int) ([]byte, error) {
	var n uint64
	var err error
	switch f {
	case FramingFixed:
		var n32 uint32
		n32, err = b.ReadU32BE()
		n = uint64(n32)
	case FramingFixedLE:
		var n32 uint32
		n32, err = b.ReadU32LE()
		n = uint64(n32)
	default:
		n, err = b.ReadVarU64()
	}
	if err != nil {
		return nil, err
	}
	if maxLen > 0 && n > uint64(maxLen) {
		return nil, errCollectionTooLarge(n, maxLen)
	}
	return b.ReadBytes(int(n))
}

// WriteStringFramed appends s, encoded as its UTF-8 bytes, length-prefixed
// per f.
func (b *Buffer) WriteStringFramed(s string, f Framing) {
	b.WriteBytesFramed([]byte(s), f)
}

// ReadStringFramed reads a length-prefixed UTF-8 string per f.
//
// Invalid UTF-8 in the decoded bytes is replaced with the Unicode
// replacement character rather than failing the read. This lossy behavior
// must be preserved for compatibility with previously written data: a
// byte-exact round trip is therefore NOT guaranteed for strings containing
// non-UTF-8 bytes. Callers who need byte-exact fidelity should use
// [Buffer.ReadBytesFramed] instead.
func (b *Buffer) ReadStringFramed(f Framing, maxLen int) (string, error) {
	p, err := b.ReadBytesFramed(f, maxLen)
	if err != nil {
		return "", err
	}
	return lossyUTF8(p), nil
}

// lossyUTF8 decodes p as UTF-8, substituting one U+FFFD per maximal invalid
// subpart. strings.ToValidUTF8 instead collapses an entire run of invalid
// bytes into a single replacement character, which is not the substitution
// the source's decoder performs. A maximal invalid subpart is the longest
// prefix that could still begin a valid encoding (a truncated multi-byte
// sequence yields one U+FFFD), or a single byte when no such prefix exists
// (two stray bytes such as 0xff 0xfe yield two U+FFFD).
func lossyUTF8(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}
	var sb strings.Builder
	sb.Grow(len(p))
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		if r == utf8.RuneError && size == 1 {
			for size < len(p) && size < utf8.UTFMax-1 && !utf8.FullRune(p[:size+1]) {
				size++
			}
		}
		sb.WriteRune(r)
		p = p[size:]
	}
	return sb.String()
}
