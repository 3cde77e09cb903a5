// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

// Uint128 is an unsigned 128-bit integer represented as two 64-bit words.
// Go has no native 128-bit integer type; representing it as an explicit
// two-word struct mirrors how the pack's own lower-level binary formats
// represent wide fields (fixed multi-word structs) rather than pulling in
// a big-integer package for a fixed-width value.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer, two's-complement, represented as two
// 64-bit words with Hi holding the sign-extended high word.
type Int128 struct {
	Hi uint64
	Lo uint64
}

// WriteU128LE writes v as 16 bytes, little-endian.
func (b *Buffer) WriteU128LE(v Uint128) {
	b.WriteU64LE(v.Lo)
	b.WriteU64LE(v.Hi)
}

// WriteU128BE writes v as 16 bytes, big-endian.
func (b *Buffer) WriteU128BE(v Uint128) {
	b.WriteU64BE(v.Hi)
	b.WriteU64BE(v.Lo)
}

// ReadU128LE reads 16 little-endian bytes into a Uint128.
func (b *Buffer) ReadU128LE() (Uint128, error) {
	lo, err := b.ReadU64LE()
	if err != nil {
		return Uint128{}, err
	}
	hi, err := b.ReadU64LE()
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// ReadU128BE reads 16 big-endian bytes into a Uint128.
func (b *Buffer) ReadU128BE() (Uint128, error) {
	hi, err := b.ReadU64BE()
	if err != nil {
		return Uint128{}, err
	}
	lo, err := b.ReadU64BE()
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// WriteI128LE writes v as 16 bytes, little-endian.
func (b *Buffer) WriteI128LE(v Int128) { b.WriteU128LE(Uint128(v)) }

// WriteI128BE writes v as 16 bytes, big-endian.
func (b *Buffer) WriteI128BE(v Int128) { b.WriteU128BE(Uint128(v)) }

// ReadI128LE reads 16 little-endian bytes into an Int128.
func (b *Buffer) ReadI128LE() (Int128, error) {
	v, err := b.ReadU128LE()
	return Int128(v), err
}

// ReadI128BE reads 16 big-endian bytes into an Int128.
func (b *Buffer) ReadI128BE() (Int128, error) {
	v, err := b.ReadU128BE()
	return Int128(v), err
}
