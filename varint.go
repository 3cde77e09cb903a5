// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

// Variable-length ("bit7") integer codec: the low 7 bits of the value are
// emitted per byte, MSB set to 1 if more bits remain, 0 on the final byte.
// Decode accumulates 7-bit groups, shifting by 7, 14, 21, ..., and stops on
// the first byte whose MSB is 0. A continuation bit still set once the
// target width has been fully consumed is a malformed encoding.
//
// Signed values apply ZigZag first so small-magnitude negative numbers stay
// short: encode as (v<<1) XOR (v>>(width-1)) with an arithmetic right shift;
// decode as (w>>1) XOR -(w&1).

// WriteVarU16 writes v using the bit7 codec.
func (b *Buffer) WriteVarU16(v uint16) { b.writeVarUint(uint64(v)) }

// WriteVarU32 writes v using the bit7 codec.
func (b *Buffer) WriteVarU32(v uint32) { b.writeVarUint(uint64(v)) }

// WriteVarU64 writes v using the bit7 codec.
func (b *Buffer) WriteVarU64(v uint64) { b.writeVarUint(v) }

func (b *Buffer) writeVarUint(v uint64) {
	for {
		chunk := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b.WriteByte(chunk | 0x80)
			continue
		}
		b.WriteByte(chunk)
		return
	}
}

// ReadVarU16 reads a bit7-encoded value into a uint16, failing with
// ErrCodeVarintOverflow if the encoded value does not fit.
func (b *Buffer) ReadVarU16() (uint16, error) {
	v, err := b.readVarUint(16)
	return uint16(v), err
}

// ReadVarU32 reads a bit7-encoded value into a uint32, failing with
// ErrCodeVarintOverflow if the encoded value does not fit.
func (b *Buffer) ReadVarU32() (uint32, error) {
	v, err := b.readVarUint(32)
	return uint32(v), err
}

// ReadVarU64 reads a bit7-encoded value into a uint64, failing with
// ErrCodeVarintOverflow if the encoded value does not fit.
func (b *Buffer) ReadVarU64() (uint64, error) {
	return b.readVarUint(64)
}

func (b *Buffer) readVarUint(width uint) (uint64, error) {
	var result uint64
	var shift uint
	for {
		byt, err := b.ReadByte()
		if err != nil {
			return 0, errTruncated("readVarUint: truncated continuation sequence")
		}
		cont := byt&0x80 != 0
		payload := uint64(byt & 0x7f)
		if shift >= width {
			// Every bit from here on is beyond the target width: any set
			// payload bit, or a continuation flag asking for still more
			// bytes, means the value does not fit.
			if payload != 0 || cont {
				return 0, errVarintOverflow()
			}
			return result, nil
		}
		if avail := width - shift; avail < 7 && payload>>avail != 0 {
			return 0, errVarintOverflow()
		}
		result |= payload << shift
		if !cont {
			return result, nil
		}
		shift += 7
	}
}

func zigzagEncode16(v int16) uint16 { return uint16((v << 1) ^ (v >> 15)) }
func zigzagDecode16(w uint16) int16 { return int16(w>>1) ^ -int16(w&1) }

func zigzagEncode32(v int32) uint32 { return uint32((v << 1) ^ (v >> 31)) }
func zigzagDecode32(w uint32) int32 { return int32(w>>1) ^ -int32(w&1) }

func zigzagEncode64(v int64) uint64 { return uint64((v << 1) ^ (v >> 63)) }
func zigzagDecode64(w uint64) int64 { return int64(w>>1) ^ -int64(w&1) }

// WriteVarI16 writes v using ZigZag followed by the bit7 codec.
func (b *Buffer) WriteVarI16(v int16) { b.WriteVarU16(zigzagEncode16(v)) }

// WriteVarI32 writes v using ZigZag followed by the bit7 codec.
func (b *Buffer) WriteVarI32(v int32) { b.WriteVarU32(zigzagEncode32(v)) }

// WriteVarI64 writes v using ZigZag followed by the bit7 codec.
func (b *Buffer) WriteVarI64(v int64) { b.WriteVarU64(zigzagEncode64(v)) }

// ReadVarI16 reads a ZigZag bit7-encoded int16.
func (b *Buffer) ReadVarI16() (int16, error) {
	w, err := b.ReadVarU16()
	if err != nil {
		return 0, err
	}
	return zigzagDecode16(w), nil
}

// ReadVarI32 reads a ZigZag bit7-encoded int32.
func (b *Buffer) ReadVarI32() (int32, error) {
	w, err := b.ReadVarU32()
	if err != nil {
		return 0, err
	}
	return zigzagDecode32(w), nil
}

// ReadVarI64 reads a ZigZag bit7-encoded int64.
func (b *Buffer) ReadVarI64() (int64, error) {
	w, err := b.ReadVarU64()
	if err != nil {
		return 0, err
	}
	return zigzagDecode64(w), nil
}
