// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/graphwire"
)

func TestVarint_U64RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 32, ^uint64(0)}
	for _, v := range cases {
		buf := graphwire.NewBuffer()
		buf.WriteVarU64(v)
		buf.SetBytes(buf.Bytes())
		got, err := buf.ReadVarU64()
		if err != nil {
			t.Fatalf("ReadVarU64(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	}
}

func TestVarint_MinimalByteLength(t *testing.T) {
	// Values under 128 must fit in a single byte; the codec should not pad.
	buf := graphwire.NewBuffer()
	buf.WriteVarU64(100)
	if buf.Len() != 1 {
		t.Fatalf("expected 1 byte for value 100, got %d", buf.Len())
	}

	buf2 := graphwire.NewBuffer()
	buf2.WriteVarU64(1 << 20)
	if buf2.Len() != 3 {
		t.Fatalf("expected 3 bytes for value 1<<20, got %d", buf2.Len())
	}
}

func TestVarint_ZigZagSignedRoundTrip(t *testing.T) {
	cases := []int64{0, -1, 1, -64, 64, -1 << 40, 1<<62 - 1}
	for _, v := range cases {
		buf := graphwire.NewBuffer()
		buf.WriteVarI64(v)
		buf.SetBytes(buf.Bytes())
		got, err := buf.ReadVarI64()
		if err != nil {
			t.Fatalf("ReadVarI64(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	}
}

func TestVarint_ZigZagSmallNegativeIsShort(t *testing.T) {
	buf := graphwire.NewBuffer()
	buf.WriteVarI64(-1)
	if buf.Len() != 1 {
		t.Fatalf("zigzag(-1) should fit in 1 byte, got %d", buf.Len())
	}
}

func TestVarint_OverflowDetection(t *testing.T) {
	// Nine continuation bytes of 0xff followed by a final byte whose payload
	// overflows 64 bits triggers ErrCodeVarintOverflow.
	raw := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	buf := graphwire.NewBufferFromBytes(raw)
	_, err := buf.ReadVarU64()
	if err == nil {
		t.Fatalf("expected overflow error")
	}
	var de *graphwire.DecodeError
	if !errors.As(err, &de) || de.Code != graphwire.ErrCodeVarintOverflow {
		t.Fatalf("got %v, want ErrCodeVarintOverflow", err)
	}
}

func TestVarint_U16OverflowOnTooLargeValue(t *testing.T) {
	buf := graphwire.NewBuffer()
	buf.WriteVarU64(1 << 20)
	buf.SetBytes(buf.Bytes())
	_, err := buf.ReadVarU16()
	if err == nil {
		t.Fatalf("expected overflow reading a 1<<20 value into a 16-bit width")
	}
}
