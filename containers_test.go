// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire_test

import (
	"testing"

	"code.hybscloud.com/graphwire"
)

func TestContainers_OptionalStringPresentAndAbsent(t *testing.T) {
	mgr := graphwire.NewManager()
	s := "hello"

	buf := graphwire.NewBuffer()
	graphwire.WriteOptionalString(buf, mgr, &s)
	graphwire.WriteOptionalString(buf, mgr, nil)
	buf.SetBytes(buf.Bytes())

	got, err := graphwire.ReadOptionalString(buf, mgr)
	if err != nil || got == nil || *got != s {
		t.Fatalf("got %v, %v; want %q", got, err, s)
	}
	got, err = graphwire.ReadOptionalString(buf, mgr)
	if err != nil || got != nil {
		t.Fatalf("got %v, %v; want nil", got, err)
	}
}

func TestContainers_SequenceRoundTrip(t *testing.T) {
	mgr := graphwire.NewManager()
	buf := graphwire.NewBuffer()
	items := []int32{1, 2, 3, 4, 5}
	graphwire.WriteSequence(buf, mgr, items, func(buf *graphwire.Buffer, _ *graphwire.Manager, v int32) {
		buf.WriteVarI32(v)
	})
	buf.SetBytes(buf.Bytes())

	got, err := graphwire.ReadSequence(buf, mgr, func(buf *graphwire.Buffer, _ *graphwire.Manager) (int32, error) {
		return buf.ReadVarI32()
	})
	if err != nil {
		t.Fatalf("ReadSequence: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("got %v, want %v", got, items)
	}
	for i := range items {
		if got[i] != items[i] {
			t.Fatalf("got %v, want %v", got, items)
		}
	}
}

func TestContainers_SequenceRejectsOversizedCount(t *testing.T) {
	mgr := graphwire.NewManager(graphwire.WithMaxCollectionLen(2))
	buf := graphwire.NewBuffer()
	graphwire.WriteSequence(buf, mgr, []int32{1, 2, 3}, func(buf *graphwire.Buffer, _ *graphwire.Manager, v int32) {
		buf.WriteVarI32(v)
	})
	buf.SetBytes(buf.Bytes())

	_, err := graphwire.ReadSequence(buf, mgr, func(buf *graphwire.Buffer, _ *graphwire.Manager) (int32, error) {
		return buf.ReadVarI32()
	})
	if err == nil {
		t.Fatalf("expected ErrCodeCollectionTooLarge")
	}
}

func TestContainers_HashMapRoundTrip(t *testing.T) {
	mgr := graphwire.NewManager()
	buf := graphwire.NewBuffer()
	m := map[int32]string{1: "one", 2: "two", 3: "three"}
	graphwire.WriteHashMap(buf, mgr, m,
		func(buf *graphwire.Buffer, _ *graphwire.Manager, k int32) { buf.WriteVarI32(k) },
		func(buf *graphwire.Buffer, mgr *graphwire.Manager, v string) { mgr.WriteFieldString(buf, v) },
	)
	buf.SetBytes(buf.Bytes())

	got, err := graphwire.ReadHashMap(buf, mgr,
		func(buf *graphwire.Buffer, _ *graphwire.Manager) (int32, error) { return buf.ReadVarI32() },
		func(buf *graphwire.Buffer, mgr *graphwire.Manager) (string, error) { return mgr.ReadFieldString(buf) },
	)
	if err != nil {
		t.Fatalf("ReadHashMap: %v", err)
	}
	if len(got) != len(m) {
		t.Fatalf("got %v, want %v", got, m)
	}
	for k, v := range m {
		if got[k] != v {
			t.Fatalf("got[%d] = %q, want %q", k, got[k], v)
		}
	}
}

func TestContainers_OrderedMapAscendingIteration(t *testing.T) {
	om := graphwire.NewOrderedMap[int64, string]()
	om.Set(5, "five")
	om.Set(1, "one")
	om.Set(3, "three")

	var keys []int64
	om.Ascend(func(k int64, v string) bool {
		keys = append(keys, k)
		return true
	})
	want := []int64{1, 3, 5}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}

	v, ok := om.Get(3)
	if !ok || v != "three" {
		t.Fatalf("Get(3) = %q, %v; want \"three\", true", v, ok)
	}
	if om.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", om.Len())
	}
}

func TestContainers_OrderedMapRoundTrip(t *testing.T) {
	mgr := graphwire.NewManager()
	src := graphwire.NewOrderedMap[int64, int32]()
	src.Set(2, 20)
	src.Set(1, 10)
	src.Set(3, 30)

	buf := graphwire.NewBuffer()
	graphwire.WriteOrderedMap(buf, mgr, src,
		func(buf *graphwire.Buffer, _ *graphwire.Manager, k int64) { buf.WriteVarI64(k) },
		func(buf *graphwire.Buffer, _ *graphwire.Manager, v int32) { buf.WriteVarI32(v) },
	)
	buf.SetBytes(buf.Bytes())

	got, err := graphwire.ReadOrderedMap(buf, mgr,
		func(buf *graphwire.Buffer, _ *graphwire.Manager) (int64, error) { return buf.ReadVarI64() },
		func(buf *graphwire.Buffer, _ *graphwire.Manager) (int32, error) { return buf.ReadVarI32() },
	)
	if err != nil {
		t.Fatalf("ReadOrderedMap: %v", err)
	}
	var keys []int64
	got.Ascend(func(k int64, v int32) bool {
		keys = append(keys, k)
		return true
	})
	want := []int64{1, 2, 3}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}
