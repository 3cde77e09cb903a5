// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire_test

import (
	"errors"
	"strings"
	"testing"

	"code.hybscloud.com/graphwire"
)

func TestDecodeError_IsMatchesByCodeOnly(t *testing.T) {
	err := &graphwire.DecodeError{Code: graphwire.ErrCodeUnknownType, Detail: "type id 9 is not registered"}
	target := &graphwire.DecodeError{Code: graphwire.ErrCodeUnknownType}
	if !errors.Is(err, target) {
		t.Fatalf("errors.Is should match on Code alone, ignoring Detail")
	}

	other := &graphwire.DecodeError{Code: graphwire.ErrCodeTruncated}
	if errors.Is(err, other) {
		t.Fatalf("errors.Is should not match a different Code")
	}
}

func TestDecodeError_ErrorStringIncludesDetail(t *testing.T) {
	err := &graphwire.DecodeError{Code: graphwire.ErrCodeSlotOutOfRange, Detail: "slot 9 out of range for map size 2"}
	msg := err.Error()
	if msg == "" {
		t.Fatalf("expected non-empty error message")
	}
	if !strings.Contains(msg, err.Detail) {
		t.Fatalf("Error() = %q, want it to include detail %q", msg, err.Detail)
	}
}

func TestManager_ReadRootRejectsNullRoot(t *testing.T) {
	mgr := graphwire.NewManager()
	buf := graphwire.NewBuffer()
	buf.WriteVarU16(0) // null type id
	buf.SetBytes(buf.Bytes())

	_, err := mgr.ReadRoot(buf)
	if err == nil {
		t.Fatalf("expected ErrCodeNullReference for a null root")
	}
	var de *graphwire.DecodeError
	if !errors.As(err, &de) || de.Code != graphwire.ErrCodeNullReference {
		t.Fatalf("got %v, want ErrCodeNullReference", err)
	}
}

func TestManager_ReadSharedTypeMismatch(t *testing.T) {
	mgr := graphwire.NewManager()
	if err := mgr.Register(typeIDBase, newBase); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := mgr.Register(typeIDFly, newFly); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Encode a *Base as a root, then try to decode it as a *Fly.
	buf := graphwire.NewBuffer()
	mgr.WriteRoot(buf, &Base{ID: 1, Name: "x"})
	buf.SetBytes(buf.Bytes())

	_, err := graphwire.ReadShared[Fly](buf, mgr)
	if err == nil {
		t.Fatalf("expected ErrCodeTypeMismatch")
	}
	var de *graphwire.DecodeError
	if !errors.As(err, &de) || de.Code != graphwire.ErrCodeTypeMismatch {
		t.Fatalf("got %v, want ErrCodeTypeMismatch", err)
	}
}
