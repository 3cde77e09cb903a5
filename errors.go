// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphwire

import "fmt"

// DecodeErrorCode is a stable, distinct discriminant for a decode failure
// site. The source this engine is modeled on uses the source-line number of
// the failing check as its diagnostic code; a named constant per failure
// site gives the same "every distinct failure produces a distinct code"
// guarantee without depending on line numbers staying put across edits.
type DecodeErrorCode uint32

const (
	// ErrCodeTruncated means the buffer ran out of bytes before a value
	// could be fully decoded.
	ErrCodeTruncated DecodeErrorCode = iota + 1
	// ErrCodeVarintOverflow means a variable-length integer's continuation
	// bit was still set after the target width was exhausted.
	ErrCodeVarintOverflow
	// ErrCodeUnknownType means a polymorphic reference named a type id with
	// no registered factory.
	ErrCodeUnknownType
	// ErrCodeSlotOutOfRange means a back-reference slot number exceeded the
	// legal range [1, map_size+1].
	ErrCodeSlotOutOfRange
	// ErrCodeTypeMismatch means a concrete target type was specified for a
	// read and the decoded type id did not match it.
	ErrCodeTypeMismatch
	// ErrCodeNullReference means a null was decoded where a non-nullable
	// value was required: a null root in ReadRoot, or a create for type id 0.
	// The container readers do not produce it; a null shared reference read
	// as a map value or sequence element decodes as nil.
	ErrCodeNullReference
	// ErrCodeInvalidPosition means SetPosition was asked to move the cursor
	// past the end of the buffer.
	ErrCodeInvalidPosition
	// ErrCodeCollectionTooLarge means a decoded element count exceeded the
	// configured WithMaxCollectionLen bound.
	ErrCodeCollectionTooLarge
	// ErrCodeReservedTypeID means code attempted to register type id 0,
	// which is reserved on the wire to mean "null".
	ErrCodeReservedTypeID
)

var codeNames = map[DecodeErrorCode]string{
	ErrCodeTruncated:          "truncated buffer",
	ErrCodeVarintOverflow:     "variable-length integer overflow",
	ErrCodeUnknownType:        "unregistered type id",
	ErrCodeSlotOutOfRange:     "slot number out of range",
	ErrCodeTypeMismatch:       "type id mismatch",
	ErrCodeNullReference:      "unexpected null reference",
	ErrCodeInvalidPosition:    "cursor position out of range",
	ErrCodeCollectionTooLarge: "collection exceeds configured maximum",
	ErrCodeReservedTypeID:     "type id 0 is reserved for null",
}

// DecodeError is the diagnostic surfaced by a failed read. It carries a
// stable [DecodeErrorCode] plus a human-readable detail string; callers that
// want to branch on the failure category should compare against the
// sentinel codes with errors.Is, not parse Error().
type DecodeError struct {
	Code   DecodeErrorCode
	Detail string
}

func (e *DecodeError) Error() string {
	name := codeNames[e.Code]
	if name == "" {
		name = "decode error"
	}
	if e.Detail == "" {
		return fmt.Sprintf("graphwire: %s", name)
	}
	return fmt.Sprintf("graphwire: %s: %s", name, e.Detail)
}

// Is reports whether target is a *DecodeError with the same code, so that
// errors.Is(err, &DecodeError{Code: ErrCodeUnknownType}) works without
// requiring the detail string to match.
func (e *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return other.Code == e.Code
}

func newDecodeError(code DecodeErrorCode, detail string) *DecodeError {
	return &DecodeError{Code: code, Detail: detail}
}

func errTruncated(detail string) *DecodeError {
	return newDecodeError(ErrCodeTruncated, detail)
}

func errVarintOverflow() *DecodeError {
	return newDecodeError(ErrCodeVarintOverflow, "continuation bit set past target width")
}

func errUnknownType(id TypeID) *DecodeError {
	return newDecodeError(ErrCodeUnknownType, fmt.Sprintf("type id %d is not registered", id))
}

func errSlotOutOfRange(slot, mapSize uint32) *DecodeError {
	return newDecodeError(ErrCodeSlotOutOfRange, fmt.Sprintf("slot %d out of range for map size %d", slot, mapSize))
}

func errTypeMismatch(want, got TypeID) *DecodeError {
	return newDecodeError(ErrCodeTypeMismatch, fmt.Sprintf("expected type id %d, got %d", want, got))
}

func errNullReference(detail string) *DecodeError {
	return newDecodeError(ErrCodeNullReference, detail)
}

func errInvalidPosition(off, length int) *DecodeError {
	return newDecodeError(ErrCodeInvalidPosition, fmt.Sprintf("position %d exceeds length %d", off, length))
}

func errCollectionTooLarge(n uint64, max int) *DecodeError {
	return newDecodeError(ErrCodeCollectionTooLarge, fmt.Sprintf("count %d exceeds maximum %d", n, max))
}

func errReservedTypeID() *DecodeError {
	return newDecodeError(ErrCodeReservedTypeID, "type id 0 is reserved for null references")
}
