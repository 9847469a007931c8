package textedit

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrOutOfRange indicates an edit that does not fit the document.
	ErrOutOfRange = errors.New("edit out of range")

	// ErrOverlap indicates two edits touching the same bytes.
	ErrOverlap = errors.New("overlapping edits")
)

// RangeError describes an edit whose offsets do not fit the document.
type RangeError struct {
	Edit    Edit
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	First  Edit
	Second Edit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End,
		e.Second.Start, e.Second.End)
}

// Unwrap lets errors.Is match ErrOverlap.
func (e *ConflictError) Unwrap() error {
	return ErrOverlap
}

// Validate checks that every edit has a valid range for a document of length n.
func Validate(edits []Edit, n int) error {
	for _, edit := range edits {
		if edit.Start < 0 {
			return &RangeError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.End < edit.Start {
			return &RangeError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.End > n {
			return &RangeError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.End, n),
			}
		}
	}
	return nil
}

// Sort orders edits by start offset, then end offset.
// Inserts at the same offset keep their relative order.
func Sort(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start < edits[j].Start
		}
		return edits[i].End < edits[j].End
	})
}

// Prepare validates, sorts and checks edits for overlap.
// The input slice is not modified.
func Prepare(edits []Edit, n int) ([]Edit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	if err := Validate(edits, n); err != nil {
		return nil, err
	}

	result := make([]Edit, len(edits))
	copy(result, edits)
	Sort(result)

	for i := 1; i < len(result); i++ {
		prev, curr := result[i-1], result[i]
		if curr.Start < prev.End {
			return nil, &ConflictError{First: prev, Second: curr}
		}
	}

	return result, nil
}
