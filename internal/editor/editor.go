// Package editor implements the dialog-style editing flow shared by every
// collection in the admin panel: open a draft (blank or copied from an
// existing item), mutate it freely, then commit it back in one step, with
// deletes gated behind an explicit confirmation.
//
// A Session never mutates the slice it is given. Commit and delete return
// a fresh slice, so callers can keep the previous version until the new
// one is persisted.
package editor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoDraft is returned when Commit is called with no open draft.
	ErrNoDraft = errors.New("no draft in progress")
	// ErrIndexOutOfRange is returned for an edit or delete index that
	// does not point at an existing item.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ValidationError carries the draft's validation problems, in the order
// the validator reported them.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft is invalid: %s", strings.Join(e.Problems, ", "))
}

// Cloner is satisfied by collection items that can deep-copy themselves.
// Editing works on the copy, so cancelling a session can never leave a
// half-edited item behind.
type Cloner[T any] interface {
	Clone() T
}

// Mode is the session's current dialog state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAdding
	ModeEditing
	ModeConfirmingDelete
)

func (m Mode) String() string {
	switch m {
	case ModeAdding:
		return "adding"
	case ModeEditing:
		return "editing"
	case ModeConfirmingDelete:
		return "confirming-delete"
	default:
		return "idle"
	}
}

// Session drives one collection's add/edit/delete dialog. The zero value
// is not usable; construct with NewSession.
type Session[T Cloner[T]] struct {
	finalize func(T) T
	validate func(T) []string

	mode  Mode
	draft T
	index int
}

// NewSession returns an idle session. finalize runs on the draft right
// before validation (trimming, deriving ids); validate returns the
// problems that block a commit. Either hook may be nil.
func NewSession[T Cloner[T]](finalize func(T) T, validate func(T) []string) *Session[T] {
	if finalize == nil {
		finalize = func(v T) T { return v }
	}
	if validate == nil {
		validate = func(T) []string { return nil }
	}
	return &Session[T]{finalize: finalize, validate: validate, index: -1}
}

// Mode reports the session's current state.
func (s *Session[T]) Mode() Mode { return s.mode }

// Draft returns the open draft, or false when no add or edit is open.
func (s *Session[T]) Draft() (T, bool) {
	if s.mode != ModeAdding && s.mode != ModeEditing {
		var zero T
		return zero, false
	}
	return s.draft, true
}

// SetDraft replaces the open draft. A no-op when no draft is open.
func (s *Session[T]) SetDraft(draft T) {
	if s.mode == ModeAdding || s.mode == ModeEditing {
		s.draft = draft
	}
}

// BeginAdd opens a draft seeded from def. Any previous session state is
// discarded.
func (s *Session[T]) BeginAdd(def T) {
	s.mode = ModeAdding
	s.draft = def
	s.index = -1
}

// BeginEdit opens a draft copied from items[index]. The original item is
// untouched until Commit.
func (s *Session[T]) BeginEdit(items []T, index int) error {
	if index < 0 || index >= len(items) {
		return fmt.Errorf("edit item %d of %d: %w", index, len(items), ErrIndexOutOfRange)
	}
	s.mode = ModeEditing
	s.draft = items[index].Clone()
	s.index = index
	return nil
}

// Cancel discards the draft and returns the session to idle. The
// collection is never touched.
func (s *Session[T]) Cancel() {
	var zero T
	s.mode = ModeIdle
	s.draft = zero
	s.index = -1
}

// Commit finalizes and validates the draft, then folds it into items:
// appended when adding, replacing the edited slot otherwise. On success
// the session resets to idle; on validation failure the draft stays open
// so the caller can fix it and retry.
func (s *Session[T]) Commit(items []T) ([]T, error) {
	if s.mode != ModeAdding && s.mode != ModeEditing {
		return nil, ErrNoDraft
	}
	final := s.finalize(s.draft)
	if problems := s.validate(final); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	var out []T
	switch s.mode {
	case ModeAdding:
		out = make([]T, 0, len(items)+1)
		out = append(out, items...)
		out = append(out, final)
	case ModeEditing:
		if s.index < 0 || s.index >= len(items) {
			return nil, fmt.Errorf("commit edit of item %d of %d: %w", s.index, len(items), ErrIndexOutOfRange)
		}
		out = make([]T, len(items))
		copy(out, items)
		out[s.index] = final
	}

	s.Cancel()
	return out, nil
}

// RequestDelete marks items[index] for deletion, pending confirmation.
func (s *Session[T]) RequestDelete(items []T, index int) error {
	if index < 0 || index >= len(items) {
		return fmt.Errorf("delete item %d of %d: %w", index, len(items), ErrIndexOutOfRange)
	}
	s.mode = ModeConfirmingDelete
	s.index = index
	return nil
}

// ResolveDelete settles a pending delete. When confirm returns true the
// marked item is removed, preserving the order of the rest; otherwise the
// collection is returned unchanged. Either way the session goes idle.
// The removed flag reports whether an item was actually dropped.
func (s *Session[T]) ResolveDelete(items []T, confirm func() bool) (out []T, removed bool) {
	if s.mode != ModeConfirmingDelete {
		return items, false
	}
	index := s.index
	s.Cancel()

	if confirm == nil || !confirm() {
		return items, false
	}
	if index < 0 || index >= len(items) {
		return items, false
	}
	out = make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, true
}
