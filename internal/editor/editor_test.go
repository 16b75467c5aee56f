package editor

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// item is a minimal collection element for exercising the session.
type item struct {
	ID    string
	Title string
}

func (i item) Clone() item { return i }

func finalizeItem(i item) item {
	i.Title = strings.TrimSpace(i.Title)
	if i.ID == "" {
		i.ID = strings.ToLower(strings.ReplaceAll(i.Title, " ", "-"))
	}
	return i
}

func validateItem(i item) []string {
	var errs []string
	if i.ID == "" {
		errs = append(errs, "ID is required")
	}
	if i.Title == "" {
		errs = append(errs, "Title is required")
	}
	return errs
}

func newTestSession() *Session[item] {
	return NewSession(finalizeItem, validateItem)
}

func TestCommitAddAppends(t *testing.T) {
	s := newTestSession()
	items := []item{{ID: "a", Title: "A"}}

	s.BeginAdd(item{})
	s.SetDraft(item{Title: "New Thing"})

	got, err := s.Commit(items)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	want := []item{{ID: "a", Title: "A"}, {ID: "new-thing", Title: "New Thing"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("items = %v, want %v", got, want)
	}
	if len(items) != 1 {
		t.Error("input slice was mutated")
	}
	if s.Mode() != ModeIdle {
		t.Errorf("mode = %v, want idle after commit", s.Mode())
	}
}

func TestCommitEditReplacesInPlace(t *testing.T) {
	s := newTestSession()
	items := []item{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"}}

	if err := s.BeginEdit(items, 1); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	draft, ok := s.Draft()
	if !ok {
		t.Fatal("expected an open draft")
	}
	draft.Title = "B changed"
	s.SetDraft(draft)

	got, err := s.Commit(items)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got[1].Title != "B changed" {
		t.Errorf("items[1].Title = %q, want the edit", got[1].Title)
	}
	if got[0].ID != "a" || got[2].ID != "c" {
		t.Error("neighbouring items changed")
	}
	if items[1].Title != "B" {
		t.Error("editing the draft leaked into the original slice")
	}
}

func TestCommitInvalidKeepsDraftOpen(t *testing.T) {
	s := newTestSession()
	s.BeginAdd(item{})

	_, err := s.Commit(nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	want := []string{"ID is required", "Title is required"}
	if !reflect.DeepEqual(verr.Problems, want) {
		t.Errorf("Problems = %v, want %v", verr.Problems, want)
	}
	if s.Mode() != ModeAdding {
		t.Errorf("mode = %v, want draft still open after failed commit", s.Mode())
	}

	// Fixing the draft lets the retry succeed.
	s.SetDraft(item{Title: "Fixed"})
	got, err := s.Commit(nil)
	if err != nil {
		t.Fatalf("retry Commit: %v", err)
	}
	if len(got) != 1 || got[0].ID != "fixed" {
		t.Errorf("items = %v, want the fixed item", got)
	}
}

func TestCommitWithoutDraft(t *testing.T) {
	s := newTestSession()
	if _, err := s.Commit(nil); !errors.Is(err, ErrNoDraft) {
		t.Errorf("err = %v, want ErrNoDraft", err)
	}
}

func TestBeginEditOutOfRange(t *testing.T) {
	s := newTestSession()
	items := []item{{ID: "a"}}
	for _, idx := range []int{-1, 1, 5} {
		if err := s.BeginEdit(items, idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("BeginEdit(%d): err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	s := newTestSession()
	items := []item{{ID: "a", Title: "A"}}

	if err := s.BeginEdit(items, 0); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	s.SetDraft(item{ID: "a", Title: "mangled"})
	s.Cancel()

	if _, ok := s.Draft(); ok {
		t.Error("draft should be gone after Cancel")
	}
	if items[0].Title != "A" {
		t.Error("Cancel must leave the collection untouched")
	}
	if _, err := s.Commit(items); !errors.Is(err, ErrNoDraft) {
		t.Errorf("Commit after Cancel: err = %v, want ErrNoDraft", err)
	}
}

func TestResolveDeleteConfirmed(t *testing.T) {
	s := newTestSession()
	items := []item{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	if err := s.RequestDelete(items, 0); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	got, removed := s.ResolveDelete(items, func() bool { return true })
	if !removed {
		t.Fatal("expected the item to be removed")
	}
	want := []item{{ID: "b"}, {ID: "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("items = %v, want %v", got, want)
	}
	if len(items) != 3 {
		t.Error("input slice was mutated")
	}
}

func TestResolveDeleteDeclined(t *testing.T) {
	s := newTestSession()
	items := []item{{ID: "a"}, {ID: "b"}}

	if err := s.RequestDelete(items, 1); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	got, removed := s.ResolveDelete(items, func() bool { return false })
	if removed {
		t.Error("declined delete must not remove anything")
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("items = %v, want unchanged", got)
	}
	if s.Mode() != ModeIdle {
		t.Errorf("mode = %v, want idle after declined delete", s.Mode())
	}
}

func TestResolveDeleteWithoutRequest(t *testing.T) {
	s := newTestSession()
	items := []item{{ID: "a"}}
	got, removed := s.ResolveDelete(items, func() bool { return true })
	if removed || !reflect.DeepEqual(got, items) {
		t.Error("ResolveDelete without a pending request must be a no-op")
	}
}

func TestRequestDeleteOutOfRange(t *testing.T) {
	s := newTestSession()
	if err := s.RequestDelete([]item{{ID: "a"}}, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestBeginAddReplacesPendingState(t *testing.T) {
	s := newTestSession()
	items := []item{{ID: "a"}}

	if err := s.RequestDelete(items, 0); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	s.BeginAdd(item{Title: "Fresh"})

	if s.Mode() != ModeAdding {
		t.Errorf("mode = %v, want adding", s.Mode())
	}
	if got, removed := s.ResolveDelete(items, func() bool { return true }); removed || len(got) != 1 {
		t.Error("stale delete request must not survive BeginAdd")
	}
}

func TestNilHooksAreOptional(t *testing.T) {
	s := NewSession[item](nil, nil)
	s.BeginAdd(item{Title: " raw "})
	got, err := s.Commit(nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got[0].Title != " raw " {
		t.Errorf("Title = %q, nil finalize must pass the draft through", got[0].Title)
	}
}
