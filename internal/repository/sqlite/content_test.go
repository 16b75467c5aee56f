package sqlite

import (
	"context"
	"testing"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/repository"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadAbsentDomain(t *testing.T) {
	db := newTestDB(t)

	data, found, err := db.Load(context.Background(), repository.DomainBrainPop)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("found = true for a never-saved domain")
	}
	if data != nil {
		t.Errorf("data = %s, want nil", data)
	}
}

func TestSaveThenLoad(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	doc := []byte(`{"title":"BrainPop","categories":[]}`)

	if err := db.Save(ctx, repository.DomainBrainPop, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, found, err := db.Load(ctx, repository.DomainBrainPop)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("found = false after Save")
	}
	if string(data) != string(doc) {
		t.Errorf("data = %s, want %s", data, doc)
	}
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Save(ctx, repository.DomainTimePass, []byte(`{"title":"v1"}`)); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := db.Save(ctx, repository.DomainTimePass, []byte(`{"title":"v2"}`)); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	data, _, err := db.Load(ctx, repository.DomainTimePass)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != `{"title":"v2"}` {
		t.Errorf("data = %s, want the second version only", data)
	}
}

func TestDomainsAreIsolated(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Save(ctx, repository.DomainClassroom, []byte(`{"title":"Classroom"}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, found, err := db.Load(ctx, repository.DomainProfile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("saving one domain must not create another")
	}
}

func TestRevisionsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, v := range []string{`{"v":1}`, `{"v":2}`, `{"v":3}`} {
		if err := db.Save(ctx, repository.DomainGeneral, []byte(v)); err != nil {
			t.Fatalf("Save %s: %v", v, err)
		}
	}

	revs, err := db.Revisions(ctx, repository.DomainGeneral, 10)
	if err != nil {
		t.Fatalf("Revisions: %v", err)
	}
	if len(revs) != 3 {
		t.Fatalf("len(revs) = %d, want 3", len(revs))
	}
	if string(revs[0].Data) != `{"v":3}` {
		t.Errorf("revs[0].Data = %s, want the latest save first", revs[0].Data)
	}
	for _, r := range revs {
		if r.Domain != repository.DomainGeneral {
			t.Errorf("Domain = %q, want general", r.Domain)
		}
		if r.ID == "" {
			t.Error("revision without an id")
		}
	}
}

func TestRevisionsScopedToDomain(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Save(ctx, repository.DomainBrainPop, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := db.Save(ctx, repository.DomainTimePass, []byte(`{"b":2}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	revs, err := db.Revisions(ctx, repository.DomainBrainPop, 10)
	if err != nil {
		t.Fatalf("Revisions: %v", err)
	}
	if len(revs) != 1 {
		t.Errorf("len(revs) = %d, want only brainpop's revision", len(revs))
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		in   string
		want repository.Domain
		ok   bool
	}{
		{"profile", repository.DomainProfile, true},
		{"classroom", repository.DomainClassroom, true},
		{"brainpop", repository.DomainBrainPop, true},
		{"techiebites", repository.DomainTechieBites, true},
		{"timepass", repository.DomainTimePass, true},
		{"general", repository.DomainGeneral, true},
		{"snippets", "", false},
		{"", "", false},
		{"BrainPop", "", false},
	}
	for _, tt := range tests {
		got, ok := repository.ParseDomain(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDomain(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
