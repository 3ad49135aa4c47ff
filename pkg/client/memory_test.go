package client

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := store.Put(ctx, Record{
		Name:         "John Smith",
		Address:      "1 Example St, Hornsby NSW",
		MatterNumber: "M-001",
		Court:        "Hornsby",
		MatterType:   "Defended Hearing",
		Charges:      "Common Assault - s61 Crimes Act",
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Put did not assign an id")
	}

	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreListSortsByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, name := range []string{"Zane Doe", "Amy Wong", "John Smith"} {
		if _, err := store.Put(ctx, Record{Name: name}); err != nil {
			t.Fatalf("Put(%s): %v", name, err)
		}
	}

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, rec := range recs {
		names = append(names, rec.Name)
	}
	want := []string{"Amy Wong", "John Smith", "Zane Doe"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("List order mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreLetterHistory(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	rec, err := store.Put(ctx, Record{Name: "John Smith"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := store.AppendLetter(ctx, rec.ID, Letter{Type: "CCL", Date: "2025-01-10"}); err != nil {
		t.Fatalf("AppendLetter: %v", err)
	}
	if err := store.AppendLetter(ctx, rec.ID, Letter{Type: "Mention", Date: "2025-02-01"}); err != nil {
		t.Fatalf("AppendLetter: %v", err)
	}
	if err := store.MarkLetterSent(ctx, rec.ID, "CCL"); err != nil {
		t.Fatalf("MarkLetterSent: %v", err)
	}

	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := []Letter{
		{Type: "CCL", Date: "2025-01-10", Sent: true},
		{Type: "Mention", Date: "2025-02-01"},
	}
	if diff := cmp.Diff(want, got.Letters); diff != "" {
		t.Fatalf("letter history mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreMarkLetterSentMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	rec, err := store.Put(ctx, Record{Name: "John Smith"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.MarkLetterSent(ctx, rec.ID, "CCL"); err == nil {
		t.Fatal("MarkLetterSent should fail with no matching letter")
	}
	if err := store.AppendLetter(ctx, "nope", Letter{Type: "CCL"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AppendLetter error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	rec, err := store.Put(ctx, Record{Name: "John Smith"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.AppendLetter(ctx, rec.ID, Letter{Type: "CCL"}); err != nil {
		t.Fatalf("AppendLetter: %v", err)
	}

	got, _ := store.Get(ctx, rec.ID)
	got.Letters[0].Sent = true
	got.Name = "mutated"

	fresh, _ := store.Get(ctx, rec.ID)
	if fresh.Letters[0].Sent || fresh.Name != "John Smith" {
		t.Fatal("Get returned a record sharing state with the store")
	}
}
