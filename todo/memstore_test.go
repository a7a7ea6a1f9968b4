package todo

import (
	"context"
	"testing"
)

func TestMemoryStore_LiveEmitsCurrentOnSubscribe(t *testing.T) {
	store := NewMemoryStore()

	emissions := 0
	store.Live().Subscribe(func(items []Item) {
		emissions++
		if len(items) != 0 {
			t.Errorf("expected empty collection, got %d items", len(items))
		}
	})

	if emissions != 1 {
		t.Fatalf("expected immediate emission on subscribe, got %d", emissions)
	}
}

func TestMemoryStore_AddEmitsSynchronously(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var last []Item
	store.Live().Subscribe(func(items []Item) {
		last = items
	})

	if err := store.Add(ctx, Item{ID: "1", Title: "first"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if len(last) != 1 || last[0].ID != "1" {
		t.Errorf("expected snapshot with item 1 delivered before Add returned, got %v", last)
	}
}

func TestMemoryStore_AddAssignsIDWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Add(ctx, Item{Title: "no id"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	items := store.Snapshot()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID == "" {
		t.Error("expected a generated id")
	}
}

func TestMemoryStore_AddDuplicateIDFails(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Add(ctx, Item{ID: "1"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Add(ctx, Item{ID: "1"}); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestMemoryStore_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, id := range []string{"1", "2", "3"} {
		if err := store.Add(ctx, Item{ID: id}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if err := store.Update(ctx, Item{ID: "2", Title: "renamed", Complete: true}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	items := store.Snapshot()
	if items[1].ID != "2" || items[1].Title != "renamed" || !items[1].Complete {
		t.Errorf("expected item 2 updated in place, got %+v", items[1])
	}
}

func TestMemoryStore_UpdateUnknownIDFails(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Update(context.Background(), Item{ID: "ghost"}); err == nil {
		t.Error("expected unknown id error")
	}
}

func TestMemoryStore_DeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, id := range []string{"1", "2", "3", "4"} {
		if err := store.Add(ctx, Item{ID: id}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if err := store.Delete(ctx, []string{"1", "3"}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	items := store.Snapshot()
	if len(items) != 2 || items[0].ID != "2" || items[1].ID != "4" {
		t.Errorf("expected [2 4], got %v", ids(items))
	}

	// Unknown ids are ignored; remaining items survive.
	if err := store.Delete(ctx, []string{"ghost"}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(store.Snapshot()) != 2 {
		t.Error("delete of unknown id must not drop items")
	}
}

func TestMemoryStore_SnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var seen [][]Item
	store.Live().Subscribe(func(items []Item) {
		seen = append(seen, items)
	})

	if err := store.Add(ctx, Item{ID: "1", Title: "original"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Update(ctx, Item{ID: "1", Title: "renamed"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// The snapshot emitted for Add must not reflect the later Update.
	addSnapshot := seen[1]
	if addSnapshot[0].Title != "original" {
		t.Errorf("earlier snapshot mutated by later update: %+v", addSnapshot[0])
	}
}
