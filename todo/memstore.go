package todo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zoobzio/eddy"
)

// MemoryStore is an in-process Store. Mutations take effect immediately and
// the live collection re-emits synchronously, in the mutating call's
// context, which makes it the deterministic store for tests and examples.
type MemoryStore struct {
	mu    sync.Mutex
	items []Item
	index map[string]int

	live *eddy.Behavior[[]Item]
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[string]int),
		live:  eddy.NewBehavior([]Item(nil)),
	}
}

// Live returns the live-collection stream. The current collection is
// delivered immediately on subscribe; every mutation delivers a fresh
// snapshot copy.
func (s *MemoryStore) Live() eddy.Source[[]Item] {
	return s.live
}

// Add inserts item at the end of the collection. An empty ID is assigned a
// generated one. Returns an error if the ID already exists.
func (s *MemoryStore) Add(_ context.Context, item Item) error {
	s.mu.Lock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if _, ok := s.index[item.ID]; ok {
		s.mu.Unlock()
		return fmt.Errorf("todo: duplicate item id %q", item.ID)
	}
	s.index[item.ID] = len(s.items)
	s.items = append(s.items, item)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.live.Send(snapshot)
}

// Update replaces the item with the same ID, keeping its position.
func (s *MemoryStore) Update(_ context.Context, item Item) error {
	s.mu.Lock()
	i, ok := s.index[item.ID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("todo: unknown item id %q", item.ID)
	}
	s.items[i] = item
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.live.Send(snapshot)
}

// Delete removes the items with the given ids, preserving the order of the
// remaining items. Unknown ids are ignored.
func (s *MemoryStore) Delete(_ context.Context, ids []string) error {
	s.mu.Lock()
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := s.items[:0]
	for _, item := range s.items {
		if _, gone := drop[item.ID]; !gone {
			kept = append(kept, item)
		}
	}
	s.items = kept

	s.index = make(map[string]int, len(s.items))
	for i, item := range s.items {
		s.index[item.ID] = i
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.live.Send(snapshot)
}

// Snapshot returns a copy of the current collection.
func (s *MemoryStore) Snapshot() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked copies the collection; emitted snapshots must be immutable
// per emission, so subscribers never see later mutations.
func (s *MemoryStore) snapshotLocked() []Item {
	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
