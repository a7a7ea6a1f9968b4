package todo

import (
	"context"

	"github.com/zoobzio/eddy"
)

// Store is the external collaborator that owns persisted items. The core
// never owns persisted state; it only passes transient snapshots through the
// graph.
//
// Mutations are fire-and-forget from the graph's perspective: each is
// expected to eventually cause Live to re-emit, and any resilience (retry,
// backoff, partial failure) belongs to the store, not the graph.
type Store interface {
	// Live returns the live-collection stream. It emits the full current
	// collection snapshot every time the underlying collection changes,
	// and emits the current collection immediately on subscribe. Emitted
	// snapshots are fresh copies; subscribers may retain them.
	Live() eddy.Source[[]Item]

	// Add inserts a new item.
	Add(ctx context.Context, item Item) error

	// Update replaces the item with the same ID.
	Update(ctx context.Context, item Item) error

	// Delete removes the items with the given ids.
	Delete(ctx context.Context, ids []string) error
}
