package todo

import (
	"context"
	"fmt"

	"github.com/zoobzio/pipz"
)

// Op identifies a store mutation kind.
type Op string

// Mutation operations dispatched by the bloc.
const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Mutation carries one store mutation through the dispatch pipeline.
// Middleware installed via bloc options can observe, enrich, retry, or
// reject it before it reaches the store.
type Mutation struct {
	// Op selects which store operation to invoke.
	Op Op

	// Item is the payload for OpAdd and OpUpdate.
	Item Item

	// IDs is the payload for OpDelete.
	IDs []string
}

// storeTerminal returns the final pipeline stage: the actual store call.
func storeTerminal(store Store) pipz.Chainable[*Mutation] {
	return pipz.Effect("store", func(ctx context.Context, m *Mutation) error {
		switch m.Op {
		case OpAdd:
			return store.Add(ctx, m.Item)
		case OpUpdate:
			return store.Update(ctx, m.Item)
		case OpDelete:
			return store.Delete(ctx, m.IDs)
		default:
			return fmt.Errorf("todo: unknown mutation op %q", m.Op)
		}
	})
}
