package todo

import "github.com/zoobzio/capitan"

// Field keys for bloc and store events.
var (
	// KeyOp is the mutation operation being dispatched.
	KeyOp = capitan.NewStringKey("op")

	// KeyItemID is the id of the item involved in a mutation.
	KeyItemID = capitan.NewStringKey("item_id")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyVisibility is the active visibility after a change.
	KeyVisibility = capitan.NewStringKey("visibility")

	// KeyCount is the number of items in a snapshot or batch.
	KeyCount = capitan.NewIntKey("count")

	// KeyPath is the backing file path of a file store.
	KeyPath = capitan.NewStringKey("path")
)
