package todo

import "github.com/zoobzio/eddy"

// Derivation functions: pure, stateless transforms of a collection snapshot
// into derived views. None of them mutate the snapshot they receive; results
// are fresh slices or scalars.

// VisibleItems returns the sub-sequence of snapshot matching v, preserving
// order. Panics with ErrInvalidVisibility for values outside the
// enumeration.
func VisibleItems(snapshot []Item, v Visibility) []Item {
	var pred func(Item) bool
	switch v {
	case ShowAll:
		out := make([]Item, len(snapshot))
		copy(out, snapshot)
		return out
	case ShowActive:
		pred = func(i Item) bool { return !i.Complete }
	case ShowCompleted:
		pred = func(i Item) bool { return i.Complete }
	default:
		panic(ErrInvalidVisibility)
	}

	out := make([]Item, 0, len(snapshot))
	for _, item := range snapshot {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// AllComplete reports whether every item in the snapshot is complete.
// True for an empty snapshot.
func AllComplete(snapshot []Item) bool {
	return eddy.All(snapshot, func(i Item) bool { return i.Complete })
}

// HasCompleted reports whether the snapshot contains at least one complete
// item.
func HasCompleted(snapshot []Item) bool {
	return eddy.Any(snapshot, func(i Item) bool { return i.Complete })
}

// CountActive returns the number of incomplete items in the snapshot.
func CountActive(snapshot []Item) int {
	return eddy.Count(snapshot, func(i Item) bool { return !i.Complete })
}

// CountComplete returns the number of complete items in the snapshot.
func CountComplete(snapshot []Item) int {
	return eddy.Count(snapshot, func(i Item) bool { return i.Complete })
}

// CompletedIDs returns the ids of every complete item in the snapshot, in
// snapshot order. These are exactly the ids a clear-completed trigger
// deletes.
func CompletedIDs(snapshot []Item) []string {
	return eddy.Fold(snapshot, []string(nil), func(ids []string, i Item) []string {
		if i.Complete {
			return append(ids, i.ID)
		}
		return ids
	})
}

// ToggleAllBatch computes the update batch for a toggle-all trigger.
//
// If every item is already complete, the batch is the full snapshot with
// completion forced to false. Otherwise the batch contains only the
// currently incomplete items with completion forced to true; items that are
// already complete are left out of the batch entirely. The asymmetry is
// deliberate: toggling a mixed collection completes the stragglers without
// touching finished items.
func ToggleAllBatch(snapshot []Item) []Item {
	if AllComplete(snapshot) {
		batch := make([]Item, len(snapshot))
		for i, item := range snapshot {
			item.Complete = false
			batch[i] = item
		}
		return batch
	}

	batch := make([]Item, 0, len(snapshot))
	for _, item := range snapshot {
		if item.Complete {
			continue
		}
		item.Complete = true
		batch = append(batch, item)
	}
	return batch
}
