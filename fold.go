package eddy

// Snapshot reductions. These fold over the elements of a single snapshot,
// never over time: derived counters and flags are stateless functions of the
// latest snapshot, not running totals carried across emissions.

// Fold reduces items to a single value, left to right, starting from seed.
func Fold[T, R any](items []T, seed R, fn func(R, T) R) R {
	acc := seed
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Count returns the number of items matching pred.
func Count[T any](items []T, pred func(T) bool) int {
	return Fold(items, 0, func(n int, item T) int {
		if pred(item) {
			return n + 1
		}
		return n
	})
}

// All reports whether every item matches pred. True for an empty slice.
func All[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Any reports whether at least one item matches pred.
func Any[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}
