package eddy

// Map derives a channel that transforms every emission of src through fn.
// Exactly one emission is produced per upstream emission, in upstream order.
// fn must be pure. Closing the derived channel cancels the upstream
// subscription.
func Map[T, R any](src Source[T], fn func(T) R) *Channel[R] {
	out := NewChannel[R]()
	sub := src.Subscribe(func(v T) {
		_ = out.Send(fn(v)) //nolint:errcheck // Closed derived channels drop emissions
	})
	out.deferClose(sub.Cancel)
	return out
}

// Where derives a channel that forwards only the emissions of src matching
// pred. pred must be pure.
func Where[T any](src Source[T], pred func(T) bool) *Channel[T] {
	out := NewChannel[T]()
	sub := src.Subscribe(func(v T) {
		if pred(v) {
			_ = out.Send(v) //nolint:errcheck // Closed derived channels drop emissions
		}
	})
	out.deferClose(sub.Cancel)
	return out
}
