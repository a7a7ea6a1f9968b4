package eddy

import "sync"

// CombineLatest2 derives a channel that emits fn(a, b) every time either
// source emits, pairing the triggering value with the most recent value seen
// from the other source. Nothing is emitted until both sources have emitted
// at least once; a Behavior source counts its seed as that first emission,
// delivered during subscription. Each triggering event produces its own
// combined emission, even within a single synchronous cascade.
func CombineLatest2[A, B, R any](a Source[A], b Source[B], fn func(A, B) R) *Channel[R] {
	out := NewChannel[R]()

	var (
		mu         sync.Mutex
		lastA      A
		lastB      B
		hasA, hasB bool
	)

	subA := a.Subscribe(func(v A) {
		mu.Lock()
		lastA, hasA = v, true
		other, ready := lastB, hasB
		mu.Unlock()
		if ready {
			_ = out.Send(fn(v, other)) //nolint:errcheck // Closed derived channels drop emissions
		}
	})
	subB := b.Subscribe(func(v B) {
		mu.Lock()
		lastB, hasB = v, true
		other, ready := lastA, hasA
		mu.Unlock()
		if ready {
			_ = out.Send(fn(other, v)) //nolint:errcheck // Closed derived channels drop emissions
		}
	})

	out.deferClose(subA.Cancel)
	out.deferClose(subB.Cancel)
	return out
}
