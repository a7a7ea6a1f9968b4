package eddy

import "sync/atomic"

// SwitchMap derives a channel that, on every emission of trigger, computes
// project(v) as a synchronous snapshot read and forwards the result. Only
// the projection belonging to the most recent trigger is delivered: if the
// projection itself causes the trigger to fire again re-entrantly, the
// superseded outer projection is abandoned. Staleness is decided by a
// monotonically increasing trigger sequence number compared at delivery
// time.
func SwitchMap[T, R any](trigger Source[T], project func(T) R) *Channel[R] {
	out := NewChannel[R]()

	var seq atomic.Uint64
	sub := trigger.Subscribe(func(v T) {
		mine := seq.Add(1)
		r := project(v)
		if seq.Load() != mine {
			// A newer trigger fired while projecting; drop this result.
			return
		}
		_ = out.Send(r) //nolint:errcheck // Closed derived channels drop emissions
	})

	out.deferClose(sub.Cancel)
	return out
}
