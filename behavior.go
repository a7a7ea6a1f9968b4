package eddy

import "sync"

// Behavior is a replay-one channel: it always holds a current value, seeded
// at construction, and replays it synchronously to every new subscriber
// before Subscribe returns. The current value is replaced on every Send and
// is never absent after construction.
//
// Behavior is the only place persistent in-memory state lives in a graph:
// everything else is a pure function of the values flowing through it.
type Behavior[T any] struct {
	ch  Channel[T]
	mu  sync.RWMutex
	cur T
}

// NewBehavior creates a behavior holding seed as its current value.
func NewBehavior[T any](seed T) *Behavior[T] {
	return &Behavior[T]{cur: seed}
}

// Value returns the current value.
func (b *Behavior[T]) Value() T {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cur
}

// Send replaces the current value and delivers v to every subscriber
// synchronously before returning. Returns ErrClosed after Close.
func (b *Behavior[T]) Send(v T) error {
	if b.ch.isClosed() {
		return ErrClosed
	}
	b.mu.Lock()
	b.cur = v
	b.mu.Unlock()
	return b.ch.Send(v)
}

// Subscribe registers fn and immediately delivers the current value to it,
// synchronously, before returning. Future Sends are delivered as usual.
func (b *Behavior[T]) Subscribe(fn func(T)) *Subscription {
	sub := b.ch.Subscribe(fn)
	fn(b.Value())
	return sub
}

// Close disposes the behavior. The current value remains readable via Value.
func (b *Behavior[T]) Close() {
	b.ch.Close()
}
