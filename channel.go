package eddy

import (
	"sync"
	"sync/atomic"
)

// Source is the output end of a channel: anything that can be subscribed to.
// Both Channel and Behavior implement it, so combinators accept either.
type Source[T any] interface {
	// Subscribe registers a handler for future values. The returned
	// Subscription deregisters the handler when canceled.
	Subscribe(fn func(T)) *Subscription
}

// Subscription represents a registered handler on a channel.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Cancel deregisters the handler. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// subscriber pairs a handler with a removal flag. The flag is checked at
// delivery time so a handler canceled mid-cascade is not invoked again.
type subscriber[T any] struct {
	fn      func(T)
	removed atomic.Bool
}

// Channel is an ordered, single-producer delivery primitive. Send delivers
// to every current subscriber synchronously, in the calling context, before
// it returns. A plain Channel has no replay: new subscribers see only
// future values.
type Channel[T any] struct {
	mu      sync.Mutex
	subs    []*subscriber[T]
	closed  bool
	onClose []func()
}

// NewChannel creates an open channel with no subscribers.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{}
}

// Send delivers v to every current subscriber before returning.
// Handlers may themselves call Send (on this or any other channel);
// nested deliveries complete before the outer Send resumes.
// Returns ErrClosed after Close.
func (c *Channel[T]) Send(v T) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	// Deliver against a snapshot of the subscriber list so handlers can
	// subscribe, cancel, or send re-entrantly without corrupting the walk.
	subs := make([]*subscriber[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		if s.removed.Load() {
			continue
		}
		s.fn(v)
	}
	return nil
}

// Subscribe registers fn to receive every value sent after this call.
// Subscribing to a closed channel returns an inert subscription.
func (c *Channel[T]) Subscribe(fn func(T)) *Subscription {
	s := &subscriber[T]{fn: fn}

	c.mu.Lock()
	if !c.closed {
		c.subs = append(c.subs, s)
	}
	c.mu.Unlock()

	return &Subscription{cancel: func() {
		s.removed.Store(true)
		c.remove(s)
	}}
}

// Close disposes the channel. Subsequent Sends fail with ErrClosed and all
// subscribers are dropped. Closing a derived channel also cancels its
// upstream subscriptions, so a combinator graph tears down as a unit.
// Close is idempotent.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.subs = nil
	teardown := c.onClose
	c.onClose = nil
	c.mu.Unlock()

	for _, fn := range teardown {
		fn()
	}
}

// deferClose registers fn to run when the channel is closed. Combinators use
// it to tie upstream subscription lifetimes to the derived channel.
func (c *Channel[T]) deferClose(fn func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		fn()
		return
	}
	c.onClose = append(c.onClose, fn)
	c.mu.Unlock()
}

func (c *Channel[T]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Channel[T]) remove(s *subscriber[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cur := range c.subs {
		if cur == s {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}
