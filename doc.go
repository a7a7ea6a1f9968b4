// Package eddy provides synchronous reactive dataflow primitives.
//
// The core types are Channel and Behavior: ordered, single-producer delivery
// primitives with an input end (Send) and an output end (Subscribe). A graph
// of combinators (Map, Where, CombineLatest2, SwitchMap) derives output
// channels deterministically from a single upstream source of truth.
//
// # Delivery Model
//
// Delivery is synchronous and cooperative: Send delivers to every current
// subscriber in the calling context before it returns. There is no implicit
// queuing, no background goroutine, and no coalescing. A handler may itself
// trigger further sends; nested deliveries complete before the outer send
// resumes.
//
// # Channels and Behaviors
//
// A plain Channel has no replay: new subscribers see only future values.
// A Behavior always holds a current value, seeded at construction, and
// replays it synchronously to every new subscriber:
//
//	visibility := eddy.NewBehavior(todo.ShowAll)
//	visibility.Subscribe(func(v todo.Visibility) {
//	    // called immediately with ShowAll, then on every Send
//	})
//
// # Combinators
//
// Combinators return derived channels that own their upstream subscriptions.
// Closing a derived channel cancels those subscriptions, so a graph built
// from combinators tears down as a unit:
//
//	visible := eddy.CombineLatest2(snapshots, visibility, todo.VisibleItems)
//
// CombineLatest2 stays silent until both operands have emitted at least once;
// a Behavior operand counts its seed as that first emission. SwitchMap
// forwards only the projection of the most recent trigger, abandoning results
// that belong to a superseded trigger.
//
// # Concurrency
//
// The package targets a single-threaded, synchronous topology. Subscriber
// lists and Behavior value slots are internally guarded so that an external
// source may deliver from its own goroutine, but ordering is only guaranteed
// per producing goroutine: the synchronous-delivery contract then reads
// "delivered on the emitting goroutine".
package eddy
