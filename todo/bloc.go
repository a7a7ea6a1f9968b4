package todo

import (
	"context"
	"fmt"
	"sync"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/pipz"

	"github.com/zoobzio/eddy"
)

// Bloc assembles the reactive graph: six input channels feed store
// mutations and the active visibility, and the store's live collection is
// derived through combinators into six output channels. The graph is wired
// once at construction, activated by Start, and torn down as a unit by
// Close; there is no pause or resume.
//
// Every output is a pure function of the latest snapshot and, for
// VisibleItems, the current visibility. Plain outputs stay silent until the
// store has emitted at least once; ActiveVisibility is a behavior seeded
// with DefaultVisibility and replays its current value to new subscribers.
//
// Subscribe to outputs before calling Start: the store emits its current
// collection as soon as the bloc attaches to it, and plain channels do not
// replay.
type Bloc struct {
	// Inputs. Sending on an input runs the full synchronous cascade
	// before Send returns.
	AddItem        *eddy.Channel[Item]
	UpdateItem     *eddy.Channel[Item]
	DeleteItem     *eddy.Channel[string]
	SetVisibility  *eddy.Channel[Visibility]
	ClearCompleted *eddy.Channel[struct{}]
	ToggleAll      *eddy.Channel[struct{}]

	// Outputs.
	ActiveVisibility *eddy.Behavior[Visibility]
	VisibleItems     *eddy.Channel[[]Item]
	AllComplete      *eddy.Channel[bool]
	HasCompleted     *eddy.Channel[bool]
	CountActive      *eddy.Channel[int]
	CountComplete    *eddy.Channel[int]

	store    Store
	pipeline pipz.Chainable[*Mutation]

	// snapshots relays the store's live collection into the combinator
	// graph once Start attaches the store subscription.
	snapshots *eddy.Channel[[]Item]

	// latest is the snapshot current at this moment; switch-mapped
	// triggers read it instead of re-subscribing to the store.
	latestMu sync.RWMutex
	latest   []Item

	mu       sync.Mutex
	started  bool
	closed   bool
	ctx      context.Context
	storeSub *eddy.Subscription
	inputs   []*eddy.Subscription
	batches  []interface{ Close() }
}

// New wires a Bloc around the given store. Pipeline options configure the
// mutation dispatch path; see Option. The graph is fully wired on return
// but receives no snapshots until Start.
func New(store Store, opts ...Option) *Bloc {
	b := &Bloc{
		AddItem:        eddy.NewChannel[Item](),
		UpdateItem:     eddy.NewChannel[Item](),
		DeleteItem:     eddy.NewChannel[string](),
		SetVisibility:  eddy.NewChannel[Visibility](),
		ClearCompleted: eddy.NewChannel[struct{}](),
		ToggleAll:      eddy.NewChannel[struct{}](),

		ActiveVisibility: eddy.NewBehavior(DefaultVisibility),

		store:     store,
		snapshots: eddy.NewChannel[[]Item](),
		ctx:       context.Background(),
	}
	b.pipeline = buildPipeline(storeTerminal(store), opts)

	// Derived outputs: pure functions of the latest snapshot, plus the
	// current visibility for the visible list.
	b.VisibleItems = eddy.CombineLatest2(b.snapshots, b.ActiveVisibility, VisibleItems)
	b.AllComplete = eddy.Map(b.snapshots, AllComplete)
	b.HasCompleted = eddy.Map(b.snapshots, HasCompleted)
	b.CountActive = eddy.Map(b.snapshots, CountActive)
	b.CountComplete = eddy.Map(b.snapshots, CountComplete)

	// Direct pass-through inputs: every event invokes the corresponding
	// store mutation.
	b.inputs = append(b.inputs,
		b.AddItem.Subscribe(func(item Item) {
			b.dispatch(&Mutation{Op: OpAdd, Item: item})
		}),
		b.UpdateItem.Subscribe(func(item Item) {
			b.dispatch(&Mutation{Op: OpUpdate, Item: item})
		}),
		b.DeleteItem.Subscribe(func(id string) {
			b.dispatch(&Mutation{Op: OpDelete, IDs: []string{id}})
		}),
		b.SetVisibility.Subscribe(func(v Visibility) {
			if !v.Valid() {
				panic(ErrInvalidVisibility)
			}
			_ = b.ActiveVisibility.Send(v) //nolint:errcheck // Closed graph drops input
			capitan.Emit(b.context(), VisibilityChanged,
				KeyVisibility.Field(v.String()),
			)
		}),
	)

	// Trigger inputs: switch-mapped over the snapshot current at the
	// moment the trigger fires. A superseded in-flight derivation is
	// abandoned, so only the freshest batch reaches the store.
	clearBatches := eddy.SwitchMap(b.ClearCompleted, func(struct{}) []string {
		return CompletedIDs(b.Snapshot())
	})
	b.inputs = append(b.inputs, clearBatches.Subscribe(func(ids []string) {
		b.dispatch(&Mutation{Op: OpDelete, IDs: ids})
	}))

	toggleBatches := eddy.SwitchMap(b.ToggleAll, func(struct{}) []Item {
		return ToggleAllBatch(b.Snapshot())
	})
	b.inputs = append(b.inputs, toggleBatches.Subscribe(func(batch []Item) {
		for _, item := range batch {
			b.dispatch(&Mutation{Op: OpUpdate, Item: item})
		}
	}))

	b.batches = append(b.batches, clearBatches, toggleBatches)

	return b
}

// Start attaches the bloc to its store's live collection. The store emits
// its current collection synchronously during attachment, so every output
// fires its initial value before Start returns. Start can only be called
// once.
func (b *Bloc) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return fmt.Errorf("bloc already started")
	}
	if b.closed {
		b.mu.Unlock()
		return fmt.Errorf("bloc already closed")
	}
	b.started = true
	b.ctx = ctx
	b.mu.Unlock()

	capitan.Emit(ctx, BlocStarted)

	sub := b.store.Live().Subscribe(func(snapshot []Item) {
		b.latestMu.Lock()
		b.latest = snapshot
		b.latestMu.Unlock()

		capitan.Emit(b.context(), SnapshotReceived,
			KeyCount.Field(len(snapshot)),
		)
		_ = b.snapshots.Send(snapshot) //nolint:errcheck // Closed graph drops snapshots
	})

	b.mu.Lock()
	b.storeSub = sub
	b.mu.Unlock()

	return nil
}

// Snapshot returns the collection snapshot current at this moment, or nil
// if the store has not emitted yet.
func (b *Bloc) Snapshot() []Item {
	b.latestMu.RLock()
	defer b.latestMu.RUnlock()
	return b.latest
}

// Close tears the graph down as a unit: the store subscription is canceled
// and every input and output channel is closed. Idempotent.
func (b *Bloc) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	storeSub := b.storeSub
	ctx := b.ctx
	b.mu.Unlock()

	if storeSub != nil {
		storeSub.Cancel()
	}
	for _, sub := range b.inputs {
		sub.Cancel()
	}

	b.AddItem.Close()
	b.UpdateItem.Close()
	b.DeleteItem.Close()
	b.SetVisibility.Close()
	b.ClearCompleted.Close()
	b.ToggleAll.Close()

	for _, batch := range b.batches {
		batch.Close()
	}

	b.VisibleItems.Close()
	b.AllComplete.Close()
	b.HasCompleted.Close()
	b.CountActive.Close()
	b.CountComplete.Close()
	b.ActiveVisibility.Close()
	b.snapshots.Close()

	capitan.Emit(ctx, BlocStopped)
}

// dispatch runs one mutation through the configured pipeline. The bloc
// itself performs no recovery: a failure is surfaced via MutationFailed and
// the triggering cascade continues.
func (b *Bloc) dispatch(m *Mutation) {
	ctx := b.context()
	capitan.Emit(ctx, MutationDispatched,
		KeyOp.Field(string(m.Op)),
		KeyItemID.Field(m.Item.ID),
		KeyCount.Field(len(m.IDs)),
	)
	if _, err := b.pipeline.Process(ctx, m); err != nil {
		capitan.Emit(ctx, MutationFailed,
			KeyOp.Field(string(m.Op)),
			KeyError.Field(err.Error()),
		)
	}
}

func (b *Bloc) context() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctx
}
