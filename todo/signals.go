package todo

import "github.com/zoobzio/capitan"

// Bloc lifecycle signals.
var (
	// BlocStarted is emitted when a Bloc begins observing its store.
	BlocStarted = capitan.NewSignal(
		"todo.bloc.started",
		"Bloc graph activated",
	)

	// BlocStopped is emitted when a Bloc graph is torn down.
	BlocStopped = capitan.NewSignal(
		"todo.bloc.stopped",
		"Bloc graph torn down",
	)
)

// Dataflow signals.
var (
	// SnapshotReceived is emitted when the store's live collection emits.
	SnapshotReceived = capitan.NewSignal(
		"todo.bloc.snapshot.received",
		"Collection snapshot received from store",
	)

	// VisibilityChanged is emitted when the active visibility is replaced.
	VisibilityChanged = capitan.NewSignal(
		"todo.bloc.visibility.changed",
		"Active visibility replaced",
	)

	// MutationDispatched is emitted when a mutation reaches the store.
	MutationDispatched = capitan.NewSignal(
		"todo.bloc.mutation.dispatched",
		"Store mutation dispatched",
	)

	// MutationFailed is emitted when a store mutation fails after all
	// configured middleware has run.
	MutationFailed = capitan.NewSignal(
		"todo.bloc.mutation.failed",
		"Store mutation failed",
	)
)

// Store signals.
var (
	// StoreLoaded is emitted when a file-backed store loads its collection.
	StoreLoaded = capitan.NewSignal(
		"todo.store.loaded",
		"Collection loaded from backing file",
	)

	// StoreLoadFailed is emitted when a file-backed store fails to reload.
	StoreLoadFailed = capitan.NewSignal(
		"todo.store.load.failed",
		"Collection reload failed",
	)
)
