package todo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"

	"github.com/zoobzio/eddy"
)

// DefaultDebounce is the default debounce duration for external file edits.
const DefaultDebounce = 100 * time.Millisecond

// FileStore is a Store persisted to a single file. Mutations rewrite the
// file and re-emit the live collection synchronously; external edits to the
// file are picked up via fsnotify, debounced, and re-emitted on the store's
// watch goroutine.
//
// Because external edits arrive asynchronously, the synchronous-delivery
// contract for watcher-driven emissions reads "delivered on the store's
// watch goroutine".
type FileStore struct {
	path     string
	codec    Codec
	clock    clockz.Clock
	debounce time.Duration

	mu       sync.Mutex
	items    []Item
	lastData []byte
	started  bool
	cancel   context.CancelFunc

	live *eddy.Behavior[[]Item]
}

// NewFileStore creates a FileStore backed by the file at path. The file is
// created with an empty collection on Open if it does not exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:     path,
		codec:    JSONCodec{},
		clock:    clockz.RealClock,
		debounce: DefaultDebounce,
		live:     eddy.NewBehavior([]Item(nil)),
	}
}

// Codec sets the codec for the backing file.
// Default: JSONCodec. Must be called before Open().
func (s *FileStore) Codec(codec Codec) *FileStore {
	s.codec = codec
	return s
}

// Clock sets a custom clock for debounce timers.
// Use this with clockz.FakeClock for deterministic tests.
// Must be called before Open().
func (s *FileStore) Clock(clock clockz.Clock) *FileStore {
	s.clock = clock
	return s
}

// Debounce sets the debounce duration for external file edits. Edits
// arriving within this duration are coalesced into a single reload.
// Default: 100ms. Must be called before Open().
func (s *FileStore) Debounce(d time.Duration) *FileStore {
	s.debounce = d
	return s
}

// Open loads the collection from the backing file and begins watching it
// for external edits. Open can only be called once.
func (s *FileStore) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("file store already open")
	}
	s.started = true
	s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		empty, err := s.codec.Marshal(nil)
		if err != nil {
			return fmt.Errorf("marshal empty collection: %w", err)
		}
		if err := os.WriteFile(s.path, empty, 0o600); err != nil {
			return fmt.Errorf("create %s: %w", s.path, err)
		}
	}

	if err := s.reload(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(s.path); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch file %s: %w", s.path, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go s.watch(watchCtx, watcher)

	return nil
}

// Close stops watching the backing file. The collection remains readable
// via Live until the context used for Open is done.
func (s *FileStore) Close() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Live returns the live-collection stream. The current collection is
// delivered immediately on subscribe.
func (s *FileStore) Live() eddy.Source[[]Item] {
	return s.live
}

// Add inserts item at the end of the collection and persists it. An empty
// ID is assigned a generated one.
func (s *FileStore) Add(_ context.Context, item Item) error {
	s.mu.Lock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	for _, cur := range s.items {
		if cur.ID == item.ID {
			s.mu.Unlock()
			return fmt.Errorf("todo: duplicate item id %q", item.ID)
		}
	}
	s.items = append(s.items, item)
	return s.persistAndEmit()
}

// Update replaces the item with the same ID and persists the collection.
func (s *FileStore) Update(_ context.Context, item Item) error {
	s.mu.Lock()
	for i, cur := range s.items {
		if cur.ID == item.ID {
			s.items[i] = item
			return s.persistAndEmit()
		}
	}
	s.mu.Unlock()
	return fmt.Errorf("todo: unknown item id %q", item.ID)
}

// Delete removes the items with the given ids and persists the collection.
// Unknown ids are ignored.
func (s *FileStore) Delete(_ context.Context, ids []string) error {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if _, gone := drop[item.ID]; !gone {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persistAndEmit()
}

// persistAndEmit writes the collection to the backing file and emits a
// fresh snapshot. Called with s.mu held; it releases the lock before
// emitting so subscribers may call back into the store.
func (s *FileStore) persistAndEmit() error {
	data, err := s.codec.Marshal(s.items)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("marshal collection: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist %s: %w", s.path, err)
	}
	s.lastData = data

	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)
	s.mu.Unlock()

	return s.live.Send(snapshot)
}

// reload reads the backing file and emits the collection, skipping emission
// when the bytes match the last persisted or loaded state (the usual case
// after our own writes).
func (s *FileStore) reload(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		capitan.Emit(ctx, StoreLoadFailed,
			KeyPath.Field(s.path),
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	s.mu.Lock()
	if s.lastData != nil && bytes.Equal(data, s.lastData) {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	items, err := s.codec.Unmarshal(data)
	if err != nil {
		capitan.Emit(ctx, StoreLoadFailed,
			KeyPath.Field(s.path),
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("decode %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.items = items
	s.lastData = data
	snapshot := make([]Item, len(items))
	copy(snapshot, items)
	s.mu.Unlock()

	capitan.Emit(ctx, StoreLoaded,
		KeyPath.Field(s.path),
		KeyCount.Field(len(snapshot)),
	)
	return s.live.Send(snapshot)
}

// watch processes fsnotify events with debouncing, reloading the collection
// when external edits settle.
func (s *FileStore) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var (
		timer   clockz.Timer
		pending bool
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = true

			if timer == nil {
				timer = s.clock.NewTimer(s.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(s.debounce)
			}

		case <-timerC:
			if pending {
				_ = s.reload(ctx) //nolint:errcheck // Failures emitted via StoreLoadFailed
				pending = false
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Continue watching despite errors.
		}
	}
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
