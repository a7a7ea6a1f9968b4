package eddy

import (
	"errors"
	"testing"
)

func TestChannel_DeliversInSendOrder(t *testing.T) {
	ch := NewChannel[int]()

	var got []int
	ch.Subscribe(func(v int) {
		got = append(got, v)
	})

	for i := 1; i <= 5; i++ {
		if err := ch.Send(i); err != nil {
			t.Fatalf("Send(%d) failed: %v", i, err)
		}
	}

	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestChannel_SendCompletesBeforeReturning(t *testing.T) {
	ch := NewChannel[string]()

	delivered := false
	ch.Subscribe(func(string) {
		delivered = true
	})

	if err := ch.Send("event"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if !delivered {
		t.Error("expected synchronous delivery before Send returned")
	}
}

func TestChannel_NewSubscriberSeesOnlyFutureValues(t *testing.T) {
	ch := NewChannel[int]()

	if err := ch.Send(1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	var got []int
	ch.Subscribe(func(v int) {
		got = append(got, v)
	})

	if len(got) != 0 {
		t.Fatalf("plain channel replayed %v to a new subscriber", got)
	}

	if err := ch.Send(2); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("expected [2], got %v", got)
	}
}

func TestChannel_SendAfterCloseReturnsErrClosed(t *testing.T) {
	ch := NewChannel[int]()
	ch.Close()

	if err := ch.Send(1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestChannel_CloseIsIdempotent(t *testing.T) {
	ch := NewChannel[int]()
	ch.Close()
	ch.Close()

	if err := ch.Send(1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestChannel_CancelStopsDelivery(t *testing.T) {
	ch := NewChannel[int]()

	var got []int
	sub := ch.Subscribe(func(v int) {
		got = append(got, v)
	})

	if err := ch.Send(1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	sub.Cancel()
	if err := ch.Send(2); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1], got %v", got)
	}
}

func TestChannel_CancelDuringDeliveryStopsLaterHandlers(t *testing.T) {
	ch := NewChannel[int]()

	var sub2 *Subscription
	ch.Subscribe(func(int) {
		sub2.Cancel()
	})

	secondCalled := false
	sub2 = ch.Subscribe(func(int) {
		secondCalled = true
	})

	if err := ch.Send(1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if secondCalled {
		t.Error("handler canceled mid-cascade was still invoked")
	}
}

func TestChannel_ReentrantSendCompletesNestedFirst(t *testing.T) {
	ch := NewChannel[int]()

	var order []int
	ch.Subscribe(func(v int) {
		if v == 1 {
			// Nested send must complete before the outer cascade resumes.
			if err := ch.Send(2); err != nil {
				t.Fatalf("nested Send failed: %v", err)
			}
		}
		order = append(order, v)
	})
	ch.Subscribe(func(v int) {
		order = append(order, v*10)
	})

	if err := ch.Send(1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	// First handler re-enters with 2, which runs its own full cascade
	// (2, 20) before the value 1 cascade resumes (1, 10).
	want := []int{2, 20, 1, 10}
	if len(order) != len(want) {
		t.Fatalf("expected order %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestBehavior_ReplaysCurrentToNewSubscribers(t *testing.T) {
	b := NewBehavior(42)

	var got []int
	b.Subscribe(func(v int) {
		got = append(got, v)
	})

	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("expected seed 42 replayed synchronously, got %v", got)
	}

	if err := b.Send(7); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	var late []int
	b.Subscribe(func(v int) {
		late = append(late, v)
	})
	if len(late) != 1 || late[0] != 7 {
		t.Errorf("expected latest value 7 replayed, got %v", late)
	}
}

func TestBehavior_ValueTracksLatestSend(t *testing.T) {
	b := NewBehavior("seed")

	if b.Value() != "seed" {
		t.Errorf("expected seed, got %q", b.Value())
	}

	if err := b.Send("updated"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if b.Value() != "updated" {
		t.Errorf("expected updated, got %q", b.Value())
	}
}

func TestBehavior_SendAfterCloseReturnsErrClosed(t *testing.T) {
	b := NewBehavior(1)
	b.Close()

	if err := b.Send(2); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if b.Value() != 1 {
		t.Errorf("close must not replace the current value, got %d", b.Value())
	}
}
