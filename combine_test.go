package eddy

import (
	"fmt"
	"testing"
)

func TestCombineLatest2_SilentUntilBothEmit(t *testing.T) {
	a := NewChannel[int]()
	b := NewChannel[string]()
	combined := CombineLatest2(a, b, func(n int, s string) string {
		return fmt.Sprintf("%s-%d", s, n)
	})

	var got []string
	combined.Subscribe(func(v string) {
		got = append(got, v)
	})

	if err := a.Send(1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if err := a.Send(2); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected silence until both operands emit, got %v", got)
	}

	if err := b.Send("x"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(got) != 1 || got[0] != "x-2" {
		t.Errorf("expected [x-2] pairing with most recent a, got %v", got)
	}
}

func TestCombineLatest2_BehaviorSeedCountsAsFirstEmission(t *testing.T) {
	snapshots := NewChannel[[]string]()
	filter := NewBehavior("all")
	combined := CombineLatest2(snapshots, filter, func(items []string, _ string) []string {
		return items
	})

	var emissions [][]string
	combined.Subscribe(func(v []string) {
		emissions = append(emissions, v)
	})

	// The behavior's seed counted at subscribe time; the first snapshot
	// must produce exactly one combined emission carrying all items.
	if err := snapshots.Send([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(emissions) != 1 {
		t.Fatalf("expected exactly one emission, got %d", len(emissions))
	}
	if len(emissions[0]) != 3 {
		t.Errorf("expected all 3 items, got %v", emissions[0])
	}
}

func TestCombineLatest2_EmitsOncePerTriggeringEvent(t *testing.T) {
	a := NewChannel[int]()
	b := NewChannel[int]()
	combined := CombineLatest2(a, b, func(x, y int) int { return x + y })

	var got []int
	combined.Subscribe(func(v int) {
		got = append(got, v)
	})

	// Each b emission triggers an a emission within the same synchronous
	// cascade; no coalescing is allowed, so every event pairs and emits.
	b.Subscribe(func(v int) {
		_ = a.Send(v * 10)
	})

	if err := b.Send(1); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if err := b.Send(2); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	// b=1: combined sees b first (a still silent, nothing emitted),
	// then the relay sends a=10 which pairs with b=1. b=2: combined
	// pairs 10+2, then the relay sends a=20 which pairs with b=2.
	want := []int{11, 12, 22}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCombineLatest2_UsesMostRecentFromEachSide(t *testing.T) {
	a := NewChannel[int]()
	b := NewChannel[int]()
	combined := CombineLatest2(a, b, func(x, y int) [2]int { return [2]int{x, y} })

	var got [][2]int
	combined.Subscribe(func(v [2]int) {
		got = append(got, v)
	})

	_ = a.Send(1)
	_ = b.Send(10)
	_ = a.Send(2)
	_ = b.Send(20)

	want := [][2]int{{1, 10}, {2, 10}, {2, 20}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
