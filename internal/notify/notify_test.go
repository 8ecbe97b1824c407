package notify

import (
	"testing"
	"time"
)

func TestPushAndList(t *testing.T) {
	c := NewCenter(time.Minute, 10)
	c.Successf("first")
	c.Errorf("second")

	toasts := c.List()
	if len(toasts) != 2 {
		t.Fatalf("got %d toasts, want 2", len(toasts))
	}
	if toasts[0].Message != "first" || toasts[0].Type != Success {
		t.Errorf("toast[0] = %+v", toasts[0])
	}
	if toasts[1].Message != "second" || toasts[1].Type != Error {
		t.Errorf("toast[1] = %+v", toasts[1])
	}
}

func TestAutoExpiry(t *testing.T) {
	c := NewCenter(20*time.Millisecond, 10)
	c.Successf("short lived")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(c.List()) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("toast never expired")
}

func TestDismissCancelsTimer(t *testing.T) {
	c := NewCenter(time.Hour, 10)
	id := c.Successf("dismiss me")

	c.Dismiss(id)
	if got := len(c.List()); got != 0 {
		t.Fatalf("got %d toasts after dismiss, want 0", got)
	}

	c.mu.Lock()
	_, alive := c.timers[id]
	c.mu.Unlock()
	if alive {
		t.Fatal("expiry timer still registered after dismiss")
	}
}

func TestDismissUnknownIDIsNoop(t *testing.T) {
	c := NewCenter(time.Hour, 10)
	c.Successf("keep me")

	c.Dismiss("no-such-id")
	c.Dismiss("no-such-id")
	if got := len(c.List()); got != 1 {
		t.Fatalf("got %d toasts, want 1", got)
	}
}

func TestBoundedQueueDropsOldest(t *testing.T) {
	c := NewCenter(time.Hour, 3)
	c.Successf("a")
	c.Successf("b")
	c.Successf("c")
	c.Successf("d")

	toasts := c.List()
	if len(toasts) != 3 {
		t.Fatalf("got %d toasts, want 3", len(toasts))
	}
	if toasts[0].Message != "b" || toasts[2].Message != "d" {
		t.Fatalf("queue = [%s %s %s], want [b c d]",
			toasts[0].Message, toasts[1].Message, toasts[2].Message)
	}
}
