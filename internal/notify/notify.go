// Package notify holds the ephemeral status messages emitted by store
// mutations. Entries expire on their own after a fixed interval or can
// be dismissed explicitly; expiry timers are canceled on dismiss so no
// timer outlives its toast.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Info    Level = "info"
)

// swagger:model Toast
type Toast struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Type    Level  `json:"type"`
}

// Center is a bounded FIFO toast queue. When full, the oldest entry is
// dropped to make room.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	max    int
	toasts []Toast
	timers map[string]*time.Timer
}

func NewCenter(ttl time.Duration, max int) *Center {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	if max <= 0 {
		max = 64
	}
	return &Center{
		ttl:    ttl,
		max:    max,
		timers: make(map[string]*time.Timer),
	}
}

// Push appends a toast and schedules its expiry. It returns the toast
// id for the explicit dismiss path.
func (c *Center) Push(message string, level Level) string {
	if level == "" {
		level = Success
	}
	id := uuid.New().String()

	c.mu.Lock()
	if len(c.toasts) >= c.max {
		oldest := c.toasts[0]
		c.toasts = c.toasts[1:]
		if t, ok := c.timers[oldest.ID]; ok {
			t.Stop()
			delete(c.timers, oldest.ID)
		}
	}
	c.toasts = append(c.toasts, Toast{ID: id, Message: message, Type: level})
	c.timers[id] = time.AfterFunc(c.ttl, func() { c.remove(id) })
	c.mu.Unlock()

	return id
}

func (c *Center) Successf(message string) string { return c.Push(message, Success) }
func (c *Center) Errorf(message string) string   { return c.Push(message, Error) }

// Dismiss removes a toast immediately and cancels its expiry timer.
// Dismissing an unknown id is a no-op.
func (c *Center) Dismiss(id string) {
	c.remove(id)
}

// List returns the queued toasts in insertion order.
func (c *Center) List() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

func (c *Center) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i, toast := range c.toasts {
		if toast.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}
