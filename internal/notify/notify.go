// Package notify implements the ephemeral toast channel: every mutation
// outcome produces exactly one short-lived user-facing message. Toasts are
// never persisted and expire on their own unless dismissed first.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a toast by mutation outcome
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Toast is an ephemeral user-facing message
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Channel holds the active toasts in insertion order and schedules their
// automatic removal. Errors stay visible longer than success/info toasts.
type Channel struct {
	mu       sync.Mutex
	toasts   []Toast
	timers   map[string]*time.Timer
	ttl      time.Duration
	errorTTL time.Duration
}

// NewChannel creates a toast channel with per-severity lifetimes
func NewChannel(ttl, errorTTL time.Duration) *Channel {
	return &Channel{
		timers:   make(map[string]*time.Timer),
		ttl:      ttl,
		errorTTL: errorTTL,
	}
}

// Notify appends a toast with a fresh id and schedules its expiry
func (c *Channel) Notify(message string, severity Severity) Toast {
	toast := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	delay := c.ttl
	if severity == SeverityError {
		delay = c.errorTTL
	}

	c.mu.Lock()
	c.toasts = append(c.toasts, toast)
	c.timers[toast.ID] = time.AfterFunc(delay, func() {
		c.remove(toast.ID)
	})
	c.mu.Unlock()

	return toast
}

// Dismiss removes a toast immediately, independent of its timer. It
// reports whether the toast was still active.
func (c *Channel) Dismiss(id string) bool {
	return c.remove(id)
}

// Active returns the live toasts in insertion order
func (c *Channel) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

func (c *Channel) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	for i, toast := range c.toasts {
		if toast.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return true
		}
	}
	return false
}
