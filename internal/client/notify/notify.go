// Package notify delivers transient success and error notices to the user.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a message shown to the user for TTL before it disappears.
type Notice struct {
	Level Level
	Text  string
	TTL   time.Duration
}

// Notifier shows notices. Implementations must not block on the notice's
// lifetime.
type Notifier interface {
	Notify(n Notice)
}

// Lifetimes configures how long each kind of notice stays visible.
type Lifetimes struct {
	Create time.Duration
	Update time.Duration
	Delete time.Duration
	Error  time.Duration
}

// DefaultLifetimes returns the stock notice lifetimes.
func DefaultLifetimes() Lifetimes {
	return Lifetimes{
		Create: 1 * time.Second,
		Update: 2 * time.Second,
		Delete: 1 * time.Second,
		Error:  5 * time.Second,
	}
}

// Console prints notices as single lines. A terminal has no overlay to
// expire, so the TTL is only recorded, not waited on.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tag := "OK"
	if n.Level == LevelError {
		tag = "ERROR"
	}
	fmt.Fprintf(c.w, "[%s] %s\n", tag, n.Text)
}

// Func adapts a plain function to Notifier.
type Func func(Notice)

func (f Func) Notify(n Notice) { f(n) }
