package services

import (
	"time"

	"github.com/dmitrijs2005/contacto/internal/client/notify"
)

type options struct {
	now       func() time.Time
	lifetimes notify.Lifetimes
}

func defaultOptions() options {
	return options{now: time.Now, lifetimes: notify.DefaultLifetimes()}
}

// Option customises a ContactList or EditSession.
type Option func(*options)

// WithClock sets the clock used to stamp updates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLifetimes sets how long notices stay visible.
func WithLifetimes(l notify.Lifetimes) Option {
	return func(o *options) { o.lifetimes = l }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
