package services

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/contacto/internal/client/client"
	"github.com/dmitrijs2005/contacto/internal/client/models"
	"github.com/dmitrijs2005/contacto/internal/client/notify"
	"github.com/dmitrijs2005/contacto/internal/logging"
)

var (
	ErrSessionOpen     = errors.New("another edit session is open")
	ErrContactNotFound = errors.New("contact not in list")
)

const (
	DeletePrompt   = "Are you sure you want to delete?"
	MsgDeleted     = "Contact deleted"
	MsgDeleteError = "Error deleting the contact"
)

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ContactList owns the client's view of the remote collection. The
// collection is the snapshot of the last successful fetch, except for
// contacts removed by Delete before the next fetch.
type ContactList struct {
	client   client.Client
	notifier notify.Notifier
	confirm  Confirmer
	logger   logging.Logger
	base     logging.Logger
	opts     []Option
	o        options

	mu         sync.Mutex
	contacts   []models.Contact
	generation uint64
	session    *EditSession
}

func NewContactList(c client.Client, n notify.Notifier, confirm Confirmer, logger logging.Logger, opts ...Option) *ContactList {
	return &ContactList{
		client:   c,
		notifier: n,
		confirm:  confirm,
		logger:   logger.With("module", "contacts"),
		base:     logger,
		opts:     opts,
		o:        buildOptions(opts),
		contacts: []models.Contact{},
	}
}

// Load fetches the full collection and replaces the snapshot. On failure
// the previous snapshot stays in place and the error is logged; it is
// returned only for callers that want to report it.
func (l *ContactList) Load(ctx context.Context) error {
	contacts, err := l.client.List(ctx)
	if err != nil {
		l.logger.Warn(ctx, "error loading contacts", "error", err)
		return err
	}

	l.mu.Lock()
	l.contacts = contacts
	l.generation++
	l.mu.Unlock()

	l.logger.Debug(ctx, "contacts loaded", "count", len(contacts))
	return nil
}

// Contacts returns a copy of the current snapshot.
func (l *ContactList) Contacts() []models.Contact {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.contacts)
}

// Rows returns the snapshot formatted for display.
func (l *ContactList) Rows() []models.ContactRow {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows := make([]models.ContactRow, 0, len(l.contacts))
	for _, c := range l.contacts {
		rows = append(rows, c.Row())
	}
	return rows
}

// Get returns the contact with id from the snapshot.
func (l *ContactList) Get(id int64) (models.Contact, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.indexOf(id); i >= 0 {
		return l.contacts[i], true
	}
	return models.Contact{}, false
}

// Session returns the open edit session, or nil.
func (l *ContactList) Session() *EditSession {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session
}

// OpenAdd opens an empty session for a new contact.
func (l *ContactList) OpenAdd() (*EditSession, error) {
	return l.open(nil)
}

// OpenEdit opens a session pre-filled with the contact id.
func (l *ContactList) OpenEdit(id int64) (*EditSession, error) {
	l.mu.Lock()
	i := l.indexOf(id)
	var c models.Contact
	if i >= 0 {
		c = l.contacts[i]
	}
	l.mu.Unlock()

	if i < 0 {
		return nil, ErrContactNotFound
	}
	return l.open(&c)
}

func (l *ContactList) open(c *models.Contact) (*EditSession, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session != nil {
		return nil, ErrSessionOpen
	}

	var s *EditSession
	s = NewEditSession(l.client, l.notifier, l.base, c, func(ctx context.Context, _ Outcome) {
		l.sessionClosed(ctx, s)
	}, l.opts...)
	l.session = s
	return s, nil
}

// sessionClosed refetches after either outcome.
func (l *ContactList) sessionClosed(ctx context.Context, s *EditSession) {
	l.mu.Lock()
	if l.session == s {
		l.session = nil
	}
	l.mu.Unlock()

	_ = l.Load(ctx)
}

// Delete asks for confirmation and deletes the contact id. The contact
// leaves the snapshot before the remote call is made; if the call fails it
// is put back at its old position unless a fetch has replaced the snapshot
// in the meantime. A contact the server no longer knows counts as deleted.
// It reports whether the contact was deleted.
func (l *ContactList) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := l.confirm.Confirm(ctx, DeletePrompt)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	l.mu.Lock()
	idx := l.indexOf(id)
	var removed models.Contact
	if idx >= 0 {
		removed = l.contacts[idx]
		l.contacts = slices.Delete(slices.Clone(l.contacts), idx, idx+1)
	}
	gen := l.generation
	l.mu.Unlock()

	err = l.client.Delete(ctx, id)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		l.mu.Lock()
		if idx >= 0 && l.generation == gen {
			l.contacts = slices.Insert(l.contacts, min(idx, len(l.contacts)), removed)
		}
		l.mu.Unlock()

		l.logger.Error(ctx, "error deleting contact", "id", id, "error", err)
		l.notifier.Notify(notify.Notice{Level: notify.LevelError, Text: MsgDeleteError, TTL: l.o.lifetimes.Error})
		return false, err
	}

	l.notifier.Notify(notify.Notice{Level: notify.LevelSuccess, Text: MsgDeleted, TTL: l.o.lifetimes.Delete})
	return true, nil
}

// indexOf must be called with mu held.
func (l *ContactList) indexOf(id int64) int {
	return slices.IndexFunc(l.contacts, func(c models.Contact) bool { return c.ID == id })
}
