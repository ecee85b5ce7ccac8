package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/contacto/internal/client/client"
	"github.com/dmitrijs2005/contacto/internal/client/form"
	"github.com/dmitrijs2005/contacto/internal/client/models"
	"github.com/dmitrijs2005/contacto/internal/client/notify"
	"github.com/dmitrijs2005/contacto/internal/logging"
)

var (
	ErrSubmitInProgress = errors.New("submit already in progress")
	ErrSessionClosed    = errors.New("session is closed")
)

const (
	MsgCreated   = "Contact created"
	MsgUpdated   = "Contact updated"
	MsgSendError = "Error sending the contact"
)

type SessionState int

const (
	StateEmpty SessionState = iota
	StatePopulated
	StateSubmitting
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	case StateSubmitting:
		return "submitting"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Outcome tells how a session was closed.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeCancelled
)

// EditSession holds the draft of a contact being created or edited and
// submits it to the remote service. A session is single use: once closed it
// rejects further calls.
type EditSession struct {
	client   client.Client
	notifier notify.Notifier
	logger   logging.Logger
	opts     options
	onClose  func(context.Context, Outcome)

	mu      sync.Mutex
	id      int64
	editing bool
	draft   models.ContactDraft
	errs    form.Errors
	state   SessionState
	outcome Outcome
}

// NewEditSession opens a session. With a nil contact it creates a new one;
// otherwise the contact's fields are copied into the draft and submit
// updates it. onClose, when set, runs once after success or cancel.
func NewEditSession(c client.Client, n notify.Notifier, logger logging.Logger, contact *models.Contact, onClose func(context.Context, Outcome), opts ...Option) *EditSession {
	s := &EditSession{
		client:   c,
		notifier: n,
		logger:   logger.With("module", "editor"),
		opts:     buildOptions(opts),
		onClose:  onClose,
		state:    StateEmpty,
	}
	if contact != nil {
		s.id = contact.ID
		s.editing = true
		s.draft = contact.Draft()
		s.state = StatePopulated
	}
	return s
}

// Editing reports whether the session updates an existing contact.
func (s *EditSession) Editing() bool {
	return s.editing
}

// ContactID is the id of the contact being edited, zero when creating.
func (s *EditSession) ContactID() int64 {
	return s.id
}

// SaveLabel is the caption of the confirm action.
func (s *EditSession) SaveLabel() string {
	if s.editing {
		return "Update"
	}
	return "Save"
}

func (s *EditSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *EditSession) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *EditSession) Draft() models.ContactDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Errors returns the field errors of the last evaluation.
func (s *EditSession) Errors() form.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyErrors(s.errs)
}

// SetField changes one draft field and returns the re-evaluated errors of
// the whole draft.
func (s *EditSession) SetField(f form.Field, value string) (form.Errors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	s.draft = form.Set(s.draft, f, value)
	s.errs = form.Validate(s.draft)
	s.state = s.idleState()
	return copyErrors(s.errs), nil
}

// Submit validates the draft and sends it. An invalid draft returns a
// *form.ValidationError without touching the network. On failure the draft
// is kept so the user can retry.
func (s *EditSession) Submit(ctx context.Context) error {
	s.mu.Lock()
	if err := s.checkOpen(); err != nil {
		s.mu.Unlock()
		return err
	}

	s.errs = form.Validate(s.draft)
	if err := s.errs.Err(); err != nil {
		s.mu.Unlock()
		return err
	}

	s.state = StateSubmitting
	draft, id, editing := s.draft, s.id, s.editing
	s.mu.Unlock()

	var err error
	if editing {
		_, err = s.client.Update(ctx, id, draft.Name, draft.Email, draft.Message, s.opts.now())
	} else {
		err = s.client.Create(ctx, draft)
	}

	if err != nil {
		s.mu.Lock()
		s.state = s.idleState()
		s.mu.Unlock()

		s.logger.Error(ctx, "error sending contact", "id", id, "error", err)
		s.notifier.Notify(notify.Notice{Level: notify.LevelError, Text: MsgSendError, TTL: s.opts.lifetimes.Error})
		return err
	}

	s.mu.Lock()
	s.finish(OutcomeSuccess)
	s.mu.Unlock()

	if editing {
		s.notifier.Notify(notify.Notice{Level: notify.LevelSuccess, Text: MsgUpdated, TTL: s.opts.lifetimes.Update})
	} else {
		s.notifier.Notify(notify.Notice{Level: notify.LevelSuccess, Text: MsgCreated, TTL: s.opts.lifetimes.Create})
	}

	s.fireClose(ctx, OutcomeSuccess)
	return nil
}

// Cancel discards the draft without calling the service.
func (s *EditSession) Cancel(ctx context.Context) error {
	s.mu.Lock()
	if err := s.checkOpen(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.finish(OutcomeCancelled)
	s.mu.Unlock()

	s.fireClose(ctx, OutcomeCancelled)
	return nil
}

// finish must be called with mu held.
func (s *EditSession) finish(outcome Outcome) {
	s.draft = models.ContactDraft{}
	s.errs = nil
	s.state = StateClosed
	s.outcome = outcome
}

func (s *EditSession) fireClose(ctx context.Context, outcome Outcome) {
	if s.onClose != nil {
		s.onClose(ctx, outcome)
	}
}

// checkOpen must be called with mu held.
func (s *EditSession) checkOpen() error {
	switch s.state {
	case StateSubmitting:
		return ErrSubmitInProgress
	case StateClosed:
		return ErrSessionClosed
	}
	return nil
}

// idleState is the state a session rests in while the user edits. It depends
// only on whether the session was opened for an existing contact.
func (s *EditSession) idleState() SessionState {
	if s.editing {
		return StatePopulated
	}
	return StateEmpty
}

func copyErrors(errs form.Errors) form.Errors {
	if errs == nil {
		return nil
	}
	out := make(form.Errors, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
