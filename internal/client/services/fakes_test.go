package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrijs2005/contacto/internal/client/models"
	"github.com/dmitrijs2005/contacto/internal/client/notify"
	"github.com/dmitrijs2005/contacto/internal/logging"
)

type updateCall struct {
	ID                   int64
	Name, Email, Message string
	Date                 time.Time
}

// fakeClient implements client.Client with scripted results.
type fakeClient struct {
	mu sync.Mutex

	ListRet []models.Contact
	ListErr error
	ListFn  func(ctx context.Context) ([]models.Contact, error)

	CreateErr error
	CreateFn  func(ctx context.Context, d models.ContactDraft) error

	UpdateErr error

	DeleteErr error
	DeleteFn  func(ctx context.Context, id int64) error

	ListCalls   int
	CreateCalls []models.ContactDraft
	UpdateCalls []updateCall
	DeleteCalls []int64
}

func (f *fakeClient) List(ctx context.Context) ([]models.Contact, error) {
	f.mu.Lock()
	f.ListCalls++
	fn, ret, err := f.ListFn, f.ListRet, f.ListErr
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]models.Contact, len(ret))
	copy(out, ret)
	return out, nil
}

func (f *fakeClient) Create(ctx context.Context, d models.ContactDraft) error {
	f.mu.Lock()
	f.CreateCalls = append(f.CreateCalls, d)
	fn, err := f.CreateFn, f.CreateErr
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, d)
	}
	return err
}

func (f *fakeClient) Update(ctx context.Context, id int64, name, email, message string, date time.Time) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.UpdateCalls = append(f.UpdateCalls, updateCall{id, name, email, message, date})
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	return &models.Contact{ID: id, Name: name, Email: email, Message: message, Date: date}, nil
}

func (f *fakeClient) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	f.DeleteCalls = append(f.DeleteCalls, id)
	fn, err := f.DeleteFn, f.DeleteErr
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, id)
	}
	return err
}

func (f *fakeClient) calls() (list int, create, update, del int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ListCalls, len(f.CreateCalls), len(f.UpdateCalls), len(f.DeleteCalls)
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notify.Notice
}

func (r *recordingNotifier) Notify(n notify.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recordingNotifier) all() []notify.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notice(nil), r.notices...)
}

type fakeConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (f *fakeConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

type fakeRouter struct {
	routes []string
}

func (r *fakeRouter) Navigate(route string) {
	r.routes = append(r.routes, route)
}

func discardLogger() logging.Logger {
	return logging.New(io.Discard, slog.LevelError)
}

var (
	ana   = models.Contact{ID: 1, Name: "Ana", Email: "ana@x.com", Message: "Hola", Date: time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)}
	carlo = models.Contact{ID: 2, Name: "Carlo", Email: "carlo@x.com", Message: "Ciao", Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)}
	bob   = models.Contact{ID: 3, Name: "Bob", Email: "bob@x.com", Message: "Hi", Date: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)}
)
