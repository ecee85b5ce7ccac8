// Package store keeps the contacts served by the reference API in memory.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/contacto/internal/client/models"
)

var ErrNotFound = errors.New("store: contact not found")

// Store is the contact storage used by the API handlers.
type Store interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, draft models.ContactDraft) (models.Contact, error)
	Update(ctx context.Context, id int64, draft models.ContactDraft, date time.Time) (models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// Memory is a Store backed by a map. IDs grow monotonically and are never
// reused, even after deletion.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]models.Contact
	now    func() time.Time
}

// NewMemory returns an empty store; now stamps created contacts and
// defaults to time.Now.
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{items: make(map[int64]models.Contact), now: now}
}

func (m *Memory) List(ctx context.Context) ([]models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Contact, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) Create(ctx context.Context, draft models.ContactDraft) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	c := models.Contact{
		ID:      m.nextID,
		Name:    draft.Name,
		Email:   draft.Email,
		Message: draft.Message,
		Date:    m.now().UTC(),
	}
	m.items[c.ID] = c
	return c, nil
}

func (m *Memory) Update(ctx context.Context, id int64, draft models.ContactDraft, date time.Time) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.items[id]
	if !ok {
		return models.Contact{}, ErrNotFound
	}
	c.Name, c.Email, c.Message = draft.Name, draft.Email, draft.Message
	c.Date = date.UTC()
	m.items[id] = c
	return c, nil
}

func (m *Memory) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}
