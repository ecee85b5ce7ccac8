package store

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/contacto/internal/client/models"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMemory_CreateAssignsIDAndDate(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	m := NewMemory(fixedClock(now))
	ctx := context.Background()

	a, err := m.Create(ctx, models.ContactDraft{Name: "Ana", Email: "ana@x.com", Message: "Hola"})
	require.NoError(t, err)
	b, err := m.Create(ctx, models.ContactDraft{Name: "Bob", Email: "bob@x.com", Message: "Hi"})
	require.NoError(t, err)

	require.Equal(t, int64(1), a.ID)
	require.Equal(t, int64(2), b.ID)
	require.True(t, a.Date.Equal(now))

	list, err := m.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Contact{a, b}, list)
}

func TestMemory_UpdateKeepsIDAndSetsDate(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	c, err := m.Create(ctx, models.ContactDraft{Name: "Bob", Email: "bob@x.com", Message: "Hi"})
	require.NoError(t, err)

	edited := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	got, err := m.Update(ctx, c.ID, models.ContactDraft{Name: "Bobby", Email: "bob@x.com", Message: "Hi"}, edited)
	require.NoError(t, err)

	require.Equal(t, c.ID, got.ID)
	require.Equal(t, "Bobby", got.Name)
	require.True(t, got.Date.Equal(edited))
	require.Equal(t, time.UTC, got.Date.Location())
}

func TestMemory_MissingIDs(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	_, err := m.Update(ctx, 42, models.ContactDraft{}, time.Now())
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, m.Delete(ctx, 42), ErrNotFound)
}

func TestMemory_DeleteDoesNotReuseIDs(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	c, _ := m.Create(ctx, models.ContactDraft{Name: "a", Email: "a@b", Message: "m"})
	require.NoError(t, m.Delete(ctx, c.ID))
	require.ErrorIs(t, m.Delete(ctx, c.ID), ErrNotFound)

	next, _ := m.Create(ctx, models.ContactDraft{Name: "b", Email: "b@c", Message: "m"})
	require.Equal(t, c.ID+1, next.ID)

	list, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
