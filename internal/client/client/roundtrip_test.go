package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/contacto/internal/client/client"
	"github.com/dmitrijs2005/contacto/internal/client/models"
	"github.com/dmitrijs2005/contacto/internal/logging"
	"github.com/dmitrijs2005/contacto/internal/server/api"
	"github.com/dmitrijs2005/contacto/internal/server/store"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAgainstAPI(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	s := store.NewMemory(func() time.Time { return now })
	srv := httptest.NewServer(api.NewRouter(s, logging.New(io.Discard, slog.LevelError)))
	defer srv.Close()

	c, err := client.NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	draft := models.ContactDraft{Name: "Ana", Email: "ana@x.com", Message: "Hola"}
	require.NoError(t, c.Create(ctx, draft))

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, draft, list[0].Draft())
	require.True(t, list[0].Date.Equal(now))

	edited := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	updated, err := c.Update(ctx, list[0].ID, "Ana B", "ana@x.com", "Hola", edited)
	require.NoError(t, err)
	require.Equal(t, list[0].ID, updated.ID)
	require.True(t, updated.Date.Equal(edited))

	require.NoError(t, c.Delete(ctx, updated.ID))
	require.ErrorIs(t, c.Delete(ctx, updated.ID), client.ErrNotFound)

	err = c.Create(ctx, models.ContactDraft{Name: "x", Email: "nope", Message: "m"})
	require.ErrorIs(t, err, client.ErrRejected)

	list, err = c.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
