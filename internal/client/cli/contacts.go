package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/contacto/internal/client/client"
	"github.com/dmitrijs2005/contacto/internal/client/services"
)

// errReported marks failures the user has already been told about, e.g.
// through a notice.
var errReported = errors.New("already reported")

// List prints the current snapshot without contacting the server.
func (a *App) List(ctx context.Context) error {
	return renderTable(a.out, a.contacts.Rows(), stdoutWidth())
}

// Refresh reloads contacts from the server and prints them. A failed load
// keeps the previous list.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.contacts.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load contacts, showing the last known list")
	}
	return a.List(ctx)
}

func (a *App) Add(ctx context.Context) error {
	s, err := a.contacts.OpenAdd()
	if err != nil {
		return err
	}
	if err := a.runSession(ctx, s); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	s, err := a.contacts.OpenEdit(id)
	if errors.Is(err, services.ErrContactNotFound) {
		return fmt.Errorf("no contact with id %d", id)
	}
	if err != nil {
		return err
	}
	if err := a.runSession(ctx, s); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	deleted, err := a.contacts.Delete(ctx, id)
	var te *client.TransportError
	if errors.As(err, &te) {
		return errReported
	}
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintln(a.out, "Cancelled")
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("contact id must be a positive number, got %q", s)
	}
	return id, nil
}
