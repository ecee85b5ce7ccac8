package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/contacto/internal/client/services"
)

// Login asks for the user's name, remembers it and shows the contacts.
func (a *App) Login(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	if err := a.users.Login(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Hello, %s!\n", a.users.CurrentUser())

	if a.route == services.RouteContacts {
		return a.Refresh(ctx)
	}
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if name := a.users.CurrentUser(); name != "" {
		fmt.Fprintln(a.out, name)
		return nil
	}
	fmt.Fprintln(a.out, "Not logged in")
	return nil
}

// Logout forgets the user and returns to the login prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")

	if a.route == services.RouteLogin {
		return a.Login(ctx)
	}
	return nil
}
