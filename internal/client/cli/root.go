package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if name := a.users.CurrentUser(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return ""
}

// Root restores the previous user (or asks for one), loads the contacts and
// runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Contacto CLI (type 'help' for commands)")

	if _, err := a.users.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "cannot restore user", "error", err)
	}

	if a.isLoggedIn() {
		_ = a.Refresh(ctx)
	} else {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
