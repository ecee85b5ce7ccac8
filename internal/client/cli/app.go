package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/contacto/internal/client/client"
	"github.com/dmitrijs2005/contacto/internal/client/config"
	"github.com/dmitrijs2005/contacto/internal/client/notify"
	"github.com/dmitrijs2005/contacto/internal/client/services"
	"github.com/dmitrijs2005/contacto/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	contacts *services.ContactList
	users    services.UserService
	reader   *bufio.Reader
	out      io.Writer
	route    string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.New(os.Stderr, logging.ParseLevel(c.LogLevel)).With("app", "contacto")

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewHTTPClient(c.APIURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config: c,
		logger: logger,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.users = services.NewUserService(db, a)
	a.contacts = services.NewContactList(apiClient, notify.NewConsole(os.Stdout), a, logger,
		services.WithLifetimes(c.Notices))

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.users.CurrentUser() != ""
}

// Navigate records the screen the services asked for; the REPL acts on it
// after the current command.
func (a *App) Navigate(route string) {
	a.route = route
}

// Confirm asks a yes/no question on the terminal. Anything but y/yes is a no.
func (a *App) Confirm(ctx context.Context, prompt string) (bool, error) {
	return getConfirmation(a.reader, prompt, a.out)
}
