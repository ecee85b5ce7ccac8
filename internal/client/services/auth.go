// This file defines the user session: who is signed in, persisting that
// across restarts in the local metadata store, and navigating to the login
// screen on logout.

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/contacto/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/contacto/internal/dbx"
)

var ErrEmptyUserName = errors.New("user name is empty")

const (
	RouteLogin    = "/login"
	RouteContacts = "/contacto"

	userNameKey = "username"
)

// Router moves the UI to another screen.
type Router interface {
	Navigate(route string)
}

// UserService keeps the current user for display. It does not authenticate
// against the API.
type UserService interface {
	Login(ctx context.Context, name string) error
	Restore(ctx context.Context) (string, error)
	CurrentUser() string
	Logout(ctx context.Context) error
}

type userService struct {
	db     *sql.DB
	router Router

	mu   sync.RWMutex
	name string
}

// NewUserService returns a UserService persisting to db and navigating
// through router.
func NewUserService(db *sql.DB, router Router) UserService {
	return &userService{db: db, router: router}
}

func (u *userService) Login(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyUserName
	}

	err := dbx.WithTx(ctx, u.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Set(ctx, userNameKey, name)
	})
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	u.mu.Lock()
	u.name = name
	u.mu.Unlock()

	u.router.Navigate(RouteContacts)
	return nil
}

// Restore loads the user saved by a previous Login. It returns "" when
// nobody is signed in.
func (u *userService) Restore(ctx context.Context) (string, error) {
	v, _, err := metadata.NewSQLiteRepository(u.db).Get(ctx, userNameKey)
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}

	u.mu.Lock()
	u.name = v
	u.mu.Unlock()
	return v, nil
}

func (u *userService) CurrentUser() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.name
}

// Logout forgets the user locally and sends the UI to the login screen.
func (u *userService) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, u.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, userNameKey)
	})
	if err != nil {
		return fmt.Errorf("clear user: %w", err)
	}

	u.mu.Lock()
	u.name = ""
	u.mu.Unlock()

	u.router.Navigate(RouteLogin)
	return nil
}
