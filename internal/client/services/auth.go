// Package services contains the application services of the medreminder
// client: account operations and the reminder workflow on top of the backend
// client, the local list and the edit session.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/medreminder/internal/client/client"
	"github.com/dmitrijs2005/medreminder/internal/client/edit"
	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/dmitrijs2005/medreminder/internal/client/reminders"
	"github.com/dmitrijs2005/medreminder/internal/logging"
)

// CredentialStore persists the bearer token of the logged-in user.
// It is implemented by session.Holder.
type CredentialStore interface {
	client.CredentialSource
	User() string
	Store(ctx context.Context, token, user string) error
	ClearCredential(ctx context.Context) error
}

// AuthService defines account operations for the CLI.
//
// Login stores the issued token for later reminder calls; Logout ends the
// session and drops everything loaded under it.
type AuthService interface {
	Register(ctx context.Context, r models.Registration) error
	Login(ctx context.Context, c models.Credentials) error
	Logout(ctx context.Context) error
	IsLoggedIn() bool
	User() string
}

type authService struct {
	client client.Client
	store  CredentialStore
	list   *reminders.List
	edit   *edit.Session
	log    logging.Logger
}

// NewAuthService constructs an AuthService. list and ed are reset on logout.
func NewAuthService(c client.Client, store CredentialStore, list *reminders.List, ed *edit.Session, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{client: c, store: store, list: list, edit: ed, log: log.With("service", "auth")}
}

// Register validates r and creates the account. It does not log in.
func (a *authService) Register(ctx context.Context, r models.Registration) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := a.client.Register(ctx, r); err != nil {
		a.log.Warn(ctx, "register failed", "email", r.Email, "err", err)
		return fmt.Errorf("register error: %w", err)
	}
	a.log.Info(ctx, "registered", "email", r.Email)
	return nil
}

// Login authenticates c and persists the token together with the e-mail.
// Any previously stored credential is overwritten.
func (a *authService) Login(ctx context.Context, c models.Credentials) error {
	if err := c.Validate(); err != nil {
		return err
	}

	token, err := a.client.Login(ctx, c)
	if err != nil {
		a.log.Warn(ctx, "login failed", "email", c.Email, "err", err)
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.store.Store(ctx, token, c.Email); err != nil {
		a.log.Error(ctx, "credential not saved", "err", err)
		return fmt.Errorf("credential saving error: %w", err)
	}

	// Records of a previous account must not leak into this session.
	a.list.Clear()
	a.edit.Cancel()

	a.log.Info(ctx, "logged in", "email", c.Email)
	return nil
}

// Logout clears the credential, the loaded reminders and any open edit.
// The in-memory session ends even if the stored credential cannot be removed.
func (a *authService) Logout(ctx context.Context) error {
	a.list.Clear()
	a.edit.Cancel()

	if err := a.store.ClearCredential(ctx); err != nil {
		a.log.Error(ctx, "credential not removed", "err", err)
		return fmt.Errorf("logout error: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) IsLoggedIn() bool {
	_, ok := a.store.Credential()
	return ok
}

func (a *authService) User() string {
	return a.store.User()
}
