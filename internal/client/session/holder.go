// Package session keeps the bearer credential of the logged-in user.
//
// The token is persisted in the local metadata table so it survives restarts,
// and cached in memory so reminder calls never touch the database.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/medreminder/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/medreminder/internal/dbx"
)

// Metadata keys.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

type Holder struct {
	db *sql.DB

	mu    sync.RWMutex
	token string
	user  string
}

func NewHolder(db *sql.DB) *Holder {
	return &Holder{db: db}
}

func (h *Holder) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Init loads the stored credential into memory. A missing token is not an
// error.
func (h *Holder) Init(ctx context.Context) error {
	r := h.repo(h.db)

	token, _, err := r.Get(ctx, KeyToken)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	user, _, err := r.Get(ctx, KeyUser)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	h.mu.Lock()
	h.token, h.user = token, user
	h.mu.Unlock()
	return nil
}

// Credential returns the cached token. It never fails.
func (h *Holder) Credential() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token, h.token != ""
}

// User returns the e-mail stored with the credential, or "".
func (h *Holder) User() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user
}

// SetCredential persists token, overwriting any previous one.
func (h *Holder) SetCredential(ctx context.Context, token string) error {
	if err := h.repo(h.db).Set(ctx, KeyToken, token); err != nil {
		return err
	}
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
	return nil
}

// SetUser persists the e-mail shown in the prompt.
func (h *Holder) SetUser(ctx context.Context, user string) error {
	if err := h.repo(h.db).Set(ctx, KeyUser, user); err != nil {
		return err
	}
	h.mu.Lock()
	h.user = user
	h.mu.Unlock()
	return nil
}

// Store writes token and user in one transaction. The in-memory copy is only
// updated after the commit.
func (h *Holder) Store(ctx context.Context, token, user string) error {
	err := dbx.WithTx(ctx, h.db, func(ctx context.Context, tx dbx.DBTX) error {
		r := h.repo(tx)
		if err := r.Set(ctx, KeyToken, token); err != nil {
			return err
		}
		return r.Set(ctx, KeyUser, user)
	})
	if err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	h.mu.Lock()
	h.token, h.user = token, user
	h.mu.Unlock()
	return nil
}

// ClearCredential removes the token and the user. The in-memory copy is
// cleared even if the database write fails, so the session ends either way.
func (h *Holder) ClearCredential(ctx context.Context) error {
	h.mu.Lock()
	h.token, h.user = "", ""
	h.mu.Unlock()

	err := dbx.WithTx(ctx, h.db, func(ctx context.Context, tx dbx.DBTX) error {
		r := h.repo(tx)
		if err := r.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return r.Delete(ctx, KeyUser)
	})
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
