// Package session issues and resolves the opaque tokens that prove an
// already-authenticated identity. The token is an unguessable random
// string; how it travels (cookie, header) is the web layer's business.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/skillsmatch/careermatch/internal/account/entity"
	"github.com/skillsmatch/careermatch/internal/account/repo"
)

// tokenBytes of entropy per token; 32 bytes is well past the 128-bit floor.
const tokenBytes = 32

// TokenStore is the narrow slice of the account repository the manager
// needs: one token slot per account.
type TokenStore interface {
	GetByToken(ctx context.Context, token string) (*entity.Account, error)
	UpdateToken(ctx context.Context, id int64, token *string) error
}

// Manager binds tokens to accounts, one live token per account.
type Manager struct {
	store TokenStore
}

func NewManager(store TokenStore) *Manager { return &Manager{store: store} }

// Issue generates a URL-safe random token and persists it, overwriting
// any previous token so at most one session per account stays valid.
func (m *Manager) Issue(ctx context.Context, accountID int64) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	if err := m.store.UpdateToken(ctx, accountID, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a presented token to its account. An empty or unknown
// token is an anonymous caller, not an error: both return (nil, nil).
func (m *Manager) Resolve(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, nil
	}
	a, err := m.store.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// Revoke clears the account's token so the previously issued one no
// longer resolves.
func (m *Manager) Revoke(ctx context.Context, accountID int64) error {
	return m.store.UpdateToken(ctx, accountID, nil)
}
