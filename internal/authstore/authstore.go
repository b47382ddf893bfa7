// Package authstore mirrors the backend-issued bearer token and account
// record in local storage. It is a last-write-wins mirror: no expiry check,
// no token introspection. Read failures are swallowed and reported as
// absence so callers never branch on storage health.
package authstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/taskpilot/internal/logging"
	"github.com/dmitrijs2005/taskpilot/internal/models"
	"github.com/dmitrijs2005/taskpilot/internal/storage"
)

const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// Store persists the auth pair through a storage.Store.
type Store struct {
	storage storage.Store
	log     logging.Logger
}

func New(st storage.Store, log logging.Logger) *Store {
	return &Store{storage: st, log: log}
}

// StoreAuth persists the token and user record together, in one batch when
// the backing store supports it.
func (s *Store) StoreAuth(ctx context.Context, token string, user *models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	kv := map[string][]byte{
		tokenKey: []byte(token),
		userKey:  userJSON,
	}

	if bw, ok := s.storage.(storage.BatchWriter); ok {
		if err := bw.SetBatch(ctx, kv); err != nil {
			return fmt.Errorf("store auth: %w", err)
		}
		return nil
	}

	for key, value := range kv {
		if err := s.storage.Set(ctx, key, value); err != nil {
			return fmt.Errorf("store auth[%s]: %w", key, err)
		}
	}
	return nil
}

// Token returns the persisted bearer token, or "" when absent or unreadable.
func (s *Store) Token(ctx context.Context) string {
	v, err := s.storage.Get(ctx, tokenKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored token", "error", err)
		return ""
	}
	return string(v)
}

// StoredUser returns the persisted account record, or nil when absent.
// A corrupt record is logged and treated as absence.
func (s *Store) StoredUser(ctx context.Context) *models.User {
	v, err := s.storage.Get(ctx, userKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored user", "error", err)
		return nil
	}
	if v == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(v, &user); err != nil {
		s.log.Warn(ctx, "stored user record is corrupt, ignoring", "error", err)
		return nil
	}
	return &user
}

// ClearAuth removes both keys.
func (s *Store) ClearAuth(ctx context.Context) error {
	if err := s.storage.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if err := s.storage.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is currently stored.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}
