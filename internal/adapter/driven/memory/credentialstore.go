// Package memory implements driven ports with session-scoped, in-process state.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/origin"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is an in-memory, origin-keyed credential store. A single
// RWMutex guards the whole map. Get hands out copies, so stored credentials
// cannot be changed through a returned slice.
type CredentialStore struct {
	mu    sync.RWMutex
	byKey map[string][]model.Credential
}

// NewCredentialStore creates an empty store. Its lifetime is the caller's
// session; nothing is persisted.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{byKey: make(map[string][]model.Credential)}
}

// Get returns the credentials saved for pageURL's origin in insertion order.
// It never returns an error; an invalid URL yields an empty slice.
func (s *CredentialStore) Get(_ context.Context, pageURL string) ([]model.Credential, error) {
	key, err := origin.Normalize(pageURL)
	if err != nil {
		return []model.Credential{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, ok := s.byKey[key]
	if !ok {
		return []model.Credential{}, nil
	}
	return slices.Clone(creds), nil
}

// Save appends a credential for pageURL's origin. Empty credentials are
// silently ignored.
func (s *CredentialStore) Save(_ context.Context, pageURL, username, password string) error {
	cred := model.Credential{Username: username, Password: password}
	if cred.IsEmpty() {
		return nil
	}

	key, err := origin.Normalize(pageURL)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.byKey[key]
	next := slices.Grow(slices.Clone(existing), 1)
	s.byKey[key] = append(next, cred)
	return nil
}
