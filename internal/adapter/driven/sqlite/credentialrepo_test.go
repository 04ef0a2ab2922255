package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/origin"
)

func TestCredentialRepo_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db)
	ctx := context.Background()

	err := repo.Save(ctx, "https://example.com/login", "u", "p")
	require.NoError(t, err)

	creds, err := repo.Get(ctx, "https://example.com/login")
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, model.Credential{Username: "u", Password: "p"}, creds[0])
}

func TestCredentialRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db)
	ctx := context.Background()

	creds, err := repo.Get(ctx, "https://nothing-saved.example")
	require.NoError(t, err)
	assert.Empty(t, creds)
	assert.NotNil(t, creds)
}

func TestCredentialRepo_AppendOrderAcrossOriginPages(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "https://accounts.example.com/signin", "first", "1"))
	require.NoError(t, repo.Save(ctx, "https://example.com:8443/other?x=y", "second", ""))
	require.NoError(t, repo.Save(ctx, "https://example.com/", "", "third"))

	creds, err := repo.Get(ctx, "https://www.example.com")
	require.NoError(t, err)
	assert.Equal(t, []model.Credential{
		{Username: "first", Password: "1"},
		{Username: "second", Password: ""},
		{Username: "", Password: "third"},
	}, creds)
}

func TestCredentialRepo_DuplicatesAccumulate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "https://example.com", "u", "p"))
	require.NoError(t, repo.Save(ctx, "https://example.com", "u", "p"))

	creds, err := repo.Get(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Len(t, creds, 2)
}

func TestCredentialRepo_EmptyCredentialIgnored(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db)
	ctx := context.Background()

	err := repo.Save(ctx, "https://example.com", "", "")
	require.NoError(t, err)

	creds, err := repo.Get(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestCredentialRepo_InvalidURL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db)
	ctx := context.Background()

	err := repo.Save(ctx, "no-scheme.example.com", "u", "p")
	assert.ErrorIs(t, err, origin.ErrInvalidURL)

	creds, err := repo.Get(ctx, "no-scheme.example.com")
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestCredentialRepo_SurvivesReconnect(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewCredentialRepo(db).Save(ctx, "https://example.com", "kept", "pw"))

	// A second repo over the same shared database sees earlier writes.
	creds, err := NewCredentialRepo(db).Get(ctx, "https://example.com")
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "kept", creds[0].Username)
}
