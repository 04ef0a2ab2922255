package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/origin"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port interface.
// Rows are append-only; the autoincrement id preserves insertion order per origin.
// Values are stored as plaintext.
type CredentialRepo struct {
	db *DB
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Get returns the credentials saved for pageURL's origin in insertion order.
// An invalid URL yields an empty slice.
func (r *CredentialRepo) Get(ctx context.Context, pageURL string) ([]model.Credential, error) {
	key, err := origin.Normalize(pageURL)
	if err != nil {
		return []model.Credential{}, nil
	}

	const query = `SELECT username, password FROM saved_credentials WHERE origin = ? ORDER BY id`
	rows, err := r.db.Reader.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("get credentials %q: %w", key, err)
	}
	defer rows.Close()

	creds := []model.Credential{}
	for rows.Next() {
		var cred model.Credential
		if err := rows.Scan(&cred.Username, &cred.Password); err != nil {
			return nil, fmt.Errorf("scan credential %q: %w", key, err)
		}
		creds = append(creds, cred)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials %q: %w", key, err)
	}

	return creds, nil
}

// Save appends a credential for pageURL's origin. Empty credentials are
// silently ignored.
func (r *CredentialRepo) Save(ctx context.Context, pageURL, username, password string) error {
	if (model.Credential{Username: username, Password: password}).IsEmpty() {
		return nil
	}

	key, err := origin.Normalize(pageURL)
	if err != nil {
		return err
	}

	const query = `INSERT INTO saved_credentials (origin, username, password) VALUES (?, ?, ?)`
	if _, err := r.db.Writer.ExecContext(ctx, query, key, username, password); err != nil {
		return fmt.Errorf("save credential %q: %w", key, err)
	}
	return nil
}
