package driven

import (
	"context"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// CredentialStore defines the driven port for origin-keyed credential storage.
// Both operations normalize the page URL to its origin key, so every page of
// a site shares one ordered credential list.
type CredentialStore interface {
	// Get returns the credentials saved for the URL's origin in insertion
	// order, or an empty slice when none exist or the URL is invalid.
	Get(ctx context.Context, pageURL string) ([]model.Credential, error)

	// Save appends a credential for the URL's origin. Saving an empty
	// username together with an empty password is a no-op. Returns
	// origin.ErrInvalidURL when the URL has no scheme or host. Identical
	// credentials are not deduplicated.
	Save(ctx context.Context, pageURL, username, password string) error
}
