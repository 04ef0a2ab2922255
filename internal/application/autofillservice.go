package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
)

// AutofillService handles fill and save requests from the host: classify the
// field tree, build suggestions for the page, and record submitted logins.
type AutofillService struct {
	classifier *FieldClassifier
	builder    *SuggestionBuilder
	store      driven.CredentialStore
	logger     *slog.Logger
}

// NewAutofillService creates a new AutofillService with the required dependencies.
func NewAutofillService(
	classifier *FieldClassifier,
	builder *SuggestionBuilder,
	store driven.CredentialStore,
	logger *slog.Logger,
) *AutofillService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AutofillService{
		classifier: classifier,
		builder:    builder,
		store:      store,
		logger:     logger,
	}
}

// Suggest classifies every window root and returns the suggestions for
// pageURL. An empty set means there is no data to offer.
func (s *AutofillService) Suggest(ctx context.Context, pageURL string, windows ...model.FieldNode) model.SuggestionSet {
	classified := s.classifier.Classify(windows...)
	set := s.builder.Build(ctx, classified, pageURL)

	s.logger.Info("autofill suggestions built",
		"url", pageURL,
		"classified_fields", len(classified),
		"kinds", len(set),
		"empty", set.IsEmpty(),
	)
	return set
}

// SaveCredentials records a submitted login for pageURL. Empty credentials
// are ignored; an invalid URL returns origin.ErrInvalidURL.
func (s *AutofillService) SaveCredentials(ctx context.Context, pageURL, username, password string) error {
	s.logger.Info("saving credentials", "url", pageURL, "username", username)
	return s.store.Save(ctx, pageURL, username, password)
}

// Credentials returns the logins saved for pageURL's origin.
func (s *AutofillService) Credentials(ctx context.Context, pageURL string) ([]model.Credential, error) {
	creds, err := s.store.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if len(creds) == 0 {
		s.logger.Debug("no credentials stored", "url", pageURL)
	}
	return creds, nil
}
