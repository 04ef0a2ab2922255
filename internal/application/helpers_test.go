package application_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// --- Mock implementations ---

type mockCredentialStore struct {
	creds   map[string][]model.Credential
	getErr  error
	saveErr error
	saved   []model.Credential
}

func (m *mockCredentialStore) Get(_ context.Context, pageURL string) ([]model.Credential, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.creds[pageURL], nil
}

func (m *mockCredentialStore) Save(_ context.Context, _ string, username, password string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, model.Credential{Username: username, Password: password})
	return nil
}

type mockFetcher struct {
	doc model.RawDocument
	err error
	url string
}

func (m *mockFetcher) Fetch(_ context.Context, pageURL string) (model.RawDocument, error) {
	m.url = pageURL
	return m.doc, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// leaf builds a childless field.
func leaf(id string, hints []string, documentHint string) *model.Field {
	return &model.Field{FieldID: model.FieldID(id), Hints: hints, Hint: documentHint}
}

// group builds an interior field.
func group(id string, children ...*model.Field) *model.Field {
	return &model.Field{FieldID: model.FieldID(id), Children: children}
}
