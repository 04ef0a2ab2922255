package application_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/formfill/internal/application"
	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
)

func htmlDoc(body string) model.RawDocument {
	return model.RawDocument{
		URL:         "https://example.com/login",
		ContentType: "text/html; charset=utf-8",
		Body:        []byte("<!DOCTYPE html><html><head><title>t</title></head><body>" + body + "</body></html>"),
	}
}

func TestHasLoginForm(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"text input and button", `<input type="text"><button>Go</button>`, true},
		{"hidden input only", `<input type="hidden" name="csrf">`, false},
		{"input without type and submit input", `<input name="user"><input type="submit">`, true},
		{"password and input button", `<input type="password"><input type="button" value="Log in">`, true},
		{"select and role button", `<select><option>a</option></select><div role="button">Next</div>`, true},
		{"excluded input types only", `<input type="checkbox"><input type="radio"><input type="file"><input type="submit">`, false},
		{"input with switch button", `<input type="email"><button role="switch">Dark mode</button>`, false},
		{"input with link button", `<input type="email"><button role="link">Help</button>`, false},
		{"button without input", `<button>Subscribe</button>`, false},
		{"uppercase type attribute", `<input type="HIDDEN"><input type=" Submit ">`, false},
		{"nested in form", `<form><div><label>User <input></label></div><div><button type="submit">Sign in</button></div></form>`, true},
		{"empty body", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := application.ParseDocument(htmlDoc(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, application.HasLoginForm(doc))
		})
	}
}

func TestParseDocument_RejectsNonHTML(t *testing.T) {
	tests := []model.RawDocument{
		{ContentType: "application/json", Body: []byte(`{"input":"button"}`)},
		{ContentType: "image/png", Body: []byte{0x89, 'P', 'N', 'G'}},
		{ContentType: "text/plain", Body: []byte("<input><button>")},
		{ContentType: "not a media type;;", Body: []byte("<html></html>")},
		{ContentType: "", Body: []byte("plain text, no markup")},
	}

	for i, raw := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := application.ParseDocument(raw)
			assert.ErrorIs(t, err, application.ErrNotHTML)
		})
	}
}

func TestParseDocument_SniffsMissingContentType(t *testing.T) {
	raw := model.RawDocument{Body: []byte("<!DOCTYPE html><html><body><input><button>x</button></body></html>")}

	doc, err := application.ParseDocument(raw)
	require.NoError(t, err)
	assert.True(t, application.HasLoginForm(doc))
}

func TestParseDocument_AcceptsXHTML(t *testing.T) {
	raw := htmlDoc(`<input><button>x</button>`)
	raw.ContentType = "application/xhtml+xml"

	_, err := application.ParseDocument(raw)
	assert.NoError(t, err)
}

func TestFormDetector_ContainsLoginForm(t *testing.T) {
	fetcher := &mockFetcher{doc: htmlDoc(`<input type="text"><button>Sign in</button>`)}
	detector := application.NewFormDetector(fetcher, discardLogger())

	got, err := detector.ContainsLoginForm(context.Background(), "https://example.com/login")
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, "https://example.com/login", fetcher.url)
}

func TestFormDetector_NoForm(t *testing.T) {
	fetcher := &mockFetcher{doc: htmlDoc(`<p>` + strings.Repeat("news ", 50) + `</p><input type="hidden">`)}
	detector := application.NewFormDetector(fetcher, discardLogger())

	got, err := detector.ContainsLoginForm(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestFormDetector_FetchError(t *testing.T) {
	fetchErr := fmt.Errorf("%w %q: connection refused", driven.ErrFetch, "https://example.com")
	detector := application.NewFormDetector(&mockFetcher{err: fetchErr}, discardLogger())

	got, err := detector.ContainsLoginForm(context.Background(), "https://example.com")
	assert.False(t, got)
	assert.ErrorIs(t, err, driven.ErrFetch)
}

func TestFormDetector_NotHTML(t *testing.T) {
	fetcher := &mockFetcher{doc: model.RawDocument{ContentType: "application/pdf", Body: []byte("%PDF-1.7")}}
	detector := application.NewFormDetector(fetcher, discardLogger())

	got, err := detector.ContainsLoginForm(context.Background(), "https://example.com/doc.pdf")
	assert.False(t, got)
	assert.True(t, errors.Is(err, application.ErrNotHTML))
	assert.False(t, errors.Is(err, driven.ErrFetch))
}
