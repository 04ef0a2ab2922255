package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
)

// ErrNotHTML is returned when a fetched resource is not a markup document.
// Callers treat it as "no login form".
var ErrNotHTML = errors.New("document is not html")

var (
	// inputSelector matches fields a user would type credentials into.
	inputSelector = cascadia.MustCompile(
		"input:not([type=submit]):not([type=button]):not([type=checkbox])" +
			":not([type=radio]):not([type=hidden]):not([type=file]), select",
	)

	// submitSelector matches controls that could submit a form.
	submitSelector = cascadia.MustCompile(
		"input[type=submit], input[type=button], button:not([role=switch]):not([role=link]), [role=button]",
	)
)

// FormDetector answers whether a page plausibly contains a login form. The
// check is a coarse presence heuristic: some input-like element and some
// submit-like element anywhere in the body. Unrelated inputs and buttons on
// the same page produce false positives.
type FormDetector struct {
	fetcher driven.DocumentFetcher
	logger  *slog.Logger
}

// NewFormDetector creates a FormDetector. A nil logger falls back to slog.Default().
func NewFormDetector(fetcher driven.DocumentFetcher, logger *slog.Logger) *FormDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &FormDetector{fetcher: fetcher, logger: logger}
}

// ContainsLoginForm fetches pageURL and inspects its markup. It blocks on
// the fetch; cancel ctx to abort. Fetch failures wrap driven.ErrFetch and
// non-markup content returns ErrNotHTML. Neither is retried.
func (d *FormDetector) ContainsLoginForm(ctx context.Context, pageURL string) (bool, error) {
	raw, err := d.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		d.logger.Warn("failed to fetch document", "url", pageURL, "error", err)
		return false, err
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		d.logger.Warn("document is not html", "url", pageURL, "content_type", raw.ContentType, "error", err)
		return false, err
	}
	d.logger.Debug("document retrieved", "url", pageURL, "bytes", len(raw.Body))

	inputs, submits := countFormControls(doc)
	formLikely := inputs > 0 && submits > 0

	d.logger.Info("form controls found",
		"url", pageURL,
		"inputs", inputs,
		"submit_buttons", submits,
		"has_form", formLikely,
	)

	return formLikely, nil
}

// ParseDocument parses a fetched resource as HTML. The declared content type
// must be HTML or XHTML; when it is absent the body is sniffed instead.
func ParseDocument(raw model.RawDocument) (*html.Node, error) {
	if !isMarkup(raw) {
		return nil, fmt.Errorf("%w: content type %q", ErrNotHTML, raw.ContentType)
	}

	doc, err := html.Parse(bytes.NewReader(raw.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotHTML, err)
	}

	canonicalizeAttributes(doc)
	return doc, nil
}

// HasLoginForm reports whether the body of doc holds both an input-like and
// a submit-like element.
func HasLoginForm(doc *html.Node) bool {
	inputs, submits := countFormControls(doc)
	return inputs > 0 && submits > 0
}

func countFormControls(doc *html.Node) (inputs, submits int) {
	body := findBody(doc)
	if body == nil {
		return 0, 0
	}
	return len(inputSelector.MatchAll(body)), len(submitSelector.MatchAll(body))
}

func findBody(n *html.Node) *html.Node {
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Type == html.ElementNode && cur.Data == "body" {
			return cur
		}
		for c := cur.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return nil
}

func isMarkup(raw model.RawDocument) bool {
	ct := raw.ContentType
	if ct == "" {
		ct = http.DetectContentType(raw.Body)
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// canonicalizeAttributes trims and lower-cases the enumerated type and role
// attributes, which HTML compares case-insensitively, so selectors can match
// them exactly.
func canonicalizeAttributes(n *html.Node) {
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Type == html.ElementNode {
			for i, attr := range cur.Attr {
				if attr.Namespace == "" && (attr.Key == "type" || attr.Key == "role") {
					cur.Attr[i].Val = strings.ToLower(strings.TrimSpace(attr.Val))
				}
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			stack = append(stack, c)
		}
	}
}
