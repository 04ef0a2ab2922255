package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// ErrFetch is returned by DocumentFetcher implementations when a document
// could not be retrieved. The underlying transport or status error is wrapped
// alongside it.
var ErrFetch = errors.New("fetch document")

// DocumentFetcher defines the driven port for retrieving a page's markup.
// Timeouts are owned by the implementation; callers cancel through ctx.
// Implementations do not retry.
type DocumentFetcher interface {
	Fetch(ctx context.Context, pageURL string) (model.RawDocument, error)
}
