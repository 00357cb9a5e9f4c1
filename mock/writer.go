package mock

import (
	"context"

	"github.com/pagelift/pagelift"
)

var _ pagelift.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of pagelift.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *pagelift.EnhancedPage) error
}

func (w *PageWriter) WritePage(ctx context.Context, page *pagelift.EnhancedPage) error {
	return w.WritePageFn(ctx, page)
}
