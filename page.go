package pagelift

import "context"

// EnhancedPage is the output of one engine run over a single source.
// Exactly one of Result and Failure is set.
type EnhancedPage struct {
	// SourceURL identifies the page that was processed.
	SourceURL string

	// HTML is the serialized document after enhancement, including the
	// embedded data node.
	HTML string

	// Result is the extraction record on success.
	Result *ExtractionResult

	// Failure is the error record embedded on failure.
	Failure *ErrorRecord
}

// Succeeded reports whether the run produced an extraction result.
func (p *EnhancedPage) Succeeded() bool {
	return p.Result != nil
}

// Validate returns an error if the page contains invalid fields.
func (p *EnhancedPage) Validate() error {
	if p.SourceURL == "" {
		return Errorf(EINVALID, "page source URL required")
	}
	if p.Result == nil && p.Failure == nil {
		return Errorf(EINVALID, "page requires a result or an error record")
	}
	return nil
}

// PageWriter persists enhanced pages to a destination.
type PageWriter interface {
	WritePage(ctx context.Context, page *EnhancedPage) error
}
