package pagelift

import "context"

// Fetcher retrieves HTML from a URL or local file so the engine can run
// over it. Implementations may use browser automation to handle
// JavaScript-rendered content, or plain HTTP for static pages.
type Fetcher interface {
	// Fetch loads the source and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
