package pagelift

import "context"

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds page URLs reachable from baseURL's sitemaps.
	// When baseURL carries a path, only URLs under that path are returned.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
