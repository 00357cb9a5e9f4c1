package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pagehttp "github.com/pagelift/pagelift/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs_FromRobots(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/sitemap.xml\n", srv.URL)
		case "/sitemap.xml":
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/docs/intro</loc></url>
  <url><loc>%[1]s/docs/guide</loc></url>
</urlset>`, srv.URL)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := pagehttp.NewSitemapService(srv.Client())

	urls, err := s.DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/docs/guide"}, urls)
}

func TestSitemapService_DiscoverURLs_Fallback(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sitemap.xml" {
			fmt.Fprintf(w, `<urlset><url><loc>%s/page</loc></url></urlset>`, srv.URL)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := pagehttp.NewSitemapService(srv.Client())

	urls, err := s.DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/page"}, urls)
}

func TestSitemapService_DiscoverURLs_SitemapIndex(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sitemap.xml":
			fmt.Fprintf(w, `<sitemapindex>
  <sitemap><loc>%[1]s/sitemap-a.xml</loc></sitemap>
  <sitemap><loc>%[1]s/sitemap-b.xml</loc></sitemap>
</sitemapindex>`, srv.URL)
		case "/sitemap-a.xml":
			fmt.Fprintf(w, `<urlset><url><loc>%s/a</loc></url></urlset>`, srv.URL)
		case "/sitemap-b.xml":
			fmt.Fprintf(w, `<urlset><url><loc>%s/b</loc></url></urlset>`, srv.URL)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := pagehttp.NewSitemapService(srv.Client())

	urls, err := s.DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
}

func TestSitemapService_DiscoverURLs_PathScope(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sitemap.xml" {
			fmt.Fprintf(w, `<urlset>
  <url><loc>%[1]s/docs/intro</loc></url>
  <url><loc>%[1]s/blog/post</loc></url>
  <url><loc>%[1]s/documentation/other</loc></url>
</urlset>`, srv.URL)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := pagehttp.NewSitemapService(srv.Client())

	urls, err := s.DiscoverURLs(context.Background(), srv.URL+"/docs")
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/docs/intro"}, urls)
}

func TestSitemapService_DiscoverURLs_NoSitemap(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := pagehttp.NewSitemapService(srv.Client())

	urls, err := s.DiscoverURLs(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, urls)
	assert.NotNil(t, urls)
}
