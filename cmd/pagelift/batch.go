package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/batch"
	"github.com/pagelift/pagelift/bloom"
	"github.com/pagelift/pagelift/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to process")
		return nil
	}

	p := &batch.Processor{
		Fetcher:     deps.Fetcher,
		Writer:      fs.NewWriter(c.Out),
		Dedup:       bloom.NewDedup(uint(len(urls)), 0.01),
		Limiter:     batch.NewDomainLimiter(c.Rate),
		Engine:      deps.Engine,
		Concurrency: c.Concurrency,
	}
	if c.Catalog && deps.Records != nil {
		p.Records = deps.Records
		p.PathResolver = func(sourceURL string) (string, error) {
			rel, err := fs.URLToPath(sourceURL)
			if err != nil {
				return "", err
			}
			return filepath.Join(c.Out, rel), nil
		}
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d pages\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := p.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d enhanced, %d errored, %d failed, %d skipped\n",
		result.Processed, result.Errored, result.Failed, result.Skipped)

	return nil
}

// collectURLs reads the URL list from the source file, or discovers it from
// the site's sitemaps with --sitemap.
func (c *BatchCmd) collectURLs(deps *Dependencies) ([]string, error) {
	if c.Sitemap {
		return deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Source)
	}

	data, err := os.ReadFile(c.Source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.Source, err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}
