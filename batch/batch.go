// Package batch orchestrates enhancement runs over many sources. It
// coordinates fetching, the enhancement engine, output writing and
// optional run cataloging with bounded concurrency.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/bloom"
	"github.com/pagelift/pagelift/enhance"
	"github.com/pagelift/pagelift/goquery"
	"golang.org/x/sync/errgroup"
)

// Processor runs the enhancement pipeline over a list of source URLs.
type Processor struct {
	Fetcher pagelift.Fetcher
	Writer  pagelift.PageWriter

	// Records, when set, catalogs every written page.
	Records pagelift.RecordService

	// PathResolver maps a source URL to the output path stored on catalog
	// records. Unset leaves OutputPath empty.
	PathResolver func(sourceURL string) (string, error)

	// Dedup, when set, skips sources already seen in this run.
	Dedup *bloom.Dedup

	// Limiter, when set, throttles fetches per domain.
	Limiter *DomainLimiter

	// Engine configures the enhancement pass applied to each page.
	Engine enhance.Config

	// Concurrency bounds the number of pages in flight at once.
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	// Processed counts pages written with an extraction result.
	Processed int

	// Errored counts pages written with an embedded error record. The
	// output still exists for these; the enhancement pass failed.
	Errored int

	// Failed counts sources that produced no output at all.
	Failed int

	// Skipped counts sources dropped by deduplication.
	Skipped int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// outcome holds the result of processing a single source.
type outcome struct {
	url     string
	errored bool
	err     error
}

// Run processes every source URL and reports aggregate counts. Individual
// source failures are counted, not fatal; only an invalid processor
// configuration returns an error.
func (p *Processor) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if p.Fetcher == nil || p.Writer == nil {
		return nil, pagelift.Errorf(pagelift.EINVALID, "batch processor requires a fetcher and a writer")
	}

	// Deduplicate up front so the total reported to the host is exact.
	var result Result
	queue := make([]string, 0, len(urls))
	for _, u := range urls {
		if p.Dedup != nil && p.Dedup.Seen(u) {
			result.Skipped++
			continue
		}
		queue = append(queue, u)
	}
	total := len(queue)

	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	outcomeCh := make(chan outcome, total)

	go func() {
		for _, u := range queue {
			u := u
			g.Go(func() error {
				errored, err := p.processOne(gctx, u)
				outcomeCh <- outcome{url: u, errored: errored, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	var completed atomic.Int64
	for oc := range outcomeCh {
		n := int(completed.Add(1))
		if oc.err != nil {
			result.Failed++
			notify(progress, ProgressEvent{
				Type:      ProgressFailed,
				Completed: n,
				Total:     total,
				URL:       oc.url,
				Error:     oc.err,
			})
			continue
		}
		if oc.errored {
			result.Errored++
		} else {
			result.Processed++
		}
		notify(progress, ProgressEvent{
			Type:      ProgressCompleted,
			Completed: n,
			Total:     total,
			URL:       oc.url,
		})
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &result, nil
}

// processOne runs the full pipeline for a single source. The returned bool
// reports whether the page was written with an error record instead of an
// extraction result.
func (p *Processor) processOne(ctx context.Context, sourceURL string) (bool, error) {
	if p.Limiter != nil {
		u, err := url.Parse(sourceURL)
		if err != nil {
			return false, pagelift.Errorf(pagelift.EINVALID, "invalid source URL %q", sourceURL)
		}
		if err := p.Limiter.Wait(ctx, u.Host); err != nil {
			return false, err
		}
	}

	rawHTML, err := p.Fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return false, fmt.Errorf("fetch: %w", err)
	}

	doc, err := goquery.Parse(rawHTML, sourceURL)
	if err != nil {
		return false, fmt.Errorf("parse: %w", err)
	}

	page := &pagelift.EnhancedPage{SourceURL: sourceURL}

	engine := enhance.New(p.Engine)
	res, runErr := engine.Run(doc)
	if runErr != nil {
		page.Failure = &pagelift.ErrorRecord{Error: pagelift.ErrorMessage(runErr)}
	} else {
		page.Result = res
	}

	// The serialized tree carries the embedded record either way.
	enhanced, err := doc.HTML()
	if err != nil {
		return false, fmt.Errorf("serialize: %w", err)
	}
	page.HTML = enhanced

	if err := p.Writer.WritePage(ctx, page); err != nil {
		return false, fmt.Errorf("write: %w", err)
	}

	if p.Records != nil {
		if err := p.Records.CreateRecord(ctx, p.newRecord(page)); err != nil {
			return false, fmt.Errorf("catalog: %w", err)
		}
	}

	return runErr != nil, nil
}

// newRecord builds the catalog row for a written page.
func (p *Processor) newRecord(page *pagelift.EnhancedPage) *pagelift.Record {
	record := &pagelift.Record{
		SourceURL:   page.SourceURL,
		ContentHash: pagelift.HashContent(page.HTML),
		Succeeded:   page.Succeeded(),
	}
	if page.Result != nil {
		if b, err := json.Marshal(page.Result); err == nil {
			record.ResultJSON = string(b)
		}
	}
	if p.PathResolver != nil {
		if path, err := p.PathResolver(page.SourceURL); err == nil {
			record.OutputPath = path
		}
	}
	return record
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
