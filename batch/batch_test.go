package batch_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/batch"
	"github.com/pagelift/pagelift/bloom"
	"github.com/pagelift/pagelift/enhance"
	"github.com/pagelift/pagelift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageHTML = `<html><head><title>Doc</title></head><body>
<h1>Intro</h1>
<p>Some text.</p>
<a href="/next">Next</a>
</body></html>`

func TestProcessor_Run(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return pageHTML, nil
		},
	}

	var mu sync.Mutex
	var written []*pagelift.EnhancedPage
	writer := &mock.PageWriter{
		WritePageFn: func(_ context.Context, page *pagelift.EnhancedPage) error {
			mu.Lock()
			defer mu.Unlock()
			written = append(written, page)
			return nil
		},
	}

	p := &batch.Processor{
		Fetcher:     fetcher,
		Writer:      writer,
		Engine:      enhance.DefaultConfig(),
		Concurrency: 2,
	}

	urls := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}

	result, err := p.Run(context.Background(), urls, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 0, result.Errored)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Skipped)

	require.Len(t, written, 3)
	for _, page := range written {
		require.NotNil(t, page.Result)
		assert.True(t, page.Result.EnhancementApplied)
		assert.Equal(t, 1, page.Result.Statistics.Headings)
		assert.Contains(t, page.HTML, pagelift.ResultNodeID)
	}
}

func TestProcessor_Run_Dedup(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	fetched := 0
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			fetched++
			return pageHTML, nil
		},
	}
	writer := &mock.PageWriter{
		WritePageFn: func(_ context.Context, _ *pagelift.EnhancedPage) error {
			return nil
		},
	}

	p := &batch.Processor{
		Fetcher: fetcher,
		Writer:  writer,
		Engine:  enhance.DefaultConfig(),
		Dedup:   bloom.NewDedup(100, 0.01),
	}

	urls := []string{
		"https://example.com/a",
		"https://example.com/a",
		"https://example.com/b",
	}

	result, err := p.Run(context.Background(), urls, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, fetched)
}

func TestProcessor_Run_FetchFailure(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if strings.HasSuffix(url, "/bad") {
				return "", errors.New("connection refused")
			}
			return pageHTML, nil
		},
	}
	writer := &mock.PageWriter{
		WritePageFn: func(_ context.Context, _ *pagelift.EnhancedPage) error {
			return nil
		},
	}

	p := &batch.Processor{
		Fetcher: fetcher,
		Writer:  writer,
		Engine:  enhance.DefaultConfig(),
	}

	var mu sync.Mutex
	var failedURLs []string
	progress := func(event batch.ProgressEvent) {
		if event.Type == batch.ProgressFailed {
			mu.Lock()
			defer mu.Unlock()
			failedURLs = append(failedURLs, event.URL)
		}
	}

	urls := []string{"https://example.com/ok", "https://example.com/bad"}

	result, err := p.Run(context.Background(), urls, progress)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"https://example.com/bad"}, failedURLs)
}

func TestProcessor_Run_EngineFailure(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return pageHTML, nil
		},
	}

	var mu sync.Mutex
	var written []*pagelift.EnhancedPage
	writer := &mock.PageWriter{
		WritePageFn: func(_ context.Context, page *pagelift.EnhancedPage) error {
			mu.Lock()
			defer mu.Unlock()
			written = append(written, page)
			return nil
		},
	}

	config := enhance.DefaultConfig()
	config.Interaction = func(_ pagelift.Node) bool {
		panic("handler introspection unavailable")
	}

	p := &batch.Processor{
		Fetcher: fetcher,
		Writer:  writer,
		Engine:  config,
	}

	result, err := p.Run(context.Background(), []string{"https://example.com/a"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 1, result.Errored)
	assert.Equal(t, 0, result.Failed)

	require.Len(t, written, 1)
	require.NotNil(t, written[0].Failure)
	assert.Contains(t, written[0].Failure.Error, "handler introspection unavailable")
	assert.Contains(t, written[0].HTML, pagelift.ErrorNodeID)
}

func TestProcessor_Run_Records(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return pageHTML, nil
		},
	}
	writer := &mock.PageWriter{
		WritePageFn: func(_ context.Context, _ *pagelift.EnhancedPage) error {
			return nil
		},
	}

	var mu sync.Mutex
	var records []*pagelift.Record
	recordService := &mock.RecordService{
		CreateRecordFn: func(_ context.Context, record *pagelift.Record) error {
			mu.Lock()
			defer mu.Unlock()
			records = append(records, record)
			return nil
		},
	}

	p := &batch.Processor{
		Fetcher: fetcher,
		Writer:  writer,
		Records: recordService,
		PathResolver: func(sourceURL string) (string, error) {
			return "out/page.html", nil
		},
		Engine: enhance.DefaultConfig(),
	}

	result, err := p.Run(context.Background(), []string{"https://example.com/a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	require.Len(t, records, 1)
	assert.Equal(t, "https://example.com/a", records[0].SourceURL)
	assert.Equal(t, "out/page.html", records[0].OutputPath)
	assert.True(t, records[0].Succeeded)
	assert.Len(t, records[0].ContentHash, 16)
	assert.Contains(t, records[0].ResultJSON, `"enhancementApplied":true`)
}

func TestProcessor_Run_MissingDependencies(t *testing.T) {
	t.Parallel()

	p := &batch.Processor{}

	_, err := p.Run(context.Background(), []string{"https://example.com/a"}, nil)
	require.Error(t, err)
	assert.Equal(t, pagelift.EINVALID, pagelift.ErrorCode(err))
}
