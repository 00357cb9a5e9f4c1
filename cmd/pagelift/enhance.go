package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/enhance"
	"github.com/pagelift/pagelift/fs"
	"github.com/pagelift/pagelift/goquery"
)

// Run executes the enhance command.
func (c *EnhanceCmd) Run(deps *Dependencies) error {
	rawHTML, err := loadSource(deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
		return err
	}

	if c.Selector != "" {
		rawHTML, err = goquery.Scope(rawHTML, c.Selector)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
			return err
		}
	}

	doc, err := goquery.Parse(rawHTML, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
		return err
	}

	page := &pagelift.EnhancedPage{SourceURL: c.Source}

	engine := enhance.New(deps.Engine)
	res, runErr := engine.Run(doc)
	if runErr != nil {
		page.Failure = &pagelift.ErrorRecord{Error: pagelift.ErrorMessage(runErr)}
	} else {
		page.Result = res
	}

	// Serialize regardless of outcome; failures carry the embedded error
	// record.
	page.HTML, err = doc.HTML()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
		return err
	}

	writer := fs.NewWriter(c.Out)
	if err := writer.WritePage(deps.Ctx, page); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
		return err
	}

	outPath := c.Out
	if rel, err := fs.URLToPath(c.Source); err == nil {
		outPath = filepath.Join(c.Out, rel)
	}

	if deps.Records != nil {
		record := &pagelift.Record{
			SourceURL:   c.Source,
			OutputPath:  outPath,
			ContentHash: pagelift.HashContent(page.HTML),
			Succeeded:   page.Succeeded(),
		}
		if page.Result != nil {
			if b, err := json.Marshal(page.Result); err == nil {
				record.ResultJSON = string(b)
			}
		}
		if err := deps.Records.CreateRecord(deps.Ctx, record); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
			return err
		}
	}

	if runErr != nil {
		fmt.Fprintf(deps.Stderr, "enhancement failed: %s\n", page.Failure.Error)
		return runErr
	}

	stats := page.Result.Statistics
	fmt.Fprintf(deps.Stdout, "Enhanced %s -> %s\n", c.Source, outPath)
	fmt.Fprintf(deps.Stdout, "  %d headings, %d links, %d images, %d tables, %d paragraphs\n",
		stats.Headings, stats.Links, stats.Images, stats.Tables, stats.Paragraphs)

	return nil
}

// loadSource fetches a remote source or reads a local file.
func loadSource(deps *Dependencies, source string) (string, error) {
	if isRemote(source) {
		return deps.Fetcher.Fetch(deps.Ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	return string(data), nil
}
