package main

import (
	"context"
	"io"
	"time"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/enhance"
	"github.com/pagelift/pagelift/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Records  pagelift.RecordService
	Fetcher  pagelift.Fetcher
	Sitemaps pagelift.SitemapService
	Engine   enhance.Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Enhance EnhanceCmd `cmd:"" help:"Enhance a single page"`
	Batch   BatchCmd   `cmd:"" help:"Enhance every page in a URL list or sitemap"`
	Records RecordsCmd `cmd:"" help:"List catalog records from past runs"`

	Config  string `short:"C" help:"Path to a YAML config file" type:"path"`
	Verbose bool   `short:"v" help:"Log fetch activity"`
}

// EnhanceCmd is the "enhance" subcommand.
type EnhanceCmd struct {
	Source   string        `arg:"" help:"Page URL or local HTML file"`
	Out      string        `short:"o" default:"." help:"Output directory"`
	Selector string        `short:"s" help:"Enhance only the subtree matching this CSS selector"`
	Browser  bool          `short:"b" help:"Fetch with a headless browser"`
	Timeout  time.Duration `default:"10s" help:"Fetch timeout"`
	Catalog  bool          `help:"Record the run in the catalog database"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Source      string        `arg:"" help:"File with one URL per line, or a site URL with --sitemap"`
	Out         string        `short:"o" default:"." help:"Output directory"`
	Sitemap     bool          `help:"Discover URLs from the site's sitemaps"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent page limit"`
	Rate        float64       `default:"2" help:"Max requests per second per domain"`
	Browser     bool          `short:"b" help:"Fetch with a headless browser"`
	Timeout     time.Duration `default:"10s" help:"Fetch timeout per page"`
	Catalog     bool          `help:"Record each run in the catalog database"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	URL    string `help:"Filter by source URL"`
	Failed bool   `help:"Show only failed runs"`
	Limit  int    `default:"20" help:"Maximum records to show"`
}
