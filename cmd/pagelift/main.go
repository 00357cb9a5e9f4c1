package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/goquery"
	pagehttp "github.com/pagelift/pagelift/http"
	"github.com/pagelift/pagelift/rod"
	pageslog "github.com/pagelift/pagelift/slog"
	"github.com/pagelift/pagelift/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog database path. Set before calling Run().
	DBPath string

	// SQLite database used by the catalog service.
	DB *sqlite.DB

	// Service handle for end-to-end testing.
	Records pagelift.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}

	// Build the engine configuration. The static backend's handler
	// introspection only sees inline attributes.
	engineCfg := cfg.EngineConfig()
	engineCfg.Interaction = goquery.HasInlineHandler
	deps.Engine = engineCfg

	deps.Sitemaps = pagehttp.NewSitemapService(nil)

	// Open the catalog database only when the command needs it.
	needDB := cmd == "records" ||
		(cmd == "enhance" && cli.Enhance.Catalog) ||
		(cmd == "batch" && cli.Batch.Catalog)
	if needDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGELIFT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Records = sqlite.NewRecordService(m.DB)
		deps.DB = m.DB
		deps.Records = m.Records
	}

	// Wire a fetcher for commands that reach the network.
	needFetcher := cmd == "batch" || (cmd == "enhance" && isRemote(cli.Enhance.Source))
	if needFetcher {
		browser, timeout := cli.Enhance.Browser, cli.Enhance.Timeout
		if cmd == "batch" {
			browser, timeout = cli.Batch.Browser, cli.Batch.Timeout
		}

		fetcher, err := newFetcher(browser, timeout, cfg.UserAgent)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start fetcher: %w", err)
		}
		defer fetcher.Close()

		deps.Fetcher = fetcher
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			deps.Fetcher = pageslog.NewLoggingFetcher(fetcher, logger)
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher selects the page fetcher: a headless browser when requested,
// plain HTTP otherwise.
func newFetcher(browser bool, timeout time.Duration, userAgent string) (pagelift.Fetcher, error) {
	if browser {
		return rod.NewFetcher(rod.WithFetchTimeout(timeout))
	}
	opts := []pagehttp.Option{pagehttp.WithTimeout(timeout)}
	if userAgent != "" {
		opts = append(opts, pagehttp.WithUserAgent(userAgent))
	}
	return pagehttp.NewFetcher(opts...), nil
}

// isRemote reports whether the source is fetched over the network rather
// than read from disk.
func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func defaultDBPath() string {
	if path := os.Getenv("PAGELIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagelift.db"
	}
	dir := filepath.Join(home, ".pagelift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagelift.db")
}
