package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/chatscrape"
	"github.com/fwojciec/chatscrape/etree"
	"github.com/fwojciec/chatscrape/fs"
	"github.com/fwojciec/chatscrape/goquery"
	"github.com/fwojciec/chatscrape/htmltomarkdown"
	chathttp "github.com/fwojciec/chatscrape/http"
	"github.com/fwojciec/chatscrape/rod"
	"github.com/fwojciec/chatscrape/scrape"
	chatslog "github.com/fwojciec/chatscrape/slog"
	"github.com/fwojciec/chatscrape/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Selectors chatscrape.SelectorService
	History   chatscrape.HistoryService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("chatscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'chatscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CHATSCRAPE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logLevel := slog.LevelInfo
	if cli.Scrape.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Wire core services into dependencies
	m.Selectors = sqlite.NewSelectorService(m.DB)
	m.History = sqlite.NewHistoryService(m.DB)
	deps.DB = m.DB
	deps.Selectors = m.Selectors
	deps.History = m.History
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Encoder = etree.NewEncoder()

	// Wire command-specific dependencies based on command
	if cmd == "scrape" {
		var fetcher chatscrape.Fetcher
		if cli.Scrape.Static {
			fetcher = chathttp.NewFetcher()
		} else {
			browserFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --static for plain HTTP")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		}
		defer fetcher.Close()

		var extractor chatscrape.Extractor = goquery.NewExtractor(
			goquery.NewRegistry(goquery.NewLinkedInProfile()),
		)
		selectors := m.Selectors
		if cli.Scrape.Verbose {
			fetcher = rod.NewLoggingFetcher(fetcher, logger)
			extractor = chatslog.NewLoggingExtractor(extractor, logger)
			selectors = chatslog.NewLoggingSelectorService(selectors, logger)
		}

		deps.Scraper = &scrape.Scraper{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Selectors:   selectors,
			History:     m.History,
			RateLimiter: scrape.NewLimiter(1.0),
			Concurrency: cli.Scrape.Concurrency,
		}

		if cli.Scrape.Out != "" {
			deps.Writer = fs.NewWriter(cli.Scrape.Out)
		}

		return kongCtx.Run(deps)
	}

	if cmd == "set-selector" {
		deps.Scraper = &scrape.Scraper{Selectors: m.Selectors}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CHATSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "chatscrape.db"
	}
	dir := filepath.Join(home, ".chatscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "chatscrape.db")
}
