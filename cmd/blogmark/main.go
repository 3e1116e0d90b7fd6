package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blogmark"
	"github.com/fwojciec/blogmark/batch"
	"github.com/fwojciec/blogmark/bloom"
	"github.com/fwojciec/blogmark/fs"
	"github.com/fwojciec/blogmark/gemini"
	"github.com/fwojciec/blogmark/goquery"
	"github.com/fwojciec/blogmark/htmltomarkdown"
	blogmarkhttp "github.com/fwojciec/blogmark/http"
	"github.com/fwojciec/blogmark/readability"
	blogmarkslog "github.com/fwojciec/blogmark/slog"
	"github.com/fwojciec/blogmark/sqlite"
	"github.com/fwojciec/blogmark/trafilatura"
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

	// Service for end-to-end testing.
	DraftService blogmark.DraftService
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
		kong.Name("blogmark"),
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
		return fmt.Errorf("no command specified. Run 'blogmark --help' to see available commands")
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
		fmt.Fprintf(stderr, "Hint: Set BLOGMARK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DraftService = sqlite.NewDraftService(m.DB)
	deps.DB = m.DB
	deps.Drafts = m.DraftService

	// Wire the fetch-extract-convert pipeline for commands that use it
	switch cmd {
	case "convert":
		if err := m.wirePipeline(deps, stderr, cli.Convert.PipelineFlags); err != nil {
			return err
		}
		deps.Writer = fs.NewWriter(cli.Convert.Dir,
			fs.WithHTMLPath(cli.Convert.HTMLOut),
			fs.WithMarkdownPath(cli.Convert.MDOut))
	case "feed":
		if err := m.wirePipeline(deps, stderr, cli.Feed.PipelineFlags); err != nil {
			return err
		}
		deps.Writer = fs.NewWriter(cli.Feed.Dir)
		deps.Feeds = blogmarkhttp.NewFeedService(nil)
		deps.Runner = &batch.Runner{
			Fetcher:      deps.Fetcher,
			Extractor:    deps.Extractor,
			Converter:    deps.Converter,
			Drafts:       deps.Drafts,
			Writer:       deps.Writer,
			TokenCounter: deps.TokenCounter,
			Limiter:      batch.NewDomainLimiter(cli.Feed.RPS),
			Seen:         bloom.NewFilter(100_000, 0.001),
			Concurrency:  cli.Feed.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// wirePipeline builds the fetcher, extractor, converter, and optional
// token counter shared by the convert and feed commands.
func (m *Main) wirePipeline(deps *Dependencies, stderr io.Writer, flags PipelineFlags) error {
	logger := slog.New(slog.DiscardHandler)
	if flags.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcherOpts := []blogmarkhttp.Option{
		blogmarkhttp.WithTimeout(time.Duration(flags.Timeout) * time.Second),
	}
	if flags.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, blogmarkhttp.WithUserAgent(flags.UserAgent))
	}
	deps.Fetcher = blogmarkslog.NewLoggingFetcher(blogmarkhttp.NewFetcher(fetcherOpts...), logger)

	extractor, err := newExtractor(flags.Engine)
	if err != nil {
		return err
	}
	deps.Extractor = blogmarkslog.NewLoggingExtractor(extractor, logger)

	deps.Converter = htmltomarkdown.NewConverter()

	if flags.Tokens {
		tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.TokenCounter = tokenCounter
	}

	return nil
}

// newExtractor returns the extraction engine for the given name.
func newExtractor(engine string) (blogmark.Extractor, error) {
	switch engine {
	case "goquery":
		return goquery.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	default:
		return nil, blogmark.Errorf(blogmark.EINVALID, "unknown engine %q", engine)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("BLOGMARK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "blogmark.db"
	}
	dir := filepath.Join(home, ".blogmark")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "blogmark.db")
}
