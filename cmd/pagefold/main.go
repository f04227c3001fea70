// Package main provides the command-line interface for Pagefold. It
// converts article URLs into print-ready editorial HTML layouts and can
// serve a small web interface doing the same.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/pagefold/pagefold"
	"github.com/pagefold/pagefold/extract"
	"github.com/pagefold/pagefold/internal/config"
	"github.com/pagefold/pagefold/internal/server"
	"github.com/pagefold/pagefold/render"
)

var cli struct {
	Config  string           `short:"c" help:"Configuration file path" default:"pagefold.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Show version information and exit"`

	Convert struct {
		URL            string        `arg:"" help:"Article URL to convert"`
		Output         string        `short:"o" help:"Output file path (default: derived from the article title)"`
		Style          string        `help:"Layout style: magazine or minimal"`
		Quotes         int           `short:"q" default:"-1" help:"Number of pull quotes to select"`
		NoImages       bool          `help:"Skip image download and placement"`
		NoQuotes       bool          `help:"Skip pull quote selection"`
		NoDropCap      bool          `help:"Disable the opening drop cap"`
		NoHeaderFooter bool          `help:"Omit the source credit footer"`
		Timeout        time.Duration `help:"Fetch timeout (overrides config)"`
	} `cmd:"" default:"withargs" help:"Convert an article URL into a print-ready HTML page"`

	Serve struct {
		Addr string `help:"Listen address (overrides config)"`
	} `cmd:"" help:"Start the web interface"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pagefold"),
		kong.Description("Convert web articles into print-ready editorial layouts."),
		kong.Vars{"version": fmt.Sprintf("pagefold %s", pagefold.Version)},
	)

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "convert <url>":
		err = runConvert(cfg)
	case "serve":
		err = runServe(cfg, logger)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func runConvert(cfg config.Config) error {
	articleURL, err := normalizeURL(cli.Convert.URL)
	if err != nil {
		return err
	}

	options := cfg.LayoutOptions()
	if cli.Convert.Style != "" {
		options.Style = pagefold.Style(cli.Convert.Style)
	}
	if err := options.Normalize(); err != nil {
		return err
	}
	if cli.Convert.NoImages {
		options.IncludeImages = false
	}
	if cli.Convert.NoDropCap {
		options.IncludeDropCap = false
	}
	if cli.Convert.NoHeaderFooter {
		options.IncludeHeaderFooter = false
	}

	quotes := cfg.PullQuotes
	if cli.Convert.Quotes >= 0 {
		quotes = cli.Convert.Quotes
	}
	if cli.Convert.NoQuotes {
		quotes = 0
	}
	options.IncludePullQuotes = quotes > 0

	timeout := cfg.Timeout()
	if cli.Convert.Timeout > 0 {
		timeout = cli.Convert.Timeout
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("Extracting article", "url", articleURL)
	extractor := extract.New(
		extract.WithTimeout(timeout),
		extract.WithImages(options.IncludeImages),
	)
	content, err := extractor.ExtractFromURL(ctx, articleURL)
	if err != nil {
		return err
	}
	slog.Info("Extracted article",
		"title", content.Title,
		"words", content.WordCount(),
		"images", len(content.Images))

	analyzed, err := pagefold.Analyze(content, quotes)
	if err != nil {
		return err
	}
	doc, err := pagefold.Compose(analyzed, options)
	if err != nil {
		return err
	}
	page, err := render.Render(analyzed, doc)
	if err != nil {
		return err
	}

	output := cli.Convert.Output
	if output == "" {
		output = slugify(content.Title) + ".html"
	}
	if err := os.WriteFile(output, []byte(page), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	slog.Info("Wrote layout",
		"path", output,
		"pull_quotes", len(analyzed.PullQuotes),
		"placements", len(analyzed.ImagePlacements))
	return nil
}

func runServe(cfg config.Config, logger *slog.Logger) error {
	addr := cfg.Listen
	if cli.Serve.Addr != "" {
		addr = cli.Serve.Addr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.New(cfg, logger).ListenAndServe(ctx, addr)
}

// normalizeURL fills in a missing scheme and rejects anything that is not
// an absolute http(s) URL.
func normalizeURL(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid URL scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return parsed.String(), nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a safe output filename from the article title.
func slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "article"
	}
	if len(slug) > 80 {
		slug = strings.Trim(slug[:80], "-")
	}
	return slug
}
