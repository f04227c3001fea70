// Package extract fetches web articles and turns them into the content
// value the analysis pipeline consumes: cleaned block-level HTML, metadata,
// word counts, and downloaded, print-ready images.
package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pagefold/pagefold/internal/meta"
	"github.com/pagefold/pagefold/internal/simplify"
	"github.com/pagefold/pagefold/types"
)

// maxPageBytes caps how much of a page body is read.
const maxPageBytes = 10 << 20

// Extractor defines the interface for article extraction.
type Extractor interface {
	// ExtractFromURL fetches a page and extracts its article content.
	ExtractFromURL(ctx context.Context, pageURL string) (*types.ExtractedContent, error)

	// ExtractFromHTML extracts article content from an already-fetched
	// page. baseURL resolves relative image references and attributes the
	// source.
	ExtractFromHTML(ctx context.Context, pageHTML, baseURL string) (*types.ExtractedContent, error)
}

// Option configures an Extractor, following the functional options pattern.
type Option func(*options)

type options struct {
	timeout       time.Duration
	includeImages bool
	maxImages     int
	userAgent     string
	client        *http.Client
	logger        *slog.Logger
}

// WithTimeout sets the HTTP timeout for page and image fetches.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithImages enables or disables image download and processing.
func WithImages(include bool) Option {
	return func(o *options) { o.includeImages = include }
}

// WithMaxImages caps how many images are extracted; zero means no cap.
func WithMaxImages(max int) Option {
	return func(o *options) { o.maxImages = max }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithHTTPClient substitutes the HTTP client used for all fetches. The
// client's own timeout takes precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.client = client }
}

// WithLogger sets the logger used for skipped-image warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// defaultUserAgent avoids the bot-blocking some publishers apply to
// unadorned clients.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func defaultOptions() options {
	return options{
		timeout:       30 * time.Second,
		includeImages: true,
		userAgent:     defaultUserAgent,
		logger:        slog.Default(),
	}
}

type articleExtractor struct {
	opts   options
	client *http.Client
}

// New creates an Extractor with the provided options.
func New(opts ...Option) Extractor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	client := o.client
	if client == nil {
		client = &http.Client{Timeout: o.timeout}
	}
	return &articleExtractor{opts: o, client: client}
}

func (e *articleExtractor) ExtractFromURL(ctx context.Context, pageURL string) (*types.ExtractedContent, error) {
	resp, err := e.get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", pageURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pageURL, err)
	}

	// Redirects may have moved us; attribute the final URL.
	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return e.ExtractFromHTML(ctx, string(body), finalURL)
}

func (e *articleExtractor) ExtractFromHTML(ctx context.Context, pageHTML, baseURL string) (*types.ExtractedContent, error) {
	metaDoc, err := meta.Parse(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}

	area := findContentArea(doc)

	// Images come from the original markup, before boilerplate removal
	// strips lazy-loading attributes.
	var images []types.Image
	if e.opts.includeImages {
		images = e.collectImages(ctx, area, base)
	}

	cleaned, err := simplify.CleanContentHTML(area)
	if err != nil {
		return nil, fmt.Errorf("cleaning content: %w", err)
	}

	textRoot, err := html.Parse(strings.NewReader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("parsing cleaned content: %w", err)
	}

	return &types.ExtractedContent{
		Title:       meta.ExtractTitle(metaDoc),
		HTMLContent: cleaned,
		TextContent: simplify.FlattenText(textRoot),
		Author:      meta.ExtractAuthor(metaDoc),
		Date:        meta.ExtractDisplayDate(metaDoc),
		Kicker:      meta.ExtractKicker(metaDoc),
		SourceURL:   baseURL,
		SourceName:  meta.ExtractSourceName(metaDoc, baseURL),
		Images:      images,
	}, nil
}

// get issues a browser-like GET request.
func (e *articleExtractor) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", e.opts.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/*,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	return e.client.Do(req)
}
