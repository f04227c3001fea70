package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagefold/pagefold/internal/config"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.Default(), logger)
}

func TestIndexPage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/convert"`)
	assert.Contains(t, body, `name="url"`)
	assert.Contains(t, body, `value="3"`, "default pull quote count should prefill the form")
	assert.Contains(t, body, `value="magazine" selected`, "default style should be preselected")
}

func TestUnknownPathNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)

	newTestServer().Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func postForm(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.ServeHTTP(rec, req)
	return rec
}

func TestConvertRejectsMissingURL(t *testing.T) {
	rec := postForm(newTestServer().Handler(), url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertRejectsUnknownStyle(t *testing.T) {
	rec := postForm(newTestServer().Handler(), url.Values{
		"url":   {"https://example.com/a"},
		"style": {"brutalist"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertRejectsBadQuoteCount(t *testing.T) {
	rec := postForm(newTestServer().Handler(), url.Values{
		"url":    {"https://example.com/a"},
		"quotes": {"-1"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertPipeline(t *testing.T) {
	article := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, `<html>
<head>
<title>The Slow Leak | The Record</title>
<meta property="og:site_name" content="The Record">
<meta name="author" content="Jordan Reyes">
</head>
<body><article>
<p>The first paragraph sets the scene with a reasonable amount of text.</p>
<p>The second paragraph keeps the story moving along nicely.</p>
<p>The third paragraph wraps the whole thing up for the reader.</p>
</article></body></html>`)
	}))
	defer article.Close()

	rec := postForm(newTestServer().Handler(), url.Values{
		"url":    {article.URL},
		"style":  {"minimal"},
		"quotes": {"0"},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Contains(t, body, "The Slow Leak")
	assert.Contains(t, body, "By Jordan Reyes")
	assert.Contains(t, body, `class="style-minimal"`)
	assert.Contains(t, body, "Originally published at")
}

func TestConvertUpstreamFailure(t *testing.T) {
	article := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer article.Close()

	rec := postForm(newTestServer().Handler(), url.Values{"url": {article.URL}})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPanicRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Chain(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
