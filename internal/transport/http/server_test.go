package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
	feedService "github.com/yamitzky/portfolio/internal/modules/feed/service"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
	"github.com/yamitzky/portfolio/internal/modules/page/render"
	"github.com/yamitzky/portfolio/internal/shared/config"
	httpServer "github.com/yamitzky/portfolio/internal/transport/http"
)

type stubPages struct {
	err   error
	asked []domain.Variant
}

func (s *stubPages) Get(_ context.Context, variant domain.Variant) (*domain.Page, error) {
	s.asked = append(s.asked, variant)
	if s.err != nil {
		return nil, s.err
	}
	articles := []articleDomain.Article{
		articleDomain.NewArticle("Newest", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "https://example.com/new", articleDomain.PlatformQiita),
		articleDomain.NewArticle("Oldest", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "https://example.com/old", articleDomain.PlatformNote),
	}
	if variant == domain.VariantTop {
		articles = articles[:1]
	}
	return &domain.Page{Variant: variant, Articles: articles, GeneratedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)}, nil
}

func newHandler(t *testing.T, pages httpServer.PageProvider) http.Handler {
	t.Helper()
	r, err := render.New("Portfolio", "https://example.com")
	require.NoError(t, err)
	cfg := &config.Config{HTTPPort: "0", Revalidate: 600}
	return httpServer.New(cfg, pages, r, feedService.NewSyndicator("Portfolio", "https://example.com", "me")).Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPages(t *testing.T) {
	tests := []struct {
		path     string
		variant  domain.Variant
		contains string
	}{
		{path: "/", variant: domain.VariantTop, contains: `href="https://example.com/new"`},
		{path: "/blog", variant: domain.VariantBlog, contains: `href="https://example.com/old"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			pages := &stubPages{}
			rec := get(t, newHandler(t, pages), tt.path)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, "public, max-age=600", rec.Header().Get("Cache-Control"))
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.Equal(t, []domain.Variant{tt.variant}, pages.asked)
		})
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	rec := get(t, newHandler(t, &stubPages{}), "/about")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageBuildFailure(t *testing.T) {
	rec := get(t, newHandler(t, &stubPages{err: errors.New("feed down")}), "/blog")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestArticlesAPI(t *testing.T) {
	tests := []struct {
		query   string
		variant domain.Variant
		count   int
	}{
		{query: "?page=blog", variant: domain.VariantBlog, count: 2},
		{query: "?page=top", variant: domain.VariantTop, count: 1},
		{query: "?page=whatever", variant: domain.VariantTop, count: 1},
		{query: "", variant: domain.VariantTop, count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(t, newHandler(t, &stubPages{}), "/api/articles"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Variant  string `json:"variant"`
				Articles []struct {
					Title     string `json:"title"`
					Published string `json:"published"`
					Link      string `json:"link"`
					Platform  string `json:"platform"`
				} `json:"articles"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.variant.String(), body.Variant)
			require.Len(t, body.Articles, tt.count)
			assert.Equal(t, "2024-03-01T00:00:00.000Z", body.Articles[0].Published)
			assert.Equal(t, "qiita", body.Articles[0].Platform)
		})
	}
}

func TestFeeds(t *testing.T) {
	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/feed.xml", contentType: "application/rss+xml; charset=utf-8", contains: "<rss"},
		{path: "/atom.xml", contentType: "application/atom+xml; charset=utf-8", contains: "<feed"},
		{path: "/feed.json", contentType: "application/feed+json; charset=utf-8", contains: `"items"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			pages := &stubPages{}
			rec := get(t, newHandler(t, pages), tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.True(t, strings.Contains(rec.Body.String(), tt.contains))
			assert.Contains(t, rec.Body.String(), "https://example.com/old")
			assert.Equal(t, []domain.Variant{domain.VariantBlog}, pages.asked)
		})
	}
}

func TestHealth(t *testing.T) {
	rec := get(t, newHandler(t, &stubPages{}), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
