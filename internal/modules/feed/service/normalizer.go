package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/samber/oops"
	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
	"github.com/yamitzky/portfolio/internal/modules/feed/domain"
	"github.com/yamitzky/portfolio/internal/modules/feed/parser"
	"github.com/yamitzky/portfolio/internal/shared/errors"
)

const userAgent = "portfolio-feed/1.0"

// Normalizer fetches a feed and maps its entries onto articles
type Normalizer struct {
	client *http.Client
	logger *slog.Logger
}

// NewNormalizer creates a normalizer; a nil client means http.DefaultClient
func NewNormalizer(client *http.Client) *Normalizer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Normalizer{
		client: client,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (n *Normalizer) SetLogger(logger *slog.Logger) {
	n.logger = logger
}

// Normalize returns one article per feed entry, in document order
func (n *Normalizer) Normalize(ctx context.Context, source domain.Source) ([]articleDomain.Article, error) {
	log := n.logger.With("platform", source.Platform, "url", source.URL)

	data, err := n.fetch(ctx, source.URL)
	if err != nil {
		log.Error("Failed to fetch feed", "error", err)
		return nil, oops.With("platform", source.Platform, "url", source.URL).Wrap(err)
	}

	articles, err := parser.Parse(data, source.Platform)
	if err != nil {
		log.Error("Failed to parse feed", "error", err)
		return nil, oops.With("url", source.URL).Wrap(err)
	}

	log.Debug("Feed normalized", "count", len(articles))
	return articles, nil
}

func (n *Normalizer) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, oops.With("context", "failed to create request").Wrap(err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", errors.ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, oops.With("context", "failed to read body").Wrap(err)
	}
	return data, nil
}
