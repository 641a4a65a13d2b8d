// Package parser turns RSS 2.0 and Atom documents into normalized articles.
package parser

import (
	"bytes"
	"io"

	"github.com/mmcdole/gofeed"
	"github.com/samber/oops"
	"github.com/yamitzky/portfolio/internal/modules/article/domain"
	"github.com/yamitzky/portfolio/internal/shared/errors"
)

// Dialect is a feed format that can be mapped onto articles
type Dialect interface {
	Name() string
	Parse(r io.Reader, platform domain.Platform) ([]domain.Article, error)
}

var (
	RSS  Dialect = rssDialect{}
	Atom Dialect = atomDialect{}
)

// Detect picks the dialect of a document from its root element
func Detect(data []byte) (Dialect, error) {
	switch gofeed.DetectFeedType(bytes.NewReader(data)) {
	case gofeed.FeedTypeRSS:
		return RSS, nil
	case gofeed.FeedTypeAtom:
		return Atom, nil
	default:
		return nil, errors.ErrUnknownFeedDialect
	}
}

// Parse detects the dialect of data and returns one article per entry in document order
func Parse(data []byte, platform domain.Platform) ([]domain.Article, error) {
	dialect, err := Detect(data)
	if err != nil {
		return nil, oops.With("platform", platform).Wrap(err)
	}

	articles, err := dialect.Parse(bytes.NewReader(data), platform)
	if err != nil {
		return nil, oops.With("platform", platform, "dialect", dialect.Name()).Wrap(err)
	}
	return articles, nil
}
