package parser

import (
	"fmt"
	"io"

	"github.com/mmcdole/gofeed/rss"
	"github.com/yamitzky/portfolio/internal/modules/article/domain"
	"github.com/yamitzky/portfolio/internal/shared/errors"
)

type rssDialect struct{}

func (rssDialect) Name() string { return "rss" }

// Parse maps every channel item; the link is the item's link text
func (rssDialect) Parse(r io.Reader, platform domain.Platform) ([]domain.Article, error) {
	p := &rss.Parser{}
	feed, err := p.Parse(r)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.PubDateParsed == nil {
			return nil, fmt.Errorf("%w: item %q pubDate %q", errors.ErrUnparseableDate, item.Title, item.PubDate)
		}
		if item.Link == "" {
			return nil, fmt.Errorf("%w: item %q", errors.ErrMissingLink, item.Title)
		}
		articles = append(articles, domain.NewArticle(item.Title, *item.PubDateParsed, item.Link, platform))
	}
	return articles, nil
}
