package parser

import (
	"fmt"
	"io"

	"github.com/mmcdole/gofeed/atom"
	"github.com/samber/lo"
	"github.com/yamitzky/portfolio/internal/modules/article/domain"
	"github.com/yamitzky/portfolio/internal/shared/errors"
)

type atomDialect struct{}

func (atomDialect) Name() string { return "atom" }

// Parse maps every entry; the link comes from the href attribute, never the element text
func (atomDialect) Parse(r io.Reader, platform domain.Platform) ([]domain.Article, error) {
	p := &atom.Parser{}
	feed, err := p.Parse(r)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		if entry.PublishedParsed == nil {
			return nil, fmt.Errorf("%w: entry %q published %q", errors.ErrUnparseableDate, entry.Title, entry.Published)
		}
		link := entryLink(entry)
		if link == "" {
			return nil, fmt.Errorf("%w: entry %q has no link href", errors.ErrMissingLink, entry.Title)
		}
		articles = append(articles, domain.NewArticle(entry.Title, *entry.PublishedParsed, link, platform))
	}
	return articles, nil
}

// entryLink prefers the alternate link and falls back to the first one
func entryLink(entry *atom.Entry) string {
	links := lo.Filter(entry.Links, func(l *atom.Link, _ int) bool {
		return l != nil && l.Href != ""
	})
	if len(links) == 0 {
		return ""
	}
	if alt, ok := lo.Find(links, func(l *atom.Link) bool { return l.Rel == "alternate" }); ok {
		return alt.Href
	}
	return links[0].Href
}
