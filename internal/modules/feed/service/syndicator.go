package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/samber/lo"
	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
)

// Format is an output format for the aggregated feed
type Format string

const (
	FormatRSS  Format = "rss"
	FormatAtom Format = "atom"
	FormatJSON Format = "json"
)

// Syndicator republishes the merged article list as a single feed
type Syndicator struct {
	title   string
	siteURL string
	author  string
}

// NewSyndicator creates a syndicator for the site at siteURL
func NewSyndicator(title, siteURL, author string) *Syndicator {
	return &Syndicator{
		title:   title,
		siteURL: strings.TrimRight(siteURL, "/"),
		author:  author,
	}
}

// GenerateFeed builds the aggregated feed; articles are expected newest first
func (s *Syndicator) GenerateFeed(articles []articleDomain.Article, generatedAt time.Time) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       s.title,
		Link:        &feeds.Link{Href: s.siteURL + "/blog"},
		Description: fmt.Sprintf("Articles by %s across all platforms", s.author),
		Author:      &feeds.Author{Name: s.author},
		Created:     generatedAt,
		Updated:     generatedAt,
	}
	if len(articles) > 0 {
		feed.Updated = articles[0].Published
	}

	feed.Items = lo.Map(articles, func(a articleDomain.Article, _ int) *feeds.Item {
		return articleToFeedItem(a)
	})
	return feed
}

// Render serializes the aggregated feed in the given format
func (s *Syndicator) Render(articles []articleDomain.Article, generatedAt time.Time, format Format) (string, error) {
	feed := s.GenerateFeed(articles, generatedAt)
	switch format {
	case FormatAtom:
		return feed.ToAtom()
	case FormatJSON:
		return feed.ToJSON()
	default:
		return feed.ToRss()
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatAtom:
		return "application/atom+xml; charset=utf-8"
	case FormatJSON:
		return "application/feed+json; charset=utf-8"
	default:
		return "application/rss+xml; charset=utf-8"
	}
}

func articleToFeedItem(a articleDomain.Article) *feeds.Item {
	return &feeds.Item{
		Title:       a.Title,
		Link:        &feeds.Link{Href: a.Link},
		Description: fmt.Sprintf("Published on %s", a.Platform),
		Created:     a.Published,
		Id:          a.Link,
	}
}
