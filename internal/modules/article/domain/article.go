package domain

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the canonical textual form of Article.Published
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Article is a feed entry normalized across platforms
type Article struct {
	Title     string    `json:"title"`
	Published time.Time `json:"published"`
	Link      string    `json:"link"`
	Platform  Platform  `json:"platform"`
}

// NewArticle builds an Article with Published converted to UTC
func NewArticle(title string, published time.Time, link string, platform Platform) Article {
	return Article{
		Title:     title,
		Published: published.UTC(),
		Link:      link,
		Platform:  platform,
	}
}

// PublishedString returns Published in the canonical layout
func (a Article) PublishedString() string {
	return a.Published.UTC().Format(TimestampLayout)
}

type articleJSON struct {
	Title     string   `json:"title"`
	Published string   `json:"published"`
	Link      string   `json:"link"`
	Platform  Platform `json:"platform"`
}

func (a Article) MarshalJSON() ([]byte, error) {
	return json.Marshal(articleJSON{
		Title:     a.Title,
		Published: a.PublishedString(),
		Link:      a.Link,
		Platform:  a.Platform,
	})
}

func (a *Article) UnmarshalJSON(data []byte) error {
	var raw articleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	published, err := time.Parse(time.RFC3339Nano, raw.Published)
	if err != nil {
		return err
	}
	*a = NewArticle(raw.Title, published, raw.Link, raw.Platform)
	return nil
}
