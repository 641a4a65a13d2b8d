package domain

import (
	"fmt"
	"net/url"

	"github.com/samber/oops"
	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
	"github.com/yamitzky/portfolio/internal/shared/errors"
)

// Source is a feed the portfolio aggregates articles from
type Source struct {
	Platform articleDomain.Platform `koanf:"platform" json:"platform"`
	URL      string                 `koanf:"url" json:"url"`
}

// Validate checks that the platform is known and the URL is absolute http(s)
func (s Source) Validate() error {
	if !s.Platform.IsValid() {
		return oops.With("platform", s.Platform).Wrap(fmt.Errorf("%w: unknown platform %q", errors.ErrInvalidSource, s.Platform))
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return oops.With("platform", s.Platform, "url", s.URL).Wrap(fmt.Errorf("%w: %v", errors.ErrInvalidSource, err))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return oops.With("platform", s.Platform, "url", s.URL).Wrap(fmt.Errorf("%w: url must be absolute http(s)", errors.ErrInvalidSource))
	}
	return nil
}

func (s Source) String() string {
	return fmt.Sprintf("%s=%s", s.Platform, s.URL)
}

// DefaultSources are the author's feeds in the order they are merged
func DefaultSources() []Source {
	return []Source{
		{Platform: articleDomain.PlatformYamitzky, URL: "https://yamitzky.hatenablog.com/feed"},
		{Platform: articleDomain.PlatformJxpress, URL: "https://tech.jxpress.net/feed/author/yamitzky"},
		{Platform: articleDomain.PlatformQiita, URL: "https://qiita.com/yamitzky/feed"},
		{Platform: articleDomain.PlatformNote, URL: "https://note.com/yamitzky/rss"},
	}
}
