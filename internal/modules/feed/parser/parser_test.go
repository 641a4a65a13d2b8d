package parser_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamitzky/portfolio/internal/modules/article/domain"
	"github.com/yamitzky/portfolio/internal/modules/feed/parser"
	sharedErrors "github.com/yamitzky/portfolio/internal/shared/errors"
)

const rssDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>note</title>
    <link>https://note.com/yamitzky</link>
    <item>
      <title>First post</title>
      <link>https://note.com/yamitzky/n/first</link>
      <pubDate>Mon, 01 Jan 2024 09:00:00 +0900</pubDate>
    </item>
    <item>
      <title>Second post</title>
      <link>https://note.com/yamitzky/n/second</link>
      <pubDate>Fri, 01 Mar 2024 00:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

const atomDoc = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>qiita</title>
  <entry>
    <title>Atom entry</title>
    <link href="https://x/y"/>
    <published>2024-02-01T12:00:00+09:00</published>
    <updated>2024-02-02T12:00:00+09:00</updated>
  </entry>
  <entry>
    <title>With alternate</title>
    <link rel="enclosure" href="https://x/image.png"/>
    <link rel="alternate" type="text/html" href="https://x/z"/>
    <published>2024-01-15T00:00:00Z</published>
  </entry>
</feed>`

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected parser.Dialect
		err      error
	}{
		{name: "rss", doc: rssDoc, expected: parser.RSS},
		{name: "atom", doc: atomDoc, expected: parser.Atom},
		{name: "opml", doc: `<?xml version="1.0"?><opml version="2.0"><body/></opml>`, err: sharedErrors.ErrUnknownFeedDialect},
		{name: "not xml", doc: `hello`, err: sharedErrors.ErrUnknownFeedDialect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, err := parser.Detect([]byte(tt.doc))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Name(), dialect.Name())
		})
	}
}

func TestParseRSS(t *testing.T) {
	articles, err := parser.Parse([]byte(rssDoc), domain.PlatformNote)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "First post", articles[0].Title)
	assert.Equal(t, "https://note.com/yamitzky/n/first", articles[0].Link)
	assert.Equal(t, domain.PlatformNote, articles[0].Platform)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", articles[0].PublishedString())
	assert.Equal(t, time.UTC, articles[0].Published.Location())

	assert.Equal(t, "Second post", articles[1].Title)
	assert.Equal(t, "2024-03-01T00:00:00.000Z", articles[1].PublishedString())
}

func TestParseAtom(t *testing.T) {
	articles, err := parser.Parse([]byte(atomDoc), domain.PlatformQiita)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "Atom entry", articles[0].Title)
	assert.Equal(t, "https://x/y", articles[0].Link)
	assert.Equal(t, domain.PlatformQiita, articles[0].Platform)
	assert.Equal(t, "2024-02-01T03:00:00.000Z", articles[0].PublishedString())

	assert.Equal(t, "https://x/z", articles[1].Link)
	assert.Equal(t, "2024-01-15T00:00:00.000Z", articles[1].PublishedString())
}

func TestParseEmptyChannel(t *testing.T) {
	doc := `<rss version="2.0"><channel><title>empty</title></channel></rss>`
	articles, err := parser.Parse([]byte(doc), domain.PlatformYamitzky)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "unknown dialect",
			doc:  `<html><body>not a feed</body></html>`,
			err:  sharedErrors.ErrUnknownFeedDialect,
		},
		{
			name: "rss item without pubDate",
			doc:  `<rss version="2.0"><channel><item><title>t</title><link>https://a/b</link></item></channel></rss>`,
			err:  sharedErrors.ErrUnparseableDate,
		},
		{
			name: "atom entry with garbage date",
			doc:  `<feed xmlns="http://www.w3.org/2005/Atom"><entry><title>t</title><link href="https://a/b"/><published>yesterday</published></entry></feed>`,
			err:  sharedErrors.ErrUnparseableDate,
		},
		{
			name: "atom entry without link",
			doc:  `<feed xmlns="http://www.w3.org/2005/Atom"><entry><title>t</title><published>2024-02-01T00:00:00Z</published></entry></feed>`,
			err:  sharedErrors.ErrMissingLink,
		},
		{
			name: "atom entry with empty href",
			doc:  `<feed xmlns="http://www.w3.org/2005/Atom"><entry><title>t</title><link href=""/><published>2024-02-01T00:00:00Z</published></entry></feed>`,
			err:  sharedErrors.ErrMissingLink,
		},
		{
			name: "rss item without link",
			doc:  `<rss version="2.0"><channel><item><title>t</title><pubDate>Mon, 01 Jan 2024 00:00:00 GMT</pubDate></item></channel></rss>`,
			err:  sharedErrors.ErrMissingLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.doc), domain.PlatformJxpress)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}
