package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
	"github.com/yamitzky/portfolio/internal/modules/page/render"
)

func TestRender(t *testing.T) {
	r, err := render.New("Portfolio", "https://example.com/")
	require.NoError(t, err)

	articles := []articleDomain.Article{
		articleDomain.NewArticle("Go & <XML>", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "https://example.com/posts/a", articleDomain.PlatformQiita),
		articleDomain.NewArticle("Second", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "https://example.com/posts/b", articleDomain.PlatformNote),
	}

	tests := []struct {
		variant   domain.Variant
		canonical string
		contains  []string
	}{
		{
			variant:   domain.VariantTop,
			canonical: `<link rel="canonical" href="https://example.com">`,
			contains:  []string{`class="blog short"`, `href="/blog"`},
		},
		{
			variant:   domain.VariantBlog,
			canonical: `<link rel="canonical" href="https://example.com/blog">`,
			contains:  []string{`class="breadcrumb"`, `class="blog"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, &domain.Page{Variant: tt.variant, Articles: articles}))
			html := buf.String()

			assert.Contains(t, html, tt.canonical)
			for _, s := range tt.contains {
				assert.Contains(t, html, s)
			}
			assert.Contains(t, html, "Go &amp; &lt;XML&gt;")
			assert.Contains(t, html, `datetime="2024-03-01T00:00:00.000Z"`)
			first := strings.Index(html, `href="https://example.com/posts/a"`)
			second := strings.Index(html, `href="https://example.com/posts/b"`)
			require.NotEqual(t, -1, first)
			require.NotEqual(t, -1, second)
			assert.Less(t, first, second)
		})
	}
}
