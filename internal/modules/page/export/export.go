// Package export writes a fully static copy of the site.
package export

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	feedService "github.com/yamitzky/portfolio/internal/modules/feed/service"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
	"github.com/yamitzky/portfolio/internal/modules/page/render"
)

// Refresher rebuilds every page variant
type Refresher interface {
	Refresh(ctx context.Context) (map[domain.Variant]*domain.Page, error)
}

// Exporter renders every route to files under a directory
type Exporter struct {
	pages      Refresher
	renderer   *render.Renderer
	syndicator *feedService.Syndicator
	dir        string
	logger     *slog.Logger
}

// New creates an exporter writing into dir
func New(pages Refresher, renderer *render.Renderer, syndicator *feedService.Syndicator, dir string) *Exporter {
	return &Exporter{
		pages:      pages,
		renderer:   renderer,
		syndicator: syndicator,
		dir:        dir,
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger
func (e *Exporter) SetLogger(logger *slog.Logger) {
	e.logger = logger
}

// Export rebuilds the pages and writes them; nothing is written if the build fails
func (e *Exporter) Export(ctx context.Context) ([]string, error) {
	pages, err := e.pages.Refresh(ctx)
	if err != nil {
		return nil, oops.With("context", "failed to build pages").Wrap(err)
	}

	files := make(map[string][]byte)

	for variant, path := range map[domain.Variant]string{
		domain.VariantTop:  "index.html",
		domain.VariantBlog: filepath.Join("blog", "index.html"),
	} {
		var buf bytes.Buffer
		if err := e.renderer.Render(&buf, pages[variant]); err != nil {
			return nil, err
		}
		files[path] = buf.Bytes()
	}

	blog := pages[domain.VariantBlog]
	for format, path := range map[feedService.Format]string{
		feedService.FormatRSS:  "feed.xml",
		feedService.FormatAtom: "atom.xml",
		feedService.FormatJSON: "feed.json",
	} {
		body, err := e.syndicator.Render(blog.Articles, blog.GeneratedAt, format)
		if err != nil {
			return nil, oops.With("format", format, "context", "failed to render feed").Wrap(err)
		}
		files[path] = []byte(body)
	}

	written := make([]string, 0, len(files))
	for path, data := range files {
		full := filepath.Join(e.dir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return nil, oops.With("dir", filepath.Dir(full), "context", "failed to create export directory").Wrap(err)
		}
		if err := os.WriteFile(full, data, 0644); err != nil {
			return nil, oops.With("path", full, "context", "failed to write file").Wrap(err)
		}
		written = append(written, full)
	}

	e.logger.Info("Site exported", "dir", e.dir, "files", len(written), "articles", len(blog.Articles))
	return written, nil
}
