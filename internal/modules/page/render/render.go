// Package render turns an assembled page into HTML.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/samber/oops"
	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

type view struct {
	Title     string
	Canonical string
	Short     bool
	Articles  []articleDomain.Article
}

// Renderer renders pages with one template per variant
type Renderer struct {
	siteTitle string
	siteURL   string
	templates map[domain.Variant]*template.Template
}

// New parses the embedded templates
func New(siteTitle, siteURL string) (*Renderer, error) {
	r := &Renderer{
		siteTitle: siteTitle,
		siteURL:   strings.TrimRight(siteURL, "/"),
		templates: make(map[domain.Variant]*template.Template, 2),
	}

	for _, variant := range []domain.Variant{domain.VariantTop, domain.VariantBlog} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html.tmpl", "templates/"+variant.String()+".html.tmpl")
		if err != nil {
			return nil, oops.With("variant", variant, "context", "failed to parse template").Wrap(err)
		}
		r.templates[variant] = tmpl
	}
	return r, nil
}

// Render writes the HTML for page to w
func (r *Renderer) Render(w io.Writer, page *domain.Page) error {
	variant := page.Variant
	if variant != domain.VariantBlog {
		variant = domain.VariantTop
	}

	v := view{
		Title:     r.siteTitle,
		Canonical: r.siteURL,
		Short:     variant == domain.VariantTop,
		Articles:  page.Articles,
	}
	if variant == domain.VariantBlog {
		v.Canonical = r.siteURL + "/blog"
	}

	// Render to a buffer first so a template error never leaves half a page in w
	var buf bytes.Buffer
	if err := r.templates[variant].ExecuteTemplate(&buf, "layout", v); err != nil {
		return oops.With("variant", variant, "context", "failed to execute template").Wrap(err)
	}
	_, err := buf.WriteTo(w)
	return err
}
