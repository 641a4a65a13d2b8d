package domain

import (
	"time"

	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
)

// VariantOrDefault parses s and falls back to VariantTop for anything that is not a known variant
func VariantOrDefault(s string) Variant {
	v, err := ParseVariant(s)
	if err != nil {
		return VariantTop
	}
	return v
}

// Page is an assembled page ready to hand to the renderer
type Page struct {
	Variant     Variant                 `json:"variant"`
	Articles    []articleDomain.Article `json:"articles"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// Stale reports whether the page is older than maxAge at now
func (p *Page) Stale(now time.Time, maxAge time.Duration) bool {
	return now.Sub(p.GeneratedAt) >= maxAge
}
