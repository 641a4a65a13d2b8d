package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/samber/oops"
	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
	feedDomain "github.com/yamitzky/portfolio/internal/modules/feed/domain"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
	"github.com/yamitzky/portfolio/internal/shared/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultTopLimit is the number of articles shown on the top page
const DefaultTopLimit = 6

// Normalizer turns one feed source into articles
type Normalizer interface {
	Normalize(ctx context.Context, source feedDomain.Source) ([]articleDomain.Article, error)
}

// Assembler merges every configured feed into a page
type Assembler struct {
	normalizer Normalizer
	sources    []feedDomain.Source
	topLimit   int
	now        func() time.Time
	logger     *slog.Logger
}

// NewAssembler creates an assembler over the given sources, merged in that order
func NewAssembler(normalizer Normalizer, sources []feedDomain.Source, topLimit int) *Assembler {
	if topLimit <= 0 {
		topLimit = DefaultTopLimit
	}
	return &Assembler{
		normalizer: normalizer,
		sources:    slices.Clone(sources),
		topLimit:   topLimit,
		now:        time.Now,
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger
func (a *Assembler) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// SetClock overrides the clock used for GeneratedAt
func (a *Assembler) SetClock(now func() time.Time) {
	a.now = now
}

// Assemble fetches every source and builds the page for variant
func (a *Assembler) Assemble(ctx context.Context, variant domain.Variant) (*domain.Page, error) {
	articles, err := a.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return a.Select(variant, articles), nil
}

// Collect normalizes all sources concurrently and returns the merged articles newest first.
// Any failing source fails the whole collection.
func (a *Assembler) Collect(ctx context.Context) ([]articleDomain.Article, error) {
	if len(a.sources) == 0 {
		return nil, errors.ErrNoFeedSources
	}

	results := make([][]articleDomain.Article, len(a.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, source := range a.sources {
		g.Go(func() error {
			articles, err := a.normalizer.Normalize(gctx, source)
			if err != nil {
				return oops.With("platform", source.Platform, "url", source.URL, "context", "failed to normalize feed").Wrap(err)
			}
			results[i] = articles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := lo.Flatten(results)
	SortNewestFirst(merged)

	a.logger.Info("Articles collected", "sources", len(a.sources), "count", len(merged))
	return merged, nil
}

// Select builds the page for variant out of articles sorted newest first
func (a *Assembler) Select(variant domain.Variant, articles []articleDomain.Article) *domain.Page {
	if variant != domain.VariantBlog {
		variant = domain.VariantTop
	}

	selected := append(make([]articleDomain.Article, 0, len(articles)), articles...)
	if variant == domain.VariantTop {
		selected = lo.Subset(selected, 0, uint(a.topLimit))
	}

	return &domain.Page{
		Variant:     variant,
		Articles:    selected,
		GeneratedAt: a.now().UTC(),
	}
}

// SortNewestFirst orders articles by Published descending; equal timestamps keep their input order
func SortNewestFirst(articles []articleDomain.Article) {
	slices.SortStableFunc(articles, func(x, y articleDomain.Article) int {
		return y.Published.Compare(x.Published)
	})
}
