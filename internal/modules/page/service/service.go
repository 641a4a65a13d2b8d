package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/oops"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
	"github.com/yamitzky/portfolio/internal/modules/page/repository"
	sharedErrors "github.com/yamitzky/portfolio/internal/shared/errors"
)

// DefaultRevalidate is how long an assembled page stays fresh
const DefaultRevalidate = 10 * time.Minute

// Service serves assembled pages and regenerates them once they are older than the revalidate window
type Service struct {
	assembler  *Assembler
	repo       repository.Repository
	revalidate time.Duration
	now        func() time.Time
	logger     *slog.Logger

	rebuildMu sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a new page service
func New(assembler *Assembler, repo repository.Repository, revalidate time.Duration) *Service {
	if revalidate <= 0 {
		revalidate = DefaultRevalidate
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		assembler:  assembler,
		repo:       repo,
		revalidate: revalidate,
		now:        time.Now,
		logger:     slog.Default(),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// SetClock overrides the clock used for staleness checks
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.assembler.SetClock(now)
}

// Get returns the page for variant, rebuilding it when missing or stale.
// A failed rebuild falls back to the stale page if one exists.
func (s *Service) Get(ctx context.Context, variant domain.Variant) (*domain.Page, error) {
	if variant != domain.VariantBlog {
		variant = domain.VariantTop
	}

	cached := s.cached(variant)
	if cached != nil && !cached.Stale(s.now(), s.revalidate) {
		return cached, nil
	}

	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	// Another request may have rebuilt while we waited
	if fresh := s.cached(variant); fresh != nil && !fresh.Stale(s.now(), s.revalidate) {
		return fresh, nil
	}

	pages, err := s.rebuild(ctx)
	if err != nil {
		if cached != nil {
			s.logger.Error("Rebuild failed, serving stale page", "variant", variant, "generated_at", cached.GeneratedAt, "error", err)
			return cached, nil
		}
		return nil, err
	}
	return pages[variant], nil
}

// Refresh rebuilds every variant unconditionally
func (s *Service) Refresh(ctx context.Context) (map[domain.Variant]*domain.Page, error) {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()
	return s.rebuild(ctx)
}

// Start regenerates pages every revalidate interval until Stop is called
func (s *Service) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.revalidateLoop(ctx)
}

// Stop stops the revalidation loop
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Service) revalidateLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.revalidate)
	defer ticker.Stop()

	// Initial build
	s.refreshInBackground(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.refreshInBackground(ctx)
		}
	}
}

func (s *Service) refreshInBackground(ctx context.Context) {
	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Error("Scheduled revalidation failed", "error", err)
	}
}

// rebuild collects articles once so both variants are cut from the same list
func (s *Service) rebuild(ctx context.Context) (map[domain.Variant]*domain.Page, error) {
	articles, err := s.assembler.Collect(ctx)
	if err != nil {
		return nil, oops.With("context", "failed to collect articles").Wrap(err)
	}

	top := s.assembler.Select(domain.VariantTop, articles)
	blog := s.assembler.Select(domain.VariantBlog, articles)
	if err := s.repo.SavePages(top, blog); err != nil {
		return nil, oops.With("context", "failed to save pages").Wrap(err)
	}
	pages := map[domain.Variant]*domain.Page{
		domain.VariantTop:  top,
		domain.VariantBlog: blog,
	}

	s.logger.Info("Pages regenerated", "count", len(articles))
	return pages, nil
}

func (s *Service) cached(variant domain.Variant) *domain.Page {
	page, err := s.repo.GetPage(variant)
	if err != nil {
		if !errors.Is(err, sharedErrors.ErrPageNotFound) {
			s.logger.Warn("Failed to load cached page", "variant", variant, "error", err)
		}
		return nil
	}
	return page
}
