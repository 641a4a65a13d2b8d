package di

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/samber/do/v2"
	"github.com/samber/oops"
	feedService "github.com/yamitzky/portfolio/internal/modules/feed/service"
	pageExport "github.com/yamitzky/portfolio/internal/modules/page/export"
	"github.com/yamitzky/portfolio/internal/modules/page/render"
	pageRepo "github.com/yamitzky/portfolio/internal/modules/page/repository"
	pageService "github.com/yamitzky/portfolio/internal/modules/page/service"
	"github.com/yamitzky/portfolio/internal/shared/config"
	httpServer "github.com/yamitzky/portfolio/internal/transport/http"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	return SetupWith(config.Load)
}

// SetupWith initializes the container with a custom config loader
func SetupWith(loadConfig func() (*config.Config, error)) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register HTTP client used for feed fetches
	do.Provide(injector, func(i do.Injector) (*http.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return &http.Client{Timeout: cfg.FetchTimeoutDuration()}, nil
	})

	// Register Feed Normalizer
	do.Provide(injector, func(i do.Injector) (*feedService.Normalizer, error) {
		client := do.MustInvoke[*http.Client](i)
		normalizer := feedService.NewNormalizer(client)
		normalizer.SetLogger(slog.Default())
		return normalizer, nil
	})

	// Register Syndicator
	do.Provide(injector, func(i do.Injector) (*feedService.Syndicator, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return feedService.NewSyndicator(cfg.SiteTitle, cfg.SiteURL, cfg.Author), nil
	})

	// Register Page Repository
	do.Provide(injector, func(i do.Injector) (pageRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := pageRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize page repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Page Assembler
	do.Provide(injector, func(i do.Injector) (*pageService.Assembler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		normalizer := do.MustInvoke[*feedService.Normalizer](i)
		assembler := pageService.NewAssembler(normalizer, cfg.Feeds, cfg.TopLimit)
		assembler.SetLogger(slog.Default())
		return assembler, nil
	})

	// Register Page Service
	do.Provide(injector, func(i do.Injector) (*pageService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		assembler := do.MustInvoke[*pageService.Assembler](i)
		repo := do.MustInvoke[pageRepo.Repository](i)
		svc := pageService.New(assembler, repo, cfg.RevalidateInterval())
		svc.SetLogger(slog.Default())
		return svc, nil
	})

	// Register Renderer
	do.Provide(injector, func(i do.Injector) (*render.Renderer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		renderer, err := render.New(cfg.SiteTitle, cfg.SiteURL)
		if err != nil {
			return nil, oops.With("context", "failed to initialize renderer").Wrap(err)
		}
		return renderer, nil
	})

	// Register Exporter
	do.Provide(injector, func(i do.Injector) (*pageExport.Exporter, error) {
		cfg := do.MustInvoke[*config.Config](i)
		exporter := pageExport.New(
			do.MustInvoke[*pageService.Service](i),
			do.MustInvoke[*render.Renderer](i),
			do.MustInvoke[*feedService.Syndicator](i),
			cfg.ExportPath,
		)
		exporter.SetLogger(slog.Default())
		return exporter, nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		server := httpServer.New(
			cfg,
			do.MustInvoke[*pageService.Service](i),
			do.MustInvoke[*render.Renderer](i),
			do.MustInvoke[*feedService.Syndicator](i),
		)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(ctx context.Context, injector do.Injector) error {
	// Stop the HTTP server first so no request triggers a rebuild mid-shutdown
	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return oops.With("context", "failed to shutdown http server").Wrap(err)
		}
	}

	if svc, err := do.Invoke[*pageService.Service](injector); err == nil && svc != nil {
		svc.Stop()
	}

	return nil
}
