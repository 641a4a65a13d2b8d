package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"
	"github.com/yamitzky/portfolio/internal/di"
	pageExport "github.com/yamitzky/portfolio/internal/modules/page/export"
	pageService "github.com/yamitzky/portfolio/internal/modules/page/service"
	"github.com/yamitzky/portfolio/internal/shared/config"
	httpServer "github.com/yamitzky/portfolio/internal/transport/http"
)

var logLevel = new(slog.LevelVar)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	if err := app().Run(os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:  "portfolio",
		Usage: "Aggregate blog feeds into a portfolio page",
		Description: `Fetches the configured RSS and Atom feeds, merges the entries newest
		first and renders a top page (latest articles) and a blog page (all articles).

		Configuration is read from config.{yaml,yml,json,toml} in the working
		directory and can be overridden with environment variables, e.g.:

		http_port => HTTP_PORT=8080
		revalidate => REVALIDATE=600
		feeds => FEEDS=qiita=https://qiita.com/yamitzky/feed,note=https://note.com/yamitzky/rss
		`,
		Commands: []*cli.Command{
			serveCmd(),
			buildCmd(),
		},
		Action: serve,
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Serve the pages and regenerate them every revalidate interval",
		Action: serve,
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Fetch all feeds once and write a static copy of the site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "Directory to write the site into (overrides export_path)",
			},
		},
		Action: build,
	}
}

func setup() (do.Injector, *config.Config, error) {
	injector, err := di.Setup()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil, nil, err
	}
	logLevel.Set(cfg.SlogLevel())
	return injector, cfg, nil
}

func serve(c *cli.Context) error {
	injector, cfg, err := setup()
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := di.Shutdown(ctx, injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	pages := do.MustInvoke[*pageService.Service](injector)
	server := do.MustInvoke[*httpServer.Server](injector)

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start periodic regeneration
	pages.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	slog.Info("Application started", "port", cfg.HTTPPort, "feeds", len(cfg.Feeds), "app_env", cfg.AppEnv)
	slog.Info("Press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		slog.Info("Shutting down...")
		return nil
	case err := <-errCh:
		return err
	}
}

func build(c *cli.Context) error {
	injector, cfg, err := setup()
	if err != nil {
		return err
	}

	if c.IsSet("out") {
		cfg.ExportPath = c.String("out")
	}

	exporter := do.MustInvoke[*pageExport.Exporter](injector)
	files, err := exporter.Export(c.Context)
	if err != nil {
		return err
	}

	for _, f := range files {
		slog.Debug("Wrote file", "path", f)
	}
	return nil
}
