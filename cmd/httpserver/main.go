package main

import (
	"context"
	"log/slog"
	"os"

	"addressbook/contact"
	"addressbook/httpserver"
	"addressbook/pkg/config"
	"addressbook/pkg/sentry"
	"addressbook/pkg/source"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	src, err := source.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("Cannot open contacts source", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	gateway := contact.NewRepositoryGateway(src.Repository,
		contact.WithGatewayLogger(logger.With("source", src.Name)),
	)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(logger),
		httpserver.WithContactGateway(gateway),
	)
	if err != nil {
		slog.Error("Cannot create server", "error", err)
		os.Exit(1)
	}

	slog.Info("server started!", "addr", server.Addr, "source", src.Name)
	if err := server.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
