package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/amanranjan113114/qr-generator/internal/api"
	"github.com/amanranjan113114/qr-generator/internal/metrics"
	"github.com/amanranjan113114/qr-generator/pkg/config"
	"github.com/amanranjan113114/qr-generator/pkg/httpserver"
	"github.com/amanranjan113114/qr-generator/pkg/logger"
)

type appConfig struct {
	HTTP httpserver.Config
	Log  logger.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log, logger.WithAttr(slog.String("service", "qr-generator")))
	slog.SetDefault(log)

	srv := api.New(log, metrics.New())
	httpSrv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	if err := httpSrv.Run(context.Background(), srv.Router()); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
