package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"PrecisionWorks/internal/config"
	"PrecisionWorks/internal/gateway"
	"PrecisionWorks/pkg/kit"
)

func main() {
	cfg, err := config.Load("gateway")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := kit.NewLogger(cfg.Service, cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	h, err := gateway.NewHandler(gateway.Deps{
		CatalogURL: cfg.Gateway.CatalogURL,
		RateLimit:  cfg.Gateway.RateLimit,
		RateWindow: cfg.Gateway.RateWindow,
	}, gateway.HTTPDeps{
		Log:            log,
		Service:        cfg.Service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})
	if err != nil {
		log.Fatal("init gateway handler failed", zap.Error(err))
	}

	if err := kit.RunHTTPServer(context.Background(), ":"+cfg.Port, h, log, cfg.ShutdownTimeout); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
