package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"PrecisionWorks/internal/capability"
	"PrecisionWorks/internal/catalog"
	"PrecisionWorks/internal/config"
	"PrecisionWorks/internal/site"
	"PrecisionWorks/pkg/kit"
)

func main() {
	cfg, err := config.Load("catalog")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := kit.NewLogger(cfg.Service, cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	store, err := loadStore(ctx, cfg.Catalog, log)
	if err != nil {
		log.Fatal("load catalog failed", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("products", store.Len()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := cfg.Catalog.StubOptions()
	opts.Log = log
	opts.Metrics = catalog.NewStubMetrics(reg)

	deps := site.Deps{
		Catalog: &catalog.Server{
			Reader: catalog.NewStub(store, opts),
			Store:  store,
			Log:    log,
		},
		Capabilities: &capability.Server{
			Service: capability.NewService(capability.Seed(), cfg.Catalog.CapabilityLatency.Latency()),
			Log:     log,
		},
	}

	h := site.NewHandler(deps, site.HTTPDeps{
		Log:            log,
		Service:        cfg.Service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})

	if err := kit.RunHTTPServer(ctx, ":"+cfg.Port, h, log, cfg.ShutdownTimeout); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// loadStore snapshots the catalog once at boot. Postgres wins over a seed file,
// and the built-in sample catalog is the fallback.
func loadStore(ctx context.Context, cfg config.CatalogConfig, log *zap.Logger) (*catalog.MemStore, error) {
	switch {
	case cfg.DatabaseURL != "":
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		pg := catalog.NewPostgresStore(db)
		if err := pg.Ping(ctx); err != nil {
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		products, err := pg.ListProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("postgres list products: %w", err)
		}
		log.Info("catalog source", zap.String("source", "postgres"))
		return catalog.NewMemStore(products)

	case cfg.SeedFile != "":
		products, err := catalog.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		log.Info("catalog source", zap.String("source", "seed_file"), zap.String("path", cfg.SeedFile))
		return catalog.NewMemStore(products)
	}

	log.Info("catalog source", zap.String("source", "builtin"))
	return catalog.NewStore(), nil
}
