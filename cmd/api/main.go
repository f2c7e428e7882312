package main

import (
	"context"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore/csvstore"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore/postgres"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/api"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/config"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/scheduler"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/authenticating"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/registering"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newStore(ctx, cfg)

	reportService := reporting.NewService(store)
	registrar := registering.NewService(store)
	authenticator := authenticating.NewService(store, cfg)

	if err := authenticator.BootstrapAdmin(); err != nil {
		logrus.WithError(err).Fatal("error bootstrapping admin user")
	}

	dailySummaryService := scheduler.NewDailySummaryService(reportService, cfg)
	if err := dailySummaryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting daily summary scheduler")
	}

	server, err := api.New(
		cfg,
		store,
		reportService,
		registrar,
		authenticator,
		dailySummaryService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newStore builds the record store backend selected by configuration.
func newStore(ctx context.Context, cfg *config.Config) recordstore.Store {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("error connecting to PostgreSQL")
		}
		logrus.Info("using the PostgreSQL record store")
		return postgres.NewStore(conn)

	case config.StoreDriverCSV:
		store, err := csvstore.New(cfg.Store.DataDir)
		if err != nil {
			logrus.WithError(err).Fatal("error initializing the CSV record store")
		}
		logrus.WithField("data_dir", cfg.Store.DataDir).Info("using the CSV record store")
		return store

	default:
		logrus.Fatalf("unknown store driver %q", cfg.Store.Driver)
		return nil
	}
}
