package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/api/handler"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/api/handler/router"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/config"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/scheduler"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/authenticating"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/registering"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/reporting"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	store recordstore.Store,
	reportService reporting.Reporter,
	registrar registering.Registrar,
	authenticator authenticating.Authenticator,
	dailySummaryService *scheduler.DailySummaryService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Branches(registrar, store)...),
		router.WithRoutes(handler.Sales(registrar)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.CronJobs(dailySummaryService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped with error")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server shut down cleanly")
	return nil
}
