package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/flightseats/api"
	"github.com/Domenick1991/flightseats/config"
	"github.com/Domenick1991/flightseats/internal/service/seating"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Run serves the seating API and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, seatingSvc seating.SeatingUseCase, log *zap.SugaredLogger) error {
	srv := newServer(cfg, seatingSvc, log)

	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Infow("http server stopped")
		return nil
	}
}

func newServer(cfg *config.Config, seatingSvc seating.SeatingUseCase, log *zap.SugaredLogger) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewRouter(seatingSvc, log),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewRouter mounts the seating API under /flight.
func NewRouter(seatingSvc seating.SeatingUseCase, log *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.NewSeatingHandler(seatingSvc).Register(router.Group("/flight"))

	return router
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debugw("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
