package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"rasporedApp/config"
	"rasporedApp/database"
	"rasporedApp/logger"
)

// Server holds everything a request needs: configuration, the logger
// and the repositories. There is no package-level state; the value is
// constructed once at startup and owns its router.
type Server struct {
	cfg     *config.Config
	logger  *logger.Logger
	events  *database.EventRepository
	refs    *database.ReferenceRepository
	reports *database.ReportRepository
	router  *gin.Engine

	now func() time.Time
}

func NewServer(cfg *config.Config, logger *logger.Logger, db *sqlx.DB) *Server {
	exec := database.NewExecutor(db, logger)

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		events:  database.NewEventRepository(exec),
		refs:    database.NewReferenceRepository(exec),
		reports: database.NewReportRepository(exec),
		now:     time.Now,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	s.registerRoutes(router)
	s.router = router

	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Infof("Listening on %s", s.cfg.Listen)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
