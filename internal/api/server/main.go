package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bz888/govhelper/internal/api/server/client"
	"github.com/bz888/govhelper/internal/api/server/handlers"
	"github.com/bz888/govhelper/internal/api/server/web"
	"github.com/bz888/govhelper/internal/config"
	"github.com/bz888/govhelper/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	settings *config.Settings
	engine   *gin.Engine
	logger   *logger.Logger
}

// New builds the gin engine around geminiClient. The gin mode is left to the
// caller.
func New(settings *config.Settings, geminiClient client.GeminiClientInterface) (*Server, error) {
	localLogger := logger.NewLogger("Server")

	page, err := web.ParsePage()
	if err != nil {
		return nil, fmt.Errorf("parse chat page: %w", err)
	}

	corsCfg := corsConfig(settings.CORSAllowedOrigins)
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}

	// Routes install their own recovery so each answers a panic in its own
	// format. This one only catches panics in the shared middleware.
	engine := gin.New()
	engine.Use(
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			localLogger.Errorf("Error in %s: %v", c.Request.URL.Path, recovered)
			c.AbortWithStatus(http.StatusInternalServerError)
		}),
		requestID(),
		accessLog(localLogger),
		cors.New(corsCfg),
	)

	responder := handlers.NewResponder(geminiClient, settings.RequestTimeout)
	registerRoutes(engine, handlers.NewHandler(geminiClient, responder, page), localLogger, settings.Debug)

	return &Server{
		settings: settings,
		engine:   engine,
		logger:   localLogger,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down within
// settings.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.settings.Address(),
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.settings.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}
