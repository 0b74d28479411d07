// Package http exposes the request/response boundary: JSON over HTTP, one
// route per logical operation. Handlers only parse, delegate to services,
// and map the error taxonomy onto status codes.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blackmessages/backend/internal/logging"
	"github.com/blackmessages/backend/internal/server/services"
)

type Server struct {
	address       string
	logger        logging.Logger
	credentials   *services.CredentialService
	localizations *services.LocalizationService
	messages      *services.MessageService
}

func NewServer(
	address string,
	logger logging.Logger,
	cs *services.CredentialService,
	ls *services.LocalizationService,
	ms *services.MessageService,
) *Server {
	return &Server{
		address:       address,
		logger:        logger.With("module", "http_server"),
		credentials:   cs,
		localizations: ls,
		messages:      ms,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/register", s.handleRegister)
	r.POST("/login", s.handleLogin)
	r.POST("/localization", s.handleUpdateLocalization)
	r.POST("/messages", s.handlePostMessage)
	r.POST("/messages/nearby", s.handleFetchNearby)
	r.GET("/health", s.handleHealth)

	r.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
