// Package api exposes the ledger, persona and lore over HTTP for serve mode.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/DaanHessen/smallheath/internal/ledger"
	"github.com/DaanHessen/smallheath/internal/persona"
	"github.com/DaanHessen/smallheath/internal/telemetry"
)

// Server serialises every request against the core. The persona store and
// ledger manager expect a single writer; gin runs handlers concurrently.
type Server struct {
	mu       sync.Mutex
	router   *gin.Engine
	personas *persona.Store
	ledger   *ledger.Manager
	metrics  *telemetry.Metrics
	log      *slog.Logger
}

func NewServer(p *persona.Store, l *ledger.Manager, m *telemetry.Metrics, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		router:   gin.New(),
		personas: p,
		ledger:   l,
		metrics:  m,
		log:      log,
	}
	s.router.Use(gin.Recovery(), s.requestLog())
	s.setupRoutes()
	m.SetBottles(l.Stats().TotalBottles)
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := s.router.Group("/api", s.serialise)
	{
		api.GET("/theme", s.handleTheme)
		api.POST("/persona", s.handleSetPersona)
		api.POST("/persona/toggle", s.handleTogglePersona)
		api.POST("/stealth/toggle", s.handleToggleStealth)

		api.GET("/ledger", s.handleListLedger)
		api.POST("/ledger", s.handleAddRecord)
		api.GET("/ledger/:id", s.handleGetRecord)
		api.PATCH("/ledger/:id", s.handleUpdateRecord)
		api.DELETE("/ledger/:id", s.handleDeleteRecord)
		api.POST("/ledger/reset", s.handleResetLedger)
		api.GET("/stats", s.handleStats)
		api.GET("/report", s.handleReport)

		api.GET("/network", s.handleNetwork)
		api.GET("/network/:id", s.handleCharacter)
		api.GET("/territories", s.handleTerritories)
		api.GET("/timeline", s.handleTimeline)
		api.GET("/dossier", s.handleDossier)
	}
}

func (s *Server) Router() *gin.Engine { return s.router }

func (s *Server) serialise(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Next()
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
	}
}

type apiError struct {
	Error string `json:"error"`
}

func fail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, apiError{Error: msg})
}
