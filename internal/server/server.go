// Package server exposes the practice workflow over HTTP. Students get a
// cookie identity on first contact; one live practice session per student
// is tracked in memory while its grades and awards go to the event store.
package server

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"revtrain/internal/badges"
	"revtrain/internal/errorcatalog"
	"revtrain/internal/workflow"
)

const (
	cookieName    = "revtrain_session"
	userIDKey     = "user_id"
	sessionIDKey  = "practice_session_id"
	cookieMaxAge  = 30 * 24 * 60 * 60
	defaultListen = ":8080"
)

// Config holds the HTTP server settings.
type Config struct {
	Listen string

	// SecretKey signs the session cookie. A random key is generated when
	// empty, which invalidates cookies across restarts.
	SecretKey []byte

	// AllowedOrigins for CORS. Empty allows same-origin only.
	AllowedOrigins []string

	SessionTTL time.Duration
}

// Server wires the workflow manager, badge service and catalog behind the
// HTTP API.
type Server struct {
	cfg      Config
	manager  *workflow.Manager
	badges   *badges.Service
	catalog  *errorcatalog.Catalog
	registry *registry
	cookies  *sessions.CookieStore
	log      *slog.Logger
}

func New(cfg Config, manager *workflow.Manager, badgeSvc *badges.Service, catalog *errorcatalog.Catalog, log *slog.Logger) *Server {
	if cfg.Listen == "" {
		cfg.Listen = defaultListen
	}
	if len(cfg.SecretKey) == 0 {
		key := make([]byte, 32)
		rand.Read(key)
		cfg.SecretKey = key
	}
	if log == nil {
		log = slog.Default()
	}

	cookieStore := sessions.NewCookieStore(cfg.SecretKey)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Server{
		cfg:      cfg,
		manager:  manager,
		badges:   badgeSvc,
		catalog:  catalog,
		registry: newRegistry(cfg.SessionTTL),
		cookies:  cookieStore,
		log:      log,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	if len(s.cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = s.cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
		r.Use(cors.New(corsCfg))
	}

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/sessions", s.handleCreateSession)
	api.GET("/sessions/current", s.handleCurrentSession)
	api.POST("/sessions/current/review", s.handleSubmitReview)
	api.GET("/catalog/categories", s.handleCategories)
	api.GET("/catalog/errors", s.handleErrors)
	api.GET("/leaderboard", s.handleLeaderboard)
	api.GET("/profile", s.handleProfile)

	return r
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
