// Package server provides the HTTP REST API for the portal backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/sarkariportal/backend/internal/analytics"
	"github.com/sarkariportal/backend/internal/config"
	"github.com/sarkariportal/backend/internal/llm"
	"github.com/sarkariportal/backend/internal/parsing"
	"github.com/sarkariportal/backend/internal/store"
	"github.com/sarkariportal/backend/internal/types"
)

// PostStore is the slice of the store the handlers need.
type PostStore interface {
	CreatePost(ctx context.Context, job types.Job) (*types.Job, error)
	GetPost(ctx context.Context, id int64) (*types.Job, error)
	ListPosts(ctx context.Context, opts store.ListOptions) ([]types.Job, error)
	UpdatePost(ctx context.Context, id int64, job types.Job) (*types.Job, error)
	DeletePost(ctx context.Context, id int64) (bool, error)
	GetPostTitles(ctx context.Context, ids []int64) (map[int64]string, error)
}

// AnalyticsTracker is the slice of the analytics package the handlers need.
type AnalyticsTracker interface {
	Track(ctx context.Context, page, postID, sessionID string)
	CollectStats(ctx context.Context) (*analytics.Stats, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      PostStore
	db         *store.Store
	tracker    AnalyticsTracker
	rules      parsing.TextExtractor
	model      parsing.TextExtractor
	llmClient  llm.Client
	jwtService *JWTService
	passwords  *config.PasswordConfig

	adminEmail        string
	adminPasswordHash string
	allowedOrigin     string
}

// Config holds server configuration
type Config struct {
	Port              int
	DatabaseURL       string
	RedisURL          string
	APIKey            string
	AllowedOrigin     string
	AdminEmail        string
	AdminPasswordHash string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	db, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		store:             db,
		db:                db,
		rules:             parsing.NewRuleExtractor(),
		adminEmail:        cfg.AdminEmail,
		adminPasswordHash: cfg.AdminPasswordHash,
		allowedOrigin:     cfg.AllowedOrigin,
	}

	// Analytics is optional; the portal serves posts without it.
	if cfg.RedisURL != "" {
		tracker, err := analytics.NewTracker(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		s.tracker = tracker
	}

	// Model-assisted parsing is optional; the rule-based parser always works.
	if cfg.APIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.model = parsing.NewModelExtractor(client)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.passwords = passwordConfig

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for model-assisted parsing
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Public read API
	mux.HandleFunc("GET /api/posts", s.handleListPosts)
	mux.HandleFunc("GET /api/posts/{id}", s.handleGetPost)
	mux.HandleFunc("GET /api/posts/{id}/sections", s.handleGetSections)

	// Admin mutations
	mux.HandleFunc("POST /api/posts", s.requireAuth(s.handleCreatePost))
	mux.HandleFunc("PUT /api/posts/{id}", s.requireAuth(s.handleUpdatePost))
	mux.HandleFunc("DELETE /api/posts/{id}", s.requireAuth(s.handleDeletePost))
	mux.HandleFunc("POST /api/posts/bulk", s.requireAuth(s.handleBulkImport))

	// Parse staging
	mux.HandleFunc("POST /api/parse-job-rules", s.requireAuth(s.handleParseRules))
	mux.HandleFunc("POST /api/parse-job", s.requireAuth(s.handleParseModel))

	// Auth
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	mux.HandleFunc("GET /api/auth/me", s.requireAuth(s.handleMe))

	// Analytics
	mux.HandleFunc("POST /api/analytics/track", s.handleTrack)
	mux.HandleFunc("GET /api/analytics", s.requireAuth(s.handleStats))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if closer, ok := s.tracker.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Error closing analytics: %v", err)
		}
	}
	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	origin := s.allowedOrigin
	if origin == "" {
		origin = "*"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if origin != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a short request id
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()[:8]
		start := time.Now()
		log.Printf("[%s] %s %s %s", reqID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
