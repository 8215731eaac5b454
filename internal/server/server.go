// file: internal/server/server.go
// version: 1.3.0
// guid: 4c5d6e7f-8a9b-0c1d-2e3f-4a5b6c7d8e9f

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booklibrary/internal/config"
	"booklibrary/internal/database"
	"booklibrary/internal/metrics"
	"booklibrary/internal/server/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	store      database.Store
	authors    *AuthorService
	books      *BookService
	catalog    *CatalogService
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// GetDefaultServerConfig returns the default server configuration, seeded
// from the application config.
func GetDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         config.AppConfig.Port,
		Host:         config.AppConfig.Host,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new server instance wired to the given store and
// cover client. templatesGlob locates the HTML views.
func NewServer(store database.Store, covers CoverClient, templatesGlob string) *Server {
	if !config.AppConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.MaxRequestBodySize(1 << 20))

	router.LoadHTMLGlob(templatesGlob)

	// Register metrics (idempotent)
	metrics.Register()

	server := &Server{
		router:  router,
		store:   store,
		authors: NewAuthorService(store),
		books:   NewBookService(store),
		catalog: NewCatalogService(store, covers),
	}

	server.setupRoutes()

	return server
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/api/health", s.healthCheck)

	s.router.GET("/", s.homePage)
	s.router.GET("/add_author", s.addAuthorForm)
	s.router.POST("/add_author", s.addAuthorSubmit)
	s.router.GET("/add_book", s.addBookForm)
	s.router.POST("/add_book", s.addBookSubmit)
}

// Start starts the HTTP server and blocks until an interrupt signal,
// then shuts down gracefully.
func (s *Server) Start(cfg ServerConfig) error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited")
	return nil
}

// healthCheck reports liveness and store reachability
func (s *Server) healthCheck(c *gin.Context) {
	books, err := s.store.CountBooks()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "books": books})
}
