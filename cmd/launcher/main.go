package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iskele/pkg/config"
	"iskele/pkg/container"
	"iskele/pkg/runtime"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// IskeleServer is the HTTP control surface over the container runtime.
type IskeleServer struct {
	config  *config.Config
	logger  *logrus.Logger
	runtime runtime.Client
	manager *container.Manager
	router  *mux.Router
}

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Konfigürasyon yüklenemedi: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Geçersiz log seviyesi: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	// Create server
	server, err := NewIskeleServer(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Server oluşturulamadı")
	}

	// Start server
	if err := server.Start(); err != nil {
		logger.WithError(err).Fatal("Server başlatılamadı")
	}
}

// NewIskeleServer wires the runtime client and lifecycle manager into a server.
func NewIskeleServer(cfg *config.Config, logger *logrus.Logger) (*IskeleServer, error) {
	rt, err := runtime.NewDockerClient(cfg.Docker.Host, cfg.Docker.Version)
	if err != nil {
		return nil, fmt.Errorf("runtime client oluşturulamadı: %w", err)
	}

	server := &IskeleServer{
		config:  cfg,
		logger:  logger,
		runtime: rt,
		manager: container.NewManager(rt, logger),
	}

	// Setup routes
	server.setupRoutes()

	return server, nil
}

// Start runs the HTTP server until an interrupt arrives.
func (s *IskeleServer) Start() error {
	// The daemon may be down at boot; the server starts anyway and
	// /health reports it.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if ping, err := s.runtime.Ping(pingCtx); err != nil {
		s.logger.WithError(err).Warn("Docker daemon'a erişilemiyor, servis yine de başlatılıyor")
	} else {
		s.logger.WithField("api_version", ping.APIVersion).Info("Docker daemon bağlantısı doğrulandı")
	}
	pingCancel()

	addr := s.config.ListenAddr()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		s.logger.WithField("address", addr).Info("İskele başlatılıyor")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Fatal("HTTP server hatası")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Info("İskele kapatılıyor...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		s.logger.WithError(err).Error("Server kapatma hatası")
		return err
	}

	s.logger.Info("İskele başarıyla kapatıldı")
	return nil
}

// setupRoutes sets up HTTP routes
func (s *IskeleServer) setupRoutes() {
	s.router = mux.NewRouter()

	// Health check
	s.router.HandleFunc("/health", s.healthHandler).Methods("GET")

	// Container routes
	s.router.HandleFunc("/containers", s.createContainerHandler).Methods("POST")
	s.router.HandleFunc("/containers", s.listContainersHandler).Methods("GET")
	s.router.HandleFunc("/containers/{nameOrId}/stop", s.stopContainerHandler).Methods("POST")
	s.router.HandleFunc("/containers/{nameOrId}/logs", s.containerLogsHandler).Methods("GET")
	s.router.HandleFunc("/containers/{nameOrId}", s.statusContainerHandler).Methods("GET")
	s.router.HandleFunc("/containers/{nameOrId}", s.deleteContainerHandler).Methods("DELETE")

	// Stats route
	s.router.HandleFunc("/stats", s.statsHandler).Methods("GET")

	// Add logging middleware
	s.router.Use(s.loggingMiddleware)
}

// Middleware for logging requests
func (s *IskeleServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
			"remote":   r.RemoteAddr,
		}).Info("HTTP request")
	})
}
