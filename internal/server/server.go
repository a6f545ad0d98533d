package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/onlyinellada/backend/internal/config"
	"github.com/onlyinellada/backend/internal/database"
	"github.com/onlyinellada/backend/internal/handlers"
	"github.com/onlyinellada/backend/internal/middleware"
)

type Server struct {
	db        database.Service
	handler   *handlers.Handler
	jwtSecret []byte
	cron      *cron.Cron
}

// NewServer creates and configures a new server
func NewServer(cfg *config.Config) *http.Server {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Raw-SQL bootstrap: tables plus category seed.
	bootstrap, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := bootstrap.Initialize(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}
	if err := bootstrap.Close(); err != nil {
		log.Printf("Failed to close bootstrap connection: %v", err)
	}

	db := database.New(cfg.Database)
	handler := handlers.NewHandler(db.GetDB(), []byte(cfg.JWTSecret), logger)

	newServer := &Server{
		db:        db,
		handler:   handler,
		jwtSecret: []byte(cfg.JWTSecret),
		cron:      cron.New(),
	}

	newServer.scheduleReconciliation(cfg.ReconcileSchedule, logger)

	router := newServer.RegisterRoutes()

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", cfg.Port)

	return server
}

// scheduleReconciliation recounts story tallies from vote rows on a schedule.
// Vote counters are denormalized; this closes any drift window.
func (s *Server) scheduleReconciliation(schedule string, logger *slog.Logger) {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.handler.Ledger.Reconcile(ctx); err != nil {
			logger.Error("tally reconciliation failed", "error", err)
		}
	})
	if err != nil {
		log.Fatalf("Invalid reconciliation schedule %q: %v", schedule, err)
	}
	s.cron.Start()
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Category routes (public reads)
		api.GET("/categories", s.handler.Category.GetCategories)

		// Story routes (public reads; requester vote picked up when a
		// token is present)
		optional := api.Group("")
		optional.Use(middleware.OptionalAuth(s.jwtSecret))
		{
			optional.GET("/stories", s.handler.Story.GetStories)
			optional.GET("/stories/:id", s.handler.Story.GetStory)
		}

		// Comment routes (public reads)
		api.GET("/stories/:id/comments", s.handler.Comment.GetComments)

		// User routes (public reads)
		api.GET("/users/:id", s.handler.Auth.GetUserProfile)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.Auth(s.jwtSecret))
		{
			protected.GET("/me", s.handler.Auth.GetMe)

			protected.POST("/stories", s.handler.Story.CreateStory)
			protected.POST("/stories/:id/vote", s.handler.Vote.VoteStory)
			protected.POST("/stories/:id/comments", s.handler.Comment.CreateComment)
		}
	}

	return r
}
