// Package server is the composition root: it wires the repository,
// services, and handlers together, defines the route table, and owns
// startup and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/auth"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/handler"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/middleware"
	sqliteRepo "github.com/karthi-AI-hub/Professor-Portfolio/internal/repository/sqlite"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/service"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port   int
	DBPath string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	AdminGitHubLogin  string

	GitHubClientID     string
	GitHubClientSecret string
	GitHubCallbackURL  string
}

// Server owns the router and the database connection; the connection is
// closed during graceful shutdown so the WAL is flushed.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New assembles the full dependency chain:
// sqlite.DB → ContentService → handlers → routes.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
//	GET    /api/content/{domain}                                        public read
//	POST   /auth/login                                                  admin login
//	POST   /auth/logout                                                 clear session
//	GET    /auth/github/login                                           OAuth redirect
//	GET    /auth/github/callback                                        OAuth completion
//	GET    /api/admin/me                                                session probe
//	PUT    /api/admin/content/{domain}                                  whole-document save
//	GET    /api/admin/content/{domain}/revisions                        save history
//	POST   /api/admin/classroom/courses                                 commit course
//	DELETE /api/admin/classroom/courses/{index}                         delete course
//	POST   /api/admin/brainpop/categories                               commit category
//	DELETE /api/admin/brainpop/categories/{index}                       delete category
//	POST   /api/admin/brainpop/categories/{categoryIndex}/quizzes       commit quiz
//	DELETE /api/admin/brainpop/categories/{categoryIndex}/quizzes/{index} delete quiz
//	POST   /api/admin/techiebites/posts                                 commit post
//	DELETE /api/admin/techiebites/posts/{index}                         delete post
//	POST   /api/admin/timepass/entries                                  commit entry
//	DELETE /api/admin/timepass/entries/{index}                          delete entry
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()
	github := auth.NewGitHubProvider(
		s.config.GitHubClientID,
		s.config.GitHubClientSecret,
		s.config.GitHubCallbackURL,
	)

	contentService := service.NewContentService(s.db, s.logger)
	contentHandler := handler.NewContentHandler(contentService, s.logger)
	itemHandler := handler.NewItemHandler(contentService, s.logger)
	authHandler := handler.NewAuthHandler(
		tokens,
		passwords,
		github,
		s.config.AdminEmail,
		s.config.AdminPasswordHash,
		s.config.AdminGitHubLogin,
		s.logger,
	)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)
		r.Get("/github/login", authHandler.HandleGitHubLogin)
		r.Get("/github/callback", authHandler.HandleGitHubCallback)
	})

	s.router.Get("/api/content/{domain}", contentHandler.HandleGet)

	s.router.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))

		r.Get("/me", authHandler.HandleMe)

		r.Put("/content/{domain}", contentHandler.HandlePut)
		r.Get("/content/{domain}/revisions", contentHandler.HandleRevisions)

		r.Post("/classroom/courses", itemHandler.HandleCommitCourse)
		r.Delete("/classroom/courses/{index}", itemHandler.HandleDeleteCourse)

		r.Post("/brainpop/categories", itemHandler.HandleCommitCategory)
		r.Delete("/brainpop/categories/{index}", itemHandler.HandleDeleteCategory)
		r.Post("/brainpop/categories/{categoryIndex}/quizzes", itemHandler.HandleCommitQuiz)
		r.Delete("/brainpop/categories/{categoryIndex}/quizzes/{index}", itemHandler.HandleDeleteQuiz)

		r.Post("/techiebites/posts", itemHandler.HandleCommitPost)
		r.Delete("/techiebites/posts/{index}", itemHandler.HandleDeletePost)

		r.Post("/timepass/entries", itemHandler.HandleCommitEntry)
		r.Delete("/timepass/entries/{index}", itemHandler.HandleDeleteEntry)
	})

	return nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, drain in-flight requests for
// up to 30 seconds, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
