// Package main is the entry point for the portfolio content server.
// It reads configuration, sets up logging, and starts the server; all
// actual logic lives under internal/.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/server"
)

func main() {
	// Load .env if present. Real environment variables win over the
	// file, so deployments can override without editing it.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded configuration from .env")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
	}

	dbPath := "data/portfolio.db"
	if envDB := os.Getenv("DB_PATH"); envDB != "" {
		dbPath = envDB
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		logger.Error("failed to create database directory",
			slog.String("dir", filepath.Dir(dbPath)),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// JWT_SECRET must be a long random string:
	//   JWT_SECRET=$(openssl rand -hex 32)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	// ADMIN_PASSWORD_HASH is a bcrypt hash of the admin password, not
	// the password itself. Generate one with any bcrypt tool.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPasswordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminPasswordHash == "" {
		logger.Error("ADMIN_EMAIL and ADMIN_PASSWORD_HASH are required")
		os.Exit(1)
	}

	githubCallbackURL := os.Getenv("GITHUB_CALLBACK_URL")
	if githubCallbackURL == "" {
		githubCallbackURL = fmt.Sprintf("http://localhost:%d/auth/github/callback", port)
	}

	cfg := server.Config{
		Port:               port,
		DBPath:             dbPath,
		JWTSecret:          jwtSecret,
		AdminEmail:         adminEmail,
		AdminPasswordHash:  adminPasswordHash,
		AdminGitHubLogin:   os.Getenv("ADMIN_GITHUB_LOGIN"),
		GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		GitHubCallbackURL:  githubCallbackURL,
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
