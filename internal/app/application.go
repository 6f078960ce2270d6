package app

import (
	"log/slog"

	"bikeflow.urbandata.org/internal/bikeshare"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Manager *bikeshare.Manager
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), the accepted API
// keys, and the per-key rate limit. Values come from the environment
// (optionally via a .env file) with command-line flags layered on top by
// package main.
type Config struct {
	Port      int
	Env       string
	APIKeys   []string
	RateLimit int
}
