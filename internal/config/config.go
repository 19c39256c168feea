// Package config loads process configuration from the environment.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// GeminiAPIKey is required; there is no default credential and the
	// process refuses to start without one.
	GeminiAPIKey string

	// TLSCertFile and TLSKeyFile enable transport encryption when both are
	// set.
	TLSCertFile string
	TLSKeyFile  string

	// FFmpegBinary overrides the decode tool path. Empty uses PATH lookup.
	FFmpegBinary string
}

// Load reads configuration from .env (if present), the environment, and
// command-line flags.
func Load(args []string) (Config, error) {
	godotenv.Load()

	fs := flag.NewFlagSet("arnish", flag.ContinueOnError)
	certFile := fs.String("tls-cert", "", "path to TLS certificate file")
	keyFile := fs.String("tls-key", "", "path to TLS key file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:         os.Getenv("PORT"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		TLSCertFile:  *certFile,
		TLSKeyFile:   *keyFile,
		FFmpegBinary: os.Getenv("FFMPEG_BINARY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8001"
	}
	if cfg.GeminiAPIKey == "" {
		return Config{}, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return Config{}, fmt.Errorf("tls-cert and tls-key must be provided together")
	}
	return cfg, nil
}
