package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/arnish-ai/arnish/adapters/audioconv"
	"github.com/arnish-ai/arnish/adapters/gemini"
	"github.com/arnish-ai/arnish/adapters/llm"
	"github.com/arnish-ai/arnish/adapters/stt"
	"github.com/arnish-ai/arnish/adapters/tts"
	"github.com/arnish-ai/arnish/domain/repositories"
	"github.com/arnish-ai/arnish/internal/api"
	"github.com/arnish-ai/arnish/internal/config"
	"github.com/arnish-ai/arnish/internal/websocket"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// The Gemini client is constructed once, before any connection is
	// accepted, and injected read-only everywhere it is needed.
	ctx := context.Background()
	geminiClient, err := gemini.NewClient(ctx, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}
	logger.Info("Gemini client ready")

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize adapters
	converter := audioconv.NewFFmpegConverter(cfg.FFmpegBinary, "", logger)
	transcriber := stt.NewGeminiTranscriber(geminiClient, logger, "")
	responder := llm.NewGeminiResponder(geminiClient, llm.DefaultPolicy(), nil, logger)

	var synthesizer repositories.SpeechSynthesizer
	if elevenLabs, err := tts.NewElevenLabsTTS(tts.NewElevenLabsConfigFromEnv(), logger); err != nil {
		logger.Warn("Speech synthesis disabled", zap.Error(err))
	} else {
		synthesizer = elevenLabs
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub(converter, transcriber, responder, logger)
	go hub.Run()

	// Initialize API routes
	api.InitRoutes(e, hub, synthesizer, true, logger)

	// Graceful shutdown
	go func() {
		var err error
		if cfg.TLSCertFile != "" {
			err = e.StartTLS(":"+cfg.Port, cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = e.Start(":" + cfg.Port)
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.Bool("tls", cfg.TLSCertFile != ""))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
