package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arnish-ai/arnish/domain/language"
	"github.com/arnish-ai/arnish/domain/repositories"
	"github.com/arnish-ai/arnish/internal/websocket"
)

// HealthResponse reports process health and whether the AI client was
// initialized.
type HealthResponse struct {
	Status            string `json:"status"`
	GeminiInitialized bool   `json:"gemini_initialized"`
}

// ErrorResponse is the JSON error payload for the HTTP endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// InitRoutes initializes all API routes. synthesizer may be nil when the
// speech backend is not configured; the synthesis endpoint then answers 503.
func InitRoutes(
	e *echo.Echo,
	hub *websocket.Hub,
	synthesizer repositories.SpeechSynthesizer,
	geminiReady bool,
	logger *zap.Logger,
) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:            "healthy",
			GeminiInitialized: geminiReady,
		})
	})

	e.GET("/tts", func(c echo.Context) error {
		return textToSpeech(c, synthesizer, logger)
	})

	e.GET("/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(hub, c, logger)
	})
}

// textToSpeech streams synthesized speech for the given text. Any language
// value, including "auto" and unknown tags, resolves to a supported backend
// code.
func textToSpeech(c echo.Context, synthesizer repositories.SpeechSynthesizer, logger *zap.Logger) error {
	if synthesizer == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "tts_unavailable",
			Message: "Speech synthesis backend is not configured",
		})
	}

	text := c.QueryParam("text")
	if text == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_text",
			Message: "Query parameter 'text' is required",
		})
	}

	tag := language.Parse(c.QueryParam("language"))

	audioChan, err := synthesizer.Synthesize(c.Request().Context(), text, tag)
	if err != nil {
		logger.Error("Speech synthesis failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "synthesis_failed",
			Message: err.Error(),
		})
	}

	response := c.Response()
	response.Header().Set(echo.HeaderContentType, "audio/mpeg")
	response.WriteHeader(http.StatusOK)

	for chunk := range audioChan {
		if _, err := response.Write(chunk); err != nil {
			logger.Warn("Client disconnected during synthesis stream", zap.Error(err))
			return nil
		}
		response.Flush()
	}
	return nil
}
