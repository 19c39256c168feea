package websocket

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/arnish-ai/arnish/domain/crisis"
	"github.com/arnish-ai/arnish/domain/language"
	"github.com/arnish-ai/arnish/domain/repositories"
)

const welcomeMessage = "Connected to Arnish - Your Professional Mental Health AI Assistant"

// Session runs the per-connection processing pipeline. One Session serves
// one connection and handles its messages strictly sequentially; the
// external collaborators are injected so tests can substitute fakes.
type Session struct {
	converter   repositories.AudioConverter
	transcriber repositories.Transcriber
	responder   repositories.Responder
	logger      *zap.Logger
}

// NewSession creates the pipeline for one connection.
func NewSession(
	converter repositories.AudioConverter,
	transcriber repositories.Transcriber,
	responder repositories.Responder,
	logger *zap.Logger,
) *Session {
	return &Session{
		converter:   converter,
		transcriber: transcriber,
		responder:   responder,
		logger:      logger,
	}
}

// HandleMessage processes one inbound unit and emits the resulting events.
// Failures are reported as error events and never terminate the session.
func (s *Session) HandleMessage(ctx context.Context, raw []byte, emit func(event interface{})) {
	var msg InboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.logger.Error("Failed to parse message", zap.Error(err))
		emit(ErrorEvent{Type: EventError, Message: "invalid message format"})
		return
	}

	switch msg.Type {
	case MessagePing:
		emit(PongEvent{Type: EventPong})
	case MessageAudio:
		s.handleAudio(ctx, msg, emit)
	default:
		s.logger.Warn("Unknown message type", zap.String("type", msg.Type))
	}
}

// handleAudio runs the unit pipeline: decode, convert, transcribe, assess,
// respond, emit. A panic anywhere inside the unit is recovered here and
// reported as a generic error event.
func (s *Session) handleAudio(ctx context.Context, msg InboundMessage, emit func(event interface{})) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Panic while processing audio unit", zap.Any("panic", r))
			emit(ErrorEvent{Type: EventError, Message: "internal processing error"})
		}
	}()

	audioBytes, err := base64.StdEncoding.DecodeString(msg.Data)
	if err != nil {
		s.logger.Error("Failed to decode audio payload", zap.Error(err))
		emit(ErrorEvent{Type: EventError, Message: "invalid audio encoding"})
		return
	}

	format := msg.Format
	if format == "" {
		format = "webm"
	}

	samples, err := s.converter.ToPCM(ctx, audioBytes, format)
	if err != nil {
		s.logger.Error("Audio conversion failed",
			zap.String("format", format),
			zap.Error(err))
		emit(ErrorEvent{Type: EventError, Message: "failed to process audio"})
		return
	}

	forced := language.Auto
	if msg.Language != nil {
		forced = language.Parse(*msg.Language)
	}

	transcription, err := s.transcriber.Transcribe(ctx, samples, forced)
	if err != nil {
		s.logger.Error("Transcription failed", zap.Error(err))
		emit(ErrorEvent{Type: EventError, Message: "failed to transcribe audio"})
		return
	}

	if transcription.Text == "" {
		emit(ErrorEvent{Type: EventError, Message: "No speech detected"})
		return
	}

	emit(TranscriptionEvent{
		Type:     EventTranscription,
		Text:     transcription.Text,
		Language: transcription.Language,
	})

	// Crisis assessment is local and deterministic; it runs before any
	// model call and its notice never replaces the normal reply.
	if assessment := crisis.Detect(transcription.Text); assessment.Crisis {
		s.logger.Warn("Crisis language detected",
			zap.String("language", string(assessment.Language)))
		emit(ResponseEvent{
			Type:     EventResponse,
			Text:     language.CrisisNotice(assessment.Language),
			Language: assessment.Language,
			Crisis:   true,
		})
	}

	reply, replyLang, err := s.responder.Respond(ctx, transcription.Text, transcription.Language)
	if err != nil {
		// The responder degrades internally; this guard catches an
		// implementation that propagates anyway.
		s.logger.Error("Response generation failed", zap.Error(err))
		reply = language.ConnectionTrouble(transcription.Language)
		replyLang = transcription.Language
	}

	emit(ResponseEvent{
		Type:     EventResponse,
		Text:     reply,
		Language: replyLang,
	})
	emit(TTSRequestEvent{
		Type:     EventTTSRequest,
		Text:     reply,
		Language: replyLang,
	})
}
