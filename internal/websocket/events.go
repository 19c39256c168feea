package websocket

import "github.com/arnish-ai/arnish/domain/language"

// EventType discriminates the JSON events exchanged with the client.
type EventType string

// Outbound event types.
const (
	EventConnected     EventType = "connected"
	EventTranscription EventType = "transcription"
	EventResponse      EventType = "response"
	EventTTSRequest    EventType = "tts_request"
	EventError         EventType = "error"
	EventPong          EventType = "pong"
)

// Inbound message types.
const (
	MessageAudio = "audio"
	MessagePing  = "ping"
)

// InboundMessage is the envelope for client messages. Audio payloads carry
// base64 data, a container format (default webm) and an optional language
// hint; null or "auto" means detect.
type InboundMessage struct {
	Type     string  `json:"type"`
	Data     string  `json:"data,omitempty"`
	Format   string  `json:"format,omitempty"`
	Language *string `json:"language,omitempty"`
}

// ConnectedEvent is sent once when a connection opens.
type ConnectedEvent struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
}

// TranscriptionEvent carries the recognized user speech.
type TranscriptionEvent struct {
	Type     EventType    `json:"type"`
	Text     string       `json:"text"`
	Language language.Tag `json:"language"`
}

// ResponseEvent carries an assistant reply. Crisis marks the urgent-resources
// notice that precedes the normal reply; it is omitted when false.
type ResponseEvent struct {
	Type     EventType    `json:"type"`
	Text     string       `json:"text"`
	Language language.Tag `json:"language"`
	Crisis   bool         `json:"crisis,omitempty"`
}

// TTSRequestEvent asks the client to speak the reply aloud.
type TTSRequestEvent struct {
	Type     EventType    `json:"type"`
	Text     string       `json:"text"`
	Language language.Tag `json:"language"`
}

// ErrorEvent reports a per-unit failure without closing the connection.
type ErrorEvent struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
}

// PongEvent answers a keepalive probe.
type PongEvent struct {
	Type EventType `json:"type"`
}
