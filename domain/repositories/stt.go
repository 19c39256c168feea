package repositories

import (
	"context"

	"github.com/arnish-ai/arnish/domain/language"
)

// Transcription is the result of one speech-to-text pass. Empty text means
// no speech was detected; it is a valid outcome, not an error.
type Transcription struct {
	Text     string
	Language language.Tag
}

// Transcriber converts recorded speech into text.
type Transcriber interface {
	// Transcribe takes mono 16kHz 16-bit PCM samples and an optional forced
	// language. Forced language.Auto means detect automatically.
	Transcribe(ctx context.Context, samples []int16, forced language.Tag) (Transcription, error)
}
