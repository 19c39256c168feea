package repositories

import (
	"context"

	"github.com/arnish-ai/arnish/domain/language"
)

// SpeechSynthesizer renders text into a compressed audio stream. Unsupported
// language tags map to English rather than erroring.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, tag language.Tag) (<-chan []byte, error)
}
