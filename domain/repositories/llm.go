package repositories

import (
	"context"

	"github.com/arnish-ai/arnish/domain/language"
)

// Responder generates the assistant reply for one user turn.
type Responder interface {
	// Respond returns the reply text and the language it was generated in.
	// language.Auto asks the implementation to classify the text itself.
	// Implementations are expected to degrade to a localized fallback
	// sentence rather than return an error; the error return exists so the
	// orchestrator can guard defensively anyway.
	Respond(ctx context.Context, text string, tag language.Tag) (string, language.Tag, error)
}
