package repositories

import "context"

// AudioConverter decodes an encoded audio container into mono 16kHz 16-bit
// PCM samples ready for transcription.
type AudioConverter interface {
	// ToPCM decodes the container identified by format (e.g. "webm", "ogg",
	// "wav") and resamples/downmixes it.
	ToPCM(ctx context.Context, encoded []byte, format string) ([]int16, error)
}
