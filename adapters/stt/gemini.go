// Package stt transcribes recorded speech through Gemini's audio
// understanding, with script-aware post-processing for romanized regional
// languages.
package stt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/arnish-ai/arnish/adapters/gemini"
	"github.com/arnish-ai/arnish/domain/language"
	"github.com/arnish-ai/arnish/domain/repositories"
)

const sampleRate = 16000

// GeminiTranscriber implements repositories.Transcriber on top of Gemini
// audio understanding.
type GeminiTranscriber struct {
	generator gemini.Generator
	logger    *zap.Logger
	tempDir   string

	// Overridable in tests to fault the container write path.
	createTemp func(path string) (*os.File, error)
}

var _ repositories.Transcriber = (*GeminiTranscriber)(nil)

// NewGeminiTranscriber creates the transcription adapter. Temp WAV
// containers are written under tempDir; empty means os.TempDir.
func NewGeminiTranscriber(generator gemini.Generator, logger *zap.Logger, tempDir string) *GeminiTranscriber {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &GeminiTranscriber{
		generator:  generator,
		logger:     logger,
		tempDir:    tempDir,
		createTemp: os.Create,
	}
}

// Transcribe converts mono 16kHz PCM samples to text. Upstream failures
// degrade to an empty transcription in English so callers treat them as "no
// speech detected" rather than a hard error.
func (t *GeminiTranscriber) Transcribe(ctx context.Context, samples []int16, forced language.Tag) (repositories.Transcription, error) {
	wavPath := filepath.Join(t.tempDir, fmt.Sprintf("arnish-%s.wav", uuid.NewString()))
	file, err := t.createTemp(wavPath)
	if err != nil {
		return repositories.Transcription{}, fmt.Errorf("create wav container: %w", err)
	}
	// Registered before the first write so a failed encode does not strand a
	// partial container on disk.
	defer func() {
		if err := os.Remove(wavPath); err != nil {
			t.logger.Warn("Failed to remove temp wav file",
				zap.String("path", wavPath),
				zap.Error(err))
		}
	}()
	if err := writeWAV(file, samples); err != nil {
		return repositories.Transcription{}, fmt.Errorf("write wav container: %w", err)
	}

	wavBytes, err := os.ReadFile(wavPath)
	if err != nil {
		return repositories.Transcription{}, fmt.Errorf("read wav container: %w", err)
	}

	text, err := t.submit(ctx, wavBytes, transcriptionPrompt(forced))
	if err != nil {
		t.logger.Warn("Transcription request failed, degrading to empty result", zap.Error(err))
		return repositories.Transcription{Language: language.English}, nil
	}

	detected := language.Classify(text)

	// A forced language always wins over script and phonetic heuristics.
	if forced != language.Auto {
		return repositories.Transcription{Text: text, Language: forced}, nil
	}

	if detected == language.English {
		// Romanized regional speech shows no native script. One corrective
		// pass re-asks for the first language whose phonetic evidence meets
		// the threshold.
		for _, tag := range language.Priority {
			if language.PhoneticMatchCount(text, tag) < language.PhoneticThreshold {
				continue
			}
			t.logger.Info("Phonetic heuristics disagree with script, re-transcribing",
				zap.String("language", string(tag)))
			corrected, err := t.submit(ctx, wavBytes, transliterationPrompt(tag))
			if err != nil {
				t.logger.Warn("Corrective transcription failed, keeping first result", zap.Error(err))
				break
			}
			return repositories.Transcription{Text: corrected, Language: tag}, nil
		}
	}

	return repositories.Transcription{Text: text, Language: detected}, nil
}

func (t *GeminiTranscriber) submit(ctx context.Context, wavBytes []byte, prompt string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(wavBytes, "audio/wav"),
		genai.NewPartFromText(prompt),
	}
	text, err := t.generator.GenerateContent(ctx, parts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func transcriptionPrompt(forced language.Tag) string {
	var instruction string
	switch {
	case forced == language.Auto:
		instruction = "Transcribe this audio. Detect the language automatically and use the language's native script."
	case forced == language.English:
		instruction = "Transcribe this audio in English."
	default:
		instruction = fmt.Sprintf("Transcribe this audio in %s (%s script).",
			language.Name(forced), language.ScriptName(forced))
	}
	return instruction + `

Important:
- Output ONLY the transcribed text, nothing else
- Do not add any explanations, labels, or formatting`
}

func transliterationPrompt(tag language.Tag) string {
	return fmt.Sprintf(`Transcribe this audio in %s using ONLY %s script.

Important:
- Output ONLY the %s transcription in %s script
- Do not use Roman/Latin script
- Do not add explanations`,
		language.Name(tag), language.ScriptName(tag), language.Name(tag), language.ScriptName(tag))
}

// writeWAV serializes samples into file as a 16kHz mono 16-bit PCM WAV
// container and closes it.
func writeWAV(file *os.File, samples []int16) error {
	encoder := wav.NewEncoder(file, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	err := encoder.Write(&audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		encoder.Close()
		file.Close()
		return err
	}

	if err := encoder.Close(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
