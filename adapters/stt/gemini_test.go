package stt

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"google.golang.org/genai"

	"github.com/arnish-ai/arnish/domain/language"
)

// fakeGenerator returns scripted responses and records the prompts it saw.
type fakeGenerator struct {
	responses []string
	errs      []error
	prompts   []string
	calls     int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts []*genai.Part) (string, error) {
	var prompt string
	for _, part := range parts {
		if part.Text != "" {
			prompt = part.Text
		}
	}
	f.prompts = append(f.prompts, prompt)

	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("unexpected call")
}

func newTestTranscriber(t *testing.T, gen *fakeGenerator) (*GeminiTranscriber, string) {
	t.Helper()
	dir := t.TempDir()
	return NewGeminiTranscriber(gen, zaptest.NewLogger(t), dir), dir
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir not clean, %d files remain", len(entries))
	}
}

func TestTranscribeNativeScript(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"मैं ठीक हूं"}}
	tr, dir := newTestTranscriber(t, gen)

	got, err := tr.Transcribe(context.Background(), []int16{0, 1, 2}, language.Auto)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got.Text != "मैं ठीक हूं" || got.Language != language.Hindi {
		t.Errorf("got (%q, %q), want Devanagari text in hi", got.Text, got.Language)
	}
	if gen.calls != 1 {
		t.Errorf("model calls = %d, want 1 (no corrective pass for native script)", gen.calls)
	}
	assertNoTempFiles(t, dir)
}

func TestTranscribeCorrectivePass(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"kya haal hai aap", "क्या हाल है आप"}}
	tr, dir := newTestTranscriber(t, gen)

	got, err := tr.Transcribe(context.Background(), []int16{0, 1, 2}, language.Auto)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got.Text != "क्या हाल है आप" {
		t.Errorf("Text = %q, want corrected Devanagari transcript", got.Text)
	}
	if got.Language != language.Hindi {
		t.Errorf("Language = %q, want hi", got.Language)
	}
	if gen.calls != 2 {
		t.Fatalf("model calls = %d, want exactly 2", gen.calls)
	}
	if !strings.Contains(gen.prompts[1], "Devanagari") {
		t.Errorf("corrective prompt missing script instruction: %q", gen.prompts[1])
	}
	assertNoTempFiles(t, dir)
}

func TestTranscribeForcedLanguageSkipsCorrection(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"kya haal hai aap"}}
	tr, dir := newTestTranscriber(t, gen)

	got, err := tr.Transcribe(context.Background(), []int16{0, 1, 2}, language.English)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got.Language != language.English {
		t.Errorf("Language = %q, want forced en", got.Language)
	}
	if gen.calls != 1 {
		t.Errorf("model calls = %d, want 1 (forced language suppresses heuristics)", gen.calls)
	}
	assertNoTempFiles(t, dir)
}

func TestTranscribeForcedRegionalPrompt(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"আমি ভালো আছি"}}
	tr, _ := newTestTranscriber(t, gen)

	got, err := tr.Transcribe(context.Background(), []int16{0}, language.Bengali)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got.Language != language.Bengali {
		t.Errorf("Language = %q, want bn", got.Language)
	}
	if !strings.Contains(gen.prompts[0], "Bengali") {
		t.Errorf("prompt should name the forced language: %q", gen.prompts[0])
	}
}

func TestTranscribeUpstreamFailureDegrades(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("unavailable")}}
	tr, dir := newTestTranscriber(t, gen)

	got, err := tr.Transcribe(context.Background(), []int16{0, 1, 2}, language.Auto)
	if err != nil {
		t.Fatalf("Transcribe() error = %v, want degraded nil", err)
	}
	if got.Text != "" || got.Language != language.English {
		t.Errorf("got (%q, %q), want empty text in en", got.Text, got.Language)
	}
	assertNoTempFiles(t, dir)
}

func TestTranscribeEncodeFailureCleansUp(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"unused"}}
	tr, dir := newTestTranscriber(t, gen)
	// A read-only handle makes every container write fail after the file
	// already exists on disk.
	tr.createTemp = func(path string) (*os.File, error) {
		return os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o600)
	}

	_, err := tr.Transcribe(context.Background(), []int16{0, 1, 2}, language.Auto)
	if err == nil {
		t.Fatal("Transcribe() error = nil, want container write failure")
	}
	if gen.calls != 0 {
		t.Errorf("model calls = %d, want 0 after failed encode", gen.calls)
	}
	assertNoTempFiles(t, dir)
}

func TestTranscribeCorrectiveFailureKeepsFirstResult(t *testing.T) {
	gen := &fakeGenerator{
		responses: []string{"ami bhalo achhi", ""},
		errs:      []error{nil, errors.New("overloaded")},
	}
	tr, dir := newTestTranscriber(t, gen)

	got, err := tr.Transcribe(context.Background(), []int16{0, 1}, language.Auto)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got.Text != "ami bhalo achhi" || got.Language != language.English {
		t.Errorf("got (%q, %q), want first result kept as en", got.Text, got.Language)
	}
	if gen.calls != 2 {
		t.Errorf("model calls = %d, want 2", gen.calls)
	}
	assertNoTempFiles(t, dir)
}
