// Package llm generates assistant replies through Gemini with a bounded
// retry policy and localized fallbacks.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/arnish-ai/arnish/adapters/gemini"
	"github.com/arnish-ai/arnish/domain/language"
	"github.com/arnish-ai/arnish/domain/repositories"
	"github.com/arnish-ai/arnish/internal/retry"
)

const personaPrompt = `You are Arnish, a compassionate and professional mental health support assistant specialized in providing emotional support and guidance. Keep your responses brief; if techniques are asked for, give the best current mental health tips in 10 to 15 sentences. Your response should be a minimum of 3 sentences and a maximum of 15.

Your role:
- Provide empathetic, supportive responses
- Offer practical coping strategies and techniques
- Help users understand their emotions
- Guide users through difficult situations
- Encourage healthy habits and positive thinking
- Suggest breathing exercises, mindfulness, and relaxation techniques when appropriate

Guidelines:
- Keep responses conversational and natural (7-8 sentences for voice interaction)
- Be warm, understanding, and non-judgmental
- Focus on mental wellness, stress management, anxiety relief, and emotional support
- Avoid giving medical advice or diagnoses
- In crisis situations, encourage professional help`

// markupReplacer strips presentational markup the speech pipeline cannot
// read aloud.
var markupReplacer = strings.NewReplacer("*", "", "#", "", "`", "")

// GeminiResponder implements repositories.Responder. It never propagates an
// upstream error: retry exhaustion and non-retryable failures both degrade
// to the localized fallback sentence.
type GeminiResponder struct {
	generator gemini.Generator
	policy    retry.Policy
	sleep     retry.SleepFunc
	logger    *zap.Logger
}

var _ repositories.Responder = (*GeminiResponder)(nil)

// DefaultPolicy bounds reply generation: 3 attempts, retrying only upstream
// overload, waiting 0.5s then 1s between attempts.
func DefaultPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: 3,
		Backoff:     retry.ExponentialBackoff(500 * time.Millisecond),
		Retryable:   retry.TransientProviderError,
	}
}

// NewGeminiResponder creates the response generator. A nil sleep func uses
// real sleeps.
func NewGeminiResponder(generator gemini.Generator, policy retry.Policy, sleep retry.SleepFunc, logger *zap.Logger) *GeminiResponder {
	if sleep == nil {
		sleep = retry.Sleep
	}
	return &GeminiResponder{
		generator: generator,
		policy:    policy,
		sleep:     sleep,
		logger:    logger,
	}
}

// Respond generates a reply in the given language. language.Auto classifies
// the text first. The returned error is always nil.
func (r *GeminiResponder) Respond(ctx context.Context, text string, tag language.Tag) (string, language.Tag, error) {
	if tag == language.Auto {
		tag = language.Classify(text)
	}

	prompt := buildPrompt(text, tag)

	var reply string
	err := r.policy.Do(ctx, r.sleep, func() error {
		generated, err := r.generator.GenerateContent(ctx, []*genai.Part{genai.NewPartFromText(prompt)})
		if err != nil {
			r.logger.Warn("Reply generation attempt failed", zap.Error(err))
			return err
		}
		reply = generated
		return nil
	})
	if err != nil {
		r.logger.Error("Reply generation failed, using fallback",
			zap.String("language", string(tag)),
			zap.Error(err))
		return language.FallbackReply(tag), tag, nil
	}

	return strings.TrimSpace(markupReplacer.Replace(reply)), tag, nil
}

func buildPrompt(text string, tag language.Tag) string {
	var directive string
	if tag == language.English {
		directive = "CRITICAL Language Instruction: respond only in English."
	} else {
		directive = fmt.Sprintf(
			"CRITICAL Language Instruction: you MUST respond ONLY in %s, using %s script. Do not use any other language or script.",
			language.Name(tag), language.ScriptName(tag))
	}

	return fmt.Sprintf("%s\n\n%s\n\nUser message: %s\n\nYour response:", personaPrompt, directive, text)
}
