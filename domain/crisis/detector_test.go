package crisis

import (
	"testing"

	"github.com/arnish-ai/arnish/domain/language"
)

func TestDetectCrisisPhrases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Tag
	}{
		{"english phrase", "sometimes I want to die", language.English},
		{"english phrase uppercase", "I am thinking about SUICIDE", language.English},
		{"hindi phrase", "मैं आत्महत्या के बारे में सोच रहा हूं", language.Hindi},
		{"bengali phrase", "আমি মরতে চাই", language.Bengali},
		{"tamil phrase", "தற்கொலை பற்றி யோசிக்கிறேன்", language.Tamil},
		{"telugu phrase", "ఆత్మహత్య గురించి ఆలోచిస్తున్నాను", language.Telugu},
		{"gujarati phrase", "મારે મરવું છે", language.Gujarati},
		{"kannada phrase", "ಆತ್ಮಹತ್ಯೆ ಬಗ್ಗೆ ಯೋಚಿಸುತ್ತಿದ್ದೇನೆ", language.Kannada},
		{"punjabi phrase", "ਮੈਂ ਮਰਨਾ ਚਾਹੁੰਦਾ ਹਾਂ", language.Punjabi},
		{"malayalam phrase", "എനിക്ക് മരിക്കണം", language.Malayalam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			if !got.Crisis {
				t.Fatalf("Detect(%q).Crisis = false, want true", tt.text)
			}
			if got.Language != tt.want {
				t.Errorf("Detect(%q).Language = %q, want %q", tt.text, got.Language, tt.want)
			}
		})
	}
}

// An English crisis phrase embedded in regional-script text still resolves
// to English: the matched phrase sets the language, not the script.
func TestDetectPhraseLanguageOverridesScript(t *testing.T) {
	got := Detect("मैं बहुत परेशान हूं and I want to die")
	if !got.Crisis {
		t.Fatal("expected crisis flag")
	}
	if got.Language != language.English {
		t.Errorf("Language = %q, want %q", got.Language, language.English)
	}
}

func TestDetectNonCrisisFollowsClassifier(t *testing.T) {
	tests := []string{
		"",
		"I had a lovely walk this morning",
		"मैं आज बहुत खुश हूं",
		"আজ আবহাওয়া সুন্দর",
		"kya haal hai",
	}

	for _, text := range tests {
		got := Detect(text)
		if got.Crisis {
			t.Errorf("Detect(%q).Crisis = true, want false", text)
		}
		if want := language.Classify(text); got.Language != want {
			t.Errorf("Detect(%q).Language = %q, want classifier output %q", text, got.Language, want)
		}
	}
}
