// Package crisis flags text containing self-harm language. Detection is a
// pure substring scan over curated per-language phrase lists so it can never
// fail and never depends on a model call.
package crisis

import (
	"strings"

	"github.com/arnish-ai/arnish/domain/language"
)

// keywords holds crisis-indicative phrases per language. Matching is
// case-insensitive substring containment against the lower-cased input.
var keywords = map[language.Tag][]string{
	language.English: {
		"suicide", "kill myself", "end my life", "want to die", "self harm",
		"hurt myself", "no reason to live", "better off dead",
	},
	language.Hindi: {
		"आत्महत्या", "मरना चाहता", "जान देना", "खुद को नुकसान",
	},
	language.Bengali: {
		"আত্মহত্যা", "মরতে চাই", "নিজেকে শেষ",
	},
	language.Tamil: {
		"தற்கொலை", "சாக வேண்டும்", "உயிரை மாய்த்து",
	},
	language.Telugu: {
		"ఆత్మహత్య", "చనిపోవాలని", "ప్రాణం తీసుకో",
	},
	language.Gujarati: {
		"આત્મહત્યા", "મરવું છે", "જીવ આપી",
	},
	language.Kannada: {
		"ಆತ್ಮಹತ್ಯೆ", "ಸಾಯಬೇಕು", "ಜೀವ ಕಳೆದುಕೊ",
	},
	language.Punjabi: {
		"ਖੁਦਕੁਸ਼ੀ", "ਮਰਨਾ ਚਾਹੁੰਦਾ", "ਜਾਨ ਦੇਣ",
	},
	language.Malayalam: {
		"ആത്മഹത്യ", "മരിക്കണം", "ജീവനൊടുക്ക",
	},
}

// order fixes the language enumeration order for matching. English leads,
// then the regional languages in classifier priority order.
var order = append([]language.Tag{language.English}, language.Priority...)

// Assessment is the outcome of a crisis scan.
type Assessment struct {
	Crisis   bool
	Language language.Tag
}

// Detect scans text for crisis phrases. The first matching phrase decides
// both the flag and the language, overriding whatever the script classifier
// would say. Text with no match is not a crisis and carries the classifier's
// language.
func Detect(text string) Assessment {
	lowered := strings.ToLower(text)
	for _, tag := range order {
		for _, phrase := range keywords[tag] {
			if strings.Contains(lowered, phrase) {
				return Assessment{Crisis: true, Language: tag}
			}
		}
	}
	return Assessment{Crisis: false, Language: language.Classify(text)}
}
