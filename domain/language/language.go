package language

import "strings"

// Tag identifies a supported language.
type Tag string

// Supported language tags. Auto is a caller-side hint meaning "detect for
// me"; it is never produced by the classifier.
const (
	English   Tag = "en"
	Hindi     Tag = "hi"
	Bengali   Tag = "bn"
	Tamil     Tag = "ta"
	Telugu    Tag = "te"
	Gujarati  Tag = "gu"
	Kannada   Tag = "kn"
	Punjabi   Tag = "pa"
	Malayalam Tag = "ml"
	Auto      Tag = "auto"
)

// scriptBlock is a contiguous Unicode block covering a language's native
// script.
type scriptBlock struct {
	lo, hi rune
}

// scriptBlocks maps each regional language to its Unicode block. English has
// no entry: Latin text is the default when no block matches.
var scriptBlocks = map[Tag]scriptBlock{
	Hindi:     {0x0900, 0x097F}, // Devanagari
	Bengali:   {0x0980, 0x09FF},
	Punjabi:   {0x0A00, 0x0A7F}, // Gurmukhi
	Gujarati:  {0x0A80, 0x0AFF},
	Tamil:     {0x0B80, 0x0BFF},
	Telugu:    {0x0C00, 0x0C7F},
	Kannada:   {0x0C80, 0x0CFF},
	Malayalam: {0x0D00, 0x0D7F},
}

// Priority is the fixed order in which scripts and phonetic heuristics are
// checked. Hindi comes first because it carries crisis-matching priority.
var Priority = []Tag{Hindi, Bengali, Tamil, Telugu, Gujarati, Kannada, Punjabi, Malayalam}

// Supported reports whether the tag is a concrete supported language
// (Auto and unknown tags are not).
func Supported(tag Tag) bool {
	if tag == English {
		return true
	}
	_, ok := scriptBlocks[tag]
	return ok
}

// Parse normalizes a client-supplied language hint. Empty strings and
// unrecognized values become Auto so the pipeline falls back to detection.
func Parse(s string) Tag {
	tag := Tag(strings.ToLower(strings.TrimSpace(s)))
	if tag == "" || tag == Auto {
		return Auto
	}
	if Supported(tag) {
		return tag
	}
	return Auto
}

// Classify maps text to a language tag by script. The first language in
// Priority whose Unicode block contains any rune of the text wins; text with
// no matching block, including the empty string, is judged English.
func Classify(text string) Tag {
	for _, tag := range Priority {
		if HasScript(text, tag) {
			return tag
		}
	}
	return English
}

// HasScript reports whether any rune of text falls inside the native script
// block of the given language. Always false for English and Auto.
func HasScript(text string, tag Tag) bool {
	block, ok := scriptBlocks[tag]
	if !ok {
		return false
	}
	for _, r := range text {
		if r >= block.lo && r <= block.hi {
			return true
		}
	}
	return false
}

// phoneticFragments lists romanized syllables characteristic of each
// language when it is written without its native script.
var phoneticFragments = map[Tag][]string{
	Hindi: {
		"kya", "hai", "hoon", "mein", "main", "aap", "tum", "hum",
		"kaise", "kahan", "kab", "kyun", "nahin", "nahi", "thik",
		"accha", "theek", "bahut", "bohot", "kuch", "koi", "yeh", "woh",
	},
	Bengali: {
		"ami", "tumi", "bhalo", "kemon", "achhi", "keno", "kothay", "onek", "bolo",
	},
	Tamil: {
		"naan", "neenga", "enna", "eppadi", "illai", "romba", "vanakkam", "seri",
	},
	Telugu: {
		"nenu", "meeru", "ledu", "enti", "ela", "chala", "bagunnara", "kada",
	},
	Gujarati: {
		"majama", "tame", "kem", "chhe", "saru", "nathi", "ghanu",
	},
	Kannada: {
		"naanu", "neevu", "illa", "hege", "tumba", "chennagide", "beku",
	},
	Punjabi: {
		"tussi", "assi", "kiddan", "changa", "vadiya", "kive", "haiga",
	},
	Malayalam: {
		"njan", "aanu", "alla", "sugham", "enthu", "evide", "venam",
	},
}

// PhoneticMatchCount counts whitespace-delimited tokens of the lower-cased
// text that contain any romanized fragment of the given language.
func PhoneticMatchCount(text string, tag Tag) int {
	fragments := phoneticFragments[tag]
	if len(fragments) == 0 {
		return 0
	}
	count := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		for _, fragment := range fragments {
			if strings.Contains(word, fragment) {
				count++
				break
			}
		}
	}
	return count
}

// PhoneticThreshold is the number of matched tokens treated as evidence that
// romanized text actually belongs to a regional language.
const PhoneticThreshold = 2
