package language

// Localized user-facing strings. Every lookup falls back to the English
// entry for unknown or unsupported tags.

var names = map[Tag]string{
	English:   "English",
	Hindi:     "Hindi",
	Bengali:   "Bengali",
	Tamil:     "Tamil",
	Telugu:    "Telugu",
	Gujarati:  "Gujarati",
	Kannada:   "Kannada",
	Punjabi:   "Punjabi",
	Malayalam: "Malayalam",
}

var scriptNames = map[Tag]string{
	Hindi:     "Devanagari",
	Bengali:   "Bengali",
	Tamil:     "Tamil",
	Telugu:    "Telugu",
	Gujarati:  "Gujarati",
	Kannada:   "Kannada",
	Punjabi:   "Gurmukhi",
	Malayalam: "Malayalam",
}

var fallbackReplies = map[Tag]string{
	English:   "I'm having trouble processing that right now. Please try again in a moment.",
	Hindi:     "मुझे अभी आपकी बात समझने में परेशानी हो रही है। कृपया फिर से कोशिश करें।",
	Bengali:   "আমি এখন আপনার কথা বুঝতে সমস্যায় পড়ছি। অনুগ্রহ করে আবার চেষ্টা করুন।",
	Tamil:     "உங்கள் கருத்தை இப்போது புரிந்துகொள்வதில் சிக்கல் உள்ளது. தயவுசெய்து மீண்டும் முயற்சிக்கவும்.",
	Telugu:    "మీ మాటను అర్థం చేసుకోవడంలో ఇబ్బంది ఉంది. దయచేసి మళ్లీ ప్రయత్నించండి.",
	Gujarati:  "મને અત્યારે તમારી વાત સમજવામાં મુશ્કેલી પડી રહી છે. કૃપા કરીને ફરી પ્રયાસ કરો.",
	Kannada:   "ನಿಮ್ಮ ಮಾತನ್ನು ಅರ್ಥಮಾಡಿಕೊಳ್ಳುವಲ್ಲಿ ತೊಂದರೆ ಆಗುತ್ತಿದೆ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
	Punjabi:   "ਮੈਨੂੰ ਹੁਣ ਤੁਹਾਡੀ ਗੱਲ ਸਮਝਣ ਵਿੱਚ ਮੁਸ਼ਕਲ ਆ ਰਹੀ ਹੈ। ਕਿਰਪਾ ਕਰਕੇ ਦੁਬਾਰਾ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
	Malayalam: "നിങ്ങളുടെ വാക്കുകൾ മനസ്സിലാക്കാൻ ഇപ്പോൾ ബുദ്ധിമുട്ടുണ്ട്. ദയവായി വീണ്ടും ശ്രമിക്കുക.",
}

var crisisNotices = map[Tag]string{
	English:   "I'm concerned about you. Please contact emergency services or a crisis helpline right away.",
	Hindi:     "मैं चिंतित हूं। कृपया आपातकालीन सेवाओं या संकट हेल्पलाइन से संपर्क करें।",
	Bengali:   "আমি উদ্বিগ্ন। অনুগ্রহ করে জরুরি পরিষেবা বা সংকট হেল্পলাইনে যোগাযোগ করুন।",
	Tamil:     "நான் கவலைப்படுகிறேன். உடனடியாக அவசர சேவைகள் அல்லது நெருக்கடி உதவி எண்ணை தொடர்பு கொள்ளவும்.",
	Telugu:    "నేను ఆందోళన చెందుతున్నాను. దయచేసి అత్యవసర సేవలను లేదా సహాయ వాణిని సంప్రదించండి.",
	Gujarati:  "હું ચિંતિત છું. કૃપા કરીને તાત્કાલિક સેવાઓ અથવા હેલ્પલાઇનનો સંપર્ક કરો.",
	Kannada:   "ನಾನು ಕಳವಳಗೊಂಡಿದ್ದೇನೆ. ದಯವಿಟ್ಟು ತುರ್ತು ಸೇವೆ ಅಥವಾ ಸಹಾಯವಾಣಿಯನ್ನು ಸಂಪರ್ಕಿಸಿ.",
	Punjabi:   "ਮੈਂ ਚਿੰਤਤ ਹਾਂ। ਕਿਰਪਾ ਕਰਕੇ ਐਮਰਜੈਂਸੀ ਸੇਵਾਵਾਂ ਜਾਂ ਹੈਲਪਲਾਈਨ ਨਾਲ ਸੰਪਰਕ ਕਰੋ।",
	Malayalam: "എനിക്ക് ആശങ്കയുണ്ട്. ദയവായി അടിയന്തര സേവനങ്ങളെയോ ഹെൽപ് ലൈനിനെയോ ബന്ധപ്പെടുക.",
}

var connectionTrouble = map[Tag]string{
	English:   "I'm having connection issues. Please try again.",
	Hindi:     "मुझे कनेक्शन में समस्या है। कृपया फिर से कोशिश करें।",
	Bengali:   "আমার সংযোগে সমস্যা হচ্ছে। অনুগ্রহ করে আবার চেষ্টা করুন।",
	Tamil:     "இணைப்பில் சிக்கல் உள்ளது. தயவுசெய்து மீண்டும் முயற்சிக்கவும்.",
	Telugu:    "కనెక్షన్ సమస్య ఉంది. దయచేసి మళ్లీ ప్రయత్నించండి.",
	Gujarati:  "કનેક્શનમાં સમસ્યા છે. કૃપા કરીને ફરી પ્રયાસ કરો.",
	Kannada:   "ಸಂಪರ್ಕದಲ್ಲಿ ಸಮಸ್ಯೆ ಇದೆ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
	Punjabi:   "ਕੁਨੈਕਸ਼ਨ ਵਿੱਚ ਸਮੱਸਿਆ ਹੈ। ਕਿਰਪਾ ਕਰਕੇ ਦੁਬਾਰਾ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
	Malayalam: "കണക്ഷനിൽ പ്രശ്നമുണ്ട്. ദയവായി വീണ്ടും ശ്രമിക്കുക.",
}

func lookup(table map[Tag]string, tag Tag) string {
	if s, ok := table[tag]; ok {
		return s
	}
	return table[English]
}

// Name returns the English display name of the language.
func Name(tag Tag) string { return lookup(names, tag) }

// ScriptName returns the name of the language's native script. English has
// no dedicated script entry and returns an empty string.
func ScriptName(tag Tag) string { return scriptNames[tag] }

// FallbackReply is the canned assistant reply used when the generative model
// cannot be reached.
func FallbackReply(tag Tag) string { return lookup(fallbackReplies, tag) }

// CrisisNotice is the localized urgent-resources message sent alongside the
// normal reply when crisis language is detected.
func CrisisNotice(tag Tag) string { return lookup(crisisNotices, tag) }

// ConnectionTrouble is the localized message substituted when the response
// generator fails outright.
func ConnectionTrouble(tag Tag) string { return lookup(connectionTrouble, tag) }
