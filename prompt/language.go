package prompt

// languageNames maps UI language codes to the full name the model is
// instructed to answer in.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi (हिंदी)",
	"bn": "Bengali (বাংলা)",
	"te": "Telugu (తెలుగు)",
	"ta": "Tamil (தமிழ்)",
	"mr": "Marathi (मराठी)",
	"gu": "Gujarati (ગુજરાતી)",
	"kn": "Kannada (ಕನ್ನಡ)",
	"pa": "Punjabi (ਪੰਜਾਬੀ)",
	"ml": "Malayalam (മലയാളം)",
	"or": "Odia (ଓଡ଼ିଆ)",
}

// LanguageName resolves a language code to its display name, defaulting to
// English for unknown codes.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}

// The detection flow stores the preference as a lowercase language name
// rather than a code.
var displayLanguages = map[string]string{
	"hindi":    "Hindi (हिंदी)",
	"bengali":  "Bengali (বাংলা)",
	"telugu":   "Telugu (తెలుగు)",
	"marathi":  "Marathi (मराठी)",
	"tamil":    "Tamil (தமிழ்)",
	"gujarati": "Gujarati (ગુજરાતી)",
}

var speechLanguages = map[string]string{
	"hindi":    "hi-IN",
	"bengali":  "bn-IN",
	"telugu":   "te-IN",
	"marathi":  "mr-IN",
	"tamil":    "ta-IN",
	"gujarati": "gu-IN",
}

func DisplayLanguage(name string) string {
	if display, ok := displayLanguages[name]; ok {
		return display
	}
	return "Hindi (हिंदी)"
}

// SpeechLanguage returns the BCP 47 tag used for speech synthesis on the
// client.
func SpeechLanguage(name string) string {
	if tag, ok := speechLanguages[name]; ok {
		return tag
	}
	return "hi-IN"
}
