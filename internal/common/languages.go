package common

// Language maps an ISO-639 short code to its display names. Native is what
// the UI shows; Name is the English display name embedded into prompts.
type Language struct {
	Code   string
	Name   string
	Native string
}

// Languages is the fixed set of supported response languages.
var Languages = []Language{
	{Code: "en", Name: "English", Native: "English"},
	{Code: "hi", Name: "Hindi", Native: "हिन्दी"},
	{Code: "mr", Name: "Marathi", Native: "मराठी"},
	{Code: "bn", Name: "Bengali", Native: "বাংলা"},
	{Code: "ta", Name: "Tamil", Native: "தமிழ்"},
	{Code: "te", Name: "Telugu", Native: "తెలుగు"},
	{Code: "kn", Name: "Kannada", Native: "ಕನ್ನಡ"},
	{Code: "gu", Name: "Gujarati", Native: "ગુજરાતી"},
	{Code: "pa", Name: "Punjabi", Native: "ਪੰਜਾਬੀ"},
	{Code: "ml", Name: "Malayalam", Native: "മലയാളം"},
}

// LanguageName resolves a language code to its English display name.
// Unknown or empty codes resolve to "English" so downstream prompts always
// carry a concrete language.
func LanguageName(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Name
		}
	}
	return "English"
}
