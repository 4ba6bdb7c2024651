package chat

import "strings"

// Speaker voices a completed chat reply when voice mode is active.
type Speaker interface {
	Speak(text, languageTag string) error
}

// NopSpeaker is used when no speech backend is available.
type NopSpeaker struct{}

func (NopSpeaker) Speak(string, string) error { return nil }

// speechTags maps a study-settings language to a spoken-language tag.
var speechTags = map[string]string{
	"English":    "en-US",
	"Hindi":      "hi-IN",
	"Bengali":    "bn-IN",
	"Tamil":      "ta-IN",
	"Telugu":     "te-IN",
	"Urdu":       "ur-PK",
	"Arabic":     "ar-SA",
	"French":     "fr-FR",
	"Spanish":    "es-ES",
	"Portuguese": "pt-BR",
	"Swahili":    "sw-KE",
	"Mandarin":   "zh-CN",
}

// SpeechTag resolves the spoken-language tag for a settings language,
// defaulting to a base English tag when unmapped.
func SpeechTag(language string) string {
	if tag, ok := speechTags[strings.TrimSpace(language)]; ok {
		return tag
	}
	return "en"
}
