// Package speech describes how the browser should voice a translation.
// Playback itself happens client side and never feeds back into progress.
package speech

const fallbackLocale = "en-US"

var locales = map[string]string{
	"es": "es-ES",
	"fr": "fr-FR",
	"de": "de-DE",
	"it": "it-IT",
	"pt": "pt-BR",
	"ja": "ja-JP",
	"ko": "ko-KR",
	"zh": "zh-CN",
	"ru": "ru-RU",
	"ar": "ar-SA",
}

// Settings are the utterance parameters handed to the speech engine.
type Settings struct {
	Locale string  `json:"locale"`
	Rate   float64 `json:"rate"`
	Pitch  float64 `json:"pitch"`
	Volume float64 `json:"volume"`
}

// Locale maps a catalog language code to a voice locale, en-US if unknown.
func Locale(languageCode string) string {
	if l, ok := locales[languageCode]; ok {
		return l
	}
	return fallbackLocale
}

// For returns the settings used to read phrases of languageCode aloud.
func For(languageCode string) Settings {
	return Settings{
		Locale: Locale(languageCode),
		Rate:   0.8,
		Pitch:  1,
		Volume: 0.8,
	}
}
