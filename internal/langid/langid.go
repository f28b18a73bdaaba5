// Package langid normalizes and validates language codes before they reach
// the translation service.
package langid

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Defaults applied when a stored request omits a language field.
const (
	DefaultSource = "en"
	DefaultTarget = "fr"
)

// supportedLanguages is the set of codes Amazon Translate accepts.
// Regional variants (es-MX, fr-CA, pt-PT, zh-TW) are listed where the
// service distinguishes them.
var supportedLanguages = map[string]bool{
	"af": true, "am": true, "ar": true, "az": true, "bg": true,
	"bn": true, "bs": true, "ca": true, "cs": true, "cy": true,
	"da": true, "de": true, "el": true, "en": true, "es": true,
	"es-MX": true, "et": true, "fa": true, "fa-AF": true, "fi": true,
	"fr": true, "fr-CA": true, "ga": true, "gu": true, "ha": true,
	"he": true, "hi": true, "hr": true, "ht": true, "hu": true,
	"hy": true, "id": true, "is": true, "it": true, "ja": true,
	"ka": true, "kk": true, "kn": true, "ko": true, "lt": true,
	"lv": true, "mk": true, "ml": true, "mn": true, "mr": true,
	"ms": true, "mt": true, "nl": true, "no": true, "pa": true,
	"pl": true, "ps": true, "pt": true, "pt-PT": true, "ro": true,
	"ru": true, "si": true, "sk": true, "sl": true, "so": true,
	"sq": true, "sr": true, "sv": true, "sw": true, "ta": true,
	"te": true, "th": true, "tl": true, "tr": true, "uk": true,
	"ur": true, "uz": true, "vi": true, "zh": true, "zh-TW": true,
}

// InvalidTagError indicates a language code that is not a well-formed BCP 47 tag.
type InvalidTagError struct {
	Tag string
	Err error
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid language code %q: %v", e.Tag, e.Err)
}

func (e *InvalidTagError) Unwrap() error { return e.Err }

// Normalize parses a language code and returns it in the service's
// canonical form: lowercase base, uppercase region for the variants the
// service distinguishes ("FR-ca" → "fr-CA", "EN" → "en").
func Normalize(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", &InvalidTagError{Tag: tag, Err: fmt.Errorf("empty tag")}
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return "", &InvalidTagError{Tag: tag, Err: err}
	}

	base, _ := parsed.Base()
	code := base.String()

	// Keep the region only when the service treats it as a distinct language.
	if region, conf := parsed.Region(); conf >= language.High {
		regional := code + "-" + region.String()
		if supportedLanguages[regional] {
			return regional, nil
		}
	}
	return code, nil
}

// Supported reports whether the service can translate to or from code.
// The code is expected in normalized form.
func Supported(code string) bool {
	return supportedLanguages[code]
}

// SupportedLanguages returns all supported codes, unordered.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(supportedLanguages))
	for lang := range supportedLanguages {
		langs = append(langs, lang)
	}
	return langs
}
