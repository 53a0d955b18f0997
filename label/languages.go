package label

import (
	"sort"
	"strings"
)

// nativeNames maps ISO 639-1 codes to their native display names.
// Static configuration data for language-selector UIs; codes outside
// this table fall back to the uppercased code in DisplayName.
var nativeNames = map[string]string{
	"ar": "العربية",
	"cs": "Čeština",
	"da": "Dansk",
	"de": "Deutsch",
	"el": "Ελληνικά",
	"en": "English",
	"es": "Español",
	"fi": "Suomi",
	"fr": "Français",
	"hi": "हिन्दी",
	"it": "Italiano",
	"ja": "日本語",
	"ko": "한국어",
	"nl": "Nederlands",
	"no": "Norsk",
	"pl": "Polski",
	"pt": "Português",
	"ru": "Русский",
	"sv": "Svenska",
	"tr": "Türkçe",
	"uk": "Українська",
	"zh": "中文",
}

// DisplayName returns the native display name for a language code, or
// the uppercased code itself when the code is not in the table.
func DisplayName(code string) string {
	if name, ok := nativeNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// AvailableLanguages returns the union of language codes present across
// the entities' label maps. The untagged "" key is excluded. "en" is
// forced to the front when present; remaining codes follow in ascending
// lexicographic order. The result does not depend on entity order.
func AvailableLanguages(entities []Entity) []string {
	seen := make(map[string]bool)
	for _, e := range entities {
		for code := range e.Labels {
			if code != "" {
				seen[code] = true
			}
		}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		if code != "en" {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	if seen["en"] {
		codes = append([]string{"en"}, codes...)
	}
	return codes
}
