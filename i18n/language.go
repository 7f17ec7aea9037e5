// Package i18n provides the storefront's localization: a small key-to-string
// lookup per language and a manager that owns the selected language and
// notifies subscribers when it changes.
package i18n

// Language is a supported UI language, identified by its two-letter code.
// The same code selects which localized data files the clients fetch.
type Language string

const (
	English Language = "en"
	Latvian Language = "lv"
	Russian Language = "ru"
)

// DefaultLanguage is used when no preference has been saved.
const DefaultLanguage = English

// AllLanguages lists the supported languages in display order.
func AllLanguages() []Language {
	return []Language{English, Latvian, Russian}
}

// DisplayName is the language's own name for itself.
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case Latvian:
		return "Latviešu"
	case Russian:
		return "Русский"
	default:
		return string(l)
	}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case English, Latvian, Russian:
		return true
	default:
		return false
	}
}
