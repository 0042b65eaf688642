package output

// Translator exposes the catalog lookup contract used by explanation code.
// Every method falls back to the untranslated source string and never fails.
type Translator interface {
	// Translate returns the localized form of key, or key unchanged.
	Translate(key string) string

	// TranslatePlural picks the form matching n; without a translation it
	// returns singular when n == 1 and plural otherwise.
	TranslatePlural(singular, plural string, n int) string

	// T translates key and fills its {placeholders} from data (may be nil).
	T(key string, data map[string]any) string

	// Language is the BCP 47 tag of the catalog, "en" for the identity translator.
	Language() string
}
