package i18n

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"friendly/internal/domain/entities"
)

// ExportTOML writes cat as a go-i18n message file. Plain entries become
// `"source" = "translation"`; plural entries become tables keyed by CLDR
// category. Untranslated entries are omitted.
func ExportTOML(cat *entities.Catalog) ([]byte, error) {
	doc := make(map[string]any, cat.Len())
	for _, e := range cat.Entries() {
		m := toMessage(e)
		if m == nil {
			continue
		}
		if !e.IsPlural() {
			doc[m.ID] = m.Other
			continue
		}
		forms := map[string]string{"other": m.Other}
		for name, v := range map[string]string{"one": m.One, "few": m.Few, "many": m.Many} {
			if v != "" {
				forms[name] = v
			}
		}
		doc[m.ID] = forms
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("export toml: %w", err)
	}
	return out, nil
}

// ExportFileName is the go-i18n file name for cat, e.g. "friendly.fr.toml";
// go-i18n reads the language from the name.
func ExportFileName(cat *entities.Catalog, defaultLocale string) string {
	return fmt.Sprintf("%s.%s.toml", Domain, catalogTag(cat, defaultLocale))
}
