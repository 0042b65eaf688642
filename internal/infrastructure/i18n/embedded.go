package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/internal/infrastructure/mo"
)

// EmbeddedCatalog decodes the catalog compiled into the binary for locale.
// "fr-CA" and "fr_CA" fall back to "fr".
func EmbeddedCatalog(locale string) (*entities.Catalog, error) {
	for _, candidate := range localeCandidates(locale) {
		cat, err := mo.LoadFS(localeFS, catalogPath(candidate))
		if err == nil {
			return cat, nil
		}
		if !errors.Is(err, domain.ErrCatalogNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("embedded catalog %q: %w", locale, domain.ErrCatalogNotFound)
}

// EmbeddedLanguages lists the locales with an embedded catalog.
func EmbeddedLanguages() []string {
	matches, _ := fs.Glob(localeFS, "locales/*/LC_MESSAGES/"+Domain+".mo")
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.Split(m, "/")[1])
	}
	sort.Strings(out)
	return out
}

func catalogPath(locale string) string {
	return path.Join("locales", locale, "LC_MESSAGES", Domain+".mo")
}

func localeCandidates(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	out := []string{locale}
	if base, _, ok := strings.Cut(strings.ReplaceAll(locale, "-", "_"), "_"); ok && base != locale {
		out = append(out, base)
	}
	return out
}
