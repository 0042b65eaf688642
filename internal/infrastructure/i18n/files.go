package i18n

import (
	"fmt"
	"path/filepath"
	"strings"

	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/internal/infrastructure/mo"
	"friendly/internal/ports/output"
)

var _ output.CatalogFiles = Files{}

// Files implements output.CatalogFiles with the mo codec and go-i18n TOML.
type Files struct{}

func (Files) Embedded(locale string) (*entities.Catalog, error) {
	return EmbeddedCatalog(locale)
}

func (Files) ReadFile(path string) (*entities.Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".po":
		return mo.CompilePOFile(path)
	default:
		return mo.LoadFile(path)
	}
}

func (Files) Encode(cat *entities.Catalog, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case domain.FormatMO:
		return mo.Encode(cat), nil
	case domain.FormatTOML:
		return ExportTOML(cat)
	default:
		return nil, fmt.Errorf("encode %q: %w", format, domain.ErrUnsupportedFormat)
	}
}
