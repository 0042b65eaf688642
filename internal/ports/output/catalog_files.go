package output

import "friendly/internal/domain/entities"

// CatalogFiles reads catalogs compiled into the binary or stored on disk,
// and encodes them back to a file format.
type CatalogFiles interface {
	Embedded(locale string) (*entities.Catalog, error)
	// ReadFile accepts compiled .mo files and .po sources.
	ReadFile(path string) (*entities.Catalog, error)
	Encode(cat *entities.Catalog, format string) ([]byte, error)
}
