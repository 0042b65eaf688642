package output

import (
	"context"

	"friendly/internal/domain/entities"
)

type CatalogRepository interface {
	// Save replaces every stored entry of locale with the entries of cat.
	Save(ctx context.Context, locale string, cat *entities.Catalog) error
	Load(ctx context.Context, locale string) (*entities.Catalog, error)
	Locales(ctx context.Context) ([]string, error)
}
