package input

import (
	"context"

	"friendly/internal/domain/entities"
)

type CatalogUseCase interface {
	Load(ctx context.Context) *entities.Catalog
	LoadStrict(ctx context.Context) (*entities.Catalog, error)
	Import(ctx context.Context, cat *entities.Catalog) error
	Export(cat *entities.Catalog, format string) ([]byte, error)
}
