package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/internal/ports/output"
)

var _ output.CatalogRepository = (*CatalogRepository)(nil)

type CatalogRepository struct {
	pool *pgxpool.Pool
	q    *Queries
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool, q: NewQueries(pool)}
}

func (r *CatalogRepository) Save(ctx context.Context, locale string, cat *entities.Catalog) error {
	meta, err := metadataToJSON(cat.Metadata())
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	entries := cat.Entries()
	rows := make([]EntryRow, len(entries))
	for i, e := range entries {
		rows[i] = entryToRow(locale, e)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		q := r.q.WithTx(tx)
		if err := q.UpsertCatalog(ctx, locale, meta); err != nil {
			return fmt.Errorf("upsert catalog %s: %w", locale, err)
		}
		if err := q.DeleteEntries(ctx, locale); err != nil {
			return fmt.Errorf("delete entries %s: %w", locale, err)
		}
		n, err := q.CopyEntries(ctx, rows)
		if err != nil {
			return fmt.Errorf("copy entries %s: %w", locale, err)
		}
		log.Printf("database: stored %d entries for %s", n, locale)
		return nil
	})
}

func (r *CatalogRepository) Load(ctx context.Context, locale string) (*entities.Catalog, error) {
	row, err := r.q.GetCatalog(ctx, locale)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("locale %s: %w", locale, domain.ErrLocaleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog %s: %w", locale, err)
	}
	meta, err := metadataFromJSON(row.Metadata)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListEntries(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("list entries %s: %w", locale, err)
	}
	entries := make([]entities.Entry, len(rows))
	for i, row := range rows {
		entries[i] = rowToEntry(row)
	}
	return entities.NewCatalog(meta, entries), nil
}

func (r *CatalogRepository) Locales(ctx context.Context) ([]string, error) {
	locales, err := r.q.ListLocales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locales, nil
}
