package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Queries holds the SQL of the catalog store.
type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type CatalogRow struct {
	Locale    string
	Metadata  []byte
	UpdatedAt pgtype.Timestamptz
}

type EntryRow struct {
	Locale       string
	Msgctxt      string
	Msgid        string
	MsgidPlural  string
	Msgstr       string
	MsgstrPlural []string
}

const upsertCatalog = `
INSERT INTO catalogs (locale, metadata, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (locale) DO UPDATE
SET metadata = EXCLUDED.metadata, updated_at = now()
`

func (q *Queries) UpsertCatalog(ctx context.Context, locale string, metadata []byte) error {
	_, err := q.db.Exec(ctx, upsertCatalog, locale, metadata)
	return err
}

const deleteEntries = `DELETE FROM catalog_entries WHERE locale = $1`

func (q *Queries) DeleteEntries(ctx context.Context, locale string) error {
	_, err := q.db.Exec(ctx, deleteEntries, locale)
	return err
}

var entryColumns = []string{"locale", "msgctxt", "msgid", "msgid_plural", "msgstr", "msgstr_plural"}

func (q *Queries) CopyEntries(ctx context.Context, rows []EntryRow) (int64, error) {
	return q.db.CopyFrom(ctx, pgx.Identifier{"catalog_entries"}, entryColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.Locale, r.Msgctxt, r.Msgid, r.MsgidPlural, r.Msgstr, r.MsgstrPlural}, nil
		}))
}

const getCatalog = `SELECT locale, metadata, updated_at FROM catalogs WHERE locale = $1`

func (q *Queries) GetCatalog(ctx context.Context, locale string) (CatalogRow, error) {
	var row CatalogRow
	err := q.db.QueryRow(ctx, getCatalog, locale).Scan(&row.Locale, &row.Metadata, &row.UpdatedAt)
	return row, err
}

const listEntries = `
SELECT locale, msgctxt, msgid, msgid_plural, msgstr, msgstr_plural
FROM catalog_entries
WHERE locale = $1
ORDER BY msgctxt, msgid
`

func (q *Queries) ListEntries(ctx context.Context, locale string) ([]EntryRow, error) {
	rows, err := q.db.Query(ctx, listEntries, locale)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (EntryRow, error) {
		var e EntryRow
		err := row.Scan(&e.Locale, &e.Msgctxt, &e.Msgid, &e.MsgidPlural, &e.Msgstr, &e.MsgstrPlural)
		return e, err
	})
}

const listLocales = `SELECT locale FROM catalogs ORDER BY locale`

func (q *Queries) ListLocales(ctx context.Context) ([]string, error) {
	rows, err := q.db.Query(ctx, listLocales)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
