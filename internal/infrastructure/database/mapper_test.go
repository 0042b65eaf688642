package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendly/internal/domain/entities"
)

func TestMetadataJSON(t *testing.T) {
	zone := time.FixedZone("", -3*3600)
	meta := entities.Metadata{
		ProjectIDVersion: "friendly 0.1",
		POTCreationDate:  time.Date(2019, 5, 5, 10, 44, 0, 0, zone),
		LastTranslator:   "André Roberge",
		Language:         "fr",
		Charset:          "UTF-8",
		PluralForms:      "nplurals=2; plural=(n > 1);",
		NPlurals:         2,
		Extra:            map[string]string{"X-Poedit-Basepath": "."},
	}

	data, err := metadataToJSON(meta)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pot_creation_date":"2019-05-05 10:44-0300"`)
	assert.NotContains(t, string(data), "po_revision_date")

	back, err := metadataFromJSON(data)
	require.NoError(t, err)
	assert.True(t, meta.POTCreationDate.Equal(back.POTCreationDate))
	assert.True(t, back.PORevisionDate.IsZero())
	back.POTCreationDate = meta.POTCreationDate
	assert.Equal(t, meta, back)

	_, err = metadataFromJSON([]byte("{"))
	require.Error(t, err)

	empty, err := metadataFromJSON(nil)
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestEntryRows(t *testing.T) {
	plain := entities.Entry{Context: "menu", ID: "Open", Str: "Ouvrir"}
	row := entryToRow("fr", plain)
	assert.Equal(t, []string{}, row.MsgstrPlural)
	assert.Equal(t, plain, rowToEntry(row))

	plural := entities.Entry{ID: "a", IDPlural: "as", StrPlural: []string{"un", "des"}}
	assert.Equal(t, plural, rowToEntry(entryToRow("fr", plural)))
}
