package i18n

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendly/internal/domain"
	"friendly/internal/domain/entities"
)

const similarNames = "{count} similar name was found:\n"
const similarNamesPlural = "{count} similar names were found:\n"

func frenchTranslator(t *testing.T, overrides ...string) (*Translator, *entities.Catalog) {
	t.Helper()
	cat, err := EmbeddedCatalog("fr")
	require.NoError(t, err)
	return NewTranslator(cat, "fr", overrides...), cat
}

func TestTranslateKnownKeys(t *testing.T) {
	tr, cat := frenchTranslator(t)

	assert.Equal(t, "fr", tr.Language())
	assert.Equal(t, "Impossible de trouver la source du code.", tr.Translate("Cannot find source code."))
	for _, e := range cat.Entries() {
		assert.Equal(t, cat.Translate(e.Key()), tr.Translate(e.Key()), e.Key())
	}
	assert.Equal(t, "{count} nom semblable a été trouvé :\n", tr.Translate(similarNames))
}

func TestTranslateUnknownKeyIsIdentity(t *testing.T) {
	tr, _ := frenchTranslator(t)

	assert.Equal(t, "Some string not in catalog", tr.Translate("Some string not in catalog"))
	assert.Equal(t, "", tr.Translate(""))

	id := Identity()
	assert.Equal(t, "en", id.Language())
	assert.Equal(t, "Cannot find source code.", id.Translate("Cannot find source code."))
}

func TestTranslatePlural(t *testing.T) {
	tr, _ := frenchTranslator(t)

	singular := "{count} nom semblable a été trouvé :\n"
	plural := "{count} noms semblables ont été trouvés :\n"
	assert.Equal(t, singular, tr.TranslatePlural(similarNames, similarNamesPlural, 0))
	assert.Equal(t, singular, tr.TranslatePlural(similarNames, similarNamesPlural, 1))
	assert.Equal(t, plural, tr.TranslatePlural(similarNames, similarNamesPlural, 2))
	assert.Equal(t, plural, tr.TranslatePlural(similarNames, similarNamesPlural, 1000000))

	assert.Equal(t, "one apple", tr.TranslatePlural("one apple", "{n} apples", 1))
	assert.Equal(t, "{n} apples", tr.TranslatePlural("one apple", "{n} apples", 3))
}

func TestTFillsPlaceholders(t *testing.T) {
	tr, _ := frenchTranslator(t)

	got := tr.T("In your program, the unknown name is `{var_name}`.\n", map[string]any{"var_name": "c"})
	assert.Equal(t, "Dans votre programme, le nom inconnu est `c`.\n", got)

	got = tr.T("In your program, the key that cannot be found is `{key_name!r}`.\n", map[string]any{"key_name": "c"})
	assert.Equal(t, "Dans votre programme, la clé qui ne peut pas être trouvée est `'c'`.\n", got)

	got = tr.T("Unknown {thing}", nil)
	assert.Equal(t, "Unknown {thing}", got)
}

func TestTranslateDoesNotRunTemplates(t *testing.T) {
	cat := entities.NewCatalog(entities.Metadata{Language: "fr"}, []entities.Entry{
		{ID: "braces", Str: "{{.Oops"},
	})
	tr := NewTranslator(cat, "fr")

	assert.Equal(t, "{{.Oops", tr.Translate("braces"))
}

func TestTranslatorLanguageFallsBackToDefault(t *testing.T) {
	cat := entities.NewCatalog(entities.Metadata{}, []entities.Entry{{ID: "yes", Str: "oui"}})

	tr := NewTranslator(cat, "fr_CA")
	assert.Equal(t, "fr-CA", tr.Language())
	assert.Equal(t, "oui", tr.Translate("yes"))

	tr = NewTranslator(cat, "not a locale!")
	assert.Equal(t, "en", tr.Language())
}

func TestOverridesWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.fr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`"Cannot find source code." = "Code source introuvable."`+"\n"), 0o644))

	tr, _ := frenchTranslator(t, path, filepath.Join(dir, "missing.fr.toml"))

	assert.Equal(t, "Code source introuvable.", tr.Translate("Cannot find source code."))
	assert.Equal(t, "Vouliez-vous dire `{name}` ?\n", tr.Translate("Did you mean `{name}`?\n"))
}

func TestOverridePlaceholdersAreChecked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typos.fr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`"Did you mean `+"`{name}`"+`?\n" = "Vouliez-vous dire `+"`{nom}`"+` ?\n"
"Cannot find source code." = "Code source introuvable."
`), 0o644))

	bundle := i18n.NewBundle(sourceLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	mf, err := bundle.LoadMessageFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Did you mean `{name}`?\n"}, placeholderMismatches(mf))

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	tr, _ := frenchTranslator(t, path)
	assert.Equal(t, "Code source introuvable.", tr.Translate("Cannot find source code."))
	assert.Contains(t, logs.String(), "placeholders of \"Did you mean `{name}`?\\n\" differ from the source text")
}

func TestExportTOMLRoundTrip(t *testing.T) {
	cat, err := EmbeddedCatalog("fr")
	require.NoError(t, err)

	data, err := ExportTOML(cat)
	require.NoError(t, err)

	name := ExportFileName(cat, "en")
	assert.Equal(t, "friendly.fr.toml", name)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	tr := NewTranslator(entities.Empty(), "fr", path)
	for _, e := range cat.Entries() {
		if e.IsPlural() {
			assert.Equal(t, e.StrPlural[1], tr.TranslatePlural(e.ID, e.IDPlural, 5), e.Key())
			continue
		}
		assert.Equal(t, e.Str, tr.Translate(e.Key()), e.Key())
	}
}

func TestEmbeddedCatalog(t *testing.T) {
	assert.Equal(t, []string{"fr"}, EmbeddedLanguages())

	cat, err := EmbeddedCatalog("fr_FR")
	require.NoError(t, err)
	assert.Equal(t, "fr", cat.Metadata().Language)

	_, err = EmbeddedCatalog("de")
	require.ErrorIs(t, err, domain.ErrCatalogNotFound)

	_, err = EmbeddedCatalog("")
	require.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestTranslatorConcurrentUse(t *testing.T) {
	tr, _ := frenchTranslator(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, "Impossible de trouver la source du code.", tr.Translate("Cannot find source code."))
				_ = tr.TranslatePlural(similarNames, similarNamesPlural, n)
			}
		}(i)
	}
	wg.Wait()
}
