package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendly/internal/config"
	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/internal/infrastructure/mo"
	"friendly/internal/ports/output"
)

const frPO = "../../infrastructure/i18n/locales/fr/LC_MESSAGES/friendly.po"

type memoryRepo struct {
	catalogs map[string]*entities.Catalog
}

func (r *memoryRepo) Save(_ context.Context, locale string, cat *entities.Catalog) error {
	r.catalogs[locale] = cat
	return nil
}

func (r *memoryRepo) Load(_ context.Context, locale string) (*entities.Catalog, error) {
	cat, ok := r.catalogs[locale]
	if !ok {
		return nil, fmt.Errorf("locale %s: %w", locale, domain.ErrLocaleNotFound)
	}
	return cat, nil
}

func (r *memoryRepo) Locales(context.Context) ([]string, error) {
	var out []string
	for k := range r.catalogs {
		out = append(out, k)
	}
	return out, nil
}

func memoryConnector(repo *memoryRepo) Connector {
	return func(context.Context, string) (output.CatalogRepository, func(), error) {
		return repo, func() {}, nil
	}
}

func run(t *testing.T, cfg *config.Config, connect Connector, args ...string) (string, error) {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{Lang: "fr", CatalogSource: domain.SourceEmbedded}
	}
	out := &bytes.Buffer{}
	err := NewApp(cfg, connect).Execute(context.Background(), args, out, &bytes.Buffer{})
	return out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	assert.Equal(t, code, exitErr.Code)
	return exitErr
}

func TestLookup(t *testing.T) {
	out, err := run(t, nil, nil, "lookup", "Cannot find source code.", "Some string not in catalog")
	require.NoError(t, err)
	assert.Equal(t, "Impossible de trouver la source du code.\nSome string not in catalog\n", out)

	out, err = run(t, nil, nil, "lookup", "-e", `Did you mean `+"`{name}`"+`?\n`)
	require.NoError(t, err)
	assert.Equal(t, "Vouliez-vous dire `{name}` ?\n\n", out)

	out, err = run(t, nil, nil, "lookup", "-e", "-n", "2",
		"--plural", `{count} similar names were found:\n`, `{count} similar name was found:\n`)
	require.NoError(t, err)
	assert.Equal(t, "{count} noms semblables ont été trouvés :\n\n", out)
}

func TestLookupDegradesWhenCatalogIsMissing(t *testing.T) {
	out, err := run(t, nil, nil, "--catalog", filepath.Join(t.TempDir(), "missing.mo"), "lookup", "Cannot find source code.")
	require.NoError(t, err)
	assert.Equal(t, "Cannot find source code.\n", out)
}

func TestLookupWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.fr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`"Cannot find source code." = "Source introuvable."`+"\n"), 0o644))

	out, err := run(t, nil, nil, "--override", path, "lookup", "Cannot find source code.")
	require.NoError(t, err)
	assert.Equal(t, "Source introuvable.\n", out)
}

func TestKeysAndInfo(t *testing.T) {
	out, err := run(t, nil, nil, "keys")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 40)
	assert.Contains(t, lines, `"Cannot find source code."`)

	out, err = run(t, nil, nil, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Language: fr\n")
	assert.Contains(t, out, "Plural-Forms: nplurals=2; plural=(n > 1);\n")
	assert.Contains(t, out, "Entries: 40\n")
	assert.Contains(t, out, "Embedded languages: fr\n")
	assert.Contains(t, out, "Analyzed exceptions: FileNotFoundError, ImportError")
}

func TestKeysFailsOnMissingCatalog(t *testing.T) {
	_, err := run(t, nil, nil, "--catalog", filepath.Join(t.TempDir(), "missing.mo"), "keys")
	exitErr := requireExitCode(t, err, 3)
	assert.True(t, strings.HasPrefix(exitErr.Message, "catalog not found: "))

	_, err = run(t, nil, nil, "--source", "ftp", "keys")
	requireExitCode(t, err, 2)
}

func TestExplain(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(report, []byte(`{
		"exception": "NameError",
		"value": "name 'prnt' is not defined",
		"last_call": {"filename": "/tmp/demo.py", "linenumber": 3, "source": "--> 3: prnt(1)\n"},
		"scope": {"builtins": ["print", "len"]}
	}`), 0o644))

	out, err := run(t, nil, nil, "explain", report)
	require.NoError(t, err)
	assert.Contains(t, out, "    Exception Python: \n        NameError: name 'prnt' is not defined\n")
	assert.Contains(t, out, "Dans votre programme, le nom inconnu est `prnt`.\n")
	assert.Contains(t, out, "à la ligne 3 du fichier 'demo.py'.")
	assert.True(t, strings.HasSuffix(out, "Vouliez-vous dire `print` ?\n"))

	out, err = run(t, nil, nil, "explain", "--json", report)
	require.NoError(t, err)
	var doc struct {
		Language    string               `json:"language"`
		Cause       entities.Cause       `json:"cause"`
		Explanation entities.Explanation `json:"explanation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "fr", doc.Language)
	assert.Equal(t, "Cause probable basée sur l'information donnée par Python :", doc.Cause.Header)
	assert.Equal(t, "Vouliez-vous dire `print` ?\n", doc.Explanation.Suggest)

	_, err = run(t, nil, nil, "explain", filepath.Join(t.TempDir(), "nope.json"))
	requireExitCode(t, err, 2)
}

func TestCompileAndExport(t *testing.T) {
	dir := t.TempDir()

	moPath := filepath.Join(dir, "friendly.mo")
	out, err := run(t, nil, nil, "compile", frPO, "-o", moPath)
	require.NoError(t, err)
	assert.Equal(t, moPath+": 40 messages\n", out)
	cat, err := mo.LoadFile(moPath)
	require.NoError(t, err)
	assert.Equal(t, 40, cat.Len())

	tomlPath := filepath.Join(dir, "friendly.fr.toml")
	_, err = run(t, nil, nil, "--catalog", moPath, "export", "-o", tomlPath)
	require.NoError(t, err)
	data, err := os.ReadFile(tomlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Impossible de trouver la source du code.")

	out, err = run(t, nil, nil, "export", "--format", "mo", "-o", "-")
	require.NoError(t, err)
	back, err := mo.Decode([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, cat.Keys(), back.Keys())

	_, err = run(t, nil, nil, "export", "--format", "xliff", "-o", "-")
	requireExitCode(t, err, 2)
}

func TestDatabaseCommands(t *testing.T) {
	_, err := run(t, nil, nil, "db", "import")
	exitErr := requireExitCode(t, err, 2)
	assert.Contains(t, exitErr.Message, "DATABASE_URL")

	repo := &memoryRepo{catalogs: make(map[string]*entities.Catalog)}
	cfg := func() *config.Config {
		return &config.Config{Lang: "fr", CatalogSource: domain.SourceEmbedded, DatabaseURL: "postgres://localhost:5432/friendly"}
	}

	out, err := run(t, cfg(), memoryConnector(repo), "db", "import")
	require.NoError(t, err)
	assert.Equal(t, "imported 40 messages\n", out)

	out, err = run(t, cfg(), memoryConnector(repo), "db", "locales")
	require.NoError(t, err)
	assert.Equal(t, "fr\n", out)

	out, err = run(t, cfg(), memoryConnector(repo), "--source", "db", "lookup", "Cannot find source code.")
	require.NoError(t, err)
	assert.Equal(t, "Impossible de trouver la source du code.\n", out)

	_, err = run(t, cfg(), memoryConnector(repo), "--source", "db", "--lang", "de", "keys")
	requireExitCode(t, err, 3)
}
