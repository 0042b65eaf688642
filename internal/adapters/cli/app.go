package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"friendly/internal/application"
	"friendly/internal/config"
	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/internal/infrastructure/database"
	"friendly/internal/infrastructure/i18n"
	"friendly/internal/ports/input"
	"friendly/internal/ports/output"
)

// Connector opens the catalog store. The returned func releases it.
type Connector func(ctx context.Context, dsn string) (output.CatalogRepository, func(), error)

// App is the command-line adapter.
type App struct {
	cfg     *config.Config
	files   output.CatalogFiles
	connect Connector

	flags struct {
		lang      string
		source    string
		catalog   string
		overrides []string
	}
}

// NewApp wires the CLI on top of cfg. connect may be nil to use PostgreSQL.
func NewApp(cfg *config.Config, connect Connector) *App {
	if connect == nil {
		connect = connectPostgres
	}
	return &App{cfg: cfg, files: i18n.Files{}, connect: connect}
}

func connectPostgres(ctx context.Context, dsn string) (output.CatalogRepository, func(), error) {
	pool, err := database.NewPool(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return database.NewCatalogRepository(pool), pool.Close, nil
}

// Execute runs the command line args, writing to out and errOut.
func (a *App) Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := a.Command()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return asExitError(root.ExecuteContext(ctx))
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "friendly",
		Short:         "Localized explanations of Python tracebacks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Apply(a.flags.lang, a.flags.source, a.flags.catalog, a.flags.overrides); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.lang, "lang", "", "catalog language (overrides FRIENDLY_LANG)")
	pf.StringVar(&a.flags.source, "source", "", "catalog source: embedded, file or db (overrides FRIENDLY_CATALOG_SOURCE)")
	pf.StringVar(&a.flags.catalog, "catalog", "", "path to a .mo or .po catalog (overrides FRIENDLY_CATALOG_PATH)")
	pf.StringSliceVar(&a.flags.overrides, "override", nil, "go-i18n TOML file layered on the catalog (repeatable)")

	root.AddCommand(
		a.lookupCommand(),
		a.keysCommand(),
		a.infoCommand(),
		a.explainCommand(),
		a.compileCommand(),
		a.exportCommand(),
		a.dbCommand(),
	)
	return root
}

// catalogService returns the service for the configured source. The
// database is only opened for the db source.
func (a *App) catalogService(ctx context.Context) (input.CatalogUseCase, func(), error) {
	var repo output.CatalogRepository
	release := func() {}
	if a.cfg.CatalogSource == domain.SourceDatabase {
		r, closeFn, err := a.connect(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo, release = r, closeFn
	}
	return application.NewCatalogService(a.files, repo, a.settings()), release, nil
}

func (a *App) settings() application.CatalogSettings {
	return application.CatalogSettings{
		Locale: a.cfg.Lang,
		Source: a.cfg.CatalogSource,
		Path:   a.cfg.CatalogPath,
	}
}

// loadStrict loads the configured catalog, failing on any error.
func (a *App) loadStrict(ctx context.Context) (*entities.Catalog, error) {
	svc, release, err := a.catalogService(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return svc.LoadStrict(ctx)
}

// translator loads the configured catalog with graceful degradation and
// layers the override files on top.
func (a *App) translator(ctx context.Context) (*i18n.Translator, *entities.Catalog) {
	cat := entities.Empty()
	if svc, release, err := a.catalogService(ctx); err == nil {
		cat = svc.Load(ctx)
		release()
	} else {
		logUnavailable(err)
	}
	return i18n.NewTranslator(cat, a.cfg.Lang, a.cfg.Overrides...), cat
}
