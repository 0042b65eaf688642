package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"friendly/internal/application"
	"friendly/internal/domain"
	"friendly/internal/domain/entities"
	"friendly/internal/infrastructure/database"
	"friendly/internal/ports/input"
)

func (a *App) dbCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage catalogs stored in PostgreSQL",
	}
	cmd.AddCommand(a.dbMigrateCommand(), a.dbImportCommand(), a.dbLocalesCommand())
	return cmd
}

func (a *App) requireDatabase() error {
	if a.cfg.DatabaseURL == "" {
		return domain.ErrNoDatabase
	}
	return nil
}

func (a *App) dbMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireDatabase(); err != nil {
				return err
			}
			if err := database.RunMigrations(a.cfg.DatabaseURL); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func (a *App) dbImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [CATALOG.mo|CATALOG.po]",
		Short: "Store a catalog file, or the embedded catalog, in the database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireDatabase(); err != nil {
				return err
			}
			ctx := cmd.Context()

			var (
				cat *entities.Catalog
				err error
			)
			if len(args) == 1 {
				cat, err = a.files.ReadFile(args[0])
			} else {
				cat, err = a.files.Embedded(a.cfg.Lang)
			}
			if err != nil {
				return err
			}

			repo, release, err := a.connect(ctx, a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer release()

			var svc input.CatalogUseCase = application.NewCatalogService(a.files, repo, a.settings())
			if err := svc.Import(ctx, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d messages\n", cat.Len())
			return nil
		},
	}
}

func (a *App) dbLocalesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the languages stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireDatabase(); err != nil {
				return err
			}
			repo, release, err := a.connect(cmd.Context(), a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer release()

			locales, err := repo.Locales(cmd.Context())
			if err != nil {
				return err
			}
			for _, l := range locales {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}
