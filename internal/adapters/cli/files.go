package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"friendly/internal/domain"
	"friendly/internal/infrastructure/i18n"
)

func (a *App) compileCommand() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "compile SOURCE.po",
		Short: "Compile a .po source into a .mo catalog, like msgfmt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			cat, err := a.files.ReadFile(src)
			if err != nil {
				return err
			}
			data, err := a.files.Encode(cat, domain.FormatMO)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = strings.TrimSuffix(src, filepath.Ext(src)) + ".mo"
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d messages\n", outPath, cat.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: SOURCE with a .mo extension)")
	return cmd
}

func (a *App) exportCommand() *cobra.Command {
	var (
		format  string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured catalog as a .mo file or a go-i18n TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := a.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			cat, err := svc.LoadStrict(cmd.Context())
			if err != nil {
				return err
			}
			data, err := svc.Export(cat, format)
			if err != nil {
				return err
			}

			switch {
			case outPath == "-":
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case outPath == "" && strings.EqualFold(format, domain.FormatTOML):
				outPath = i18n.ExportFileName(cat, a.cfg.Lang)
			case outPath == "":
				outPath = i18n.Domain + ".mo"
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d messages\n", outPath, cat.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", domain.FormatTOML, "output format: mo or toml")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", `output file, "-" for stdout (default: friendly.<lang>.toml or friendly.mo)`)
	return cmd
}

