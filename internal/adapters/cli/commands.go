package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"friendly/internal/application"
	"friendly/internal/infrastructure/i18n"
	"friendly/pkg/podate"
)

// Keys contain newlines; -e lets them be typed as \n.
var unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")

func logUnavailable(err error) {
	log.Printf("catalog: %v; using untranslated messages", err)
}

func (a *App) lookupCommand() *cobra.Command {
	var (
		escapes bool
		plural  string
		count   int
	)
	cmd := &cobra.Command{
		Use:   "lookup KEY...",
		Short: "Translate catalog keys, falling back to the key itself",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _ := a.translator(cmd.Context())
			out := cmd.OutOrStdout()
			for _, key := range args {
				if escapes {
					key = unescaper.Replace(key)
				}
				if plural != "" {
					p := plural
					if escapes {
						p = unescaper.Replace(p)
					}
					fmt.Fprintln(out, tr.TranslatePlural(key, p, count))
					continue
				}
				fmt.Fprintln(out, tr.Translate(key))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&escapes, "escapes", "e", false, `interpret \n, \t and \\ in keys`)
	cmd.Flags().StringVar(&plural, "plural", "", "plural source form; selects the form matching --count")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "count used to pick the plural form")
	return cmd
}

func (a *App) keysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keys of the catalog, quoted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadStrict(cmd.Context())
			if err != nil {
				return err
			}
			for _, key := range cat.Keys() {
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n", key)
			}
			return nil
		},
	}
}

func (a *App) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the catalog header and what the tool knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadStrict(cmd.Context())
			if err != nil {
				return err
			}
			m := cat.Metadata()
			out := cmd.OutOrStdout()
			for _, field := range [][2]string{
				{"Project-Id-Version", m.ProjectIDVersion},
				{"Report-Msgid-Bugs-To", m.ReportBugsTo},
				{"POT-Creation-Date", podate.Format(m.POTCreationDate)},
				{"PO-Revision-Date", podate.Format(m.PORevisionDate)},
				{"Last-Translator", m.LastTranslator},
				{"Language-Team", m.LanguageTeam},
				{"Language", m.Language},
				{"Content-Type", m.ContentType},
				{"Plural-Forms", m.PluralForms},
				{"X-Generator", m.Generator},
			} {
				if field[1] != "" {
					fmt.Fprintf(out, "%s: %s\n", field[0], field[1])
				}
			}
			fmt.Fprintf(out, "Entries: %d\n", cat.Len())
			fmt.Fprintf(out, "Embedded languages: %s\n", strings.Join(i18n.EmbeddedLanguages(), ", "))
			fmt.Fprintf(out, "Analyzed exceptions: %s\n", strings.Join(application.DefaultCauses().Exceptions(), ", "))
			return nil
		},
	}
}
