package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"friendly/internal/application"
	"friendly/internal/domain/entities"
	"friendly/internal/ports/input"
)

func (a *App) explainCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "explain [REPORT.json]",
		Short: "Explain a Python exception report read from a file or stdin",
		Long: `Explain reads a JSON exception report, for example

  {"exception": "NameError", "value": "name 'c' is not defined",
   "last_call": {"filename": "demo.py", "linenumber": 3, "source": "--> 3: b = c\n"}}

and prints the explanation in the catalog language.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := readReport(cmd.InOrStdin(), args)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			tr, _ := a.translator(cmd.Context())
			var svc input.ExplainUseCase = application.NewExplainService(tr, nil)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Language    string               `json:"language"`
					Cause       entities.Cause       `json:"cause"`
					Explanation entities.Explanation `json:"explanation"`
				}{tr.Language(), svc.LikelyCause(report), svc.Explain(report)})
			}

			explanation := svc.Explain(report)
			fmt.Fprintln(out, explanation.Text)
			if explanation.Suggest != "" {
				fmt.Fprint(out, explanation.Suggest)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the cause and explanation as JSON")
	return cmd
}

func readReport(stdin io.Reader, args []string) (entities.Report, error) {
	var report entities.Report
	r := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return report, fmt.Errorf("open report: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return report, fmt.Errorf("decode report: %w", err)
	}
	if report.Exception == "" {
		return report, fmt.Errorf("decode report: missing \"exception\"")
	}
	return report, nil
}
