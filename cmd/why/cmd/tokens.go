package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [datei|-]",
	Short: "Gibt den Token-Strom aus",
	Long: `Zerlegt ein Programm in Tokens und gibt je Token eine Zeile aus:
Position, Art und Text.

Beispiele:
  why tokens programm.why
  echo "x = 1;" | why tokens
  why tokens --json programm.why`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "Ausgabe als JSON")
}

type tokenJSON struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := sourceArg(args)
	source, err := loadSource(cmd, path)
	if err != nil {
		return err
	}

	tokens, err := app.engine.Tokenize(source)
	if err != nil {
		return reportDiagnostic(cmd, path, source, err)
	}

	out := cmd.OutOrStdout()
	if tokensJSON {
		list := make([]tokenJSON, len(tokens))
		for i, tok := range tokens {
			list[i] = tokenJSON{
				Line:   tok.Location.Line,
				Column: tok.Location.Column,
				Kind:   tok.Kind.String(),
				Text:   tok.Lexeme(),
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	for _, tok := range tokens {
		fmt.Fprintln(out, tok.Listing())
	}
	return nil
}
