package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/why/foundation/core/error"
	"github.com/msto63/why/foundation/why/ast"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [datei|-]",
	Short: "Gibt den Syntaxbaum aus",
	Long: `Parst ein Programm und gibt den Syntaxbaum aus.

Formate:
  sexpr  - eine S-Expression je Anweisung (Standard)
  json   - Baum als JSON
  yaml   - Baum als YAML

Beispiele:
  why parse programm.why
  why parse --format yaml programm.why
  echo "int x = 1;" | why parse --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "sexpr", "Ausgabeformat (sexpr, json, yaml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	switch parseFormat {
	case "sexpr", "json", "yaml":
	default:
		return mdwerror.Newf("unknown output format %q", parseFormat).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("allowed", "sexpr, json, yaml")
	}

	path := sourceArg(args)
	source, err := loadSource(cmd, path)
	if err != nil {
		return err
	}

	result, err := app.engine.Parse(source)
	if err != nil {
		return reportDiagnostic(cmd, path, source, err)
	}

	out := cmd.OutOrStdout()
	switch parseFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ast.ToMap(result.Program))

	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(ast.ToMap(result.Program)); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, stmt := range result.Program.Stmts {
		fmt.Fprintln(out, ast.Sprint(stmt))
	}
	return nil
}
