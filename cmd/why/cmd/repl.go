package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/why/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Startet die interaktive Eingabe",
	Long: `Startet eine interaktive Terminal-Oberfläche. Jede Zeile wird für sich
geparst; ausgegeben werden die Anweisungen als S-Expression oder die Tokens.

Tastenkuerzel:
  Enter       Zeile parsen
  ↑ / ↓       Verlauf
  Ctrl+T      Zwischen Baum und Tokens wechseln
  Ctrl+L      Ausgabe leeren
  PgUp/PgDn   Scrollen
  Esc/Ctrl+C  Beenden`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	return repl.Run(repl.Config{
		Engine:      app.engine,
		Prompt:      app.cfg.REPL.Prompt,
		HistorySize: app.cfg.REPL.HistorySize,
		Plain:       noColor,
	})
}
