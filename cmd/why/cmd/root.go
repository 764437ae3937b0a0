// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and shared setup
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/why/foundation/core/error"
	mdwlog "github.com/msto63/why/foundation/core/log"
	"github.com/msto63/why/foundation/why"
	"github.com/msto63/why/internal/diag"
	"github.com/msto63/why/pkg/core/config"
	"github.com/msto63/why/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
	noColor   bool
)

// app is the state shared by all subcommands, set up before each run
var app struct {
	cfg    *config.Config
	logger *mdwlog.Logger
	engine *why.Engine
}

var rootCmd = &cobra.Command{
	Use:   "why",
	Short: "why - Werkzeuge für die Skriptsprache why",
	Long: `why zerlegt und prüft Programme der Skriptsprache why.

Befehle:
  tokens   - Token-Strom einer Datei ausgeben
  parse    - Syntaxbaum ausgeben (sexpr, json, yaml)
  check    - Dateien und Verzeichnisse prüfen, optional mit --watch
  repl     - Interaktive Eingabe
  version  - Version anzeigen

Die Konfiguration wird aus --config, $WHY_CONFIG, ./why.toml, ./why.yaml
oder ~/.config/why/why.toml gelesen.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the CLI and returns the process exit status
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var reported *reportedError
	if errors.As(err, &reported) {
		return reported.code
	}
	printError(rootCmd.ErrOrStderr(), err)
	return exitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $WHY_CONFIG oder ./why.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Ausführliche Ausgabe (Log-Level debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log-Level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format (text, json, console)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Diagnosen ohne Farben ausgeben")
}

// setup loads the configuration and builds logger and engine
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.General.LogLevel = logLevel
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}

	logger, err := logging.NewLogger(logging.LoggerConfig{
		Component: "why",
		Level:     cfg.General.LogLevel,
		Format:    cfg.General.LogFormat,
		File:      cfg.General.LogFile,
		Output:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if src := cfg.Source(); src != "" {
		logger.Debug("Configuration loaded", mdwlog.Fields{"path": src})
	}

	app.cfg = cfg
	app.logger = logger
	app.engine = why.NewEngine(why.Options{
		Logger: logger,
		Lexer:  cfg.LexerOptions(),
		Parser: cfg.ParserOptions(),
	})
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return logging.CloseFiles()
}

// reportedError marks a failure whose diagnostics were already printed
type reportedError struct {
	err  error
	code int
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func reported(err error) error {
	return &reportedError{err: err, code: exitCode(err)}
}

// exitCode maps an error to the process exit status: 1 for problems in
// the checked source, 2 for configuration, usage and I/O, 3 for everything
// else
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}

func newRenderer() *diag.Renderer {
	return diag.NewRenderer(noColor)
}

// sourceArg returns the single file argument, "-" (stdin) by default
func sourceArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// loadSource reads path, reading stdin from the command for "-"
func loadSource(cmd *cobra.Command, path string) (string, error) {
	return why.LoadSource(path, cmd.InOrStdin())
}

// reportDiagnostic prints err against source and wraps it as reported
func reportDiagnostic(cmd *cobra.Command, path, source string, err error) error {
	if !mdwerror.GetCode(err).IsDiagnostic() {
		return err
	}
	fmt.Fprint(cmd.ErrOrStderr(), newRenderer().Render(displayName(path), source, err))
	return reported(err)
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
