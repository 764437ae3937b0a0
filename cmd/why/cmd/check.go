// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     cmd
// Description: check command with result cache and watch mode
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/why/foundation/core/error"
	mdwlog "github.com/msto63/why/foundation/core/log"
	"github.com/msto63/why/internal/checker"
	"github.com/msto63/why/internal/diag"
	"github.com/msto63/why/internal/store"
	"github.com/msto63/why/internal/watcher"
	"github.com/msto63/why/pkg/core/config"
	"github.com/msto63/why/pkg/core/logging"
)

// memoryCacheItems bounds the in-memory layer over the check cache
const memoryCacheItems = 4096

var (
	checkWatch   bool
	checkNoCache bool
	checkCache   string
)

var checkCmd = &cobra.Command{
	Use:   "check [pfade...]",
	Short: "Prüft Dateien und Verzeichnisse",
	Long: `Prüft why-Programme auf lexikalische und syntaktische Fehler.

Verzeichnisse werden rekursiv nach Dateien mit den konfigurierten Endungen
(Standard: .why) durchsucht, versteckte Verzeichnisse werden übersprungen.
Fehlerfreie Ergebnisse werden im Cache abgelegt, unveränderte Dateien
werden beim nächsten Lauf nicht erneut geparst.

Exit-Codes:
  0  alle Dateien fehlerfrei
  1  mindestens eine Datei enthält Fehler
  2  Datei nicht lesbar oder Konfiguration ungültig

Beispiele:
  why check
  why check src/ beispiel.why
  why check --watch src/
  why check --no-cache programm.why`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Bei Änderungen erneut prüfen")
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "Cache nicht verwenden")
	checkCmd.Flags().StringVar(&checkCache, "cache", "", "Pfad der Cache-Datenbank (default: aus der Konfiguration)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache := openCache(ctx, app.cfg, app.logger)
	if cache != nil {
		defer cache.Close()
	}

	cfg := checker.Config{
		Engine:     app.engine,
		Logger:     logging.Wrap(app.logger, "checker"),
		Extensions: app.cfg.Watch.Extensions,
		Stdin:      cmd.InOrStdin(),
	}
	if cache != nil {
		tiered := store.NewTiered(cache, memoryCacheItems, 0)
		defer tiered.Close()
		cfg.Cache = tiered
	}
	c := checker.New(cfg)

	if checkWatch {
		return watchAndCheck(ctx, cmd, c, paths)
	}

	reports, err := c.CheckPaths(ctx, paths)
	if reports == nil && err != nil {
		return err
	}

	out := cmd.ErrOrStderr()
	renderer := newRenderer()
	for _, r := range reports {
		printReport(out, renderer, r)
	}
	printSummary(cmd.OutOrStdout(), reports)

	if err != nil {
		return reported(worstError(reports, err))
	}
	return nil
}

// openCache opens the check cache unless it is disabled. Failing to open
// it only costs speed, so the error is logged and nil returned.
func openCache(ctx context.Context, cfg *config.Config, logger *mdwlog.Logger) *store.Store {
	if checkNoCache || !cfg.CacheEnabled() {
		return nil
	}
	path := cfg.Cache.Path
	if checkCache != "" {
		path = checkCache
	}

	s, err := store.Open(store.Config{Path: path})
	if err != nil {
		logger.LogError(mdwerror.Wrap(err, "cache unavailable").
			WithCode(mdwerror.CodeCacheError).
			WithSeverity(mdwerror.SeverityMedium).
			WithContext(path), "Checking without cache")
		return nil
	}

	if maxAge := cfg.Cache.MaxAge.Duration; maxAge > 0 {
		if n, err := s.Prune(ctx, maxAge); err != nil {
			logger.WarnWithErr("Cache prune failed", err)
		} else if n > 0 {
			logger.Debug("Pruned cache", mdwlog.Fields{"removed": n})
		}
	}
	return s
}

// watchAndCheck checks paths once, then again for every changed file
// until ctx is canceled
func watchAndCheck(ctx context.Context, cmd *cobra.Command, c *checker.Checker, paths []string) error {
	for _, p := range paths {
		if p == "-" {
			return mdwerror.New("--watch cannot read from stdin").WithCode(mdwerror.CodeInvalidInput)
		}
	}

	out := cmd.ErrOrStderr()
	renderer := newRenderer()

	reports, err := c.CheckPaths(ctx, paths)
	if reports == nil && err != nil {
		return err
	}
	for _, r := range reports {
		printReport(out, renderer, r)
	}
	printSummary(cmd.OutOrStdout(), reports)

	handler := func(path string) {
		r := c.CheckFile(ctx, path)
		printReport(out, renderer, r)
		if r.OK {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", r.Path)
		}
	}

	w := watcher.New(watcher.Config{
		Paths:      paths,
		Debounce:   app.cfg.Watch.Debounce.Duration,
		Extensions: app.cfg.Watch.Extensions,
	}, handler, logging.Wrap(app.logger, "watcher"))

	if err := w.Start(ctx); err != nil {
		return mdwerror.Wrap(err, "failed to start watcher").WithCode(mdwerror.CodeWatchError)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Beobachte Änderungen, Abbruch mit Ctrl+C")

	select {
	case <-ctx.Done():
		w.Stop()
		<-w.Done()
	case <-w.Done():
	}
	return nil
}

func printReport(w io.Writer, renderer *diag.Renderer, r checker.Report) {
	if r.Err == nil {
		return
	}
	if mdwerror.GetCode(r.Err).IsDiagnostic() {
		fmt.Fprint(w, renderer.Render(displayName(r.Path), r.Source, r.Err))
		return
	}
	printError(w, r.Err)
}

func printSummary(w io.Writer, reports []checker.Report) {
	failed, cached := 0, 0
	for _, r := range reports {
		if r.Err != nil {
			failed++
		}
		if r.Cached {
			cached++
		}
	}
	fmt.Fprintf(w, "%d Dateien geprüft, %d fehlerhaft, %d aus dem Cache\n", len(reports), failed, cached)
}

// worstError returns the failing report error with the highest exit
// status, falling back to err
func worstError(reports []checker.Report, err error) error {
	worst, code := err, 0
	for _, r := range reports {
		if r.Err == nil {
			continue
		}
		if c := exitCode(r.Err); c > code {
			worst, code = r.Err, c
		}
	}
	return worst
}
