// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     checker
// Description: Checks why source files, using the result cache
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/msto63/why/foundation/why"
	"github.com/msto63/why/internal/store"
	"github.com/msto63/why/pkg/core/logging"
	"github.com/msto63/why/pkg/core/version"
)

// Cache stores check results by source hash. *store.Store implements it.
type Cache interface {
	Get(ctx context.Context, hash string) (*store.Record, error)
	Put(ctx context.Context, r *store.Record) error
}

// Report is the outcome of checking one file
type Report struct {
	Path   string
	Source string
	OK     bool
	// Cached is set when the result came from the cache without parsing
	Cached     bool
	Err        error
	Tokens     int
	Statements int
	Duration   time.Duration
}

// Config configures a Checker
type Config struct {
	Engine *why.Engine
	// Cache is optional
	Cache Cache
	// Logger is optional
	Logger *logging.Logger
	// Extensions selects files when expanding directories (default .why)
	Extensions []string
	// Stdin is read for the path "-" (default os.Stdin)
	Stdin io.Reader
}

// Checker checks files and directories. Every Checker has its own run
// ID, which tags its log lines and cache records.
type Checker struct {
	engine     *why.Engine
	cache      Cache
	logger     *logging.Logger
	runID      string
	extensions []string
	stdin      io.Reader
	cacheKey   string
}

// New creates a checker
func New(cfg Config) *Checker {
	engine := cfg.Engine
	if engine == nil {
		engine = why.NewEngine(why.DefaultOptions())
	}
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".why"}
	}

	runID := uuid.NewString()
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Wrap(nil, "checker")
	}
	logger = logging.Wrap(logger.Logger.WithRunID(runID), "checker")

	opts := engine.Options()
	return &Checker{
		engine:     engine,
		cache:      cfg.Cache,
		logger:     logger,
		runID:      runID,
		extensions: exts,
		stdin:      cfg.Stdin,
		cacheKey: fmt.Sprintf("why/%s strict=%t max_source=%d max_depth=%d\n",
			version.Language, opts.Lexer.Strict, opts.Lexer.MaxSourceLength, opts.Parser.MaxDepth),
	}
}

// RunID returns the ID of this checker's run
func (c *Checker) RunID() string {
	return c.runID
}

// CheckSource checks an in-memory source. path is only used for reporting.
func (c *Checker) CheckSource(ctx context.Context, path, source string) Report {
	start := time.Now()
	report := Report{Path: path, Source: source}
	hash := store.HashSource(c.cacheKey + source)

	// Only successful results are served from the cache; failures are
	// parsed again so diagnostics carry the full error.
	if c.cache != nil {
		rec, err := c.cache.Get(ctx, hash)
		switch {
		case err == nil && rec.OK:
			report.OK = true
			report.Cached = true
			report.Tokens = rec.Tokens
			report.Statements = rec.Statements
			report.Duration = time.Since(start)
			c.logger.Debug("Cache hit", "file", path, "hash", hash[:12])
			return report
		case err != nil && !errors.Is(err, store.ErrNotFound):
			c.logger.Warn("Cache read failed", "file", path, "error", err)
		}
	}

	result, err := c.engine.Parse(source)
	report.Duration = time.Since(start)
	rec := &store.Record{Hash: hash, Path: path, RunID: c.runID}

	if err != nil {
		report.Err = err
		rec.Message = why.ErrorMessage(err)
		if loc, ok := why.ErrorLocation(err); ok {
			rec.Line, rec.Column = loc.Line, loc.Column
		}
		c.logger.Info("Check failed", "file", path, "error", rec.Message)
	} else {
		report.OK = true
		report.Tokens = len(result.Tokens)
		report.Statements = result.Statements
		rec.OK = true
		rec.Tokens = report.Tokens
		rec.Statements = report.Statements
		c.logger.Debug("Check passed", "file", path, "statements", report.Statements)
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, rec); err != nil {
			c.logger.Warn("Cache write failed", "file", path, "error", err)
		}
	}
	return report
}

// CheckFile loads and checks one file
func (c *Checker) CheckFile(ctx context.Context, path string) Report {
	source, err := why.LoadSource(path, c.stdin)
	if err != nil {
		return Report{Path: path, Err: err}
	}
	return c.CheckSource(ctx, path, source)
}

// CheckPaths checks files and directory trees in order. The returned
// error aggregates the error of every failing file, or is nil.
func (c *Checker) CheckPaths(ctx context.Context, paths []string) ([]Report, error) {
	files, err := c.Expand(paths)
	if err != nil {
		return nil, err
	}

	var (
		reports []Report
		result  *multierror.Error
	)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return reports, multierror.Append(result, err).ErrorOrNil()
		}
		r := c.CheckFile(ctx, f)
		reports = append(reports, r)
		if r.Err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", f, r.Err))
		}
	}

	c.logger.Info("Check run finished", "files", len(reports), "failed", failedCount(result))
	return reports, result.ErrorOrNil()
}

// Expand resolves paths to files. Directories contribute the files with a
// configured extension, sorted; hidden directories are skipped. Named
// files are kept whatever their extension.
func (c *Checker) Expand(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		if root == "-" {
			add(root)
			continue
		}
		// Missing paths are reported by CheckFile
		if _, err := os.Stat(root); err != nil {
			add(root)
			continue
		}
		var found []string
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if p == root || c.hasExtension(p) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", root, err)
		}
		sort.Strings(found)
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

func (c *Checker) hasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func failedCount(err *multierror.Error) int {
	if err == nil {
		return 0
	}
	return len(err.Errors)
}
