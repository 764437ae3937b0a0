// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     logging
// Description: FileWriter appends log lines to a file next to stderr
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	mdwerror "github.com/msto63/why/foundation/core/error"
)

// FileWriter implements io.Writer and appends to a log file
type FileWriter struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// NewFileWriter opens path for appending, creating parent directories
func NewFileWriter(path string) (*FileWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, mdwerror.Wrap(err, "failed to create log directory").
			WithCode(mdwerror.CodeIOError).
			WithOperation("logging.NewFileWriter").
			WithContext(path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open log file").
			WithCode(mdwerror.CodeIOError).
			WithOperation("logging.NewFileWriter").
			WithContext(path)
	}
	return &FileWriter{path: path, file: f}, nil
}

// Write implements io.Writer. Writes after Close are dropped.
func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return len(p), nil
	}
	return w.file.Write(p)
}

// Path returns the file path
func (w *FileWriter) Path() string {
	return w.path
}

// Close flushes and closes the file
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Sync()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	w.file = nil
	return err
}

var (
	// open file writers by path, shared by all loggers of the process
	fileWriters   = make(map[string]*FileWriter)
	fileWritersMu sync.Mutex
)

// getOrCreateFileWriter returns the shared writer for path
func getOrCreateFileWriter(path string) (*FileWriter, error) {
	fileWritersMu.Lock()
	defer fileWritersMu.Unlock()

	if w, ok := fileWriters[path]; ok {
		return w, nil
	}
	w, err := NewFileWriter(path)
	if err != nil {
		return nil, err
	}
	fileWriters[path] = w
	return w, nil
}

// CloseFiles closes every log file opened by NewLogger
func CloseFiles() error {
	fileWritersMu.Lock()
	defer fileWritersMu.Unlock()

	var first error
	for path, w := range fileWriters {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
		delete(fileWriters, path)
	}
	return first
}

var _ io.Writer = (*FileWriter)(nil)
