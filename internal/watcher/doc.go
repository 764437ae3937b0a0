// Package watcher runs a handler whenever a watched why source file is
// written, backing `why check --watch`. Events are debounced per file.
package watcher
