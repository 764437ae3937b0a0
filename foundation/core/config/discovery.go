// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the first existing configuration file from a list
//              of candidate paths, expanding ~ and environment variables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Candidate path discovery

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/why/foundation/core/error"
	"github.com/msto63/why/foundation/utils/stringx"
)

// ExpandPath expands environment variables and a leading ~ in path
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// FindConfigFile returns the first candidate that exists as a regular
// file. Blank candidates are skipped.
func FindConfigFile(candidates []string) (string, error) {
	for _, c := range candidates {
		if stringx.IsBlank(c) {
			continue
		}
		p := ExpandPath(c)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", mdwerror.New("no configuration file found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("candidates", candidates)
}
