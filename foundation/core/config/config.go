// File: config.go
// Title: Configuration File Decoding
// Description: Decodes TOML and YAML configuration files into typed
//              structs. The format is detected from the file extension
//              unless given explicitly, and environment variables in the
//              file content can be expanded before decoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Typed TOML and YAML decoding

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/why/foundation/core/error"
	"github.com/msto63/why/foundation/utils/stringx"
)

// Format is a configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// LoadOptions controls LoadFile
type LoadOptions struct {
	// Format overrides extension based detection
	Format Format
	// ExpandEnv replaces $VAR and ${VAR} in the file before decoding
	ExpandEnv bool
	// Strict rejects keys that do not map onto dst
	Strict bool
}

// DetectFormat returns the format implied by the extension of path.
// Unknown extensions are treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Decode decodes content in format into dst, which must be a pointer
func Decode(content []byte, format Format, dst interface{}) error {
	return decode(content, format, dst, false)
}

func decode(content []byte, format Format, dst interface{}, strict bool) error {
	switch format {
	case FormatTOML, FormatAuto:
		md, err := toml.Decode(string(content), dst)
		if err != nil {
			return mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Decode")
		}
		if undecoded := md.Undecoded(); strict && len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return mdwerror.New(fmt.Sprintf("unknown configuration keys: %s", strings.Join(keys, ", "))).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Decode").
				WithDetail("keys", keys)
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(strict)
		if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Decode")
		}

	default:
		return mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}
	return nil
}

// LoadFile reads path and decodes it into dst. It returns the format that
// was used.
func LoadFile(path string, dst interface{}, options LoadOptions) (Format, error) {
	if stringx.IsBlank(path) {
		return FormatAuto, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.LoadFile")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeIOError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return FormatAuto, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadFile").
			WithContext(path)
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	if options.ExpandEnv {
		content = []byte(os.ExpandEnv(string(content)))
	}

	if err := decode(content, format, dst, options.Strict); err != nil {
		return format, mdwerror.Wrap(err, "failed to load config file").
			WithOperation("config.LoadFile").
			WithContext(path).
			WithDetail("format", format.String())
	}
	return format, nil
}
