// Package config decodes TOML and YAML configuration files.
//
// Package: config
// Title: Configuration Decoding
// Description: Format detection, typed decoding with BurntSushi/toml and
//              yaml.v3, environment expansion and discovery of the first
//              existing file from a candidate list. Failures are returned
//              as core errors carrying CONFIG, NOT_FOUND or IO codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package
//
// Usage:
//
//	var cfg AppConfig
//	path, err := config.FindConfigFile([]string{"./why.toml", "~/.config/why/why.toml"})
//	if err == nil {
//		_, err = config.LoadFile(path, &cfg, config.LoadOptions{ExpandEnv: true})
//	}
package config
