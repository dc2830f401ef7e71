// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load, first-run initialisation and encoding of driftview.toml.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/framegrace/texeldrift/defaults"
)

// Load reads path over the embedded defaults. A missing file is not an
// error. Keys absent from the file keep their default; unknown keys are
// logged and ignored. On a read or parse failure the defaults are returned
// together with the error.
func Load(path string) (File, error) {
	cfg, err := Defaults()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	loaded := cfg
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&loaded); err != nil {
		var strict *toml.StrictMissingError
		if !errors.As(err, &strict) {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Printf("Config: Ignoring unknown keys in %s:\n%s", path, strict.String())
	}
	log.Printf("Config: Loaded %s", path)
	return loaded, nil
}

// EnsureDefault writes the embedded defaults to path unless a file already
// exists there. Returns true when a file was written.
func EnsureDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaults.ViewerConfig(), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("Config: Wrote default config to %s", path)
	return true, nil
}

// Encode renders cfg as TOML.
func Encode(cfg File) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
