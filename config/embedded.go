// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Parses and caches the embedded defaults.
// The embedded TOML in defaults/ is the single source of truth for default values.

package config

import (
	"fmt"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/framegrace/texeldrift/defaults"
)

var (
	embeddedOnce sync.Once
	embedded     File
	embeddedErr  error
)

// Defaults returns the parsed embedded configuration.
func Defaults() (File, error) {
	embeddedOnce.Do(func() {
		if err := toml.Unmarshal(defaults.ViewerConfig(), &embedded); err != nil {
			embeddedErr = fmt.Errorf("parse embedded defaults: %w", err)
		}
	})
	return embedded, embeddedErr
}
