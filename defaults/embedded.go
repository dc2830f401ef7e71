// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import _ "embed"

//go:embed driftview.toml
var viewerConfig []byte

// ViewerConfig returns the embedded driftview TOML.
func ViewerConfig() []byte {
	out := make([]byte, len(viewerConfig))
	copy(out, viewerConfig)
	return out
}
