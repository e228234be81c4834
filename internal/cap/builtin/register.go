// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package builtin

import "github.com/marcelocantos/microsh/internal/cap"

// RegisterAll adds all builtins to the registry.
func RegisterAll(r *cap.Registry) {
	r.Register(&Cd{})
}
