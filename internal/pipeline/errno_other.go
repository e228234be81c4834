// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package pipeline

func resourceExhausted(error) bool {
	return false
}
