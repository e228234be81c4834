// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package pipeline

import (
	"errors"

	"golang.org/x/sys/unix"
)

// resourceExhausted reports whether err means the host is out of processes,
// memory or descriptors.
func resourceExhausted(err error) bool {
	for _, errno := range []error{unix.EAGAIN, unix.ENOMEM, unix.EMFILE, unix.ENFILE} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
