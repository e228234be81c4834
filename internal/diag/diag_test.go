// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"context only", New("fatal", "", cause), "error: fatal\n"},
		{"with arg", New("cannot execute", "nope", cause), "error: cannot execute: nope\n"},
		{"wrapped", fmt.Errorf("stage 2: %w", New("cd: bad arguments", "", nil)), "error: cd: bad arguments\n"},
		{"plain", errors.New("something else"), "error: something else\n"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Report(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New("cd: cannot change directory to", "/x", cause)
	assert.ErrorIs(t, err, cause)
}
