// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package builtin

import (
	"context"
	"errors"
	"os"

	"github.com/marcelocantos/microsh/internal/cap"
	"github.com/marcelocantos/microsh/internal/ctxlog"
	"github.com/marcelocantos/microsh/internal/diag"
)

// ErrBadArguments is returned when cd is not given exactly one argument.
var ErrBadArguments = errors.New("cd takes exactly one argument")

// Cd changes the working directory of the interpreter, and so of every
// command started after it.
type Cd struct{}

var _ cap.Capability = (*Cd)(nil)

func (c *Cd) Name() string        { return "cd" }
func (c *Cd) Description() string { return "change the working directory" }

func (c *Cd) Run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return diag.New("cd: bad arguments", "", ErrBadArguments)
	}
	if err := os.Chdir(args[0]); err != nil {
		return diag.New("cd: cannot change directory to", args[0], err)
	}
	ctxlog.Debug(ctx, "changed directory", "dir", args[0])
	return nil
}
