// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

// Command microsh runs the program given as its arguments. Command groups
// are separated by ";" tokens and pipeline stages by "|" tokens:
//
//	microsh cd /tmp ";" ls -l "|" wc -l ";" echo done
//
// Diagnostics are single lines on stderr of the form "error: <context>" or
// "error: <context>: <arg>", with these contexts:
//
//	cd: bad arguments
//	cd: cannot change directory to
//	cannot execute
//	fatal
//	config
//
// The exit status is 0 once every group has run and 1 after a fatal error.
// A config file that cannot be parsed is also reported and exits 1, before
// any group runs.
package main

import (
	"context"
	"os"

	"github.com/marcelocantos/microsh/internal/cli"
	"github.com/marcelocantos/microsh/internal/config"
	"github.com/marcelocantos/microsh/internal/ctxlog"
	"github.com/marcelocantos/microsh/internal/diag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	cfg, err := config.Load()
	if err != nil {
		diag.Report(stderr, diag.New("config", err.Error(), err))
		return 1
	}
	ctxlog.SetLevel(cfg.Log.Level)

	ctx := ctxlog.New(context.Background(), nil)
	r := cli.NewRunner(ctx, cfg, config.FsFactory())
	r.Engine.Stdout, r.Engine.Stderr = stdout, stderr
	r.Stderr = stderr
	return r.Run(ctx, args)
}
