// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/marcelocantos/microsh/internal/audit"
	"github.com/marcelocantos/microsh/internal/cap"
	"github.com/marcelocantos/microsh/internal/cap/builtin"
	"github.com/marcelocantos/microsh/internal/config"
	"github.com/marcelocantos/microsh/internal/ctxlog"
	"github.com/marcelocantos/microsh/internal/diag"
	"github.com/marcelocantos/microsh/internal/pipeline"
)

// Runner executes a program given as a token list, one command group at a
// time.
type Runner struct {
	Builtins *cap.Registry
	Engine   *pipeline.Engine
	Journal  *audit.Logger // nil disables the journal
	Stderr   io.Writer
}

// NewRunner wires a runner from cfg using the process's standard streams
// and environment. The journal, if configured, lives on fs. A journal that
// cannot be opened is logged and skipped.
func NewRunner(ctx context.Context, cfg *config.Config, fs afero.Fs) *Runner {
	reg := cap.NewRegistry()
	builtin.RegisterAll(reg)

	r := &Runner{
		Builtins: reg,
		Engine:   pipeline.NewEngine(&pipeline.OSSpawner{ResolvePath: cfg.Exec.ResolvePath}),
		Stderr:   os.Stderr,
	}

	if cfg.Audit.Path != "" {
		logger, err := audit.NewLogger(fs, cfg.Audit.Path)
		if err != nil {
			ctxlog.Debug(ctx, "journal disabled", "path", cfg.Audit.Path, "error", err)
		} else {
			ctxlog.Debug(ctx, "journal opened", "path", logger.Path())
			r.Journal = logger
		}
	}
	return r
}

// Run executes every command group of tokens in order and returns the
// process exit code: 0 once the tokens are exhausted, 1 after a fatal
// error, which stops the run immediately.
func (r *Runner) Run(ctx context.Context, tokens []string) int {
	for g := range pipeline.Groups(tokens) {
		if err := r.runGroup(ctx, g); err != nil {
			diag.Report(r.Stderr, err)
			return 1
		}
	}
	return 0
}

// runGroup dispatches g to a builtin or the engine. Only fatal errors are
// returned; everything else has already been reported.
func (r *Runner) runGroup(ctx context.Context, g pipeline.Group) error {
	logger := ctxlog.Logger(ctx)
	start := time.Now()

	if c, ok := r.Builtins.Match(g.Args); ok {
		logger.Debug("running builtin", "name", c.Name(), "description", c.Description(), "args", g.Args[1:])
		entry := audit.Entry{
			Group:  strings.Join(g.Args, " "),
			Kind:   audit.KindBuiltin,
			Stages: []string{c.Name()},
		}
		if err := c.Run(ctx, g.Args[1:]); err != nil {
			diag.Report(r.Stderr, err)
			entry.Error = err.Error()
		}
		r.logJournal(ctx, entry, time.Since(start))
		return nil
	}

	logger.Debug("running group", "args", g.Args, "pipeline", g.Pipeline)
	results, err := r.Engine.Run(ctx, g)
	if err != nil {
		return err
	}

	entry := audit.Entry{
		Group: strings.Join(g.Args, " "),
		Kind:  audit.KindCommand,
	}
	if g.Pipeline {
		entry.Kind = audit.KindPipeline
	}
	for _, res := range results {
		entry.Stages = append(entry.Stages, res.Name)
		entry.Pids = append(entry.Pids, res.Pid)
		entry.ExitCodes = append(entry.ExitCodes, res.ExitCode)
	}
	r.logJournal(ctx, entry, time.Since(start))
	return nil
}

func (r *Runner) logJournal(ctx context.Context, e audit.Entry, d time.Duration) {
	if r.Journal == nil {
		return
	}
	e.Cwd, _ = os.Getwd()
	// Best-effort: the journal never changes the outcome of a run.
	if err := r.Journal.Log(e, d); err != nil {
		ctxlog.Debug(ctx, "journal write failed", "error", err)
	}
}
