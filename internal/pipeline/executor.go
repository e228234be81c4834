// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/marcelocantos/microsh/internal/ctxlog"
	"github.com/marcelocantos/microsh/internal/diag"
)

// ErrFatal marks errors after which the run cannot continue: pipe or
// process creation failed for lack of resources, or a descriptor could not
// be closed.
var ErrFatal = errors.New("fatal resource error")

// Fatal returns the diagnostic for an unrecoverable resource error.
func Fatal(cause error) error {
	return diag.New("fatal", "", errors.Join(ErrFatal, cause))
}

// ExecFailure returns the diagnostic for a command that could not be
// executed.
func ExecFailure(name string, cause error) error {
	return diag.New("cannot execute", name, cause)
}

// Engine runs command groups as processes connected by pipes.
//
// Every started process goes on a reap queue, and Run drains the whole
// queue before returning. Groups therefore never overlap in time, and an
// Engine must not be used from more than one goroutine.
type Engine struct {
	Spawner Spawner
	Env     []string // passed to every process unmodified
	Stdin   *os.File
	Stdout  *os.File
	Stderr  *os.File // also receives the engine's diagnostics

	queue []queued
}

type queued struct {
	proc   Process
	result *StageResult
}

// NewEngine returns an engine that spawns with sp and gives processes the
// current environment and standard streams.
func NewEngine(sp Spawner) *Engine {
	return &Engine{
		Spawner: sp,
		Env:     os.Environ(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// pipePair is both ends of one pipe. At most two are open in the engine at
// any time: the previous stage's and the current stage's.
type pipePair struct {
	r, w *os.File
}

func newPipePair() (*pipePair, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &pipePair{r: r, w: w}, nil
}

func (p *pipePair) Close() error {
	if p == nil {
		return nil
	}
	var result *multierror.Error
	result = multierror.Append(result, p.r.Close(), p.w.Close())
	return result.ErrorOrNil()
}

// Run executes every stage of g, then waits for all outstanding processes.
// A stage that cannot be executed is reported on Stderr and recorded with
// exit code 1; the other stages still run. A returned error always wraps
// ErrFatal, and in that case processes already started are not waited for;
// they leave the reap queue, so a later Run never waits on them.
func (e *Engine) Run(ctx context.Context, g Group) ([]StageResult, error) {
	logger := ctxlog.Logger(ctx)

	var (
		results []*StageResult
		prev    *pipePair
		rest    = g.Args
	)
	for {
		stage, next := NextStage(rest)
		res := &StageResult{Name: stage.Name()}
		results = append(results, res)

		var cur *pipePair
		if stage.Piped {
			p, err := newPipePair()
			if err != nil {
				prev.Close()
				e.abandon(ctx)
				return nil, Fatal(fmt.Errorf("pipe: %w", err))
			}
			cur = p
		}

		files := []*os.File{e.Stdin, e.Stdout, e.Stderr}
		if prev != nil {
			files[0] = prev.r
		}
		if cur != nil {
			files[1] = cur.w
		}

		proc, err := e.Spawner.Spawn(stage.Args, e.Env, files)
		switch {
		case errors.Is(err, ErrFatal):
			prev.Close()
			cur.Close()
			e.abandon(ctx)
			return nil, err
		case err != nil:
			logger.Debug("stage not started", "stage", stage.Name(), "error", err)
			diag.Report(e.Stderr, err)
			res.ExitCode = 1
		default:
			res.Pid = proc.Pid()
			e.queue = append(e.queue, queued{proc: proc, result: res})
			logger.Debug("stage started", "pid", res.Pid, "argv", stage.Args, "piped", stage.Piped)
		}

		// The child holds its own copies now.
		if err := prev.Close(); err != nil {
			cur.Close()
			e.abandon(ctx)
			return nil, Fatal(fmt.Errorf("close pipe: %w", err))
		}
		prev = cur

		if !stage.Piped {
			break
		}
		rest = next
	}

	e.drain(ctx)

	out := make([]StageResult, len(results))
	for i, r := range results {
		out[i] = *r
	}
	return out, nil
}

// Outstanding returns the number of started processes not yet waited for.
func (e *Engine) Outstanding() int {
	return len(e.queue)
}

// abandon empties the reap queue without waiting.
func (e *Engine) abandon(ctx context.Context) {
	for _, q := range e.queue {
		ctxlog.Debug(ctx, "stage abandoned", "pid", q.proc.Pid())
	}
	e.queue = nil
}

// drain waits for every queued process in spawn order until the queue is
// empty.
func (e *Engine) drain(ctx context.Context) {
	logger := ctxlog.Logger(ctx)
	for len(e.queue) > 0 {
		q := e.queue[0]
		e.queue = e.queue[1:]

		code, err := q.proc.Wait()
		if err != nil {
			logger.Debug("wait failed", "pid", q.proc.Pid(), "error", err)
		}
		q.result.ExitCode = code
		logger.Debug("stage reaped", "pid", q.proc.Pid(), "exit_code", code)
	}
}
