// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"errors"
	"os"
)

// Process is a started stage.
type Process interface {
	Pid() int
	// Wait blocks until the process exits and returns its exit code.
	Wait() (int, error)
}

// Spawner starts one stage. files holds the child's stdin, stdout and
// stderr; no other descriptor may reach the child.
//
// A returned error wrapping ErrFatal means the host ran out of a critical
// resource. Any other error means this one command could not be executed.
type Spawner interface {
	Spawn(argv, env []string, files []*os.File) (Process, error)
}

// OSSpawner starts stages as operating system processes.
type OSSpawner struct {
	// ResolvePath looks command names up in the PATH of the env passed to
	// Spawn. When false, argv[0] is used as the program path verbatim.
	ResolvePath bool
}

var _ Spawner = (*OSSpawner)(nil)

func (s *OSSpawner) Spawn(argv, env []string, files []*os.File) (Process, error) {
	if len(argv) == 0 {
		return nil, ExecFailure("", errEmptyStage)
	}

	path := argv[0]
	if s.ResolvePath {
		p, err := lookPath(argv[0], env)
		if err != nil {
			return nil, ExecFailure(argv[0], err)
		}
		path = p
	}

	// Descriptors opened by the runtime are close-on-exec, so the child
	// holds exactly the three files passed here.
	proc, err := os.StartProcess(path, argv, &os.ProcAttr{
		Env:   env,
		Files: files,
	})
	if err != nil {
		if resourceExhausted(err) {
			return nil, Fatal(err)
		}
		return nil, ExecFailure(argv[0], err)
	}
	return &osProcess{proc: proc}, nil
}

type osProcess struct {
	proc *os.Process
}

func (p *osProcess) Pid() int {
	return p.proc.Pid
}

func (p *osProcess) Wait() (int, error) {
	state, err := p.proc.Wait()
	if err != nil {
		return -1, err
	}
	return state.ExitCode(), nil
}

var errEmptyStage = errors.New("empty command")
