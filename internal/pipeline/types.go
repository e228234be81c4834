// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package pipeline

// Separator tokens. Only exact whole-token matches are separators; there is
// no quoting, so any other token is literal.
const (
	OpSequential = ";" // ends a command group
	OpPipe       = "|" // stdout of the left stage → stdin of the right stage
)

// Group is one command group: a view into the token list bounded by
// statement separators or the ends of the list.
type Group struct {
	Args     []string // tokens of the group, separators excluded at the bounds
	Pipeline bool     // true if Args contains a pipe separator
}

// Stage is one command of a group: a view bounded by pipe separators or the
// ends of the group.
type Stage struct {
	Args  []string // argument vector; Args[0] is the command name
	Piped bool     // true if another stage follows
}

// Name returns the command name of the stage, or "" for an empty stage.
func (s Stage) Name() string {
	if len(s.Args) == 0 {
		return ""
	}
	return s.Args[0]
}

// StageResult records how one stage of a group ended.
type StageResult struct {
	Name     string
	Pid      int // 0 if the stage never started
	ExitCode int // -1 if terminated by a signal or the wait failed
}
