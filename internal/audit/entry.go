// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package audit

import "time"

// Kind classifies how a command group was dispatched.
type Kind string

const (
	KindBuiltin  Kind = "builtin"
	KindCommand  Kind = "command"
	KindPipeline Kind = "pipeline"
)

// Entry represents a single journal record: one dispatched command group.
type Entry struct {
	Seq       uint64    `json:"seq"`
	Time      time.Time `json:"ts"`
	PrevHash  string    `json:"prev_hash"`
	Group     string    `json:"group"`                // tokens of the group joined by spaces
	Kind      Kind      `json:"kind"`                 // builtin, command or pipeline
	Stages    []string  `json:"stages"`               // command name of each stage
	Pids      []int     `json:"pids,omitempty"`       // 0 for stages that never started
	ExitCodes []int     `json:"exit_codes,omitempty"` // per stage
	Error     string    `json:"error,omitempty"`      // diagnostic, if one was reported
	Duration  float64   `json:"duration_ms"`          // execution time in milliseconds
	Cwd       string    `json:"cwd"`                  // working directory after the group
	Hash      string    `json:"hash"`                 // SHA-256 of this entry (with hash field empty)
}
