// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package pipeline

import "iter"

// NextGroup finds the first command group in tokens. Leading statement
// separators are skipped; ok is false when nothing but separators remains.
// rest holds the tokens after the group's terminating separator.
//
// The group is a view into tokens with its capacity clipped, so neither the
// caller nor the engine can write past the group into the rest of the list.
func NextGroup(tokens []string) (g Group, rest []string, ok bool) {
	i := 0
	for i < len(tokens) && tokens[i] == OpSequential {
		i++
	}
	if i == len(tokens) {
		return Group{}, nil, false
	}

	j := i
	for j < len(tokens) && tokens[j] != OpSequential {
		if tokens[j] == OpPipe {
			g.Pipeline = true
		}
		j++
	}
	g.Args = tokens[i:j:j]
	if j < len(tokens) {
		rest = tokens[j+1:]
	}
	return g, rest, true
}

// Groups yields the command groups of tokens in order. Empty groups
// (consecutive, leading or trailing separators) are never yielded.
func Groups(tokens []string) iter.Seq[Group] {
	return func(yield func(Group) bool) {
		rest := tokens
		for {
			g, next, ok := NextGroup(rest)
			if !ok || !yield(g) {
				return
			}
			rest = next
		}
	}
}

// NextStage splits the first stage off a group's arguments. When the stage
// is followed by a pipe separator, Piped is set and rest holds the
// remaining stages (possibly empty, for a trailing pipe).
func NextStage(args []string) (s Stage, rest []string) {
	for j, arg := range args {
		if arg == OpPipe {
			return Stage{Args: args[:j:j], Piped: true}, args[j+1:]
		}
	}
	return Stage{Args: args[:len(args):len(args)]}, nil
}

// Stages returns every stage of g. A group without pipe separators has
// exactly one stage.
func Stages(g Group) []Stage {
	var stages []Stage
	rest := g.Args
	for {
		s, next := NextStage(rest)
		stages = append(stages, s)
		if !s.Piped {
			return stages
		}
		rest = next
	}
}
