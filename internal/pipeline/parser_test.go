// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"slices"
	"strings"
	"testing"
)

func collect(tokens []string) []Group {
	return slices.Collect(Groups(tokens))
}

func TestGroupsSingleCommand(t *testing.T) {
	tokens := []string{"grep", "-r", "TODO", "src/"}
	groups := collect(tokens)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Pipeline {
		t.Error("expected a simple command, got a pipeline")
	}
	if !slices.Equal(groups[0].Args, tokens) {
		t.Errorf("expected args %v, got %v", tokens, groups[0].Args)
	}
}

func TestGroupsSequence(t *testing.T) {
	// echo a ; ls | wc -l ; pwd
	args := []string{"echo", "a", ";", "ls", "|", "wc", "-l", ";", "pwd"}
	groups := collect(args)
	expected := []struct {
		args     string
		pipeline bool
	}{
		{"echo a", false},
		{"ls | wc -l", true},
		{"pwd", false},
	}
	if len(groups) != len(expected) {
		t.Fatalf("expected %d groups, got %d", len(expected), len(groups))
	}
	for i, e := range expected {
		if got := strings.Join(groups[i].Args, " "); got != e.args {
			t.Errorf("group %d: expected %q, got %q", i, e.args, got)
		}
		if groups[i].Pipeline != e.pipeline {
			t.Errorf("group %d: expected pipeline=%v", i, e.pipeline)
		}
	}
}

func TestGroupsSkipEmpty(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"empty", nil, nil},
		{"only separators", []string{";", ";", ";"}, nil},
		{"leading", []string{";", "echo", "hi"}, []string{"echo hi"}},
		{"trailing", []string{"echo", "hi", ";"}, []string{"echo hi"}},
		{"consecutive", []string{"a", ";", ";", "b"}, []string{"a", "b"}},
		{"all of them", []string{";", "a", ";", ";", "b", ";"}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for g := range Groups(tt.tokens) {
				got = append(got, strings.Join(g.Args, " "))
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGroupsDoNotMutateTokens(t *testing.T) {
	tokens := []string{"echo", "a", "|", "cat", ";", "echo", "b"}
	orig := slices.Clone(tokens)
	for g := range Groups(tokens) {
		Stages(g)
	}
	if !slices.Equal(tokens, orig) {
		t.Errorf("token list modified: %v", tokens)
	}
}

func TestGroupViewIsClipped(t *testing.T) {
	tokens := []string{"echo", "a", ";", "echo", "b"}
	g, rest, ok := NextGroup(tokens)
	if !ok {
		t.Fatal("expected a group")
	}
	// Appending to the view must not overwrite the separator or later tokens.
	_ = append(g.Args, "x")
	if tokens[2] != ";" {
		t.Errorf("separator overwritten: %q", tokens[2])
	}
	if !slices.Equal(rest, []string{"echo", "b"}) {
		t.Errorf("unexpected rest %v", rest)
	}
}

func TestNextGroupExhausted(t *testing.T) {
	_, _, ok := NextGroup([]string{";", ";"})
	if ok {
		t.Fatal("expected no group after only separators")
	}
}

func TestStagesSingle(t *testing.T) {
	stages := Stages(Group{Args: []string{"ls", "-l"}})
	if len(stages) != 1 {
		t.Fatalf("expected 1 stage, got %d", len(stages))
	}
	if stages[0].Piped {
		t.Error("single stage must not be piped")
	}
}

func TestStagesPipeline(t *testing.T) {
	// grep -r TODO src/ | sort | uniq -c | head -20
	args := []string{"grep", "-r", "TODO", "src/", "|", "sort", "|", "uniq", "-c", "|", "head", "-20"}
	stages := Stages(Group{Args: args, Pipeline: true})
	expected := []struct {
		name  string
		argc  int
		piped bool
	}{
		{"grep", 4, true},
		{"sort", 1, true},
		{"uniq", 2, true},
		{"head", 2, false},
	}
	if len(stages) != len(expected) {
		t.Fatalf("expected %d stages, got %d", len(expected), len(stages))
	}
	for i, e := range expected {
		if stages[i].Name() != e.name {
			t.Errorf("stage %d: expected %s, got %s", i, e.name, stages[i].Name())
		}
		if len(stages[i].Args) != e.argc {
			t.Errorf("stage %d: expected %d args, got %d", i, e.argc, len(stages[i].Args))
		}
		if stages[i].Piped != e.piped {
			t.Errorf("stage %d: expected piped=%v", i, e.piped)
		}
	}
}

func TestStagesEmptySegments(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
	}{
		{"trailing pipe", []string{"echo", "a", "|"}, []string{"echo", ""}},
		{"leading pipe", []string{"|", "cat"}, []string{"", "cat"}},
		{"double pipe", []string{"a", "|", "|", "b"}, []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, s := range Stages(Group{Args: tt.args, Pipeline: true}) {
				names = append(names, s.Name())
			}
			if !slices.Equal(names, tt.names) {
				t.Errorf("expected %q, got %q", tt.names, names)
			}
		})
	}
}
