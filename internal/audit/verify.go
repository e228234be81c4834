// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Verify reads the journal and checks the hash chain integrity.
// Returns nil if the chain is valid, or an error describing the first violation.
func Verify(fs afero.Fs, path string) error {
	entries, err := readEntries(fs, path)
	if err != nil {
		return err
	}

	expectedPrev := genesisHash()
	var prevSeq uint64

	for i, entry := range entries {
		if entry.Seq != prevSeq+1 {
			return fmt.Errorf("line %d: sequence gap: expected %d, got %d", i+1, prevSeq+1, entry.Seq)
		}
		if entry.PrevHash != expectedPrev {
			return fmt.Errorf("line %d: prev_hash mismatch", i+1)
		}
		if computed := computeHash(entry); entry.Hash != computed {
			return fmt.Errorf("line %d: hash mismatch", i+1)
		}
		expectedPrev = entry.Hash
		prevSeq = entry.Seq
	}

	return nil
}

// ReadAll returns every entry of the journal in order.
func ReadAll(fs afero.Fs, path string) ([]Entry, error) {
	return readEntries(fs, path)
}

func readEntries(fs afero.Fs, path string) ([]Entry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	lines := splitLines(data)
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
