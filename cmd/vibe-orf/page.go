package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/inodb/vibe-orf/internal/index"
)

// pageFlags selects a window of the size-ordered protein list.
type pageFlags struct {
	offset int
	limit  int
}

func (p *pageFlags) register(f *pflag.FlagSet) {
	f.IntVar(&p.offset, "offset", 0, "Skip this many proteins (in length order)")
	f.IntVar(&p.limit, "limit", 0, "Report at most this many proteins (0: no limit)")
}

func (p pageFlags) validate() error {
	if p.offset < 0 {
		return usageError{fmt.Errorf("--offset must not be negative, got %d", p.offset)}
	}
	if p.limit < 0 {
		return usageError{fmt.Errorf("--limit must not be negative, got %d", p.limit)}
	}
	return nil
}

// keys returns the requested page of proteins whose length lies in
// [minLen, maxLen].
func (p pageFlags) keys(ix *index.Index, minLen, maxLen int) []index.Key {
	return ix.PageLengthRange(minLen, maxLen, p.offset, p.limit)
}
