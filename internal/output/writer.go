package output

import (
	"fmt"
	"io"
	"slices"

	"github.com/inodb/vibe-orf/internal/index"
	"github.com/inodb/vibe-orf/internal/protein"
)

// ProteinWriter is implemented by every report format.
type ProteinWriter interface {
	WriteHeader() error
	Write(p *protein.Protein) error
	Flush() error
}

// Formats lists the names accepted by NewWriter.
var Formats = []string{"tab", "fasta"}

// NewWriter returns the writer for the named format.
func NewWriter(format string, w io.Writer) (ProteinWriter, error) {
	switch format {
	case "tab", "":
		return NewTabWriter(w), nil
	case "fasta":
		return NewFASTAWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected one of %v)", format, Formats)
	}
}

// WriteIndex writes every protein of ix in key order and flushes.
func WriteIndex(w ProteinWriter, ix *index.Index) error {
	return WriteKeys(w, ix, slices.Collect(ix.Keys()))
}

// WriteKeys writes the proteins stored under keys, in the given order, and
// flushes. Keys missing from ix are skipped.
func WriteKeys(w ProteinWriter, ix *index.Index, keys []index.Key) error {
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, k := range keys {
		p, ok := ix.Get(k)
		if !ok {
			continue
		}
		if err := w.Write(p); err != nil {
			return fmt.Errorf("write protein %s: %w", k, err)
		}
	}
	return w.Flush()
}
