package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/inodb/vibe-orf/internal/protein"
)

// FASTALineWidth is the number of residues per sequence line.
const FASTALineWidth = 60

// FASTAWriter writes proteins as FASTA records named orf_1, orf_2, ...
type FASTAWriter struct {
	w     *bufio.Writer
	count int
}

// NewFASTAWriter creates a new FASTA writer.
func NewFASTAWriter(w io.Writer) *FASTAWriter {
	return &FASTAWriter{w: bufio.NewWriter(w)}
}

// WriteHeader is a no-op; FASTA has no file header.
func (fw *FASTAWriter) WriteHeader() error { return nil }

// Write writes one record.
func (fw *FASTAWriter) Write(p *protein.Protein) error {
	fw.count++
	if _, err := fmt.Fprintf(fw.w, ">orf_%d length=%d mass=%s\n", fw.count, p.Len(), formatFloat(p.Mass(), 4)); err != nil {
		return err
	}

	seq := p.String()
	for len(seq) > FASTALineWidth {
		if _, err := fw.w.WriteString(seq[:FASTALineWidth] + "\n"); err != nil {
			return err
		}
		seq = seq[FASTALineWidth:]
	}
	_, err := fw.w.WriteString(seq + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (fw *FASTAWriter) Flush() error {
	return fw.w.Flush()
}
