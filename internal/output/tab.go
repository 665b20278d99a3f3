// Package output provides protein report formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-orf/internal/protein"
)

// neutralPH is the pH at which the net charge column is evaluated.
const neutralPH = 7.0

// TabWriter writes proteins in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Sequence",
			"Length",
			"Mass_Da",
			"Net_charge_pH7",
			"Isoelectric_point",
			"Extinction",
			"Hydrophobicity",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single protein row.
func (tw *TabWriter) Write(p *protein.Protein) error {
	values := []string{
		p.String(),
		strconv.Itoa(p.Len()),
		formatFloat(p.Mass(), 4),
		formatFloat(p.NetCharge(neutralPH), 4),
		formatFloat(p.IsoelectricPoint(), 2),
		strconv.Itoa(p.Extinction()),
		formatFloat(p.Hydrophobicity(), 2),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
