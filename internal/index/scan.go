package index

import (
	"errors"
	"sync/atomic"

	"github.com/inodb/vibe-orf/internal/protein"
	"github.com/inodb/vibe-orf/internal/rna"
)

// Frames is the number of reading frame offsets scanned per load.
const Frames = 3

// abortCheckInterval is how many triplets a frame scan consumes between
// checks of the shared failure flag.
const abortCheckInterval = 4096

// errAborted stops a frame scan after another frame reported bad input.
var errAborted = errors.New("scan aborted")

// orfMachine turns a stream of codons from one reading frame into proteins.
//
// Outside a frame a start codon opens one. Inside, a stop codon closes it and
// emits the accumulated residues; every other codon, including a further
// start codon, is appended. A frame still open when the stream ends is
// dropped.
type orfMachine struct {
	inside bool
	acc    *protein.AminoString
	found  map[Key]*protein.Protein
}

func newORFMachine() *orfMachine {
	return &orfMachine{
		acc:   &protein.AminoString{},
		found: make(map[Key]*protein.Protein),
	}
}

func (m *orfMachine) feed(c rna.Codon) {
	switch {
	case !m.inside:
		if c.IsStart() {
			m.acc.Push(c)
			m.inside = true
		}
	case c.IsStop():
		if !m.acc.IsEmpty() {
			m.emit()
		}
		m.inside = false
	default:
		m.acc.Push(c)
	}
}

// emit stores the accumulator as a protein unless an equal one is already
// stored, and resets it.
func (m *orfMachine) emit() {
	key := Key(m.acc.String())
	if _, ok := m.found[key]; ok {
		m.acc.Clear()
		return
	}
	p, err := protein.FromAminoString(m.acc)
	m.acc = &protein.AminoString{}
	if err != nil {
		// Unreachable: frames open on a start codon and never take a stop.
		return
	}
	m.found[key] = p
}

// scanFrame translates source at the given frame offset and returns the
// proteins found. Spaces are skipped; any other byte outside the nucleotide
// alphabet aborts the scan with a *MalformedInputError. The trailing partial
// triplet, if any, is ignored. progress is incremented once per triplet.
func scanFrame(source string, offset int, progress *atomic.Uint64, failed *atomic.Bool) (map[Key]*protein.Protein, error) {
	m := newORFMachine()

	var (
		triplet  [3]rna.Nucleotide
		filled   int
		bases    int
		triplets uint64
	)

	for i := 0; i < len(source); i++ {
		b := source[i]
		if b == ' ' {
			continue
		}
		n, ok := rna.ParseNucleotide(b)
		if !ok {
			return nil, &MalformedInputError{Position: i, Byte: b}
		}
		bases++
		if bases <= offset {
			continue
		}

		triplet[filled] = n
		filled++
		if filled < 3 {
			continue
		}
		filled = 0

		m.feed(rna.Translate(triplet[0], triplet[1], triplet[2]))
		progress.Add(1)
		triplets++
		if triplets%abortCheckInterval == 0 && failed.Load() {
			return nil, errAborted
		}
	}

	return m.found, nil
}
