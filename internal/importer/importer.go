// Package importer reads raw sequence text from files or stdin and prepares
// it for the ORF loader.
package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/pgzip"
	"github.com/pbnjay/memory"
)

// ErrTooLarge is returned when an input would not fit comfortably in memory.
var ErrTooLarge = errors.New("input too large")

// Options control preprocessing of the raw text.
type Options struct {
	// Separator is removed wherever it occurs in the filtered text.
	Separator string
	// StripInvalid drops every byte outside [AGCUTagcut].
	StripInvalid bool
	// HeaderLines is the number of leading lines to skip.
	HeaderLines int
}

// Open returns a reader for path, or stdin for "-". Gzip input is
// detected by its magic number and decompressed.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return NewReader(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sequence file: %w", err)
	}
	s, err := newSource(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.closers = append(s.closers, f)
	return s, nil
}

// NewReader wraps r, transparently decompressing gzip data. Closing the
// result does not close r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	return newSource(r)
}

func newSource(r io.Reader) (*source, error) {
	br := bufio.NewReader(r)
	s := &source{Reader: br}

	// Check for gzip magic number (0x1f, 0x8b)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read sequence header: %w", err)
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		// using parallel pgzip for better performance on large files
		zr, err := pgzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		s.Reader = zr
		s.closers = append(s.closers, zr)
	}
	return s, nil
}

type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// CheckSize fails with ErrTooLarge if size bytes exceed half of the system
// memory. The loader keeps the whole sequence plus its proteins resident.
// Unknown sizes (negative) and unknown memory always pass.
func CheckSize(size int64) error {
	total := memory.TotalMemory()
	if size < 0 || total == 0 {
		return nil
	}
	if uint64(size) > total/2 {
		return fmt.Errorf("%w: %d bytes, %d bytes of memory", ErrTooLarge, size, total)
	}
	return nil
}

// Load reads and preprocesses the sequence stored at path ("-" for stdin).
func Load(path string, opts Options) (string, error) {
	if path != "-" {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("stat sequence file: %w", err)
		}
		if err := CheckSize(info.Size()); err != nil {
			return "", err
		}
	}

	r, err := Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	return Preprocess(r, opts)
}

// Preprocess skips header lines, optionally filters out bytes that are not
// nucleotides and removes every occurrence of the separator.
func Preprocess(r io.Reader, opts Options) (string, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	for range opts.HeaderLines {
		if _, err := br.ReadSlice('\n'); err != nil {
			if err == io.EOF {
				return "", nil
			}
			if err != bufio.ErrBufferFull {
				return "", fmt.Errorf("skip header: %w", err)
			}
			// Line longer than the buffer: keep discarding until its end.
			if err := discardLine(br); err != nil {
				if err == io.EOF {
					return "", nil
				}
				return "", fmt.Errorf("skip header: %w", err)
			}
		}
	}

	sep := []byte(opts.Separator)
	var out []byte
	buf := make([]byte, 4096)
	for {
		n, err := br.Read(buf)
		for _, b := range buf[:n] {
			if opts.StripInvalid && !isNucleotide(b) {
				continue
			}
			out = append(out, b)
			if len(sep) > 0 && len(out) >= len(sep) && string(out[len(out)-len(sep):]) == opts.Separator {
				out = out[:len(out)-len(sep)]
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read sequence: %w", err)
		}
	}
	return string(out), nil
}

func discardLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}

func isNucleotide(b byte) bool {
	switch b {
	case 'A', 'G', 'C', 'U', 'T', 'a', 'g', 'c', 'u', 't':
		return true
	default:
		return false
	}
}
