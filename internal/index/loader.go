package index

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/protein"
)

var (
	// ErrNotReady is returned by Take and Wait when there is no finished
	// load to hand out.
	ErrNotReady = errors.New("load not ready")
	// ErrLoadInProgress is returned by Start while the previous load is
	// still running.
	ErrLoadInProgress = errors.New("load already in progress")
	// ErrMalformedInput matches every *MalformedInputError.
	ErrMalformedInput = errors.New("malformed nucleotide sequence")
)

// MalformedInputError reports a byte outside the accepted alphabet
// ([AGCUTagcut] and space).
type MalformedInputError struct {
	Position int // byte offset in the source
	Byte     byte
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed nucleotide sequence: unexpected byte %q at position %d", e.Byte, e.Position)
}

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// Loader scans a sequence in all three reading frames concurrently, one
// goroutine per frame, and reports progress while doing so.
//
// Start, IsReady, Progress and Take never block, so a UI can poll them on
// every redraw. A malformed byte anywhere fails the whole load.
type Loader struct {
	mu     sync.Mutex
	cur    *load
	logger *zap.Logger
}

// load is the state shared by the workers of one Start call.
type load struct {
	expected  uint64 // triplets over all frames if the source had no spaces
	progress  [Frames]atomic.Uint64
	done      [Frames]atomic.Bool
	failed    atomic.Bool
	remaining atomic.Int32
	ready     chan struct{}
	readyOnce sync.Once
	logger    *zap.Logger

	mu     sync.Mutex
	result map[Key]*protein.Protein
	err    error // first malformed input, set before failed
}

// NewLoader creates an idle loader.
func NewLoader() *Loader {
	return &Loader{logger: zap.NewNop()}
}

// SetLogger sets the logger for worker diagnostics. It applies to loads
// started afterwards.
func (l *Loader) SetLogger(logger *zap.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = logger
}

// Start begins scanning source in the background. It returns
// ErrLoadInProgress if the previous load has not become ready; once it has,
// a new Start discards it. Workers of a failed load that are still winding
// down never affect the next load.
func (l *Loader) Start(source string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cur != nil && !l.cur.isReady() {
		return ErrLoadInProgress
	}

	logger := l.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ld := &load{
		ready:  make(chan struct{}),
		result: make(map[Key]*protein.Protein),
		logger: logger,
	}
	for offset := range Frames {
		if n := len(source) - offset; n > 0 {
			ld.expected += uint64(n / 3)
		}
	}
	ld.remaining.Store(Frames)
	l.cur = ld

	for offset := range Frames {
		go ld.run(source, offset)
	}
	return nil
}

// IsReady reports whether all three frames finished or any of them hit
// malformed input. In the latter case other frames may still be running.
func (l *Loader) IsReady() bool {
	ld := l.current()
	return ld != nil && ld.isReady()
}

// Progress returns the fraction of the work done, in [0, 1]. It is meant for
// display only.
func (l *Loader) Progress() float64 {
	ld := l.current()
	if ld == nil {
		return 0
	}
	if ld.finished() {
		return 1
	}
	if ld.expected == 0 {
		return 0
	}
	var consumed uint64
	for i := range ld.progress {
		consumed += ld.progress[i].Load()
	}
	return min(float64(consumed)/float64(ld.expected), 1)
}

// FrameProgress returns the triplets consumed so far by each frame.
func (l *Loader) FrameProgress() [Frames]uint64 {
	var out [Frames]uint64
	if ld := l.current(); ld != nil {
		for i := range ld.progress {
			out[i] = ld.progress[i].Load()
		}
	}
	return out
}

// Take hands out the result of a ready load exactly once. It returns
// ErrNotReady before the load is ready and after the result was taken, and a
// *MalformedInputError if the input was rejected.
func (l *Loader) Take() (*Index, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ld := l.cur
	if ld == nil || !ld.isReady() {
		return nil, ErrNotReady
	}
	l.cur = nil

	ld.mu.Lock()
	defer ld.mu.Unlock()
	if ld.failed.Load() {
		return nil, ld.err
	}
	result := ld.result
	ld.result = nil
	return fromMap(result), nil
}

// Wait blocks until the current load is ready or ctx is done. Cancelling ctx
// does not stop the workers.
func (l *Loader) Wait(ctx context.Context) error {
	ld := l.current()
	if ld == nil {
		return ErrNotReady
	}
	select {
	case <-ld.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) current() *load {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cur
}

func (ld *load) isReady() bool {
	return ld.failed.Load() || ld.finished()
}

func (ld *load) finished() bool {
	for i := range ld.done {
		if !ld.done[i].Load() {
			return false
		}
	}
	return true
}

func (ld *load) signal() {
	ld.readyOnce.Do(func() { close(ld.ready) })
}

func (ld *load) fail(err *MalformedInputError) {
	ld.mu.Lock()
	if ld.err == nil {
		ld.err = err
	}
	ld.mu.Unlock()
	ld.failed.Store(true)
	ld.signal()
}

// run scans one frame and merges its proteins into the shared result.
func (ld *load) run(source string, offset int) {
	start := time.Now()

	found, err := scanFrame(source, offset, &ld.progress[offset], &ld.failed)
	if err != nil {
		var bad *MalformedInputError
		if errors.As(err, &bad) {
			ld.logger.Warn("malformed input",
				zap.Int("offset", offset),
				zap.Int("position", bad.Position),
				zap.String("byte", fmt.Sprintf("%q", bad.Byte)))
			ld.fail(bad)
		}
		return
	}

	ld.mu.Lock()
	if ld.result != nil && !ld.failed.Load() {
		for k, p := range found {
			if _, ok := ld.result[k]; !ok {
				ld.result[k] = p
			}
		}
	}
	ld.mu.Unlock()
	ld.done[offset].Store(true)

	ld.logger.Debug("frame scanned",
		zap.Int("offset", offset),
		zap.Uint64("triplets", ld.progress[offset].Load()),
		zap.Int("proteins", len(found)),
		zap.Duration("elapsed", time.Since(start)))

	if ld.remaining.Add(-1) == 0 {
		ld.signal()
	}
}

// Parse scans source in all three frames and returns the resulting index.
func Parse(source string) (*Index, error) {
	return ParseContext(context.Background(), source)
}

// ParseContext is Parse with a deadline on the wait.
func ParseContext(ctx context.Context, source string) (*Index, error) {
	l := NewLoader()
	if err := l.Start(source); err != nil {
		return nil, err
	}
	if err := l.Wait(ctx); err != nil {
		return nil, err
	}
	return l.Take()
}
