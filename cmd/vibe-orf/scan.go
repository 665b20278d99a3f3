package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inodb/vibe-orf/internal/duckdb"
	"github.com/inodb/vibe-orf/internal/importer"
	"github.com/inodb/vibe-orf/internal/index"
	"github.com/inodb/vibe-orf/internal/output"
)

// progressInterval is how often the progress line is redrawn.
const progressInterval = 100 * time.Millisecond

func newScanCmd(a *app) *cobra.Command {
	var (
		outputFile string
		minLength  int
		page       pageFlags
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "scan [file|-]",
		Short: "Find every open reading frame in a sequence",
		Long: `Scan an RNA or DNA sequence in all three reading frames and report every
distinct protein that starts with AUG and ends at a stop codon.

The input is read from a file or from stdin when no file or '-' is given.
Gzip input is recognised by its magic number, whatever the file name.
Spaces are ignored; any other byte that is not a nucleotide is an error
unless --strip-invalid is set.`,
		Example: `  vibe-orf scan sequence.txt
  vibe-orf scan -f fasta -o orfs.fa --min-length 100 genome.txt.gz
  vibe-orf scan --offset 50 --limit 25 sequence.txt
  zcat reads.txt.gz | vibe-orf scan --strip-invalid -`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return a.runScan(cmd, path, outputFile, minLength, page, !quiet)
		},
	}

	f := cmd.Flags()
	f.StringP("format", "f", "tab", "Output format: tab, fasta")
	f.StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	f.IntVar(&minLength, "min-length", 0, "Only report proteins with at least this many residues")
	f.String("separator", "", "Remove every occurrence of this string from the input")
	f.Bool("strip-invalid", false, "Drop every byte that is not a nucleotide")
	f.Int("header-lines", 0, "Number of leading lines to skip")
	f.BoolVarP(&quiet, "quiet", "q", false, "Do not print progress")
	page.register(f)

	bindFlag(f.Lookup("format"), keyFormat)
	bindFlag(f.Lookup("separator"), keySeparator)
	bindFlag(f.Lookup("strip-invalid"), keyStripInvalid)
	bindFlag(f.Lookup("header-lines"), keyHeaderLines)

	return cmd
}

func (a *app) runScan(cmd *cobra.Command, path, outputFile string, minLength int, page pageFlags, showProgress bool) error {
	stderr := cmd.ErrOrStderr()
	p := message.NewPrinter(language.English)

	// Reject bad options before scanning or touching the output file.
	format := viper.GetString(keyFormat)
	if _, err := output.NewWriter(format, io.Discard); err != nil {
		return usageError{err}
	}
	if err := page.validate(); err != nil {
		return err
	}

	opts := importOptions()
	start := time.Now()
	source, err := importer.Load(path, opts)
	if err != nil {
		return err
	}
	a.logger.Info("sequence loaded",
		zap.String("path", path),
		zap.Int("bytes", len(source)),
		zap.Duration("elapsed", time.Since(start)))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	loader := index.NewLoader()
	loader.SetLogger(a.logger)
	if err := loader.Start(source); err != nil {
		return err
	}
	if err := waitWithProgress(ctx, loader, stderr, showProgress); err != nil {
		return err
	}

	ix, err := loader.Take()
	if err != nil {
		var bad *index.MalformedInputError
		if errors.As(err, &bad) {
			return fmt.Errorf("invalid character %q at position %d; use --strip-invalid to drop non-nucleotide bytes", bad.Byte, bad.Position)
		}
		return err
	}

	keys := page.keys(ix, minLength, math.MaxInt)

	out := cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writer, err := output.NewWriter(format, out)
	if err != nil {
		return usageError{err}
	}
	if err := output.WriteKeys(writer, ix, keys); err != nil {
		return err
	}

	p.Fprintf(stderr, "Found %d distinct proteins (%d reported) in %d bytes in %v\n",
		ix.Len(), len(keys), len(source), time.Since(start).Round(time.Millisecond))

	if dbPath := viper.GetString(keyDBPath); dbPath != "" {
		runID, err := storeRun(dbPath, path, ix)
		if err != nil {
			return err
		}
		a.logger.Info("run stored", zap.String("db", dbPath), zap.String("run_id", runID))
		fmt.Fprint(stderr, "Stored run ")
		color.New(color.FgGreen).Fprintln(stderr, runID)
	}
	return nil
}

// waitWithProgress blocks until the loader is ready, redrawing a progress
// line on stderr while the frames are scanned.
func waitWithProgress(ctx context.Context, loader *index.Loader, w io.Writer, show bool) error {
	done := make(chan error, 1)
	go func() { done <- loader.Wait(ctx) }()

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			if show {
				fmt.Fprintf(w, "\rScanning %5.1f%%\n", loader.Progress()*100)
			}
			return err
		case <-ticker.C:
			if show {
				fmt.Fprintf(w, "\rScanning %5.1f%%", loader.Progress()*100)
			}
		}
	}
}

func storeRun(dbPath, sourcePath string, ix *index.Index) (string, error) {
	store, err := duckdb.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	fp, err := duckdb.StatFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("stat source: %w", err)
	}
	return store.CreateRun(fp, ix)
}
