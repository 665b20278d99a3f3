// Package main provides the vibe-orf command-line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries state shared by every command of one invocation.
type app struct {
	cfgFile string
	verbose bool
	logger  *zap.Logger
}

// usageError marks errors caused by bad arguments or flags.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// usageArgs wraps a cobra argument validator so its failures exit with
// ExitUsage.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{logger: zap.NewNop()}
	defer func() { _ = a.logger.Sync() }()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		red := color.New(color.FgRed, color.Bold)
		red.Fprint(stderr, "Error: ")
		fmt.Fprintln(stderr, err)

		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
			return ExitUsage
		}
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "vibe-orf",
		Short: "vibe-orf - Open Reading Frame finder",
		Long: `vibe-orf scans RNA (or DNA) sequences in all three reading frames,
collects every distinct protein between a start and a stop codon, and reports
their physicochemical properties.`,
		Example: `  # Scan a sequence file and print a property table
  vibe-orf scan sequence.txt

  # Skip a FASTA header, drop line breaks and write FASTA
  vibe-orf scan --header-lines 1 --strip-invalid -f fasta genome.fa.gz

  # Store the result and query it later
  vibe-orf scan --db orfs.duckdb sequence.txt
  vibe-orf query --db orfs.duckdb <run-id> --min-length 50

  # Plot property curves of a single protein
  vibe-orf profile MKWVTFISLLFLFSSAYS`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return usageError{errors.New("command required")}
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(a.cfgFile); err != nil {
				return err
			}
			logger, err := newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config file (default: ~/.vibe-orf.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.String("db", "", "DuckDB database for storing and querying runs")
	bindFlag(pf.Lookup("db"), "db.path")

	root.AddCommand(newScanCmd(a))
	root.AddCommand(newQueryCmd())
	root.AddCommand(newRunsCmd())
	root.AddCommand(newProfileCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd(a))

	return root
}
