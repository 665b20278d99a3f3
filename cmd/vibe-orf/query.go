package main

import (
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inodb/vibe-orf/internal/duckdb"
	"github.com/inodb/vibe-orf/internal/index"
	"github.com/inodb/vibe-orf/internal/output"
)

func openStore() (*duckdb.Store, error) {
	dbPath := viper.GetString(keyDBPath)
	if dbPath == "" {
		return nil, usageError{fmt.Errorf("no database configured; pass --db or set %s", keyDBPath)}
	}
	return duckdb.Open(dbPath)
}

func newQueryCmd() *cobra.Command {
	var (
		minLength int
		maxLength int
		sequence  string
		format    string
		page      pageFlags
	)

	cmd := &cobra.Command{
		Use:   "query <run-id>",
		Short: "List the proteins of a stored run",
		Example: `  vibe-orf query --db orfs.duckdb 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
  vibe-orf query --db orfs.duckdb <run-id> --min-length 50 --max-length 200
  vibe-orf query --db orfs.duckdb <run-id> --sequence MKWVTF
  vibe-orf query --db orfs.duckdb <run-id> --offset 100 --limit 20`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := page.validate(); err != nil {
				return err
			}
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ix, err := store.LoadIndex(args[0])
			if err != nil {
				return err
			}

			var keys []index.Key
			if sequence != "" {
				if _, ok := ix.GetByString(sequence); !ok {
					return fmt.Errorf("protein %s in run %s: %w", sequence, args[0], duckdb.ErrNotFound)
				}
				keys = []index.Key{index.Key(sequence)}
			} else {
				keys = page.keys(ix, minLength, maxLength)
			}

			writer, err := output.NewWriter(format, cmd.OutOrStdout())
			if err != nil {
				return usageError{err}
			}
			return output.WriteKeys(writer, ix, keys)
		},
	}

	f := cmd.Flags()
	f.IntVar(&minLength, "min-length", 0, "Minimum protein length")
	f.IntVar(&maxLength, "max-length", math.MaxInt, "Maximum protein length")
	f.StringVar(&sequence, "sequence", "", "Show only this protein (one-letter codes)")
	f.StringVarP(&format, "format", "f", "tab", "Output format: tab, fasta")
	page.register(f)

	return cmd
}

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored scan runs",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No runs stored.")
				return nil
			}

			p := message.NewPrinter(language.English)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			bold := color.New(color.Bold)
			bold.Fprintln(tw, "RUN ID\tCREATED\tPROTEINS\tSOURCE")
			for _, r := range runs {
				p.Fprintf(tw, "%s\t%s\t%d\t%s\n",
					r.ID, r.CreatedAt.Local().Format(time.DateTime), r.ProteinCount, r.Source)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <run-id>",
		Short: "Delete a stored run",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteRun(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Deleted run %s\n", args[0])
			return nil
		},
	})

	return cmd
}
