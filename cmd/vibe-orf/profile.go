package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-orf/internal/protein"
)

func newProfileCmd() *cobra.Command {
	var props []string

	cmd := &cobra.Command{
		Use:   "profile <protein>",
		Short: "Print property curves along a protein",
		Long: `Evaluate physicochemical properties over growing prefixes of a protein
given as one-letter amino acid codes starting with M. Each row is one sample;
the last row covers the whole protein.

Properties: mass, charge, pi, extinction, hydrophobicity.`,
		Example: `  vibe-orf profile MKWVTFISLLFLFSSAYS
  vibe-orf profile --property pi --property charge --samples 20 MKKRHDE`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := protein.Parse(strings.ToUpper(args[0]))
			if err != nil {
				return usageError{fmt.Errorf("protein %q: %w", args[0], err)}
			}

			selected := protein.Properties
			if len(props) > 0 {
				selected = nil
				for _, name := range props {
					prop, err := protein.ParseProperty(name)
					if err != nil {
						return usageError{err}
					}
					selected = append(selected, prop)
				}
			}

			n := viper.GetInt(keySamples)
			if n <= 0 {
				return usageError{fmt.Errorf("samples must be positive, got %d", n)}
			}
			return writeProfile(cmd, p, selected, n)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&props, "property", "p", nil, "Property to sample (repeatable; default all)")
	f.Int("samples", protein.DefaultSamples, "Number of samples per property")
	bindFlag(f.Lookup("samples"), keySamples)

	return cmd
}

func writeProfile(cmd *cobra.Command, p *protein.Protein, props []protein.Property, n int) error {
	out := cmd.OutOrStdout()

	header := []string{"#Residues"}
	curves := make([][]float64, len(props))
	verbs := make([]string, len(props))
	for i, prop := range props {
		header = append(header, fmt.Sprintf("%s (%s)", prop.Name(), prop.Unit()))
		curves[i] = p.Sample(prop, n)
		verbs[i] = "%.4f"
		if prop.ShowNegative() {
			verbs[i] = "%+.4f"
		}
	}
	color.New(color.FgCyan).Fprintln(out, strings.Join(header, "\t"))

	row := make([]string, len(props)+1)
	for i := range n {
		row[0] = fmt.Sprint(protein.SampleLength(p.Len(), n, i))
		for j := range props {
			row[j+1] = fmt.Sprintf(verbs[j], curves[j][i])
		}
		if _, err := fmt.Fprintln(out, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
