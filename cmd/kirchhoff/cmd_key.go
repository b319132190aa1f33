package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kirchhoff"
)

func newKeyCmd(opts *rootOptions) *cobra.Command {
	var (
		setID       string
		printMatrix bool
	)

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print configured and solved answer keys",
		Long: `Solves every circuit with the LU engine and prints the solution next to
the configured answer. With --print the circuit matrix is dumped before and
after factorization.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, repo, err := opts.load()
			if err != nil {
				return err
			}

			ids := repo.IDs()
			if setID != "" {
				if _, err := repo.Lookup(setID); err != nil {
					return err
				}
				ids = []string{setID}
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SET\tCONFIGURED\tSOLVED\tSOURCE")
			for _, id := range ids {
				set, _ := repo.Lookup(id)

				var solved kirchhoff.Currents
				if printMatrix {
					tw.Flush()
					fmt.Fprintf(out, "\nSet %s\n", id)
					solved, err = kirchhoff.SolveCurrentsVerbose(set.Circuit, out)
				} else {
					solved, err = kirchhoff.SolveCurrents(set.Circuit)
				}
				if err != nil {
					return fmt.Errorf("solve set %s: %w", id, err)
				}

				source := "file"
				if set.AnswerDerived {
					source = "derived"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, formatCurrents(*set.Answer), formatCurrents(solved), source)
			}
			return tw.Flush()
		},
	}

	f := cmd.Flags()
	f.StringVar(&setID, "set", "", "only this problem set")
	f.BoolVar(&printMatrix, "print", false, "print the circuit matrix before and after factorization")
	return cmd
}

func formatCurrents(c kirchhoff.Currents) string {
	return fmt.Sprintf("%.2f / %.2f / %.2f", c[0], c[1], c[2])
}
