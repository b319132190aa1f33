package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List the problem sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, repo, err := opts.load()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SET\tV1\tV2\tR1\tR2\tR3\tDIAGRAM")
			for _, id := range repo.IDs() {
				set, _ := repo.Lookup(id)
				c := set.Circuit
				fmt.Fprintf(tw, "%s\t%g V\t%g V\t%g Ω\t%g Ω\t%g Ω\t%s\n", id, c.V1, c.V2, c.R1, c.R2, c.R3, cfg.DiagramFor(set.ID))
			}
			return tw.Flush()
		},
	}
}
