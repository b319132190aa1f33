package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kirchhoff"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var setID string

	cmd := &cobra.Command{
		Use:   "check --set=<id> <I1> <I2> <I3>",
		Short: "Grade three computed currents (mA) against the answer key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repo, err := opts.load()
			if err != nil {
				return err
			}

			var currents kirchhoff.Currents
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("I%d: %q is not a number", i+1, arg)
				}
				currents[i] = v
			}

			verdict, err := kirchhoff.NewChecker(repo, cfg).Check(setID, currents)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), kirchhoff.InvalidSetMessage)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), verdict.Message())
			return nil
		},
	}

	cmd.Flags().StringVar(&setID, "set", "", "problem set number (required)")
	_ = cmd.MarkFlagRequired("set")
	return cmd
}
