package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kirchhoff"
)

const maxEquations = 4

func newEquationsCmd(opts *rootOptions) *cobra.Command {
	var (
		setID string
		rows  []string
	)

	cmd := &cobra.Command{
		Use:   "equations --set=<id> --eq=A,B,C,D [--eq=A,B,C,D ...]",
		Short: "Check Kirchhoff equations written as A*I1 + B*I2 + C*I3 + D = 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, repo, err := opts.load()
			if err != nil {
				return err
			}

			if len(rows) > maxEquations {
				return fmt.Errorf("at most %d equations, got %d", maxEquations, len(rows))
			}

			eqs := make([]kirchhoff.Equation, 0, len(rows))
			for i, row := range rows {
				eq, err := parseEquation(row)
				if err != nil {
					return fmt.Errorf("equation %d: %w", i+1, err)
				}
				eqs = append(eqs, eq)
			}

			report, err := kirchhoff.NewEquationValidator(repo, cfg).Validate(setID, eqs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range report.Messages() {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&setID, "set", "", "problem set number (required)")
	f.StringArrayVar(&rows, "eq", nil, "equation coefficients A,B,C,D (repeatable, at most 4)")
	_ = cmd.MarkFlagRequired("set")
	_ = cmd.MarkFlagRequired("eq")
	return cmd
}

// parseEquation reads "A,B,C,D".
func parseEquation(s string) (kirchhoff.Equation, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return kirchhoff.Equation{}, fmt.Errorf("want 4 comma-separated coefficients, got %d", len(fields))
	}

	var eq kirchhoff.Equation
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return kirchhoff.Equation{}, fmt.Errorf("coefficient %d: %q is not a number", i+1, field)
		}
		eq[i] = v
	}
	return eq, nil
}
