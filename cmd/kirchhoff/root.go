package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kirchhoff"
	"kirchhoff/internal/logging"
)

type rootOptions struct {
	configPath   string
	variant      string
	problemsPath string
	logLevel     string
	logFormat    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "kirchhoff",
		Short: "Kirchhoff current and equation checker",
		Long: "kirchhoff grades computed branch currents and Kirchhoff equations\n" +
			"for the ten PHY 132 two-loop circuit problem sets.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			if opts.logFormat != "text" && opts.logFormat != "json" {
				return fmt.Errorf("unknown log format %q", opts.logFormat)
			}
			logging.Init(level, opts.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.StringVar(&opts.variant, "variant", string(kirchhoff.DefaultVariant), "feature preset when no config file is given (v1, v2, v3)")
	f.StringVar(&opts.problemsPath, "problems", "", "problem set file (YAML or JSON), overrides the configured path")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")
	cmd.MarkFlagsMutuallyExclusive("config", "variant")

	cmd.AddCommand(
		newServeCmd(opts),
		newCheckCmd(opts),
		newEquationsCmd(opts),
		newKeyCmd(opts),
		newSetsCmd(opts),
	)
	return cmd
}

// configuration resolves the effective configuration from the persistent
// flags.
func (o *rootOptions) configuration() (kirchhoff.Configuration, error) {
	var (
		cfg kirchhoff.Configuration
		err error
	)
	if o.configPath != "" {
		cfg, err = kirchhoff.LoadConfiguration(o.configPath)
	} else {
		cfg, err = kirchhoff.DefaultConfiguration(kirchhoff.Variant(o.variant))
	}
	if err != nil {
		return kirchhoff.Configuration{}, err
	}

	if o.problemsPath != "" {
		cfg.ProblemsPath = o.problemsPath
	}
	return cfg, nil
}

// load returns the configuration together with its problem repository.
func (o *rootOptions) load() (kirchhoff.Configuration, *kirchhoff.Repository, error) {
	cfg, err := o.configuration()
	if err != nil {
		return kirchhoff.Configuration{}, nil, err
	}
	repo, err := cfg.Repository()
	if err != nil {
		return kirchhoff.Configuration{}, nil, fmt.Errorf("load problem sets: %w", err)
	}
	return cfg, repo, nil
}
