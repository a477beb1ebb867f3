package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	logLevel string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:           "decimate",
		Short:         "downsample time series for plotting",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setLogrus(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "info",
		"set the logging level (can be one of: debug, info, warn, error, or fatal)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

func setLogrus(opts rootOptions) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: opts.noColor,
	})

	return nil
}
