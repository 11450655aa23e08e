// Package cli wires the chronoassert commands together.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"digital.vasic.chronoassert/internal/config"
	"digital.vasic.chronoassert/pkg/logging"
)

// errAssertionsFailed signals a completed run with at least one failed
// assertion. The report already describes the failures.
var errAssertionsFailed = errors.New("one or more assertions failed")

type rootOptions struct {
	configPath string
}

type command struct {
	v    *viper.Viper
	opts rootOptions
}

// Execute runs the command line described by args and returns the
// process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(viper.New())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errAssertionsFailed) {
			fmt.Fprintln(stderr, "error:", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	c := &command{v: v}

	root := &cobra.Command{
		Use:           config.ApplicationName,
		Short:         "Evaluate date and time tolerance assertions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.opts.configPath, "config", "c", "",
		"application config file (default ./.chronoassert.yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.Bool("log-structured", false, "emit JSON log lines")
	flags.String("log-file", "", "also append log lines to this file")

	mustBind(v, flags, "log.level", "log-level")
	mustBind(v, flags, "log.structured", "log-structured")
	mustBind(v, flags, "log.file", "log-file")

	root.AddCommand(
		c.checkCmd(),
		c.conditionsCmd(),
		c.serveCmd(),
	)
	return root
}

func mustBind(v *viper.Viper, flags *pflag.FlagSet, key, flag string) {
	if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
		panic(fmt.Sprintf("unable to bind flag %q: %v", flag, err))
	}
}

// setup loads the application config and a logger writing to the
// command's error stream.
func (c *command) setup(cmd *cobra.Command) (*config.Application, logging.Logger, error) {
	app, err := config.Load(c.v, c.opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := app.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create logger: %w", err)
	}

	logger.Debug("config loaded",
		logging.StringField("config", app.ConfigPath),
		logging.StringField("output", app.Output),
	)
	return app, logger, nil
}
