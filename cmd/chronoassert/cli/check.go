package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"digital.vasic.chronoassert/pkg/assertion"
	"digital.vasic.chronoassert/pkg/report"
)

func (c *command) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE|DIR...",
		Short: "Evaluate assertion banks and report the results",
		Long: `Evaluate every assertion in the given YAML or JSON banks.
Directories are scanned for *.yaml, *.yml and *.json files.
The command exits non-zero when any assertion fails or a bank is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runCheck,
	}

	cmd.Flags().StringP("output", "o", string(report.FormatTable),
		fmt.Sprintf("report output format, options=%v", report.Formats))
	mustBind(c.v, cmd.Flags(), "output", "output")

	return cmd
}

func (c *command) runCheck(cmd *cobra.Command, args []string) error {
	app, logger, err := c.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	reporter, err := report.New(app.Output)
	if err != nil {
		return err
	}

	defs, err := loadAll(args)
	if err != nil {
		return err
	}

	engine := assertion.NewEngine(assertion.WithLogger(logger))
	results := engine.EvaluateAll(defs)

	if err := reporter.Write(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	if !assertion.AllPassed(results) {
		return errAssertionsFailed
	}
	return nil
}

func loadAll(paths []string) ([]assertion.Definition, error) {
	var defs []assertion.Definition
	for _, path := range paths {
		loaded, err := assertion.Load(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, loaded...)
	}
	if err := assertion.ValidateAll(defs); err != nil {
		return nil, err
	}
	return defs, nil
}
