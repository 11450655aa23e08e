package cli

import (
	"github.com/spf13/cobra"

	"digital.vasic.chronoassert/pkg/condition"
	"digital.vasic.chronoassert/pkg/report"
)

func (c *command) conditionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conditions",
		Short: "List the supported comparison conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := report.NewTable(cmd.OutOrStdout(),
				[]string{"Condition", "Label", "Passes When"})

			for _, cond := range condition.All() {
				p := condition.MustResolve(cond)
				table.Append([]string{cond.String(), p.Label, rule(cond)})
			}
			table.Render()
			return nil
		},
	}
}

func rule(c condition.Condition) string {
	switch c {
	case condition.MoreThan:
		return "distance > tolerance"
	case condition.AtLeast:
		return "distance >= tolerance"
	case condition.Exactly:
		return "distance == tolerance"
	case condition.Within:
		return "distance <= tolerance"
	case condition.LessThan:
		return "distance < tolerance"
	}
	return ""
}
