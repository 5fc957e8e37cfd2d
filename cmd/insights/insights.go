// Package insights handles the savings insights command
package insights

import (
	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the insights command
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Suggest savings and flag wasteful spending",
	Long: `Group similar expenses, then derive savings recommendations for expensive
or frequent groups and wastage alerts for discretionary spending.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, root.SharedFlags, common.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	},
}

// Run loads expenses, groups them and writes the insight report.
func Run(c *container.Container, flags root.CommonFlags, streams common.IO) error {
	expenses, err := common.LoadExpenses(flags.Input, streams, c.GetLogger())
	if err != nil {
		return err
	}
	result := c.GetGroupingEngine().GroupSimilarExpenses(expenses)
	report := c.GetInsightGenerator().Generate(result)
	c.GetLogger().Info("Generated insights",
		logging.Field{Key: logging.FieldCount, Value: len(report.Insights)},
		logging.Field{Key: "alerts", Value: len(report.Alerts)})
	return common.WriteResult(c, report, flags.Output, streams)
}
