// Package patterns handles the spending pattern summary command
package patterns

import (
	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the patterns command
var Cmd = &cobra.Command{
	Use:   "patterns",
	Short: "Summarize spending by pattern",
	Long: `Summarize spending per pattern dictionary category (transportation, food,
shopping, entertainment, utilities, healthcare). An expense counts under every
pattern its description matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, root.SharedFlags, common.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	},
}

// Run loads expenses and writes one summary per matched pattern.
func Run(c *container.Container, flags root.CommonFlags, streams common.IO) error {
	expenses, err := common.LoadExpenses(flags.Input, streams, c.GetLogger())
	if err != nil {
		return err
	}
	summaries := c.GetGroupingEngine().Dictionary().AnalyzeSpendingPatterns(expenses)
	return common.WriteResult(c, summaries, flags.Output, streams)
}
