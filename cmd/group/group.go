// Package group handles the similar-expense grouping command
package group

import (
	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the group command
var Cmd = &cobra.Command{
	Use:   "group",
	Short: "Group similar expenses",
	Long: `Group similar expenses by description similarity, category and spending
pattern. Use --clustering transitive to merge chains of related expenses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, root.SharedFlags, common.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	},
}

// Run loads expenses and writes the grouping result.
func Run(c *container.Container, flags root.CommonFlags, streams common.IO) error {
	expenses, err := common.LoadExpenses(flags.Input, streams, c.GetLogger())
	if err != nil {
		return err
	}
	result := c.GetGroupingEngine().GroupSimilarExpenses(expenses)
	return common.WriteResult(c, result, flags.Output, streams)
}
