// Package smart handles the merchant-aware grouping command
package smart

import (
	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the smart command
var Cmd = &cobra.Command{
	Use:   "smart",
	Short: "Group expenses by merchant and similarity",
	Long: `Group expenses sharing a known merchant (Swiggy, Uber, Netflix, ...), then
group the remaining expenses by similarity of their normalized descriptions.
Each group carries frequency, yearly projection and spending insights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, root.SharedFlags, common.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	},
}

// Run loads expenses and writes the smart groups.
func Run(c *container.Container, flags root.CommonFlags, streams common.IO) error {
	expenses, err := common.LoadExpenses(flags.Input, streams, c.GetLogger())
	if err != nil {
		return err
	}
	groups := c.GetSmartGrouper().CreateSmartExpenseGroups(expenses)
	return common.WriteResult(c, groups, flags.Output, streams)
}
