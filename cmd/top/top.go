// Package top handles the top spenders command
package top

import (
	"fmt"

	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/grouping"

	"github.com/spf13/cobra"
)

// Limit is the number of expenses to list; 0 uses the configured limit
var Limit int

// Cmd represents the top command
var Cmd = &cobra.Command{
	Use:   "top",
	Short: "List the largest expenses",
	Long:  `List the largest expenses with their share of total spending.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, root.SharedFlags, Limit, common.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	},
}

func init() {
	Cmd.Flags().IntVarP(&Limit, "limit", "n", 0, "Number of expenses to list (default: grouping.top_limit)")
}

// Run loads expenses and writes the limit largest ones.
func Run(c *container.Container, flags root.CommonFlags, limit int, streams common.IO) error {
	if limit < 0 {
		return fmt.Errorf("invalid limit: %d", limit)
	}
	if limit == 0 {
		limit = c.GetConfig().Grouping.TopLimit
	}
	expenses, err := common.LoadExpenses(flags.Input, streams, c.GetLogger())
	if err != nil {
		return err
	}
	return common.WriteResult(c, grouping.GetTopSpenders(expenses, limit), flags.Output, streams)
}
