// Package recurring handles the recurring payment detection command
package recurring

import (
	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/smartgroups"

	"github.com/spf13/cobra"
)

// Cmd represents the recurring command
var Cmd = &cobra.Command{
	Use:   "recurring",
	Short: "Detect likely subscriptions",
	Long: `Detect likely subscriptions: amounts that repeat at least three times
(rounded to the nearest 100) under at most two distinct descriptions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, root.SharedFlags, common.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	},
}

// Run loads expenses and writes the detected recurring payments.
func Run(c *container.Container, flags root.CommonFlags, streams common.IO) error {
	expenses, err := common.LoadExpenses(flags.Input, streams, c.GetLogger())
	if err != nil {
		return err
	}
	payments := smartgroups.DetectRecurringPayments(expenses)
	c.GetLogger().Debug("Detected recurring payments",
		logging.Field{Key: logging.FieldCount, Value: len(payments)})
	return common.WriteResult(c, payments, flags.Output, streams)
}
