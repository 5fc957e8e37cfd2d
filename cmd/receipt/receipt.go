// Package receipt handles the receipt OCR text parsing command
package receipt

import (
	"context"

	"fjacquet/finny-analyzer/cmd/common"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/batch"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/fileutils"
	"fjacquet/finny-analyzer/internal/logging"

	"github.com/spf13/cobra"
)

// Dir is the directory of OCR text files parsed with --dir
var Dir string

// Cmd represents the receipt command
var Cmd = &cobra.Command{
	Use:   "receipt [files...]",
	Short: "Parse receipt OCR text into line items",
	Long: `Parse noisy receipt OCR text into a merchant, a date, a total and
categorized line items. Text is read from --input, from the files given as
arguments, from every .txt file in --dir, or from standard input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, root.SharedFlags, Dir, args, common.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	},
}

func init() {
	Cmd.Flags().StringVar(&Dir, "dir", "", "Directory of .txt OCR files to parse")
}

// Run parses one receipt, or one receipt per file when files or dir are given.
// Item categories are refined by AI when ai.enabled is set.
func Run(ctx context.Context, c *container.Container, flags root.CommonFlags, dir string, files []string, streams common.IO) error {
	if dir != "" {
		found, err := fileutils.ListFilesWithExtension(dir, ".txt")
		if err != nil {
			return err
		}
		files = append(files, found...)
	}

	refiner := c.GetCategoryRefiner()
	if len(files) == 0 {
		text, err := common.ReadText(flags.Input, streams)
		if err != nil {
			return err
		}
		receipt := refiner.Refine(ctx, c.GetReceiptParser().Parse(text))
		return common.WriteResult(c, receipt, flags.Output, streams)
	}

	receipts, err := c.GetBatchProcessor().ParseFiles(ctx, files)
	if err != nil {
		return err
	}
	for i := range receipts {
		receipts[i] = refiner.Refine(ctx, receipts[i])
	}

	c.GetLogger().Info("Parsed receipts",
		logging.Field{Key: logging.FieldCount, Value: len(receipts)},
		logging.Field{Key: "period", Value: batch.ReceiptRange(receipts).String()})
	return common.WriteResult(c, receipts, flags.Output, streams)
}
