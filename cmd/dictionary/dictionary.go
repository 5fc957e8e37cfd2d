// Package dictionary handles exporting the built-in lookup tables
package dictionary

import (
	"fmt"
	"path/filepath"

	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/fileutils"
	"fjacquet/finny-analyzer/internal/grouping"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/smartgroups"
	"fjacquet/finny-analyzer/internal/store"

	"github.com/spf13/cobra"
)

// Options holds the export command flags
type Options struct {
	Dir   string
	Force bool
}

var opts Options

// Cmd represents the dictionary command
var Cmd = &cobra.Command{
	Use:   "dictionary",
	Short: "Export the built-in pattern dictionary and merchant catalog",
	Long: `Write the built-in pattern dictionary and merchant catalog as
patterns.yaml and merchants.yaml. Edit the files and point data.patterns_file
and data.merchants_file at them to customize grouping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, opts)
	},
}

func init() {
	Cmd.Flags().StringVar(&opts.Dir, "dir", ".", "Directory to write the YAML files to")
	Cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing files")
}

// Run writes both built-in tables to opts.Dir.
func Run(c *container.Container, opts Options) error {
	patternsFile := filepath.Join(opts.Dir, store.DefaultPatternsFile)
	merchantsFile := filepath.Join(opts.Dir, store.DefaultMerchantsFile)

	if !opts.Force {
		for _, f := range []string{patternsFile, merchantsFile} {
			if fileutils.FileExists(f) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", f)
			}
		}
	}

	s := store.NewDictionaryStore(patternsFile, merchantsFile, c.GetLogger())
	if err := s.SavePatterns(grouping.DefaultDictionary().Config()); err != nil {
		return err
	}
	if err := s.SaveMerchants(smartgroups.DefaultMerchantsConfig()); err != nil {
		return err
	}

	c.GetLogger().Info("Exported dictionaries",
		logging.Field{Key: logging.FieldOutputFile, Value: opts.Dir})
	return nil
}
