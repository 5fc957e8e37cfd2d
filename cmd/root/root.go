// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/finny-analyzer/internal/config"
	"fjacquet/finny-analyzer/internal/container"
	"fjacquet/finny-analyzer/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	Format     string
	Clustering string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finny",
		Short: "A CLI tool to parse receipt OCR text and analyze expense history.",
		Long: `finny turns noisy receipt OCR text into structured line items and
groups historical expenses into similar spending, top spenders, spending
patterns, recurring payments and savings insights.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finny!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.Warnf("Failed to close container: %v", err)
				}
			}
		},
		SilenceUsage: true,
	}

	// SharedFlags are the flags accessible to all commands
	SharedFlags = CommonFlags{}

	// AppContainer is built once the configuration is loaded
	AppContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (default: stdin)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json, yaml, csv or text")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Clustering, "clustering", "", "Grouping mode: greedy or transitive")
}

func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()
	Log = config.ConfigureLogging()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := ApplyFlags(cfg, SharedFlags); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	logging.SetDefault(c.GetLogger())
	return nil
}

// ApplyFlags overrides configuration values with the command line flags
// that were set.
func ApplyFlags(cfg *config.Config, flags CommonFlags) error {
	if flags.Format != "" {
		if err := config.ValidateOutputFormat(flags.Format); err != nil {
			return err
		}
		cfg.Output.Format = flags.Format
	}
	switch flags.Clustering {
	case "":
	case config.ClusteringGreedy, config.ClusteringTransitive:
		cfg.Grouping.Clustering = flags.Clustering
	default:
		return fmt.Errorf("invalid clustering mode: %s (must be '%s' or '%s')",
			flags.Clustering, config.ClusteringGreedy, config.ClusteringTransitive)
	}
	return nil
}

// GetContainer returns the application container built by the root command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	return AppContainer, nil
}
