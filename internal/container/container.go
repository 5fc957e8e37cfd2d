// Package container provides dependency injection for the finny-analyzer
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/finny-analyzer/internal/aicategory"
	"fjacquet/finny-analyzer/internal/batch"
	"fjacquet/finny-analyzer/internal/config"
	"fjacquet/finny-analyzer/internal/grouping"
	"fjacquet/finny-analyzer/internal/insights"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/receiptparser"
	"fjacquet/finny-analyzer/internal/report"
	"fjacquet/finny-analyzer/internal/smartgroups"
	"fjacquet/finny-analyzer/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     store.Loader
	parser    *receiptparser.Parser
	batch     *batch.Processor
	engine    *grouping.Engine
	grouper   *smartgroups.Grouper
	insights  *insights.Generator
	generator *report.ReportGenerator
	refiner   *aicategory.Refiner
	aiClient  *aicategory.GeminiClient
}

// NewContainer creates and wires all application dependencies from cfg,
// reading the dictionaries through a file-backed store.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	dictStore := store.NewDictionaryStore(cfg.Data.PatternsFile, cfg.Data.MerchantsFile, logger)
	return NewContainerWithLoader(cfg, dictStore, logger)
}

// NewContainerWithLoader wires the dependencies with an explicit dictionary
// loader and logger.
func NewContainerWithLoader(cfg *config.Config, loader store.Loader, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if loader == nil {
		return nil, fmt.Errorf("dictionary loader cannot be nil")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	patterns, err := loader.LoadPatterns()
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern dictionary: %w", err)
	}
	merchants, err := loader.LoadMerchants()
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant catalog: %w", err)
	}

	dict := grouping.NewDictionaryFromConfig(patterns)
	catalog := smartgroups.NewCatalog(merchants.Merchants)

	clusterer := grouping.ClustererByName(cfg.Grouping.Clustering)

	engine := grouping.NewEngine(dict, clusterer, logger)
	currency := cfg.Output.Currency

	// the refiner stays a no-op unless AI is enabled
	var aiClient *aicategory.GeminiClient
	var client aicategory.Client
	if cfg.AI.Enabled {
		aiClient, err = aicategory.NewGeminiClient(context.Background(), config.GetGeminiAPIKey(), cfg.AI.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize AI categorization: %w", err)
		}
		client = aiClient
	}

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldStrategy, Value: clusterer.Name()},
		logging.Field{Key: "patterns", Value: len(dict.Patterns())},
		logging.Field{Key: "merchants", Value: len(catalog.Merchants())})

	parser := receiptparser.NewParser(logger)

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     loader,
		parser:    parser,
		batch:     batch.NewProcessor(parser, logger),
		engine:    engine,
		grouper:   smartgroups.NewGrouper(engine, catalog, currency, logger),
		insights:  insights.NewGenerator(dict, currency, logger),
		generator: report.NewReportGenerator(logger, currency),
		refiner:   aicategory.NewRefiner(client, logger),
		aiClient:  aiClient,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the dictionary loader the container was built from.
func (c *Container) GetStore() store.Loader {
	return c.store
}

// GetReceiptParser returns the receipt parser.
func (c *Container) GetReceiptParser() *receiptparser.Parser {
	return c.parser
}

// GetBatchProcessor returns the concurrent receipt file parser.
func (c *Container) GetBatchProcessor() *batch.Processor {
	return c.batch
}

// GetGroupingEngine returns the expense grouping engine.
func (c *Container) GetGroupingEngine() *grouping.Engine {
	return c.engine
}

// GetSmartGrouper returns the merchant-aware grouper.
func (c *Container) GetSmartGrouper() *smartgroups.Grouper {
	return c.grouper
}

// GetInsightGenerator returns the savings insight generator.
func (c *Container) GetInsightGenerator() *insights.Generator {
	return c.insights
}

// GetReportGenerator returns the output renderer.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// GetCategoryRefiner returns the AI receipt category refiner. It does
// nothing unless ai.enabled is set.
func (c *Container) GetCategoryRefiner() *aicategory.Refiner {
	return c.refiner
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	if c.aiClient != nil {
		if err := c.aiClient.Close(); err != nil {
			return fmt.Errorf("failed to close AI client: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
