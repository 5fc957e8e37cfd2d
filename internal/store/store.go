// Package store provides functionality for loading and saving the lookup
// dictionaries used by the analyzers.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/validation"

	"gopkg.in/yaml.v3"
)

// Default file names looked up when no explicit path is configured.
const (
	DefaultPatternsFile  = "patterns.yaml"
	DefaultMerchantsFile = "merchants.yaml"
)

// DictionaryStore manages loading and saving of the pattern dictionary and
// the merchant catalog. Missing files are not an error: callers fall back
// to the built-in tables.
type DictionaryStore struct {
	PatternsFile  string
	MerchantsFile string
	logger        logging.Logger
}

// NewDictionaryStore creates a new store for dictionary data
func NewDictionaryStore(patternsFile, merchantsFile string, logger logging.Logger) *DictionaryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &DictionaryStore{
		PatternsFile:  patternsFile,
		MerchantsFile: merchantsFile,
		logger:        logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *DictionaryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".finny", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "finny", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadPatterns loads the pattern dictionary from YAML. An empty config is
// returned when the file does not exist.
func (s *DictionaryStore) LoadPatterns() (models.PatternsConfig, error) {
	var cfg models.PatternsConfig
	found, err := s.load(s.PatternsFile, DefaultPatternsFile, &cfg)
	if err != nil {
		return models.PatternsConfig{}, fmt.Errorf("error loading patterns: %w", err)
	}
	if found {
		s.logger.Debug("Loaded pattern dictionary",
			logging.Field{Key: logging.FieldCount, Value: len(cfg.Patterns)})
	}
	return cfg, nil
}

// LoadMerchants loads the merchant catalog from YAML. An empty config is
// returned when the file does not exist.
func (s *DictionaryStore) LoadMerchants() (models.MerchantsConfig, error) {
	var cfg models.MerchantsConfig
	found, err := s.load(s.MerchantsFile, DefaultMerchantsFile, &cfg)
	if err != nil {
		return models.MerchantsConfig{}, fmt.Errorf("error loading merchants: %w", err)
	}
	if found {
		s.logger.Debug("Loaded merchant catalog",
			logging.Field{Key: logging.FieldCount, Value: len(cfg.Merchants)})
	}
	return cfg, nil
}

// SavePatterns writes the pattern dictionary to YAML.
func (s *DictionaryStore) SavePatterns(cfg models.PatternsConfig) error {
	return s.save(s.PatternsFile, DefaultPatternsFile, cfg)
}

// SaveMerchants writes the merchant catalog to YAML.
func (s *DictionaryStore) SaveMerchants(cfg models.MerchantsConfig) error {
	return s.save(s.MerchantsFile, DefaultMerchantsFile, cfg)
}

func (s *DictionaryStore) load(filename, fallback string, out interface{}) (bool, error) {
	if filename == "" {
		filename = fallback
	}

	filePath, err := s.FindConfigFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("Dictionary file not found, using built-in table",
			logging.Field{Key: logging.FieldInputFile, Value: filename})
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error resolving %s: %w", filename, err)
	}
	if info, err := os.Stat(filePath); err == nil {
		if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
			s.logger.WithError(err).Warn("Dictionary file is accessible to other users",
				logging.Field{Key: logging.FieldInputFile, Value: filePath})
		}
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return false, fmt.Errorf("error reading %s: %w", filePath, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("error parsing %s: %w", filePath, err)
	}
	return true, nil
}

func (s *DictionaryStore) save(filename, fallback string, in interface{}) error {
	if filename == "" {
		filename = fallback
	}

	filePath, err := s.FindConfigFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		filePath = filename
	} else if err != nil {
		return fmt.Errorf("error resolving %s: %w", filename, err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", filename, err)
	}

	if err := os.WriteFile(filePath, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}

	s.logger.Debug("Saved dictionary",
		logging.Field{Key: logging.FieldOutputFile, Value: filePath})
	return nil
}
