package store

import (
	"fjacquet/finny-analyzer/internal/models"
)

// Loader is the read side of a dictionary store.
type Loader interface {
	LoadPatterns() (models.PatternsConfig, error)
	LoadMerchants() (models.MerchantsConfig, error)
}

var _ Loader = (*DictionaryStore)(nil)

// MockDictionaryStore is an in-memory Loader for tests.
type MockDictionaryStore struct {
	Patterns  models.PatternsConfig
	Merchants models.MerchantsConfig

	// Error flags for testing error conditions
	LoadPatternsError  error
	LoadMerchantsError error
}

// LoadPatterns returns the mock patterns.
func (m *MockDictionaryStore) LoadPatterns() (models.PatternsConfig, error) {
	if m.LoadPatternsError != nil {
		return models.PatternsConfig{}, m.LoadPatternsError
	}
	return m.Patterns, nil
}

// LoadMerchants returns the mock merchants.
func (m *MockDictionaryStore) LoadMerchants() (models.MerchantsConfig, error) {
	if m.LoadMerchantsError != nil {
		return models.MerchantsConfig{}, m.LoadMerchantsError
	}
	return m.Merchants, nil
}
