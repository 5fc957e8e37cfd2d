package aicategory

import (
	"context"
	"errors"
	"testing"

	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Categorize(ctx context.Context, item string, categories []string) (string, error) {
	args := m.Called(ctx, item, categories)
	return args.String(0), args.Error(1)
}

func receipt() models.ParsedReceipt {
	return models.ParsedReceipt{
		Merchant: "Corner Shop",
		Total:    "14.48",
		Items: []models.ReceiptItem{
			{Name: "Kombucha", Amount: "4.99", Category: models.CategoryShopping},
			{Name: "Milk", Amount: "3.49", Category: models.CategoryGroceries},
			{Name: "Mystery box", Amount: "6.00", Category: models.CategoryShopping},
		},
	}
}

func TestRefine(t *testing.T) {
	client := new(MockClient)
	client.On("Categorize", mock.Anything, "Kombucha", Categories).Return("groceries", nil)
	client.On("Categorize", mock.Anything, "Mystery box", Categories).Return("Toys", nil)
	logger := logging.NewMockLogger()

	original := receipt()
	refined := NewRefiner(client, logger).Refine(context.Background(), original)

	require.Len(t, refined.Items, 3)
	assert.Equal(t, models.CategoryGroceries, refined.Items[0].Category)
	assert.Equal(t, models.CategoryGroceries, refined.Items[1].Category)
	assert.Equal(t, models.CategoryShopping, refined.Items[2].Category)
	assert.Equal(t, models.CategoryShopping, original.Items[0].Category, "input is not modified")

	client.AssertNumberOfCalls(t, "Categorize", 2)
	assert.True(t, logger.HasEntry("DEBUG", "AI returned unknown category"))
}

func TestRefine_ClientError(t *testing.T) {
	client := new(MockClient)
	client.On("Categorize", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))
	logger := logging.NewMockLogger()

	refined := NewRefiner(client, logger).Refine(context.Background(), receipt())

	assert.Equal(t, receipt(), refined)
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 2)
}

func TestRefine_NilClient(t *testing.T) {
	assert.Equal(t, receipt(), NewRefiner(nil, logging.NewMockLogger()).Refine(context.Background(), receipt()))
}

func TestRefine_CancelledContext(t *testing.T) {
	client := new(MockClient)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger := logging.NewMockLogger()

	refined := NewRefiner(client, logger).Refine(ctx, receipt())

	assert.Equal(t, receipt(), refined)
	client.AssertNotCalled(t, "Categorize", mock.Anything, mock.Anything, mock.Anything)
	assert.True(t, logger.HasEntry("WARN", "AI categorization cancelled"))
}

func TestExtractCategory(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"plain", "Category: Groceries", "Groceries"},
		{"with explanation", "Category: Household\nDescription: cleaning product", "Household"},
		{"brackets", "category: [Produce]", "Produce"},
		{"markdown", "**Category:** Meat & Seafood", ""},
		{"leading text", "Sure!\n  Category: Food & Dining.", "Food & Dining"},
		{"missing", "I am not sure", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCategory(tt.response))
		})
	}
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "gemini-1.5-flash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("Kombucha", Categories)
	assert.Contains(t, prompt, "Item: Kombucha")
	assert.Contains(t, prompt, "Groceries, Produce")
	assert.Contains(t, prompt, "Category:")
}
