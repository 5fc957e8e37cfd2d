// Package aicategory refines receipt item categories with an AI model when
// the keyword guess falls back to the default category.
package aicategory

import (
	"context"
	"strings"

	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
)

// Categories the model may choose from.
var Categories = []string{
	models.CategoryGroceries,
	models.CategoryProduce,
	models.CategoryMeat,
	models.CategoryDining,
	models.CategoryHousehold,
	models.CategoryShopping,
}

// Refiner asks a Client about items the keyword guess could not place.
type Refiner struct {
	client Client
	logger logging.Logger
}

// NewRefiner creates a refiner. A nil client makes Refine a no-op.
func NewRefiner(client Client, logger logging.Logger) *Refiner {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Refiner{client: client, logger: logger.WithField(logging.FieldComponent, "AICategory")}
}

// Refine returns receipt with the default-category items recategorized.
// Failed or unknown answers keep the keyword category; Refine never fails.
func (r *Refiner) Refine(ctx context.Context, receipt models.ParsedReceipt) models.ParsedReceipt {
	if r.client == nil {
		return receipt
	}

	items := make([]models.ReceiptItem, len(receipt.Items))
	copy(items, receipt.Items)
	for i, item := range items {
		if item.Category != models.CategoryShopping {
			continue
		}
		if err := ctx.Err(); err != nil {
			r.logger.WithError(err).Warn("AI categorization cancelled")
			break
		}

		answer, err := r.client.Categorize(ctx, item.Name, Categories)
		if err != nil {
			r.logger.WithError(err).Warn("AI categorization failed",
				logging.Field{Key: logging.FieldReason, Value: item.Name})
			continue
		}
		category, ok := known(answer)
		if !ok {
			r.logger.Debug("AI returned unknown category",
				logging.Field{Key: logging.FieldCategory, Value: answer})
			continue
		}
		items[i].Category = category
		r.logger.Debug("Item categorized by AI",
			logging.Field{Key: logging.FieldCategory, Value: category})
	}

	receipt.Items = items
	return receipt
}

func known(answer string) (string, bool) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(answer), c) {
			return c, true
		}
	}
	return "", false
}
