package receiptparser

import (
	"strings"

	"fjacquet/finny-analyzer/internal/models"
)

type categoryVocabulary struct {
	category string
	keywords []string
}

// checked in order, first match wins
var categoryVocabularies = []categoryVocabulary{
	{models.CategoryDining, []string{"burger", "hamburger", "pizza", "sandwich", "fries", "meal", "combo", "latte", "espresso", "cappuccino", "taco", "burrito", "sushi", "noodle", "dessert", "restaurant", "dine", "takeaway"}},
	{models.CategoryMeat, []string{"chicken", "beef", "pork", "steak", "fish", "salmon", "tuna", "shrimp", "prawn", "turkey", "bacon", "sausage", "ham", "lamb", "mince", "meat", "seafood"}},
	{models.CategoryProduce, []string{"apple", "banana", "orange", "lemon", "lime", "lettuce", "tomato", "potato", "onion", "carrot", "cucumber", "pepper", "fruit", "vegetable", "veg", "berries", "berry", "grape", "avocado", "spinach", "broccoli", "mango"}},
	{models.CategoryGroceries, []string{"milk", "bread", "egg", "cheese", "butter", "yogurt", "yoghurt", "cereal", "rice", "flour", "sugar", "pasta", "juice", "coffee", "tea", "snack", "chips", "water", "soda", "oil", "salt", "cookie", "biscuit", "chocolate", "grocery"}},
	{models.CategoryHousehold, []string{"soap", "detergent", "paper", "towel", "tissue", "shampoo", "toothpaste", "bleach", "cleaner", "trash", "battery", "batteries", "bulb", "sponge", "foil", "napkin"}},
}

// GuessCategory assigns an item category by keyword. A keyword matches the
// start of any word in the name, so "bananas" is Produce. Unknown items are
// Shopping.
func GuessCategory(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for _, vocab := range categoryVocabularies {
		for _, keyword := range vocab.keywords {
			for _, word := range words {
				if strings.HasPrefix(word, keyword) {
					return vocab.category
				}
			}
		}
	}
	return models.CategoryShopping
}
