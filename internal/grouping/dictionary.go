package grouping

import (
	"regexp"
	"strings"

	"fjacquet/finny-analyzer/internal/models"
)

// Pattern keys of the built-in dictionary.
const (
	PatternTransportation = "transportation"
	PatternFood           = "food"
	PatternUtilities      = "utilities"
	PatternShopping       = "shopping"
	PatternHealthcare     = "healthcare"
	PatternEntertainment  = "entertainment"
)

// Pattern is one spending category of the pattern dictionary.
type Pattern struct {
	Key      string
	Name     string
	Keywords []string
}

// Dictionary is an immutable, ordered set of spending patterns.
type Dictionary struct {
	patterns []Pattern
}

var wordRe = regexp.MustCompile(`[\pL\pN]+`)

var defaultPatterns = []Pattern{
	{PatternTransportation, "Transportation & Travel", []string{
		"uber", "ola", "lyft", "rapido", "taxi", "bus ticket", "bus fare", "train", "metro", "railway", "irctc",
		"flight", "airline", "airport", "fuel", "petrol", "diesel", "gas station", "parking", "toll",
		"ride", "trip", "travel", "commute", "auto rickshaw",
	}},
	{PatternFood, "Food & Dining", []string{
		"swiggy", "zomato", "restaurant", "cafe", "coffee", "pizza", "burger", "food", "lunch",
		"dinner", "breakfast", "snack", "grocery", "groceries", "dominos", "mcdonald", "kfc",
		"starbucks", "bakery", "meal", "chai", "chay", "takeaway", "eat",
	}},
	{PatternUtilities, "Utilities & Bills", []string{
		"electricity", "electric", "water bill", "gas bill", "internet", "broadband", "wifi",
		"phone bill", "mobile recharge", "recharge", "airtel", "jio", "utility", "utilities", "bill",
		"power", "dth",
	}},
	{PatternShopping, "Shopping & Retail", []string{
		"amazon", "flipkart", "myntra", "ajio", "shopping", "mall", "clothes", "clothing", "shoes",
		"electronics", "store", "mart", "dmart", "purchase",
	}},
	{PatternHealthcare, "Healthcare & Medical", []string{
		"hospital", "clinic", "doctor", "pharmacy", "medicine", "medical", "apollo", "pharmeasy",
		"dental", "dentist", "health", "lab test", "checkup",
	}},
	{PatternEntertainment, "Entertainment & Leisure", []string{
		"netflix", "hotstar", "prime video", "spotify", "youtube premium", "movie", "cinema", "pvr",
		"bookmyshow", "concert", "game", "gaming", "music", "theatre", "theater",
	}},
}

// DefaultDictionary returns the built-in pattern dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(defaultPatterns)
}

// NewDictionary builds a dictionary from patterns, lower-casing keywords.
// Patterns keep their order; the first matching pattern wins.
func NewDictionary(patterns []Pattern) *Dictionary {
	copied := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		keywords := make([]string, 0, len(p.Keywords))
		for _, k := range p.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		copied = append(copied, Pattern{Key: p.Key, Name: p.Name, Keywords: keywords})
	}
	return &Dictionary{patterns: copied}
}

// NewDictionaryFromConfig converts YAML pattern entries into a dictionary.
// An empty config yields the built-in dictionary.
func NewDictionaryFromConfig(cfg models.PatternsConfig) *Dictionary {
	if len(cfg.Patterns) == 0 {
		return DefaultDictionary()
	}
	patterns := make([]Pattern, 0, len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		patterns = append(patterns, Pattern{Key: p.Key, Name: p.Name, Keywords: p.Keywords})
	}
	return NewDictionary(patterns)
}

// Patterns returns a copy of the dictionary patterns in match order.
func (d *Dictionary) Patterns() []Pattern {
	out := make([]Pattern, len(d.patterns))
	copy(out, d.patterns)
	return out
}

// Lookup returns the pattern with the given key.
func (d *Dictionary) Lookup(key string) (Pattern, bool) {
	for _, p := range d.patterns {
		if p.Key == key {
			return p, true
		}
	}
	return Pattern{}, false
}

// Match returns the first pattern matching description.
func (d *Dictionary) Match(description string) (Pattern, bool) {
	lower, words := tokenize(description)
	for _, p := range d.patterns {
		if p.matches(lower, words) {
			return p, true
		}
	}
	return Pattern{}, false
}

// Matches reports whether description matches the given pattern.
func (p Pattern) Matches(description string) bool {
	lower, words := tokenize(description)
	return p.matches(lower, words)
}

// a single-word keyword must start a word; a phrase may appear anywhere
func (p Pattern) matches(lower string, words []string) bool {
	for _, k := range p.Keywords {
		if strings.Contains(k, " ") {
			if strings.Contains(lower, k) {
				return true
			}
			continue
		}
		for _, w := range words {
			if strings.HasPrefix(w, k) {
				return true
			}
		}
	}
	return false
}

func tokenize(description string) (string, []string) {
	lower := strings.ToLower(description)
	return lower, wordRe.FindAllString(lower, -1)
}

// Config converts the dictionary to its YAML form.
func (d *Dictionary) Config() models.PatternsConfig {
	out := make([]models.PatternConfig, 0, len(d.patterns))
	for _, p := range d.patterns {
		out = append(out, models.PatternConfig{
			Key:      p.Key,
			Name:     p.Name,
			Keywords: append([]string(nil), p.Keywords...),
		})
	}
	return models.PatternsConfig{Patterns: out}
}
