package grouping

import (
	"strings"

	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/textutils"
)

// Score weights and the grouping threshold.
const (
	SimilarityWeight     = 0.4
	SameCategoryBonus    = 20.0
	SamePatternBonus     = 25.0
	KeywordOverlapWeight = 0.35
	GroupThreshold       = 70.0
)

var builtin = DefaultDictionary()

// ShouldGroup reports whether two expenses belong together under the
// built-in dictionary.
func ShouldGroup(a, b models.Expense) bool {
	return builtin.ShouldGroup(a, b)
}

// Score combines text similarity, category equality, a shared dictionary
// pattern and keyword overlap into a 0-145 relatedness score.
func (d *Dictionary) Score(a, b models.Expense) float64 {
	score := SimilarityWeight * float64(textutils.CalculateSimilarity(a.Description, b.Description))

	if sameCategory(a.Category, b.Category) {
		score += SameCategoryBonus
	}

	if pa, ok := d.Match(a.Description); ok {
		if pb, ok := d.Match(b.Description); ok && pa.Key == pb.Key {
			score += SamePatternBonus
		}
	}

	return score + KeywordOverlapWeight*keywordOverlap(a.Description, b.Description)
}

// ShouldGroup reports whether two expenses score at or above GroupThreshold.
func (d *Dictionary) ShouldGroup(a, b models.Expense) bool {
	return d.Score(a, b) >= GroupThreshold
}

// keywordOverlap is |common| / max(|keywords(a)|, |keywords(b)|) * 100.
func keywordOverlap(a, b string) float64 {
	ka := textutils.ExtractKeywords(a)
	kb := textutils.ExtractKeywords(b)
	longest := len(ka)
	if len(kb) > longest {
		longest = len(kb)
	}
	if longest == 0 {
		return 0
	}
	return float64(len(textutils.CommonKeywords(ka, kb))) / float64(longest) * 100
}

func sameCategory(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
