// Package grouping clusters historical expenses into groups of similar
// spending using a weighted similarity score, and provides top spender and
// spending pattern summaries over the same records.
package grouping

import (
	"math"
	"sort"
	"strings"

	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/textutils"

	"github.com/google/uuid"
)

// Pattern labels stored on groups not named after a dictionary pattern.
const (
	PatternKeywords = "keywords"
	PatternCategory = "category"
)

const groupNameKeywords = 2

var groupNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("finny-analyzer/expense-group"))

// Engine groups expenses. It is immutable after construction and safe for
// concurrent use.
type Engine struct {
	dict      *Dictionary
	clusterer Clusterer
	logger    logging.Logger
}

// NewEngine creates a grouping engine. Nil arguments select the built-in
// dictionary, greedy clustering and the default logger.
func NewEngine(dict *Dictionary, clusterer Clusterer, logger logging.Logger) *Engine {
	if dict == nil {
		dict = builtin
	}
	if clusterer == nil {
		clusterer = GreedySeedClusterer{}
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{dict: dict, clusterer: clusterer, logger: logger}
}

// Dictionary returns the pattern dictionary used by the engine.
func (e *Engine) Dictionary() *Dictionary {
	return e.dict
}

// GroupSimilarExpenses groups expenses with the default engine.
func GroupSimilarExpenses(expenses []models.Expense) models.GroupingResult {
	return NewEngine(nil, nil, nil).GroupSimilarExpenses(expenses)
}

// GroupSimilarExpenses partitions expenses into groups of two or more and
// ungrouped records. Groups are sorted by total amount, highest first;
// ungrouped records keep their input order. The input is not modified.
func (e *Engine) GroupSimilarExpenses(expenses []models.Expense) models.GroupingResult {
	result := models.GroupingResult{
		Groups:    make([]models.ExpenseGroup, 0),
		Ungrouped: make([]models.Expense, 0),
	}
	if len(expenses) == 0 {
		return result
	}

	clusters := e.Cluster(expenses)
	for _, members := range clusters {
		if len(members) < 2 {
			result.Ungrouped = append(result.Ungrouped, members...)
			continue
		}
		result.Groups = append(result.Groups, e.BuildGroup(members))
	}

	sort.SliceStable(result.Groups, func(i, j int) bool {
		return result.Groups[i].TotalAmount > result.Groups[j].TotalAmount
	})

	groupTotals := make([]float64, 0, len(result.Groups))
	for _, g := range result.Groups {
		groupTotals = append(groupTotals, g.TotalAmount)
	}
	result.TotalGrouped = models.SumAmounts(groupTotals...)
	result.TotalUngrouped = models.SumExpenses(result.Ungrouped)

	e.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: e.clusterer.Name()},
		logging.Field{Key: logging.FieldCount, Value: len(result.Groups)},
		logging.Field{Key: "ungrouped", Value: len(result.Ungrouped)},
	).Debug("Grouped expenses")

	return result
}

// Cluster partitions expenses with the engine's clusterer and returns the
// member records of each cluster, singletons included.
func (e *Engine) Cluster(expenses []models.Expense) [][]models.Expense {
	clusters := e.ClusterIndexes(expenses)
	out := make([][]models.Expense, 0, len(clusters))
	for _, idx := range clusters {
		members := make([]models.Expense, 0, len(idx))
		for _, i := range idx {
			members = append(members, expenses[i])
		}
		out = append(out, members)
	}
	return out
}

// ClusterIndexes clusters expenses and returns index lists, so callers can
// compare normalized copies and map back to the original records.
func (e *Engine) ClusterIndexes(expenses []models.Expense) [][]int {
	return e.clusterer.Cluster(len(expenses), func(i, j int) bool {
		return e.dict.ShouldGroup(expenses[i], expenses[j])
	})
}

// BuildGroup summarizes members into an ExpenseGroup. members[0] is the seed.
func (e *Engine) BuildGroup(members []models.Expense) models.ExpenseGroup {
	seed := members[0]
	name, pattern := e.GroupName(members)

	group := models.ExpenseGroup{
		ID:          GroupID(members),
		GroupName:   name,
		TotalAmount: models.SumExpenses(members),
		Expenses:    append([]models.Expense(nil), members...),
		TopExpense:  topExpense(members),
		Pattern:     pattern,
		Similarity:  averageSimilarity(seed, members[1:]),
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldGroup, Value: group.GroupName},
		logging.Field{Key: logging.FieldCount, Value: len(members)},
		logging.Field{Key: logging.FieldScore, Value: group.Similarity},
	).Debug("Built expense group")

	return group
}

// GroupName names a group after the seed's dictionary pattern, else its two
// most frequent keywords, else its category. The second value is the
// pattern key, PatternKeywords or PatternCategory.
func (e *Engine) GroupName(members []models.Expense) (string, string) {
	if p, ok := e.dict.Match(members[0].Description); ok {
		return p.Name, p.Key
	}

	descriptions := make([]string, 0, len(members))
	for _, m := range members {
		descriptions = append(descriptions, m.Description)
	}
	if keywords := textutils.KeywordFrequencies(descriptions); len(keywords) > 0 {
		if len(keywords) > groupNameKeywords {
			keywords = keywords[:groupNameKeywords]
		}
		for i, k := range keywords {
			keywords[i] = textutils.TitleCase(k)
		}
		return strings.Join(keywords, " & ") + " Expenses", PatternKeywords
	}

	category := strings.TrimSpace(members[0].Category)
	if category == "" {
		category = "Other"
	}
	return category + " Expenses", PatternCategory
}

// GroupID derives a stable identifier from the member IDs and descriptions,
// independent of member order.
func GroupID(members []models.Expense) string {
	keys := make([]string, 0, len(members))
	for _, m := range members {
		keys = append(keys, m.ID+"\x1f"+m.Description)
	}
	sort.Strings(keys)
	return uuid.NewSHA1(groupNamespace, []byte(strings.Join(keys, "\x1e"))).String()
}

func topExpense(members []models.Expense) models.TopExpense {
	top := members[0]
	for _, m := range members[1:] {
		if m.Amount > top.Amount {
			top = m
		}
	}
	return models.TopExpense{Description: top.Description, Amount: top.Amount, Date: top.Date}
}

func averageSimilarity(seed models.Expense, others []models.Expense) int {
	if len(others) == 0 {
		return 100
	}
	sum := 0
	for _, o := range others {
		sum += textutils.CalculateSimilarity(seed.Description, o.Description)
	}
	return int(math.Round(float64(sum) / float64(len(others))))
}
