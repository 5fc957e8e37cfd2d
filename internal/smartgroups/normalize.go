package smartgroups

import (
	"strings"
	"unicode"

	"fjacquet/finny-analyzer/internal/textutils"
)

// Hindi-origin tokens commonly typed in Latin script.
var transliterations = map[string]string{
	"khana":   "food",
	"khaana":  "food",
	"chai":    "tea",
	"chay":    "tea",
	"doodh":   "milk",
	"dudh":    "milk",
	"sabzi":   "vegetables",
	"sabji":   "vegetables",
	"kirana":  "grocery",
	"dawai":   "medicine",
	"dawa":    "medicine",
	"kiraya":  "rent",
	"bijli":   "electricity",
	"pani":    "water",
	"paani":   "water",
	"nashta":  "breakfast",
	"kapde":   "clothes",
	"kapda":   "clothes",
	"mithai":  "sweets",
	"dhaba":   "restaurant",
	"safar":   "travel",
	"bazaar":  "market",
	"bazar":   "market",
	"ghar":    "home",
	"safai":   "cleaning",
	"ilaaj":   "treatment",
	"yatra":   "travel",
	"gaadi":   "vehicle",
	"naashta": "breakfast",
}

var abbreviationWords = map[string]string{
	"amt":   "amount",
	"pmt":   "payment",
	"txn":   "transaction",
	"elec":  "electricity",
	"mob":   "mobile",
	"med":   "medicine",
	"meds":  "medicine",
	"resto": "restaurant",
	"bfast": "breakfast",
	"subs":  "subscription",
	"grocs": "groceries",
	"recg":  "recharge",
	"emi":   "installment",
}

func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

// NormalizeDescription lower-cases text, drops emoji and symbols while
// keeping Devanagari, and rewrites transliterated Hindi words and
// abbreviations to English, e.g. "Chai 🍵 aur nashta" -> "tea aur breakfast".
func NormalizeDescription(description string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case isDevanagari(r):
			return r
		case r > unicode.MaxASCII:
			return -1
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, description)

	words := strings.Fields(cleaned)
	for i, w := range words {
		if t, ok := transliterations[w]; ok {
			words[i] = t
		} else if a, ok := abbreviationWords[w]; ok {
			words[i] = a
		}
	}
	return textutils.CollapseWhitespace(strings.Join(words, " "))
}
