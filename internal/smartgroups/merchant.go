package smartgroups

import (
	"sort"
	"strings"

	"fjacquet/finny-analyzer/internal/models"
)

// Merchant categories.
const (
	CategoryFoodDelivery  = "Food Delivery"
	CategoryDining        = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryTravel        = "Travel"
	CategoryShopping      = "Shopping"
	CategoryGroceries     = "Groceries"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryHealthcare    = "Healthcare"
)

// Merchant is a recognized brand.
type Merchant struct {
	Name     string
	Aliases  []string
	Category string
}

var defaultMerchants = []models.MerchantConfig{
	{Name: "Swiggy", Aliases: []string{"swiggy", "instamart"}, Category: CategoryFoodDelivery},
	{Name: "Zomato", Aliases: []string{"zomato"}, Category: CategoryFoodDelivery},
	{Name: "Uber Eats", Aliases: []string{"uber eats", "ubereats"}, Category: CategoryFoodDelivery},
	{Name: "Uber", Aliases: []string{"uber"}, Category: CategoryTransport},
	{Name: "Ola", Aliases: []string{"ola", "ola cabs"}, Category: CategoryTransport},
	{Name: "Rapido", Aliases: []string{"rapido"}, Category: CategoryTransport},
	{Name: "Amazon", Aliases: []string{"amazon", "amzn"}, Category: CategoryShopping},
	{Name: "Flipkart", Aliases: []string{"flipkart"}, Category: CategoryShopping},
	{Name: "Myntra", Aliases: []string{"myntra"}, Category: CategoryShopping},
	{Name: "BigBasket", Aliases: []string{"bigbasket", "big basket", "bb daily"}, Category: CategoryGroceries},
	{Name: "Blinkit", Aliases: []string{"blinkit", "grofers"}, Category: CategoryGroceries},
	{Name: "Zepto", Aliases: []string{"zepto"}, Category: CategoryGroceries},
	{Name: "DMart", Aliases: []string{"dmart", "d mart"}, Category: CategoryGroceries},
	{Name: "Netflix", Aliases: []string{"netflix"}, Category: CategoryEntertainment},
	{Name: "Hotstar", Aliases: []string{"hotstar", "disney hotstar"}, Category: CategoryEntertainment},
	{Name: "Spotify", Aliases: []string{"spotify"}, Category: CategoryEntertainment},
	{Name: "Amazon Prime", Aliases: []string{"amazon prime", "prime video"}, Category: CategoryEntertainment},
	{Name: "BookMyShow", Aliases: []string{"bookmyshow", "book my show"}, Category: CategoryEntertainment},
	{Name: "Airtel", Aliases: []string{"airtel"}, Category: CategoryUtilities},
	{Name: "Jio", Aliases: []string{"jio", "reliance jio"}, Category: CategoryUtilities},
	{Name: "IRCTC", Aliases: []string{"irctc"}, Category: CategoryTravel},
	{Name: "MakeMyTrip", Aliases: []string{"makemytrip", "make my trip", "mmt"}, Category: CategoryTravel},
	{Name: "Starbucks", Aliases: []string{"starbucks"}, Category: CategoryDining},
	{Name: "Dominos", Aliases: []string{"dominos", "domino s", "domino"}, Category: CategoryDining},
	{Name: "McDonalds", Aliases: []string{"mcdonalds", "mcdonald s", "mcd"}, Category: CategoryDining},
	{Name: "KFC", Aliases: []string{"kfc"}, Category: CategoryDining},
	{Name: "PharmEasy", Aliases: []string{"pharmeasy"}, Category: CategoryHealthcare},
	{Name: "Apollo Pharmacy", Aliases: []string{"apollo"}, Category: CategoryHealthcare},
}

type alias struct {
	phrase   string
	merchant int
}

// Catalog finds known merchants in expense descriptions. It is immutable.
type Catalog struct {
	merchants []Merchant
	aliases   []alias
}

// DefaultCatalog returns the built-in merchant catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultMerchants)
}

// NewCatalog builds a catalog from merchant entries. An empty list yields
// the built-in catalog.
func NewCatalog(entries []models.MerchantConfig) *Catalog {
	if len(entries) == 0 {
		entries = defaultMerchants
	}

	c := &Catalog{}
	for _, e := range entries {
		m := Merchant{Name: e.Name, Category: e.Category}
		names := append([]string{e.Name}, e.Aliases...)
		for _, n := range names {
			phrase := NormalizeDescription(n)
			if phrase == "" {
				continue
			}
			m.Aliases = append(m.Aliases, phrase)
			c.aliases = append(c.aliases, alias{phrase: phrase, merchant: len(c.merchants)})
		}
		c.merchants = append(c.merchants, m)
	}

	// longest alias wins, so "uber eats" beats "uber"
	sort.SliceStable(c.aliases, func(i, j int) bool {
		return len(c.aliases[i].phrase) > len(c.aliases[j].phrase)
	})
	return c
}

// Merchants returns the catalog entries.
func (c *Catalog) Merchants() []Merchant {
	return append([]Merchant(nil), c.merchants...)
}

// Detect returns the merchant named in description as whole words.
func (c *Catalog) Detect(description string) (Merchant, bool) {
	padded := " " + NormalizeDescription(description) + " "
	for _, a := range c.aliases {
		if strings.Contains(padded, " "+a.phrase+" ") {
			return c.merchants[a.merchant], true
		}
	}
	return Merchant{}, false
}

// DefaultMerchantsConfig returns the built-in catalog in its YAML form.
func DefaultMerchantsConfig() models.MerchantsConfig {
	out := make([]models.MerchantConfig, 0, len(defaultMerchants))
	for _, m := range defaultMerchants {
		m.Aliases = append([]string(nil), m.Aliases...)
		out = append(out, m)
	}
	return models.MerchantsConfig{Merchants: out}
}
