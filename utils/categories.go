package utils

import "strings"

// categoryRule maps a merchant-name substring to a spending category. The
// slice order is the lookup order, so narrower keywords ("uber eats") must
// come before the broader ones they contain ("uber").
type categoryRule struct {
	keyword  string
	category string
}

var categoryRules = []categoryRule{
	{"starbucks", "Dining"},
	{"mcdonald", "Dining"},
	{"chipotle", "Dining"},
	{"dunkin", "Dining"},
	{"subway", "Dining"},
	{"uber eats", "Dining"},
	{"whole foods", "Groceries"},
	{"trader joe", "Groceries"},
	{"kroger", "Groceries"},
	{"safeway", "Groceries"},
	{"costco", "Groceries"},
	{"walmart", "Groceries"},
	{"wal-mart", "Groceries"},
	{"shell", "Transportation"},
	{"chevron", "Transportation"},
	{"exxon", "Transportation"},
	{"eleven", "Transportation"},
	{"uber", "Transportation"},
	{"cvs", "Health"},
	{"walgreens", "Health"},
	{"target", "Shopping"},
	{"amazon", "Shopping"},
	{"best buy", "Shopping"},
	{"home depot", "Shopping"},
}

// CategoryForMerchant maps an identified merchant name to a spending
// category by case-insensitive substring containment. Returns nil when no
// keyword is contained in the name.
func CategoryForMerchant(merchant string) *string {
	lower := strings.ToLower(merchant)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.keyword) {
			category := rule.category
			return &category
		}
	}
	return nil
}
