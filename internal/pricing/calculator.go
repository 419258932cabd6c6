package pricing

import (
	"github.com/kiwari-pos/barista/internal/menu"
	"github.com/shopspring/decimal"
)

// Deduction sums the price of every excluded ingredient. An ingredient
// excluded twice is deducted twice.
func Deduction(exclusions []menu.Ingredient) decimal.Decimal {
	total := decimal.Zero
	for _, ing := range exclusions {
		total = total.Add(ing.Price())
	}
	return total
}

// Calculate returns the item's base price minus the deduction for its
// exclusions. The result is not floored: enough exclusions make it negative.
func Calculate(item menu.Item, exclusions []menu.Ingredient) decimal.Decimal {
	return item.Price().Sub(Deduction(exclusions))
}
