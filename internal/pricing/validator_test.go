package pricing

import (
	"errors"
	"testing"

	"github.com/kiwari-pos/barista/internal/menu"
	"github.com/shopspring/decimal"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		order   Order
		wantErr error
	}{
		{"no exclusions", Order{Item: menu.ItemChai}, nil},
		{"partial", Order{Item: menu.ItemChai, Exclusions: []menu.Ingredient{menu.IngredientMilk, menu.IngredientSugar}}, nil},
		{"duplicates do not cover", Order{Item: menu.ItemChai, Exclusions: []menu.Ingredient{menu.IngredientMilk, menu.IngredientMilk, menu.IngredientMilk, menu.IngredientMilk}}, nil},
		{"foreign ingredients only", Order{Item: menu.ItemChai, Exclusions: []menu.Ingredient{menu.IngredientBanana, menu.IngredientMint}}, nil},
		{"all constituents", Order{Item: menu.ItemChai, Exclusions: []menu.Ingredient{menu.IngredientTea, menu.IngredientMilk, menu.IngredientSugar, menu.IngredientWater}}, ErrFullyExcludedOrder},
		{"all constituents reordered", Order{Item: menu.ItemChai, Exclusions: []menu.Ingredient{menu.IngredientWater, menu.IngredientSugar, menu.IngredientTea, menu.IngredientMilk}}, ErrFullyExcludedOrder},
		{"all constituents plus extra", Order{Item: menu.ItemChai, Exclusions: []menu.Ingredient{menu.IngredientTea, menu.IngredientBanana, menu.IngredientMilk, menu.IngredientSugar, menu.IngredientWater}}, ErrFullyExcludedOrder},
		{"mohito all constituents", Order{Item: menu.ItemMohito, Exclusions: []menu.Ingredient{menu.IngredientSugar, menu.IngredientWater, menu.IngredientSoda, menu.IngredientMint}}, ErrFullyExcludedOrder},
		{"mohito without mint", Order{Item: menu.ItemMohito, Exclusions: []menu.Ingredient{menu.IngredientSugar, menu.IngredientWater, menu.IngredientSoda, menu.IngredientLemon}}, nil},
		{"coffee milk sugar water", Order{Item: menu.ItemCoffee, Exclusions: []menu.Ingredient{menu.IngredientMilk, menu.IngredientSugar, menu.IngredientWater}}, ErrFullyExcludedOrder},
		{"coffee namesake not a constituent", Order{Item: menu.ItemCoffee, Exclusions: []menu.Ingredient{menu.IngredientCoffee, menu.IngredientMilk, menu.IngredientSugar}}, nil},
		{"zero item", Order{}, ErrUnknownMenuItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.order)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_FullyExcludedMessage(t *testing.T) {
	err := Validate(Order{Item: menu.ItemCoffee, Exclusions: menu.ItemCoffee.Constituents()})
	if err == nil || err.Error() != "Order can not be accepted as all of ingredients are excluded !" {
		t.Fatalf("got %v", err)
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		item       menu.Item
		exclusions []menu.Ingredient
		want       string
	}{
		{"base price", menu.ItemMohito, nil, "7.5"},
		{"two exclusions", menu.ItemStrawberryShake, []menu.Ingredient{menu.IngredientSugar, menu.IngredientWater}, "6"},
		{"duplicates counted twice", menu.ItemChai, []menu.Ingredient{menu.IngredientMilk, menu.IngredientMilk}, "2"},
		{"goes negative", menu.ItemCoffee, []menu.Ingredient{menu.IngredientCoffee, menu.IngredientCoffee, menu.IngredientMilk}, "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.item, tt.exclusions)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Calculate: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeductionEmpty(t *testing.T) {
	if !Deduction(nil).IsZero() {
		t.Fatalf("Deduction(nil): got %s, want 0", Deduction(nil))
	}
}
