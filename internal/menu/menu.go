// Package menu holds the static beverage menu: the menu items a customer can
// order, the ingredients they are made of, and what each one costs.
//
// Everything here is built once at package initialisation and never mutated,
// so it is safe to read from any number of goroutines.
package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item is a purchasable beverage.
type Item int

// Ingredient is a priced component of a beverage that a customer may ask to
// leave out.
type Ingredient int

const (
	ItemCoffee Item = iota + 1
	ItemChai
	ItemBananaSmoothie
	ItemStrawberryShake
	ItemMohito
)

const (
	IngredientCoffee Ingredient = iota + 1
	IngredientTea
	IngredientBanana
	IngredientStrawberry
	IngredientLemon
	IngredientMilk
	IngredientSugar
	IngredientSoda
	IngredientMint
	IngredientWater
)

type itemInfo struct {
	code         string
	name         string
	price        decimal.Decimal
	constituents []Ingredient
}

type ingredientInfo struct {
	code  string
	name  string
	price decimal.Decimal
}

// ── Tables ──

var itemTable = map[Item]itemInfo{
	ItemCoffee: {
		code:         "COFFEE",
		name:         "Coffee",
		price:        decimal.RequireFromString("5.00"),
		constituents: []Ingredient{IngredientMilk, IngredientSugar, IngredientWater},
	},
	ItemChai: {
		code:         "CHAI",
		name:         "Chai",
		price:        decimal.RequireFromString("4.00"),
		constituents: []Ingredient{IngredientTea, IngredientMilk, IngredientSugar, IngredientWater},
	},
	ItemBananaSmoothie: {
		code:         "BANANASMOOTHIE",
		name:         "Banana Smoothie",
		price:        decimal.RequireFromString("6.00"),
		constituents: []Ingredient{IngredientMilk, IngredientSugar, IngredientWater},
	},
	ItemStrawberryShake: {
		code:         "STRAWBERRYSHAKE",
		name:         "Strawberry Shake",
		price:        decimal.RequireFromString("7.00"),
		constituents: []Ingredient{IngredientMilk, IngredientSugar, IngredientWater},
	},
	ItemMohito: {
		code:         "MOHITO",
		name:         "Mohito",
		price:        decimal.RequireFromString("7.50"),
		constituents: []Ingredient{IngredientSugar, IngredientWater, IngredientSoda, IngredientMint},
	},
}

var ingredientTable = map[Ingredient]ingredientInfo{
	IngredientCoffee:     {code: "COFFEE", name: "Coffee", price: decimal.RequireFromString("3.00")},
	IngredientTea:        {code: "TEA", name: "Tea", price: decimal.RequireFromString("2.00")},
	IngredientBanana:     {code: "BANANA", name: "Banana", price: decimal.RequireFromString("4.00")},
	IngredientStrawberry: {code: "STRAWBERRY", name: "Strawberry", price: decimal.RequireFromString("5.00")},
	IngredientLemon:      {code: "LEMON", name: "Lemon", price: decimal.RequireFromString("5.50")},
	IngredientMilk:       {code: "MILK", name: "Milk", price: decimal.RequireFromString("1.00")},
	IngredientSugar:      {code: "SUGAR", name: "Sugar", price: decimal.RequireFromString("0.50")},
	IngredientSoda:       {code: "SODA", name: "Soda", price: decimal.RequireFromString("0.50")},
	IngredientMint:       {code: "MINT", name: "Mint", price: decimal.RequireFromString("0.50")},
	IngredientWater:      {code: "WATER", name: "Water", price: decimal.RequireFromString("0.50")},
}

// Declaration order, used for listings.
var (
	itemOrder = []Item{
		ItemCoffee, ItemChai, ItemBananaSmoothie, ItemStrawberryShake, ItemMohito,
	}
	ingredientOrder = []Ingredient{
		IngredientCoffee, IngredientTea, IngredientBanana, IngredientStrawberry, IngredientLemon,
		IngredientMilk, IngredientSugar, IngredientSoda, IngredientMint, IngredientWater,
	}
)

var (
	itemsByCode       = indexItems()
	ingredientsByCode = indexIngredients()
)

func indexItems() map[string]Item {
	m := make(map[string]Item, len(itemTable))
	for it, info := range itemTable {
		m[info.code] = it
	}
	return m
}

func indexIngredients() map[string]Ingredient {
	m := make(map[string]Ingredient, len(ingredientTable))
	for ing, info := range ingredientTable {
		m[info.code] = ing
	}
	return m
}

// ── Items ──

// Items returns every menu item in menu order.
func Items() []Item {
	out := make([]Item, len(itemOrder))
	copy(out, itemOrder)
	return out
}

// LookupItem resolves a whitespace-free item name, ignoring case.
// "strawberryshake" and "StrawberryShake" both resolve to ItemStrawberryShake.
func LookupItem(token string) (Item, bool) {
	it, ok := itemsByCode[strings.ToUpper(token)]
	return it, ok
}

// Valid reports whether i is a member of the menu.
func (i Item) Valid() bool {
	_, ok := itemTable[i]
	return ok
}

// Code is the canonical upper-case name, e.g. "STRAWBERRYSHAKE".
func (i Item) Code() string { return itemTable[i].code }

// String returns the display name, e.g. "Strawberry Shake".
func (i Item) String() string {
	if info, ok := itemTable[i]; ok {
		return info.name
	}
	return "Unknown"
}

// Price is the base price before any exclusions.
func (i Item) Price() decimal.Decimal { return itemTable[i].price }

// Constituents returns the ingredients the item is made of. The returned
// slice is a copy.
func (i Item) Constituents() []Ingredient {
	src := itemTable[i].constituents
	out := make([]Ingredient, len(src))
	copy(out, src)
	return out
}

// MarshalText encodes the item as its canonical code.
func (i Item) MarshalText() ([]byte, error) { return []byte(i.Code()), nil }

// ── Ingredients ──

// Ingredients returns every ingredient in declaration order.
func Ingredients() []Ingredient {
	out := make([]Ingredient, len(ingredientOrder))
	copy(out, ingredientOrder)
	return out
}

// LookupIngredient resolves a whitespace-free ingredient name, ignoring case.
func LookupIngredient(token string) (Ingredient, bool) {
	ing, ok := ingredientsByCode[strings.ToUpper(token)]
	return ing, ok
}

func (g Ingredient) Valid() bool {
	_, ok := ingredientTable[g]
	return ok
}

func (g Ingredient) Code() string { return ingredientTable[g].code }

func (g Ingredient) String() string {
	if info, ok := ingredientTable[g]; ok {
		return info.name
	}
	return "Unknown"
}

// Price is the amount taken off a drink when this ingredient is excluded.
func (g Ingredient) Price() decimal.Decimal { return ingredientTable[g].price }

func (g Ingredient) MarshalText() ([]byte, error) { return []byte(g.Code()), nil }
