package pricing

import (
	"strings"
	"unicode"

	"github.com/kiwari-pos/barista/internal/menu"
)

// exclusionSeparator precedes every excluded ingredient: "Chai, -Milk, -Sugar".
// A name that itself contains ",-" cannot be expressed in this grammar.
const exclusionSeparator = ",-"

// Order is a parsed order: one menu item and the ingredients to leave out.
// Exclusions keep input order and duplicates.
type Order struct {
	Item       menu.Item
	Exclusions []menu.Ingredient
}

// ParseOrder parses order text of the form
//
//	<menu item>(,-<ingredient>)*
//
// Names are matched ignoring case and all whitespace, so
// "Strawberry Shake, -sugar" names ItemStrawberryShake without sugar.
// A nil raw means the order text was absent.
func ParseOrder(raw *string) (Order, error) {
	if raw == nil {
		return Order{}, newError(KindInvalidInput, msgNullOrder)
	}
	if strings.TrimSpace(*raw) == "" {
		return Order{}, newError(KindInvalidInput, msgEmptyOrder)
	}

	tokens := splitOrder(stripWhitespace(*raw))

	item, ok := menu.LookupItem(tokens[0])
	if !ok {
		return Order{}, newError(KindUnknownMenuItem, msgUnknownMenuItem)
	}

	var exclusions []menu.Ingredient
	for _, tok := range tokens[1:] {
		ing, ok := menu.LookupIngredient(tok)
		if !ok {
			return Order{}, unknownIngredient(tok)
		}
		exclusions = append(exclusions, ing)
	}

	return Order{Item: item, Exclusions: exclusions}, nil
}

// splitOrder splits on the exclusion separator. Empty tokens left by a
// trailing separator ("Chai,-") are dropped; the leading token is always
// kept so callers can index it.
func splitOrder(s string) []string {
	tokens := strings.Split(s, exclusionSeparator)
	n := len(tokens)
	for n > 1 && tokens[n-1] == "" {
		n--
	}
	return tokens[:n]
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func normalizeToken(tok string) string {
	return strings.ToUpper(tok)
}
