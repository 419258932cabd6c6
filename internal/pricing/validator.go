package pricing

import "github.com/kiwari-pos/barista/internal/menu"

// Validate rejects an order whose exclusions cover every ingredient the item
// is made of. Duplicate exclusions count once, and excluding ingredients the
// item does not contain is allowed.
func Validate(o Order) error {
	if !o.Item.Valid() {
		return newError(KindUnknownMenuItem, msgUnknownMenuItem)
	}

	excluded := make(map[menu.Ingredient]struct{}, len(o.Exclusions))
	for _, ing := range o.Exclusions {
		excluded[ing] = struct{}{}
	}

	for _, c := range o.Item.Constituents() {
		if _, ok := excluded[c]; !ok {
			return nil
		}
	}
	return newError(KindFullyExcludedOrder, msgFullyExcluded)
}
