// Package pricing turns free-form beverage orders into prices.
//
// An order names one menu item and, optionally, ingredients to leave out:
//
//	Strawberry Shake, -sugar, -Water
//
// Each excluded ingredient takes its unit price off the item's base price.
// Orders that would leave nothing in the cup are rejected.
package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is a priced order.
type Quote struct {
	ID        uuid.UUID
	Order     Order
	BasePrice decimal.Decimal
	Deduction decimal.Decimal
	Total     decimal.Decimal
	QuotedAt  time.Time
}

// BatchQuote is the result of pricing several orders together.
type BatchQuote struct {
	Quotes []Quote
	Total  decimal.Decimal
}

// Engine prices orders. It holds no state between calls; the zero value is
// not usable, use NewEngine.
type Engine struct {
	now   func() time.Time
	newID func() uuid.UUID
}

// NewEngine creates an Engine stamping quotes with the wall clock and random
// UUIDs.
func NewEngine() *Engine {
	return &Engine{now: time.Now, newID: uuid.New}
}

// Quote parses, validates and prices a single order.
func (e *Engine) Quote(raw *string) (*Quote, error) {
	order, err := ParseOrder(raw)
	if err != nil {
		return nil, err
	}
	if err := Validate(order); err != nil {
		return nil, err
	}

	return &Quote{
		ID:        e.newID(),
		Order:     order,
		BasePrice: order.Item.Price(),
		Deduction: Deduction(order.Exclusions),
		Total:     Calculate(order.Item, order.Exclusions),
		QuotedAt:  e.now(),
	}, nil
}

// QuoteAll prices orders left to right. The first failing order aborts the
// batch with a BATCH_ORDER_FAILURE error wrapping the order's own error; no
// partial result is returned.
func (e *Engine) QuoteAll(raws []*string) (*BatchQuote, error) {
	quotes := make([]Quote, 0, len(raws))
	total := decimal.Zero
	for i, raw := range raws {
		q, err := e.Quote(raw)
		if err != nil {
			return nil, batchFailure(i, err)
		}
		quotes = append(quotes, *q)
		total = total.Add(q.Total)
	}
	return &BatchQuote{Quotes: quotes, Total: total}, nil
}

// Price returns the final price of a single order. A nil raw is an absent
// order and fails with INVALID_INPUT.
func (e *Engine) Price(raw *string) (decimal.Decimal, error) {
	q, err := e.Quote(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Total, nil
}

// PriceAll returns the sum of the final prices of all orders.
func (e *Engine) PriceAll(raws []*string) (decimal.Decimal, error) {
	b, err := e.QuoteAll(raws)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Total, nil
}

// PriceOrder is Price for order text that is known to be present.
func (e *Engine) PriceOrder(text string) (decimal.Decimal, error) {
	return e.Price(&text)
}

// PriceOrders is PriceAll for order texts that are known to be present.
func (e *Engine) PriceOrders(texts []string) (decimal.Decimal, error) {
	return e.PriceAll(Texts(texts))
}

// Texts adapts plain strings to the nullable form Quote and Price accept.
func Texts(texts []string) []*string {
	raws := make([]*string, len(texts))
	for i := range texts {
		raws[i] = &texts[i]
	}
	return raws
}
