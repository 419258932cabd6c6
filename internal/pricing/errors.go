package pricing

import "errors"

// Kind classifies a pricing failure.
type Kind string

const (
	KindInvalidInput       Kind = "INVALID_INPUT"
	KindUnknownMenuItem    Kind = "UNKNOWN_MENU_ITEM"
	KindUnknownIngredient  Kind = "UNKNOWN_INGREDIENT"
	KindFullyExcludedOrder Kind = "FULLY_EXCLUDED_ORDER"
	KindBatchOrderFailure  Kind = "BATCH_ORDER_FAILURE"
)

// Customer-facing messages. Clients match on these, keep the wording.
const (
	msgNullOrder         = "Null value found !"
	msgEmptyOrder        = "Can not accept empty order !"
	msgUnknownMenuItem   = "No expected menu item found in the order !"
	msgUnknownIngredient = "Invalid ingredients found ! "
	msgFullyExcluded     = "Order can not be accepted as all of ingredients are excluded !"
	msgBatchPrefix       = "One of the orders was invalid. "
)

// Error is returned by every pricing operation.
type Error struct {
	Kind    Kind
	Message string

	// Token is the exclusion as the customer typed it (UNKNOWN_INGREDIENT only).
	Token string
	// Index is the position of the failing order (BATCH_ORDER_FAILURE only).
	Index int
	// Err is the order failure a batch failure wraps.
	Err error
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrUnknownMenuItem    = &Error{Kind: KindUnknownMenuItem}
	ErrUnknownIngredient  = &Error{Kind: KindUnknownIngredient}
	ErrFullyExcludedOrder = &Error{Kind: KindFullyExcludedOrder}
	ErrBatchOrderFailure  = &Error{Kind: KindBatchOrderFailure}
)

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t.Kind == e.Kind
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func unknownIngredient(token string) *Error {
	return &Error{
		Kind:    KindUnknownIngredient,
		Message: msgUnknownIngredient + normalizeToken(token),
		Token:   token,
	}
}

func batchFailure(index int, err error) *Error {
	return &Error{
		Kind:    KindBatchOrderFailure,
		Message: msgBatchPrefix + err.Error(),
		Index:   index,
		Err:     err,
	}
}
