package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kiwari-pos/barista/internal/enum"
	"github.com/kiwari-pos/barista/internal/metrics"
	"github.com/kiwari-pos/barista/internal/middleware"
	"github.com/kiwari-pos/barista/internal/pricing"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Pricer defines the pricing methods needed by quote handlers.
// Satisfied by *pricing.Engine; narrow interface for testability.
type Pricer interface {
	Quote(raw *string) (*pricing.Quote, error)
	QuoteAll(raws []*string) (*pricing.BatchQuote, error)
}

// Publisher pushes events to price board displays.
// Satisfied by *ws.Hub.
type Publisher interface {
	Publish(board, eventType string, payload any) error
}

// QuoteHandler handles quote endpoints.
type QuoteHandler struct {
	pricer    Pricer
	publisher Publisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
	validate  *validator.Validate
}

// NewQuoteHandler creates a new QuoteHandler. publisher and m may be nil.
func NewQuoteHandler(pricer Pricer, publisher Publisher, m *metrics.Metrics, logger zerolog.Logger) *QuoteHandler {
	return &QuoteHandler{
		pricer:    pricer,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		validate:  newValidator(),
	}
}

// RegisterRoutes registers quote endpoints on the given Chi router.
// Expected to be mounted at /quotes.
func (h *QuoteHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Post("/batch", h.CreateBatch)
}

// --- Request / Response types ---

type createQuoteRequest struct {
	// Order is a pointer so an absent or null order can be told apart from "".
	Order *string `json:"order"`
	Board string  `json:"board" validate:"omitempty,board"`
}

type createBatchRequest struct {
	Orders []*string `json:"orders" validate:"required,max=500"`
	Board  string    `json:"board" validate:"omitempty,board"`
}

type quoteResponse struct {
	ID         uuid.UUID `json:"id"`
	Item       string    `json:"item"`
	ItemName   string    `json:"item_name"`
	Exclusions []string  `json:"exclusions"`
	BasePrice  string    `json:"base_price"`
	Deduction  string    `json:"deduction"`
	Total      string    `json:"total"`
	QuotedAt   time.Time `json:"quoted_at"`
}

type batchResponse struct {
	Total  string          `json:"total"`
	Quotes []quoteResponse `json:"quotes"`
}

// --- Handlers ---

// Create handles POST /quotes.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if !decodeJSON(w, r, h.validate, &req) {
		return
	}

	board, ok := h.resolveBoard(w, r, req.Board)
	if !ok {
		return
	}

	q, err := h.pricer.Quote(req.Order)
	if err != nil {
		code := string(pricing.KindOf(err))
		if writePricingError(w, err) {
			h.metrics.ObserveQuote(enum.ResultRejected, code, decimal.Zero)
			h.logger.Warn().Err(err).Str("code", code).Msg("quote rejected")
			return
		}
		h.metrics.ObserveQuote(enum.ResultError, "", decimal.Zero)
		h.logger.Error().Err(err).Msg("create quote")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.metrics.ObserveQuote(enum.ResultOK, "", q.Total)

	resp := toQuoteResponse(*q)
	h.publish(board, enum.EventQuoteCreated, resp)
	writeJSON(w, http.StatusCreated, resp)
}

// CreateBatch handles POST /quotes/batch. Either every order is priced or
// none is.
func (h *QuoteHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req createBatchRequest
	if !decodeJSON(w, r, h.validate, &req) {
		return
	}

	board, ok := h.resolveBoard(w, r, req.Board)
	if !ok {
		return
	}

	b, err := h.pricer.QuoteAll(req.Orders)
	if err != nil {
		if writePricingError(w, err) {
			h.metrics.ObserveBatch(enum.ResultRejected)
			h.logger.Warn().Err(err).Int("orders", len(req.Orders)).Msg("batch quote rejected")
			return
		}
		h.metrics.ObserveBatch(enum.ResultError)
		h.logger.Error().Err(err).Msg("create batch quote")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.metrics.ObserveBatch(enum.ResultOK)

	resp := batchResponse{
		Total:  b.Total.StringFixed(2),
		Quotes: make([]quoteResponse, len(b.Quotes)),
	}
	for i, q := range b.Quotes {
		resp.Quotes[i] = toQuoteResponse(q)
	}
	h.publish(board, enum.EventBatchCreated, resp)
	writeJSON(w, http.StatusCreated, resp)
}

// resolveBoard picks the board a quote is published to. Authenticated
// terminals default to their own board and may not publish elsewhere.
func (h *QuoteHandler) resolveBoard(w http.ResponseWriter, r *http.Request, requested string) (string, bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return requested, true
	}
	if requested == "" {
		return claims.Board, true
	}
	if !claims.CanAccess(requested) {
		writeError(w, http.StatusForbidden, "board access denied")
		return "", false
	}
	return requested, true
}

func (h *QuoteHandler) publish(board, eventType string, payload any) {
	if board == "" || h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(board, eventType, payload); err != nil {
		h.logger.Error().Err(err).Str("board", board).Str("type", eventType).Msg("publish board event")
	}
}

func toQuoteResponse(q pricing.Quote) quoteResponse {
	exclusions := make([]string, len(q.Order.Exclusions))
	for i, ing := range q.Order.Exclusions {
		exclusions[i] = ing.Code()
	}
	return quoteResponse{
		ID:         q.ID,
		Item:       q.Order.Item.Code(),
		ItemName:   q.Order.Item.String(),
		Exclusions: exclusions,
		BasePrice:  q.BasePrice.StringFixed(2),
		Deduction:  q.Deduction.StringFixed(2),
		Total:      q.Total.StringFixed(2),
		QuotedAt:   q.QuotedAt,
	}
}
