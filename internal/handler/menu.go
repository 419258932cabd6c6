package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/barista/internal/menu"
)

// MenuHandler serves the static menu.
type MenuHandler struct {
	body menuResponse
}

// NewMenuHandler creates a MenuHandler. The response is built once; the menu
// never changes while the process runs.
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{body: buildMenuResponse()}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

// --- Response types ---

type menuItemResponse struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	Constituents []string `json:"constituents"`
}

type ingredientResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type menuResponse struct {
	Items       []menuItemResponse   `json:"items"`
	Ingredients []ingredientResponse `json:"ingredients"`
}

// List handles GET /menu.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.body)
}

func buildMenuResponse() menuResponse {
	var resp menuResponse
	for _, it := range menu.Items() {
		cs := it.Constituents()
		codes := make([]string, len(cs))
		for i, c := range cs {
			codes[i] = c.Code()
		}
		resp.Items = append(resp.Items, menuItemResponse{
			Code:         it.Code(),
			Name:         it.String(),
			Price:        it.Price().StringFixed(2),
			Constituents: codes,
		})
	}
	for _, ing := range menu.Ingredients() {
		resp.Ingredients = append(resp.Ingredients, ingredientResponse{
			Code:  ing.Code(),
			Name:  ing.String(),
			Price: ing.Price().StringFixed(2),
		})
	}
	return resp
}
