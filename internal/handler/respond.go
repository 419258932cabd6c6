package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kiwari-pos/barista/internal/pricing"
)

// maxBodyBytes caps request bodies; a batch of a few hundred orders fits
// comfortably.
const maxBodyBytes = 1 << 20

var boardPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// newValidator returns a validator that reports JSON field names and knows
// the "board" tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("board", func(fl validator.FieldLevel) bool {
		return boardPattern.MatchString(fl.Field().String())
	})
	return v
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Index *int   `json:"index,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON decodes the request body into dst and runs struct validation.
// It writes a 400 and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := v.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, http.StatusBadRequest, validationMessage(verrs[0]))
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "board":
		return fe.Field() + " must be lowercase letters, digits, '-' or '_'"
	case "max":
		return fe.Field() + " exceeds the maximum of " + fe.Param()
	}
	return fe.Field() + " is invalid"
}

// writePricingError maps pricing failures to 422 with their kind as code.
// It reports whether err was a pricing failure.
func writePricingError(w http.ResponseWriter, err error) bool {
	var pe *pricing.Error
	if !errors.As(err, &pe) {
		return false
	}
	resp := errorResponse{Error: pe.Message, Code: string(pe.Kind)}
	if pe.Kind == pricing.KindBatchOrderFailure {
		idx := pe.Index
		resp.Index = &idx
	}
	writeJSON(w, http.StatusUnprocessableEntity, resp)
	return true
}
