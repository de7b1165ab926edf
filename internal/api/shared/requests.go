package shared

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Wire-format patterns for flashcard fields. A review status is a decimal
// string like "1.5"; a last-review date is dd/mm/yyyy or the literal "never".
var (
	reviewStatusRe = regexp.MustCompile(`^\d+\.\d+$`)
	reviewDateRe   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$|^never$`)
)

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag or nil func.
	_ = v.RegisterValidation("review_status", func(fl validator.FieldLevel) bool {
		return reviewStatusRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("review_date", func(fl validator.FieldLevel) bool {
		return reviewDateRe.MatchString(fl.Field().String())
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct using the validator package,
// including the custom review_status and review_date tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}
