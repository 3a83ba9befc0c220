package models

import (
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes a single validation violation on a payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateProduct checks a payload against the product field constraints and
// returns every violation found. An empty slice means the payload is valid.
func ValidateProduct(in ProductInput) []FieldError {
	// Name length is judged on the trimmed value.
	norm := in
	norm.Name = strings.TrimSpace(in.Name)

	var violations []FieldError
	if err := validate.Struct(norm); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				violations = append(violations, FieldError{
					Field:   fe.Field(),
					Message: messageFor(fe),
				})
			}
		}
	}
	if in.Price > 0 && !hasTwoDecimalPrecision(in.Price) {
		violations = append(violations, FieldError{
			Field:   "Price",
			Message: "Price must have at most two decimal places",
		})
	}
	return violations
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return "Product name is required"
		}
		return "Name must be between 2 and 100 characters"
	case "Description":
		return "Description cannot exceed 500 characters"
	case "Price":
		if fe.Tag() == "required" {
			return "Price is required"
		}
		return "Price must be between 0.01 and 999999.99"
	}
	return fe.Error()
}

func hasTwoDecimalPrecision(price float64) bool {
	cents := price * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
