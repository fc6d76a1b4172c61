package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// usphone passes when the value carries exactly 10 digits, however formatted.
	_ = validate.RegisterValidation("usphone", func(fl validator.FieldLevel) bool {
		return CountDigits(fl.Field().String()) == 10
	})
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// CountDigits returns the number of ASCII digits in s.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// NotBlank reports whether s contains any non-whitespace character.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
