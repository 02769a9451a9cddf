package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func formatFieldName(s string) string {
	// hire_date -> Hire Date
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts validator errors into a single AppError carrying
// every failed field, so the caller gets all reasons at once instead of only
// the first.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fields := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			// e.Field() sudah otomatis nama json (lihat Init)
			human := formatFieldName(e.Field())

			var msg string
			switch e.Tag() {
			case "required":
				msg = human + " is required"
			case "gte", "min":
				msg = human + " is below the allowed minimum"
			case "lte", "max":
				msg = human + " is above the allowed maximum"
			default:
				msg = human + " is invalid"
			}
			fields = append(fields, FieldError{Field: e.Field(), Message: msg})
		}

		first := New(CodeValidationFailed, fields[0].Message, http.StatusBadRequest)
		return first.WithDetails(fields)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
