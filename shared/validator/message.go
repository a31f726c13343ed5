package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":     "{field} is required",
		"gte":          "{field} must be greater than or equal to {param}",
		"lte":          "{field} must be less than or equal to {param}",
		"oneof":        "{field} must be one of {param}",
		"max":          "{field} must be at most {param} characters",
		"min":          "{field} must be at least {param} characters",
		"uuid":         "{field} must be a valid UUID",
		"url":          "{field} must be a valid URL",
		"calendardate": "{field} must be a date in YYYY-MM-DD format",
		"empty":        "{field} cannot be changed",
	}
)

// message returns the offending field and a readable message for the first validation error.
func message(err error) (string, string) {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return field, errStr
			}
		}

		return valErrors[0].Field(), valErrors.Error()
	}

	return "", err.Error()
}
