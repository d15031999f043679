package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseError turns gin binding errors into a field-to-message map.
func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("field '%s' failed validation on the '%s' rule", fe.Field(), fe.Tag())
		}
	} else if err != nil {
		errors["error"] = err.Error()
	}
	return errors
}
