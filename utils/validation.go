package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage turns a gin binding failure into a caller-readable
// message, listing each failed field when the underlying error carries them.
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body. Ensure all required fields are filled."
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("'%s' is required", fe.Field()))
		case "gt", "gte", "lt", "lte":
			parts = append(parts, fmt.Sprintf("'%s' must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("'%s' is invalid", fe.Field()))
		}
	}
	return "Invalid request body: " + strings.Join(parts, "; ") + "."
}
