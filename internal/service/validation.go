package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "eurobot-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationFailed converts validator output into an apperrors.ValidationError naming the first bad field
func validationFailed(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed on '%s'", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on '%s=%s'", fe.Tag(), fe.Param())
		}
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError(lowerFirst(fe.Field()), msg))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
