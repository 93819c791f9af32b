package dtos

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is the public shape of one failed rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validate runs the struct's validate tags. The returned details are
// nil when v is valid.
func Validate(v any) ([]FieldError, error) {
	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field: lowerFirst(fe.Field()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return details, err
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
