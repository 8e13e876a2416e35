package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"mcq-quiz/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs against their `validate` tags and
// reports failures as domain.ValidationErrors.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and returns nil when it is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewInternalError("validation failed", err)
	}
	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(field)
	case "email":
		return domain.NewInvalidFormatError(field, fe.Value())
	case "min":
		return domain.NewInvalidValueError(field, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
	case "max":
		return domain.NewInvalidValueError(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	default:
		return domain.NewInvalidValueError(field, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
	}
}

// ParseLimit parses the quiz limit query value. An empty value yields def;
// zero or negative means no cap.
func ParseLimit(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
	}
	return n, nil
}
