package rest

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yamori/recipebook/internal/domain"
)

// Validator adapts go-playground/validator to echo's Validator interface,
// converting failures into the domain's field-level ValidationError.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := map[string][]string{}
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		fields[name] = append(fields[name], messageFor(fe))
	}
	return domain.ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return "value is too short"
	case "gte":
		return "value must not be negative"
	default:
		return "invalid value"
	}
}
