// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator checks the shape of bound request DTOs. Business rules stay in the entities.
type RequestValidator struct {
	validate *playground.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: v}
}

// Validate reports the first failing field as a validation error.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := errors.AsType[playground.ValidationErrors](err); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		reason := "failed " + fe.Tag() + " check"
		if fe.Tag() == "required" {
			reason = "must not be empty"
		}

		return domainerrors.NewValidationError(fe.Field(), reason)
	}

	return errors.WithStack(err)
}
