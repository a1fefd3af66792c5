package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/imovelhub/backoffice-api/internal/domain"
)

var validate = validator.New()

const (
	timestampTag = "datetime=" + domain.TimestampLayout
	dateTag      = "datetime=" + domain.DateLayout
)

// fieldErrors accumulates field-level validation failures so a payload is
// rejected with every problem reported at once.
type fieldErrors map[string]string

// merge folds the fields of a RequireFields result into the map.
func (fe fieldErrors) merge(err *domain.ValidationError) {
	if err == nil {
		return
	}
	for field, msg := range err.Fields {
		fe[field] = msg
	}
}

// checkVar validates value against a validator tag and records msg under
// field on failure. Callers only pass values that were actually supplied.
func (fe fieldErrors) checkVar(field, value, tag, msg string) {
	if err := validate.Var(value, tag); err != nil {
		fe[field] = msg
	}
}

// asError converts the accumulated failures into a ValidationError, or nil
// when the payload passed.
func (fe fieldErrors) asError() error {
	if len(fe) == 0 {
		return nil
	}
	return domain.NewValidationError(fe)
}
