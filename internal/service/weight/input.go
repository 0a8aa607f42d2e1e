package weight

import (
	"time"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// LogInput holds parameters for the weight log operation.
type LogInput struct {
	Date     time.Time
	WeightKg float64
}

// Validate validates the log input.
func (i LogInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if normalizeDate(i.Date).After(normalizeDate(now)) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must not be in the future"})
	}

	if i.WeightKg < domain.MinWeightKg || i.WeightKg > domain.MaxWeightKg {
		errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must be between 20 and 500"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
