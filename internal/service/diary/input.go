package diary

import (
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// AddEntryInput carries the data to record a meal entry.
// Time is optional; a zero value means "now".
type AddEntryInput struct {
	FoodID uuid.UUID
	Date   time.Time
	Time   time.Time
}

// Validate checks the input.
func (in AddEntryInput) Validate() error {
	var errs []domain.FieldError

	if in.FoodID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "food_id", Message: "is required"})
	}
	if in.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
