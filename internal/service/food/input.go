package food

import (
	"github.com/okravets/caltrack-backend/internal/domain"
)

// CreateInput holds parameters for the food create operation.
type CreateInput struct {
	Name     string
	ImageURL *string
	MealType domain.MealType
	Calories int
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.ImageURL != nil && len(*i.ImageURL) > 512 {
		errs = append(errs, domain.FieldError{Field: "image_url", Message: "too long"})
	}

	if !i.MealType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal_type", Message: "invalid meal type"})
	}

	if i.Calories < 0 || i.Calories > domain.MaxFoodCalories {
		errs = append(errs, domain.FieldError{Field: "calories", Message: "must be between 0 and 10000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for the food update operation.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Name     *string
	ImageURL *string
	MealType *domain.MealType
	Calories *int
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.ImageURL != nil && len(*i.ImageURL) > 512 {
		errs = append(errs, domain.FieldError{Field: "image_url", Message: "too long"})
	}

	if i.MealType != nil && !i.MealType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal_type", Message: "invalid meal type"})
	}

	if i.Calories != nil && (*i.Calories < 0 || *i.Calories > domain.MaxFoodCalories) {
		errs = append(errs, domain.FieldError{Field: "calories", Message: "must be between 0 and 10000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply copies the provided fields onto the food.
func (i UpdateInput) apply(f *domain.Food) {
	if i.Name != nil {
		f.Name = *i.Name
	}
	if i.ImageURL != nil {
		f.ImageURL = i.ImageURL
	}
	if i.MealType != nil {
		f.MealType = *i.MealType
	}
	if i.Calories != nil {
		f.Calories = *i.Calories
	}
}
