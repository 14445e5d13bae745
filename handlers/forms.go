package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// AddForm collects the free-text title to search for.
type AddForm struct {
	Title string `validate:"required"`
}

// EditForm carries the rating and review. Both must be present; the rating is
// not range-checked (it is stored as provided and coerced by the column).
type EditForm struct {
	Rating string `validate:"required"`
	Review string `validate:"required"`
}

// fieldErrors validates a form struct and returns one message per failing
// field, keyed by field name, for template display.
func (a *App) fieldErrors(form any) map[string]string {
	err := a.Validate.Struct(form)
	if err == nil {
		return nil
	}

	msgs := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			msgs[fe.Field()] = "This field is required."
		}
	} else {
		msgs[""] = err.Error()
	}

	return msgs
}
