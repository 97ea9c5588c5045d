package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the journal's custom binding validations on
// gin's validator engine.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("calendardate", validCalendarDate)
}

// validCalendarDate accepts date-only strings; trade dates carry no
// time-of-day.
func validCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
