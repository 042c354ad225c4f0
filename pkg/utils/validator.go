package util

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hasuppercase", validateHasUppercase)
	Validate.RegisterValidation("datenotbefore", validateDateNotBefore)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	return regexp.MustCompile(`[A-Z]`).MatchString(fl.Field().String())
}

// validateDateNotBefore parses the field and the sibling field named by the
// tag parameter as YYYY-MM-DD dates and checks the field is not earlier.
// gtefield cannot do this: for strings it compares lengths, and two
// YYYY-MM-DD values always have the same length.
func validateDateNotBefore(fl validator.FieldLevel) bool {
	value, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		return false
	}

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	sibling := parent.FieldByName(fl.Param())
	if !sibling.IsValid() || sibling.Kind() != reflect.String {
		return false
	}
	floor, err := time.Parse("2006-01-02", sibling.String())
	if err != nil {
		return false
	}

	return !value.Before(floor)
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

// ValidateStruct runs the validate tags on a payload and maps each failing
// tag to a client-facing message. Returns nil when the payload is valid.
func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse

	err := Validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must be at least %s characters.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must be at most %s characters.", element.Field, err.Param())
			case "email":
				element.Msg = "Invalid email format."
			case "hasuppercase":
				element.Msg = "Password must contain at least one uppercase letter."
			case "datetime":
				element.Msg = fmt.Sprintf("Field '%s' must be a date in YYYY-MM-DD format.", element.Field)
			case "datenotbefore":
				element.Msg = fmt.Sprintf("Field '%s' must not be before '%s'.", element.Field, err.Param())
			case "oneof":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
