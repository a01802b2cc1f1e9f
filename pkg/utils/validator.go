package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json name so errors match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if err.Kind() == reflect.Slice {
			return fmt.Sprintf("Must contain at least %s item(s)", err.Param())
		}
		return fmt.Sprintf("Minimum value is %s", err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("Maximum length is %s", err.Param())
		}
		return fmt.Sprintf("Maximum value is %s", err.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "e164":
		return "Invalid phone number"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
