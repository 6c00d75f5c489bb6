package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/SeakMengs/name2ecert/internal/constant"
	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/go-playground/validator/v10"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(fe validator.FieldError, customField *map[string]string) string {
	// convert to custom field if exist
	field := fe.Field()
	if _, ok := (*customField)[field]; ok {
		field = (*customField)[field]
	}

	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%v must be greater than %v", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%v must be less than or equal to %v", field, fe.Param())
	case "cmax":
		return fmt.Sprintf("%v must be at most %v characters, ignoring surrounding whitespace", field, fe.Param())
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace characters", field)
	case "oneof":
		return fmt.Sprintf("%v must be one of: %v", field, fe.Param())
	case "fontName":
		return fmt.Sprintf("%v must be one of the standard fonts", field)
	case "rgbHex":
		return fmt.Sprintf("%v must be a #rrggbb color", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error() // default error
}

/*
GenerateErrorMessages extracts validation errors and returns them as an array of ApiError.
Each ApiError contains the field name and a descriptive error message.

Example output:

	[
	  {
		"field": "Name",
		"message": "Name must not be empty or contain only whitespace characters"
	  }
	]

If a customField map is provided, it will replace the field name with the corresponding custom field name.
Example usage:

	GenerateErrorMessages(err, map[string]string{"name": "CHANGEDFIELDNAME"})

Example output:

	[
	  {
		"field": "CHANGEDFIELDNAME",
		"message": "CHANGEDFIELDNAME must not be empty or contain only whitespace characters"
	  }
	]

Optional Parameters:
- customField (map[string]string): A map to override field names in the error messages.
- fieldName (string): A specific field name to field names in the error messages.
*/
func GenerateErrorMessages(err error, optionalParams ...interface{}) []ApiError {
	var customField map[string]string
	var fieldName string

	// Parse optional parameters
	for _, param := range optionalParams {
		switch v := param.(type) {
		case map[string]string:
			customField = v
		case string:
			fieldName = v
		}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			field := fe.Field()
			// Use customField if specified and the field exists in the map
			if customField != nil {
				if customFieldName, ok := customField[field]; ok {
					field = customFieldName
				}
			}
			out[i] = ApiError{field, msgForTag(fe, &customField)}
		}
		return out
	}

	if field := fieldForEngineError(err); field != "" && fieldName == "" {
		fieldName = field
	}

	return []ApiError{
		{
			Field: func() string {
				if fieldName != "" {
					return fieldName
				} else {
					return "Unknown"
				}
			}(),
			Message: err.Error(),
		},
	}
}

// fieldForEngineError names the upload an engine error is about.
func fieldForEngineError(err error) string {
	switch {
	case errors.Is(err, ecert.ErrDecode),
		errors.Is(err, ecert.ErrMultiPage),
		errors.Is(err, ecert.ErrDimensionMismatch):
		return constant.FORM_TEMPLATE_FILE
	case errors.Is(err, ecert.ErrHeaderMismatch),
		errors.Is(err, ecert.ErrEmptyRecipientList):
		return constant.FORM_CSV_FILE
	case errors.Is(err, ecert.ErrMeasurement),
		errors.Is(err, ecert.ErrPlaceholder):
		return "name"
	}
	return ""
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	// field name. e.g: "email"
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	// get the value of the field
	str := field.String()
	str = strings.TrimSpace(str)

	if len(str) == 0 {
		return false
	} else {
		return true
	}
}

// check if string has length of at most the maximum value, after trimming spaces
// Usage: `binding:"cmax=3"`
func CustomMax(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	str := field.String()

	maxLengthStr := fl.Param()

	// Trim spaces from both sides of the string
	trimmedValue := strings.TrimSpace(str)
	maxLengthInt, err := strconv.Atoi(maxLengthStr)

	if err != nil {
		return false
	}

	return utf8.RuneCountInString(trimmedValue) <= maxLengthInt
}

// check if string is one of the standard font names
// Usage: `binding:"fontName"`
func FontName(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	_, err := ecert.ParseFontID(field.String())
	return err == nil
}

// check if string is a six digit hex color, the leading # is optional
// Usage: `binding:"rgbHex"`
func RGBHex(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	_, err := ecert.ParseHexColor(field.String())
	return err == nil
}

// RegisterValidations adds the custom binding tags to v.
func RegisterValidations(v *validator.Validate) error {
	validations := map[string]validator.Func{
		"strNotEmpty": StrNotEmpty,
		"cmax":        CustomMax,
		"fontName":    FontName,
		"rgbHex":      RGBHex,
	}

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register validation %s: %w", tag, err)
		}
	}

	return nil
}
