package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// DefaultLanguage selects the message table when no language is passed.
var DefaultLanguage = "es"

func init() {
	validate = validator.New()
}

// errorMessages is a nested map of languages to validation tags to custom error messages.
var errorMessages = map[string]map[string]string{
	"en": {
		"required": "The field '%s' is required.",
		"email":    "The field '%s' must be a valid email address.",
		"min":      "The field '%s' must be at least %s.",
		"max":      "The field '%s' must be no longer than %s characters.",
		"lte":      "The field '%s' must be less than or equal to %s.",
		"gte":      "The field '%s' must be greater than or equal to %s.",
		"gt":       "The field '%s' must be greater than %s.",
		"lt":       "The field '%s' must be less than %s.",
		"null":     "The field '%s' cannot be null.",
		"type":     "The field '%s' has an invalid type.",
	},
	"es": {
		"required": "El campo '%s' es obligatorio.",
		"email":    "El campo '%s' debe ser un correo electrónico válido.",
		"min":      "El campo '%s' debe ser como mínimo %s.",
		"max":      "El campo '%s' no puede superar %s caracteres.",
		"lte":      "El campo '%s' debe ser menor o igual que %s.",
		"gte":      "El campo '%s' debe ser mayor o igual que %s.",
		"gt":       "El campo '%s' debe ser mayor que %s.",
		"lt":       "El campo '%s' debe ser menor que %s.",
		"null":     "El campo '%s' no puede ser nulo.",
		"type":     "El campo '%s' tiene un tipo no válido.",
	},
}

func language(lang []string) string {
	if len(lang) > 0 && lang[0] != "" {
		return lang[0]
	}
	return DefaultLanguage
}

// message renders the message for a tag, falling back to a generic one.
func message(field, tag, param string, lang ...string) string {
	if msgs, exists := errorMessages[language(lang)]; exists {
		if msg, exists := msgs[tag]; exists {
			switch strings.Count(msg, "%s") {
			case 1:
				return fmt.Sprintf(msg, field)
			case 2:
				return fmt.Sprintf(msg, field, param)
			}
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, tag)
}

// Message returns the translated message for a tag such as "null" or "required".
func Message(field, tag string, lang ...string) string {
	return message(field, tag, "", lang...)
}

// jsonName resolves the JSON key of a struct field, falling back to the Go name.
func jsonName(t reflect.Type, structField string) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return structField
	}
	field, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	tag := strings.Split(field.Tag.Get("json"), ",")[0]
	if tag == "" || tag == "-" {
		return structField
	}
	return tag
}

// ValidateStruct validates a struct and returns a map of JSON field names to friendly error messages.
func ValidateStruct(s any, lang ...string) map[string]string {
	return TranslateErrors(s, validate.Struct(s), lang...)
}

// TranslateErrors converts a validation or JSON decoding error for s into
// a map of JSON field names to messages. Errors that do not concern a
// specific field yield an empty map.
func TranslateErrors(s any, err error, lang ...string) map[string]string {
	validationErrors := make(map[string]string)
	if err == nil {
		return validationErrors
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		structType := reflect.TypeOf(s)
		for _, e := range validationErrs {
			name := jsonName(structType, e.StructField())
			validationErrors[name] = message(name, e.Tag(), e.Param(), lang...)
		}
		return validationErrors
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		validationErrors[typeErr.Field] = message(typeErr.Field, "type", "", lang...)
	}
	return validationErrors
}

// Var validates a single value against tag. It returns an empty string when
// the value is valid and the translated message otherwise.
func Var(field string, value any, tag string, lang ...string) string {
	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		return message(field, e.Tag(), e.Param(), lang...)
	}
	return message(field, "invalid", "", lang...)
}
