package utils

import (
	"errors"
	"reflect"
	"strings"

	"coursereview/backend/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return models.IsValidGrade(fl.Field().String())
	})
	return v
}

// Validate checks s against its `validate` tags and returns one message per
// failing field, keyed by JSON name. A nil map means s is valid.
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		if _, seen := out[e.Field()]; !seen {
			out[e.Field()] = formatValidationError(e)
		}
	}
	return out
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if e.Kind() == reflect.String {
			return "Field must be at least " + e.Param() + " characters long."
		}
		return "Number must be at least " + e.Param() + "."
	case "max":
		if e.Kind() == reflect.String {
			return "Field cannot be longer than " + e.Param() + " characters."
		}
		return "Number must be at most " + e.Param() + "."
	case "email":
		return "Invalid email address."
	case "eqfield":
		return "Field must be equal to " + toSnake(e.Param()) + "."
	case "grade":
		return "Grade must be one of " + strings.Join(models.Grades, ", ") + "."
	default:
		return "Invalid value (" + e.Tag() + ")."
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
