// Package validator translates go-playground binding failures into the same
// field→message maps the domain rule tables produce, so handlers surface both
// kinds of violation identically.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidDate reports whether s is a real calendar date in ISO form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidTime reports whether s is a wall-clock time as HH:MM.
func ValidTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// Fields extracts a field→message map from a validation error. Non-validation
// errors (malformed JSON and the like) yield nil.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[snakeCase(fe.Field())] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	name := strings.ReplaceAll(snakeCase(fe.Field()), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", title(name))
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", title(name), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s.", title(name), fe.Param())
	case "email":
		return "Please enter a valid email address."
	default:
		return fmt.Sprintf("%s is invalid.", title(name))
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
