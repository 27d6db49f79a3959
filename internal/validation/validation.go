// Package validation checks submitted forms and API bodies and reports
// violations per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.]*$`)

// Errors maps a field name to its violations.
type Errors map[string][]string

// Add records a violation of field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty reports whether no violation was recorded.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// First returns the first violation of field, or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Validator validates structs by their validate tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom username rule registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Struct validates s. It returns an empty map when s is valid.
func (v *Validator) Struct(s any) Errors {
	errs := Errors{}

	err := v.validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("_", err.Error())
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	case "username":
		return "Usernames must have only letters, numbers, dots or underscores"
	case "eqfield":
		return "Passwords must match."
	default:
		return "Invalid value."
	}
}

// fieldName reports fields by their json name, or snake_case of the Go
// name for form-only structs.
func fieldName(f reflect.StructField) string {
	if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
		return tag
	}
	return snake(f.Name)
}

func snake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
