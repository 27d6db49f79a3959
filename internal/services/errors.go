package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/sbilibin2017/teaflask/internal/validation"
)

// Error variables
var (
	ErrNotFound           = errors.New("not found")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("the link is invalid or has expired")
	ErrNoDrinkablePot     = errors.New("no drinkable pot")
)

// ValidationError carries the rejected fields of a submission.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// invalid wraps non-empty field errors into a *ValidationError.
func invalid(fields validation.Errors) error {
	if fields.Empty() {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// fieldError is a single-field validation failure.
func fieldError(field, message string) error {
	fields := validation.Errors{}
	fields.Add(field, message)
	return &ValidationError{Fields: fields}
}
