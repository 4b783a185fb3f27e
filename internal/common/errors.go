package common

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound is returned when a referenced entity does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrNotPermitted is returned when the acting user does not own the
	// entity, or when ownership cannot be established at all.
	ErrNotPermitted = errors.New("not permitted")
)

type ValidationError struct {
	Errors map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %+v", e.Errors)
}
