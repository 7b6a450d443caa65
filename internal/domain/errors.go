package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrWorkNotFound   = errors.New("work not found")
	ErrShelfNotFound  = errors.New("shelf not found")
	ErrRatingNotFound = errors.New("rating not found")
)

// ValidationError marks rejected input. It must stay distinguishable from
// the not-found sentinels so the HTTP layer can map them to different
// status codes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
