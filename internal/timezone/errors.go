package timezone

import "errors"

var (
	ErrEmptyLocation    = errors.New("location is empty")
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidZone      = errors.New("invalid timezone")
)
