package models

import "errors"

// ErrUnknownEnum is returned when a stored string does not belong to the
// closed set of a typed enum.
var ErrUnknownEnum = errors.New("unknown enum value")
