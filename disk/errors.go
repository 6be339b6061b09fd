package disk

import "errors"

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("disk: invalid option supplied")
