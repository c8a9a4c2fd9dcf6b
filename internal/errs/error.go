package errs

import (
	"errors"
)

// Business rejections and guard failures. All of them are recovered at the
// handler boundary and returned as 4xx bodies; none crashes the process.
var (
	ErrNotFound               = errors.New("not found")
	ErrNoCopiesAvailable      = errors.New("no copies available")
	ErrDuplicateActiveRequest = errors.New("active request for this title already exists")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrForbidden              = errors.New("actor is not allowed to perform this transition")
)
