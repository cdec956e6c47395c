package errors

import (
	"errors"
)

var (
	ErrNilValue     = errors.New("nil value")
	ErrNoSuchMember = errors.New("no such member")
)
