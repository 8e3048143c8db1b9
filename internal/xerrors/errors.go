package xerrors

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
