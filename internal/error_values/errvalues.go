package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource has different owner")
	ErrEntryNotFound    = errors.New("entry doesn't exists")
	ErrInvalidTimezone  = errors.New("unknown timezone name")
)
