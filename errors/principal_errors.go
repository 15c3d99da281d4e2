// errors/principal_errors.go
package errors

import "errors"

var (
	ErrMalformedIdentifier  = errors.New("malformed principal identifier")
	ErrUnknownPrincipalType = errors.New("unknown principal type")
	ErrInvalidPrincipalID   = errors.New("invalid principal id")
)
