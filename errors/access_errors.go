// errors/access_errors.go
package errors

import "errors"

var (
	// ErrNoApplicablePolicy means the decision point found no governing rule
	// for a request. Call sites must treat this as a configuration error,
	// never as a silent permit or deny.
	ErrNoApplicablePolicy = errors.New("no applicable policy found")

	ErrAccessDenied = errors.New("access denied")
)
