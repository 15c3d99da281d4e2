// accesscontrol/principal/resolver.go
package principal

import (
	"strconv"
	"strings"

	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
)

// Resolve converts a compound identifier string ("be_user:7", "be_group:3")
// into a typed principal attribute. It is a pure function and fails closed
// on anything it does not recognize.
func Resolve(identifier string) (attribute.PrincipalAttribute, error) {
	segments := strings.Split(identifier, ":")
	if len(segments) != 2 {
		return attribute.PrincipalAttribute{}, dashgate_errors.ErrMalformedIdentifier
	}

	id, err := strconv.Atoi(segments[1])
	if err != nil || id < 0 {
		// The id segment must be a non-negative integer, but the type
		// segment is checked first so that "foo:x" reports the unknown type.
		if segments[0] != string(attribute.KindUser) && segments[0] != string(attribute.KindGroup) {
			return attribute.PrincipalAttribute{}, dashgate_errors.ErrUnknownPrincipalType
		}
		return attribute.PrincipalAttribute{}, dashgate_errors.ErrInvalidPrincipalID
	}

	switch attribute.PrincipalKind(segments[0]) {
	case attribute.KindUser:
		return attribute.User(id), nil
	case attribute.KindGroup:
		return attribute.Group(id), nil
	default:
		return attribute.PrincipalAttribute{}, dashgate_errors.ErrUnknownPrincipalType
	}
}
