// accesscontrol/attribute/permission.go
package attribute

import "github.com/rohanverma/dashgate/model"

// Permission is an immutable fact linking a principal, a resource name, an
// action and a permit/deny state. Instances are created fresh per resolution
// call and discarded once the decision point has consumed them.
type Permission struct {
	Principal PrincipalAttribute
	Resource  string
	Action    string
	State     model.PermissionState
}
