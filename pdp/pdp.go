// pdp/pdp.go
package pdp

import (
	"context"

	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	"github.com/rohanverma/dashgate/model"
)

// PolicyDecisionPoint combines the permission attributes attached to a
// resource into a final verdict for one action. The combination algorithm
// is owned by the host; DenyOverrides is the in-process default.
type PolicyDecisionPoint interface {
	Authorize(ctx context.Context, resource attribute.Resource, action string) (Decision, error)
}

// DenyOverrides combines permission attributes with deny taking precedence
// over permit. The attached attribute list is treated as a set; attachment
// order carries no meaning.
type DenyOverrides struct{}

func NewDenyOverrides() *DenyOverrides {
	return &DenyOverrides{}
}

func (d *DenyOverrides) Authorize(ctx context.Context, resource attribute.Resource, action string) (Decision, error) {
	permitted := false
	for _, permission := range resource.Permissions() {
		if permission.Action != action {
			continue
		}
		switch permission.State {
		case model.StateDeny:
			return Deny("denied for principal " + permission.Principal.Identifier()), nil
		case model.StatePermit:
			permitted = true
		}
	}
	if permitted {
		return Permit("permitted with no overriding deny"), nil
	}
	return NotApplicable(), nil
}
