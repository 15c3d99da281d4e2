// pdp/decision.go
package pdp

import "github.com/rohanverma/dashgate/model"

// Decision is the verdict of a policy decision point. A decision that is
// not applicable means no governing rule was found; callers must treat that
// as a configuration error and never map it to a silent permit or deny.
type Decision struct {
	Applicable bool                  `json:"applicable"`
	Value      model.PermissionState `json:"value,omitempty"`
	Reason     string                `json:"reason,omitempty"`
}

func NotApplicable() Decision {
	return Decision{Applicable: false, Reason: "no matching permission attributes"}
}

func Permit(reason string) Decision {
	return Decision{Applicable: true, Value: model.StatePermit, Reason: reason}
}

func Deny(reason string) Decision {
	return Decision{Applicable: true, Value: model.StateDeny, Reason: reason}
}
