// pdp/pdp_test.go
package pdp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	"github.com/rohanverma/dashgate/model"
	"github.com/rohanverma/dashgate/pdp"
)

func TestDenyOverrides(t *testing.T) {
	ctx := context.Background()
	decisionPoint := pdp.NewDenyOverrides()

	t.Run("PermitWithoutDeny", func(t *testing.T) {
		resource := attribute.NewDashboard("d1")
		resource.AddPermissions(attribute.Permission{
			Principal: attribute.User(1),
			Resource:  resource.Name(),
			Action:    "dashboard:view",
			State:     model.StatePermit,
		})

		decision, err := decisionPoint.Authorize(ctx, resource, "dashboard:view")
		assert.NoError(t, err)
		assert.True(t, decision.Applicable)
		assert.Equal(t, model.StatePermit, decision.Value)
	})

	t.Run("DenyOverridesPermit", func(t *testing.T) {
		resource := attribute.NewDashboard("d1")
		resource.AddPermissions(
			attribute.Permission{
				Principal: attribute.User(1),
				Resource:  resource.Name(),
				Action:    "dashboard:view",
				State:     model.StatePermit,
			},
			attribute.Permission{
				Principal: attribute.Group(2),
				Resource:  resource.Name(),
				Action:    "dashboard:view",
				State:     model.StateDeny,
			},
		)

		decision, err := decisionPoint.Authorize(ctx, resource, "dashboard:view")
		assert.NoError(t, err)
		assert.True(t, decision.Applicable)
		assert.Equal(t, model.StateDeny, decision.Value)
	})

	t.Run("DenyWinsRegardlessOfOrder", func(t *testing.T) {
		resource := attribute.NewDashboard("d1")
		resource.AddPermissions(
			attribute.Permission{
				Principal: attribute.Group(2),
				Resource:  resource.Name(),
				Action:    "dashboard:view",
				State:     model.StateDeny,
			},
			attribute.Permission{
				Principal: attribute.User(1),
				Resource:  resource.Name(),
				Action:    "dashboard:view",
				State:     model.StatePermit,
			},
		)

		decision, err := decisionPoint.Authorize(ctx, resource, "dashboard:view")
		assert.NoError(t, err)
		assert.Equal(t, model.StateDeny, decision.Value)
	})

	t.Run("NoAttributesIsNotApplicable", func(t *testing.T) {
		resource := attribute.NewDashboard("d1")

		decision, err := decisionPoint.Authorize(ctx, resource, "dashboard:view")
		assert.NoError(t, err)
		assert.False(t, decision.Applicable)
	})

	t.Run("OtherActionsDoNotApply", func(t *testing.T) {
		resource := attribute.NewDashboard("d1")
		resource.AddPermissions(attribute.Permission{
			Principal: attribute.User(1),
			Resource:  resource.Name(),
			Action:    "dashboard:edit",
			State:     model.StatePermit,
		})

		decision, err := decisionPoint.Authorize(ctx, resource, "dashboard:view")
		assert.NoError(t, err)
		assert.False(t, decision.Applicable)
	})
}
