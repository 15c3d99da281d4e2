// model/dashboard_test.go
package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanverma/dashgate/model"
)

func TestConfigurationCodec(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		dashboard := model.Dashboard{
			Identifier: "d1",
			Label:      "My dashboard",
			Configuration: model.DashboardConfiguration{
				Widgets: map[string]model.WidgetInstance{
					"w-abc": {
						Identifier: "rss-news",
						Config:     []byte(`{"limit":5}`),
						Permissions: model.PermissionTable{
							"be_user:1": {"widget:view": model.StatePermit},
						},
					},
				},
				Permissions: model.PermissionTable{
					"be_group:2": {"dashboard:view": model.StateDeny},
				},
			},
		}

		raw, err := dashboard.EncodeConfiguration()
		assert.NoError(t, err)

		decoded, err := model.DecodeConfiguration(raw)
		assert.NoError(t, err)
		assert.Equal(t, dashboard.Configuration, decoded)
	})

	t.Run("EmptyDocumentYieldsEmptyWidgetMap", func(t *testing.T) {
		decoded, err := model.DecodeConfiguration("")
		assert.NoError(t, err)
		assert.NotNil(t, decoded.Widgets)
		assert.Empty(t, decoded.Widgets)
	})

	t.Run("MalformedDocumentFails", func(t *testing.T) {
		_, err := model.DecodeConfiguration("{not json")
		assert.Error(t, err)
	})
}

func TestPermissionTableFlatten(t *testing.T) {
	table := model.PermissionTable{
		"be_user:1": {
			"dashboard:view": model.StatePermit,
			"dashboard:edit": model.StateDeny,
		},
		"be_group:2": {
			"dashboard:view": model.StatePermit,
		},
	}

	entries := table.Flatten()
	assert.Len(t, entries, 3)
	assert.Contains(t, entries, model.PermissionEntry{Principal: "be_user:1", Action: "dashboard:edit", State: model.StateDeny})
	assert.Contains(t, entries, model.PermissionEntry{Principal: "be_group:2", Action: "dashboard:view", State: model.StatePermit})

	t.Run("EmptyTable", func(t *testing.T) {
		assert.Empty(t, model.PermissionTable{}.Flatten())
	})
}

func TestPermissionStateValid(t *testing.T) {
	assert.True(t, model.StatePermit.Valid())
	assert.True(t, model.StateDeny.Valid())
	assert.False(t, model.PermissionState("allow").Valid())
	assert.False(t, model.PermissionState("").Valid())
}
