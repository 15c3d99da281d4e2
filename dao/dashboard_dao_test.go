// dao/dashboard_dao_test.go
package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/rohanverma/dashgate/dao"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
	"github.com/rohanverma/dashgate/test/mock"
)

func newTestDAO(t *testing.T) (*dao.DashboardDAO, *mock.InMemoryDashboardStore, *mock.MockAuditService) {
	t.Helper()
	logger.InitLogger(t.TempDir())
	store := mock.NewInMemoryDashboardStore()
	auditService := new(mock.MockAuditService)
	auditService.On("LogChange", testify_mock.Anything, testify_mock.Anything).Return(nil)
	return dao.NewDashboardDAO(store.Driver(), auditService), store, auditService
}

func encodeConfiguration(t *testing.T, configuration model.DashboardConfiguration) string {
	t.Helper()
	dashboard := model.Dashboard{Configuration: configuration}
	raw, err := dashboard.EncodeConfiguration()
	assert.NoError(t, err)
	return raw
}

func TestDashboardDAO(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateFromTemplate", func(t *testing.T) {
		dashboardDAO, _, auditService := newTestDAO(t)

		template := model.Template{
			Identifier: "template-default",
			Label:      "Default",
			Widgets:    []string{"welcome", "rss-news"},
		}
		created, err := dashboardDAO.CreateDashboard(ctx, template, "be_user:1")
		assert.NoError(t, err)
		assert.NotEmpty(t, created.Identifier)
		assert.Equal(t, "Default", created.Label)
		assert.Len(t, created.Configuration.Widgets, 2)

		types := make(map[string]bool)
		for hash, instance := range created.Configuration.Widgets {
			assert.NotEmpty(t, hash)
			assert.Nil(t, instance.Permissions)
			types[instance.Identifier] = true
		}
		assert.True(t, types["welcome"])
		assert.True(t, types["rss-news"])

		fetched, err := dashboardDAO.GetDashboard(ctx, created.Identifier)
		assert.NoError(t, err)
		assert.Equal(t, created, fetched)

		auditService.AssertCalled(t, "LogChange", testify_mock.Anything, testify_mock.Anything)
	})

	t.Run("GetMissingDashboard", func(t *testing.T) {
		dashboardDAO, _, _ := newTestDAO(t)

		_, err := dashboardDAO.GetDashboard(ctx, "no-such-dashboard")
		assert.ErrorIs(t, err, dashgate_errors.ErrDashboardNotFound)
	})

	t.Run("UpdateWidgetsReplacesWholeDocument", func(t *testing.T) {
		dashboardDAO, _, _ := newTestDAO(t)

		template := model.Template{Identifier: "template-default", Label: "Default", Widgets: []string{"welcome"}}
		created, err := dashboardDAO.CreateDashboard(ctx, template, "be_user:1")
		assert.NoError(t, err)

		replacement := map[string]model.WidgetInstance{
			"w-replacement": {
				Identifier: "rss-news",
				Permissions: model.PermissionTable{
					"be_group:2": {"widget:view": model.StateDeny},
				},
			},
		}
		updated, err := dashboardDAO.UpdateWidgets(ctx, created.Identifier, replacement, "be_user:1")
		assert.NoError(t, err)
		assert.Equal(t, replacement, updated.Configuration.Widgets)

		fetched, err := dashboardDAO.GetDashboard(ctx, created.Identifier)
		assert.NoError(t, err)
		assert.Equal(t, replacement, fetched.Configuration.Widgets)
		assert.NotContains(t, fetched.Configuration.Widgets, firstHash(created.Configuration.Widgets))
	})

	t.Run("UpdateWidgetsMissingDashboard", func(t *testing.T) {
		dashboardDAO, _, _ := newTestDAO(t)

		_, err := dashboardDAO.UpdateWidgets(ctx, "no-such-dashboard", map[string]model.WidgetInstance{}, "be_user:1")
		assert.ErrorIs(t, err, dashgate_errors.ErrDashboardNotFound)
	})

	t.Run("DeleteDashboard", func(t *testing.T) {
		dashboardDAO, _, _ := newTestDAO(t)

		template := model.Template{Identifier: "template-default", Label: "Default", Widgets: []string{"welcome"}}
		created, err := dashboardDAO.CreateDashboard(ctx, template, "be_user:1")
		assert.NoError(t, err)

		err = dashboardDAO.DeleteDashboard(ctx, created.Identifier, "be_user:1")
		assert.NoError(t, err)

		_, err = dashboardDAO.GetDashboard(ctx, created.Identifier)
		assert.ErrorIs(t, err, dashgate_errors.ErrDashboardNotFound)

		err = dashboardDAO.DeleteDashboard(ctx, created.Identifier, "be_user:1")
		assert.ErrorIs(t, err, dashgate_errors.ErrDashboardNotFound)
	})

	t.Run("GetAllDashboards", func(t *testing.T) {
		dashboardDAO, store, _ := newTestDAO(t)

		store.Seed("d-one", "One", encodeConfiguration(t, model.DashboardConfiguration{
			Widgets: map[string]model.WidgetInstance{"w-1": {Identifier: "welcome"}},
		}))
		store.Seed("d-two", "Two", encodeConfiguration(t, model.DashboardConfiguration{
			Widgets: map[string]model.WidgetInstance{"w-2": {Identifier: "rss-news"}},
		}))

		dashboards, err := dashboardDAO.GetAllDashboards(ctx)
		assert.NoError(t, err)
		assert.Len(t, dashboards, 2)
		assert.Equal(t, "d-one", dashboards[0].Identifier)
		assert.Equal(t, "d-two", dashboards[1].Identifier)
	})

	t.Run("WidgetPermissionsScansAllRows", func(t *testing.T) {
		dashboardDAO, store, _ := newTestDAO(t)

		guarded := model.PermissionTable{
			"be_group:2": {"widget:view": model.StateDeny},
			"be_user:1":  {"widget:view": model.StatePermit},
		}
		store.Seed("d-plain", "Plain", encodeConfiguration(t, model.DashboardConfiguration{
			Widgets: map[string]model.WidgetInstance{"w-plain": {Identifier: "welcome"}},
		}))
		store.Seed("d-guarded", "Guarded", encodeConfiguration(t, model.DashboardConfiguration{
			Widgets: map[string]model.WidgetInstance{"w-guarded": {Identifier: "rss-news", Permissions: guarded}},
		}))

		table, err := dashboardDAO.WidgetPermissions(ctx, "w-guarded")
		assert.NoError(t, err)
		assert.Equal(t, guarded, table)

		// A widget without a permission table is a neutral state, not an error.
		table, err = dashboardDAO.WidgetPermissions(ctx, "w-plain")
		assert.NoError(t, err)
		assert.Empty(t, table)

		table, err = dashboardDAO.WidgetPermissions(ctx, "w-absent")
		assert.NoError(t, err)
		assert.Empty(t, table)
	})

	t.Run("DashboardPermissions", func(t *testing.T) {
		dashboardDAO, store, _ := newTestDAO(t)

		grants := model.PermissionTable{
			"be_user:1": {"dashboard:view": model.StatePermit},
		}
		store.Seed("d-granted", "Granted", encodeConfiguration(t, model.DashboardConfiguration{
			Widgets:     map[string]model.WidgetInstance{"w-1": {Identifier: "welcome"}},
			Permissions: grants,
		}))
		store.Seed("d-open", "Open", encodeConfiguration(t, model.DashboardConfiguration{
			Widgets: map[string]model.WidgetInstance{"w-2": {Identifier: "welcome"}},
		}))

		table, err := dashboardDAO.DashboardPermissions(ctx, "d-granted")
		assert.NoError(t, err)
		assert.Equal(t, grants, table)

		table, err = dashboardDAO.DashboardPermissions(ctx, "d-open")
		assert.NoError(t, err)
		assert.Empty(t, table)

		table, err = dashboardDAO.DashboardPermissions(ctx, "d-missing")
		assert.NoError(t, err)
		assert.Empty(t, table)
	})
}

func firstHash(widgets map[string]model.WidgetInstance) string {
	for hash := range widgets {
		return hash
	}
	return ""
}
