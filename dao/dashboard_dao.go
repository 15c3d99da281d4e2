// dao/dashboard_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/rohanverma/dashgate/audit"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
	dashgate_neo4j "github.com/rohanverma/dashgate/model/neo4j"
)

// DashboardDAO persists dashboards as single rows: an identifier, a label
// and one JSON configuration document holding the widget map and the
// embedded permission tables. Consumers always read or replace the
// document as a whole.
type DashboardDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewDashboardDAO(driver neo4j.Driver, auditService audit.Service) *DashboardDAO {
	dao := &DashboardDAO{Driver: driver, AuditService: auditService}
	// Ensure unique constraint on Dashboard identifier
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint", zap.Error(err))
	}
	return dao
}

// EnsureUniqueConstraint ensures the unique constraint on the Dashboard identifier
func (dao *DashboardDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Dashboard identifier")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("Failed to close Neo4j session", zap.Error(err))
		}
	}()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_dashboard_identifier IF NOT EXISTS
        FOR (d:` + dashgate_neo4j.LabelDashboard + `) REQUIRE d.identifier IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		if err != nil {
			logger.Error("Failed to create unique constraint", zap.Error(err))
			return nil, fmt.Errorf("failed to create unique constraint: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Dashboard identifier", zap.Error(err))
		return err
	}

	logger.Info("Successfully ensured unique constraint on Dashboard identifier")
	return nil
}

// CreateDashboard creates a dashboard row from a template, copying its
// declared widget types into fresh widget instances with empty grants.
// Identifiers are random UUIDs rather than content hashes so that
// concurrent creation cannot collide.
func (dao *DashboardDAO) CreateDashboard(ctx context.Context, template model.Template, userID string) (*model.Dashboard, error) {
	start := time.Now()
	logger.Info("Creating new dashboard", zap.String("template", template.Identifier))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	dashboard := &model.Dashboard{
		Identifier: uuid.New().String(),
		Label:      template.Label,
		Configuration: model.DashboardConfiguration{
			Widgets: make(map[string]model.WidgetInstance, len(template.Widgets)),
		},
	}
	for _, widgetType := range template.Widgets {
		dashboard.Configuration.Widgets[uuid.New().String()] = model.WidgetInstance{
			Identifier: widgetType,
		}
	}

	configuration, err := dashboard.EncodeConfiguration()
	if err != nil {
		return nil, err
	}

	_, err = session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		createQuery := `
        CREATE (d:` + dashgate_neo4j.LabelDashboard + ` {identifier: $identifier, label: $label, configuration: $configuration})
        RETURN d.identifier as identifier
        `
		parameters := map[string]interface{}{
			"identifier":    dashboard.Identifier,
			"label":         dashboard.Label,
			"configuration": configuration,
		}
		createResult, err := transaction.Run(createQuery, parameters)
		if err != nil {
			return nil, dashgate_errors.ErrDatabaseOperation
		}
		if createResult.Next() {
			return dashboard.Identifier, nil
		}
		return nil, dashgate_errors.ErrInternalServer
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create dashboard",
			zap.Error(err),
			zap.String("template", template.Identifier),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Dashboard created successfully",
		zap.String("dashboardID", dashboard.Identifier),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     userID,
		Action:     "CREATE_DASHBOARD",
		ResourceID: dashboard.Identifier,
	}
	if err := dao.AuditService.LogChange(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}
	return dashboard, nil
}

// GetDashboard fetches a single dashboard row by identifier.
func (dao *DashboardDAO) GetDashboard(ctx context.Context, identifier string) (*model.Dashboard, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:` + dashgate_neo4j.LabelDashboard + ` {identifier: $identifier})
        RETURN d
        `
		queryResult, err := transaction.Run(query, map[string]interface{}{"identifier": identifier})
		if err != nil {
			return nil, dashgate_errors.ErrDatabaseOperation
		}
		if queryResult.Next() {
			node := queryResult.Record().Values[0].(neo4j.Node)
			return mapNodeToDashboard(node)
		}
		return nil, dashgate_errors.ErrDashboardNotFound
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.Dashboard), nil
}

// GetAllDashboards returns every dashboard row in the store.
func (dao *DashboardDAO) GetAllDashboards(ctx context.Context) ([]*model.Dashboard, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:` + dashgate_neo4j.LabelDashboard + `)
        RETURN d
        `
		queryResult, err := transaction.Run(query, nil)
		if err != nil {
			return nil, dashgate_errors.ErrDatabaseOperation
		}
		var dashboards []*model.Dashboard
		for queryResult.Next() {
			node := queryResult.Record().Values[0].(neo4j.Node)
			dashboard, err := mapNodeToDashboard(node)
			if err != nil {
				return nil, err
			}
			dashboards = append(dashboards, dashboard)
		}
		return dashboards, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*model.Dashboard), nil
}

// UpdateWidgets replaces the widget map of a dashboard. The configuration
// column is rewritten as a whole document; there is no per-widget merge.
func (dao *DashboardDAO) UpdateWidgets(ctx context.Context, identifier string, widgets map[string]model.WidgetInstance, userID string) (*model.Dashboard, error) {
	start := time.Now()
	logger.Info("Updating dashboard widgets", zap.String("dashboardID", identifier))

	dashboard, err := dao.GetDashboard(ctx, identifier)
	if err != nil {
		return nil, err
	}
	dashboard.Configuration.Widgets = widgets

	configuration, err := dashboard.EncodeConfiguration()
	if err != nil {
		return nil, err
	}

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err = session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:` + dashgate_neo4j.LabelDashboard + ` {identifier: $identifier})
        SET d.configuration = $configuration
        RETURN d.identifier as identifier
        `
		parameters := map[string]interface{}{
			"identifier":    identifier,
			"configuration": configuration,
		}
		updateResult, err := transaction.Run(query, parameters)
		if err != nil {
			return nil, dashgate_errors.ErrDatabaseOperation
		}
		if updateResult.Next() {
			return identifier, nil
		}
		return nil, dashgate_errors.ErrDashboardNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update dashboard widgets",
			zap.Error(err),
			zap.String("dashboardID", identifier),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Dashboard widgets updated successfully",
		zap.String("dashboardID", identifier),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     userID,
		Action:     "UPDATE_DASHBOARD_WIDGETS",
		ResourceID: identifier,
	}
	if err := dao.AuditService.LogChange(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}
	return dashboard, nil
}

// DeleteDashboard removes a dashboard row. Widget instances and their
// grants live inside the configuration document, so they go with it.
func (dao *DashboardDAO) DeleteDashboard(ctx context.Context, identifier string, userID string) error {
	start := time.Now()
	logger.Info("Deleting dashboard", zap.String("dashboardID", identifier))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:` + dashgate_neo4j.LabelDashboard + ` {identifier: $identifier})
        WITH d, d.identifier as identifier
        DELETE d
        RETURN identifier
        `
		deleteResult, err := transaction.Run(query, map[string]interface{}{"identifier": identifier})
		if err != nil {
			return nil, dashgate_errors.ErrDatabaseOperation
		}
		if deleteResult.Next() {
			return identifier, nil
		}
		return nil, dashgate_errors.ErrDashboardNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete dashboard",
			zap.Error(err),
			zap.String("dashboardID", identifier),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Dashboard deleted successfully",
		zap.String("dashboardID", identifier),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     userID,
		Action:     "DELETE_DASHBOARD",
		ResourceID: identifier,
	}
	if err := dao.AuditService.LogChange(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}
	return nil
}

// WidgetPermissions scans every dashboard row for the widget instance with
// the given hash and returns its embedded permission table. Widget hashes
// are unique across dashboards, so first match is equivalent to unique
// match. No match yields an empty table, not an error: a resource without
// grants is a neutral state left to the decision point's default.
func (dao *DashboardDAO) WidgetPermissions(ctx context.Context, widgetHash string) (model.PermissionTable, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:` + dashgate_neo4j.LabelDashboard + `)
        RETURN d.configuration as configuration
        `
		queryResult, err := transaction.Run(query, nil)
		if err != nil {
			return nil, dashgate_errors.ErrDatabaseOperation
		}
		for queryResult.Next() {
			raw, _ := queryResult.Record().Get("configuration")
			configuration, err := model.DecodeConfiguration(stringValue(raw))
			if err != nil {
				return nil, err
			}
			if widget, exists := configuration.Widgets[widgetHash]; exists {
				if widget.Permissions == nil {
					return model.PermissionTable{}, nil
				}
				return widget.Permissions, nil
			}
		}
		return model.PermissionTable{}, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(model.PermissionTable), nil
}

// DashboardPermissions returns the dashboard-scoped permission table of a
// single row, or an empty table if the row or the field is absent.
func (dao *DashboardDAO) DashboardPermissions(ctx context.Context, dashboardIdentifier string) (model.PermissionTable, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:` + dashgate_neo4j.LabelDashboard + ` {identifier: $identifier})
        RETURN d.configuration as configuration
        `
		queryResult, err := transaction.Run(query, map[string]interface{}{"identifier": dashboardIdentifier})
		if err != nil {
			return nil, dashgate_errors.ErrDatabaseOperation
		}
		if queryResult.Next() {
			raw, _ := queryResult.Record().Get("configuration")
			configuration, err := model.DecodeConfiguration(stringValue(raw))
			if err != nil {
				return nil, err
			}
			if configuration.Permissions == nil {
				return model.PermissionTable{}, nil
			}
			return configuration.Permissions, nil
		}
		return model.PermissionTable{}, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(model.PermissionTable), nil
}

func mapNodeToDashboard(node neo4j.Node) (*model.Dashboard, error) {
	identifier, _ := node.Props[dashgate_neo4j.PropIdentifier].(string)
	label, _ := node.Props[dashgate_neo4j.PropLabel].(string)
	raw, _ := node.Props[dashgate_neo4j.PropConfiguration].(string)

	configuration, err := model.DecodeConfiguration(raw)
	if err != nil {
		return nil, fmt.Errorf("dashboard %s: %w", identifier, err)
	}
	return &model.Dashboard{
		Identifier:    identifier,
		Label:         label,
		Configuration: configuration,
	}, nil
}

func stringValue(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}
