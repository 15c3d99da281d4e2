// service/dashboard_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rohanverma/dashgate/config"
	"github.com/rohanverma/dashgate/dao"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
	"github.com/rohanverma/dashgate/util"
	"github.com/rohanverma/dashgate/widgets"
)

// IDashboardService defines the dashboard business operations
type IDashboardService interface {
	CreateDashboard(ctx context.Context, templateID, userID string) (*model.Dashboard, error)
	GetDashboard(ctx context.Context, identifier string) (*model.Dashboard, error)
	ListDashboards(ctx context.Context) ([]*model.Dashboard, error)
	DeleteDashboard(ctx context.Context, identifier, userID string) error
	AddWidget(ctx context.Context, dashboardID, widgetType, userID string) (string, error)
	RemoveWidget(ctx context.Context, dashboardID, widgetHash, userID string) error
	ReplaceWidgets(ctx context.Context, dashboardID string, replacement map[string]model.WidgetInstance, userID string) (*model.Dashboard, error)
	CurrentDashboard(ctx context.Context, userID string) (string, error)
	SetCurrentDashboard(ctx context.Context, userID, identifier string) error
	EnsureDefaultDashboard(ctx context.Context, userID string) (*model.Dashboard, error)
	WidgetRepresentations(ctx context.Context, dashboard *model.Dashboard) (map[string]WidgetRepresentation, error)
}

// WidgetRepresentation is the view data of one placed widget instance.
type WidgetRepresentation struct {
	Identifier string          `json:"identifier"`
	Title      string          `json:"title"`
	Height     int             `json:"height"`
	Width      int             `json:"width"`
	Config     json.RawMessage `json:"config,omitempty"`
}

// DashboardService handles business logic for dashboard operations
type DashboardService struct {
	dashboardDAO    *dao.DashboardDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(dashboardDAO *dao.DashboardDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *DashboardService {
	service := &DashboardService{
		dashboardDAO:    dashboardDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("dashboard.created", service.handleDashboardCreated)
	eventBus.Subscribe("dashboard.updated", service.handleDashboardUpdated)
	eventBus.Subscribe("dashboard.deleted", service.handleDashboardDeleted)

	return service
}

func (s *DashboardService) handleDashboardCreated(ctx context.Context, event util.Event) error {
	dashboard, ok := event.Payload.(model.Dashboard)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Dashboard created event received", zap.String("dashboardID", dashboard.Identifier))

	if err := s.notificationSvc.NotifyDashboardChange(ctx, "created", dashboard); err != nil {
		logger.Warn("Failed to send dashboard creation notification", zap.Error(err), zap.String("dashboardID", dashboard.Identifier))
	}
	return nil
}

func (s *DashboardService) handleDashboardUpdated(ctx context.Context, event util.Event) error {
	dashboard, ok := event.Payload.(model.Dashboard)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Dashboard updated event received", zap.String("dashboardID", dashboard.Identifier))

	// A widget map update can change embedded grants; the cached row is
	// stale either way.
	if err := s.cacheService.DeleteDashboard(ctx, dashboard.Identifier); err != nil {
		logger.Error("Failed to invalidate dashboard cache", zap.Error(err), zap.String("dashboardID", dashboard.Identifier))
	}
	if err := s.notificationSvc.NotifyDashboardChange(ctx, "updated", dashboard); err != nil {
		logger.Warn("Failed to send dashboard update notification", zap.Error(err), zap.String("dashboardID", dashboard.Identifier))
	}
	return nil
}

func (s *DashboardService) handleDashboardDeleted(ctx context.Context, event util.Event) error {
	identifier, ok := event.Payload.(string)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Dashboard deleted event received", zap.String("dashboardID", identifier))

	if err := s.cacheService.DeleteDashboard(ctx, identifier); err != nil {
		logger.Error("Failed to invalidate dashboard cache", zap.Error(err), zap.String("dashboardID", identifier))
	}
	if err := s.notificationSvc.NotifyDashboardChange(ctx, "deleted", model.Dashboard{Identifier: identifier}); err != nil {
		logger.Warn("Failed to send dashboard deletion notification", zap.Error(err), zap.String("dashboardID", identifier))
	}
	return nil
}

// CreateDashboard creates a dashboard from a configured template.
func (s *DashboardService) CreateDashboard(ctx context.Context, templateID, userID string) (*model.Dashboard, error) {
	template, exists := config.Templates()[templateID]
	if !exists {
		return nil, dashgate_errors.ErrTemplateNotFound
	}
	if err := s.validationUtil.ValidateTemplate(template); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	dashboard, err := s.dashboardDAO.CreateDashboard(ctx, template, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetDashboard(ctx, *dashboard); err != nil {
		logger.Warn("Failed to cache created dashboard", zap.Error(err), zap.String("dashboardID", dashboard.Identifier))
	}
	s.eventBus.Publish(ctx, "dashboard.created", *dashboard)
	return dashboard, nil
}

// GetDashboard returns one dashboard, read through the cache.
func (s *DashboardService) GetDashboard(ctx context.Context, identifier string) (*model.Dashboard, error) {
	cached, err := s.cacheService.GetDashboard(ctx, identifier)
	if err != nil {
		logger.Warn("Dashboard cache read failed", zap.Error(err), zap.String("dashboardID", identifier))
	}
	if cached != nil {
		return cached, nil
	}

	dashboard, err := s.dashboardDAO.GetDashboard(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.SetDashboard(ctx, *dashboard); err != nil {
		logger.Warn("Failed to cache dashboard", zap.Error(err), zap.String("dashboardID", identifier))
	}
	return dashboard, nil
}

func (s *DashboardService) ListDashboards(ctx context.Context) ([]*model.Dashboard, error) {
	return s.dashboardDAO.GetAllDashboards(ctx)
}

func (s *DashboardService) DeleteDashboard(ctx context.Context, identifier, userID string) error {
	if err := s.dashboardDAO.DeleteDashboard(ctx, identifier, userID); err != nil {
		return err
	}
	s.eventBus.Publish(ctx, "dashboard.deleted", identifier)
	return nil
}

// AddWidget places a fresh instance of a registered widget type on a
// dashboard and returns the new instance hash.
func (s *DashboardService) AddWidget(ctx context.Context, dashboardID, widgetType, userID string) (string, error) {
	if !widgets.Registered(widgetType) {
		return "", dashgate_errors.ErrUnknownWidgetType
	}

	dashboard, err := s.dashboardDAO.GetDashboard(ctx, dashboardID)
	if err != nil {
		return "", err
	}

	hash := uuid.New().String()
	replacement := make(map[string]model.WidgetInstance, len(dashboard.Configuration.Widgets)+1)
	for existingHash, widget := range dashboard.Configuration.Widgets {
		replacement[existingHash] = widget
	}
	replacement[hash] = model.WidgetInstance{Identifier: widgetType}

	updated, err := s.dashboardDAO.UpdateWidgets(ctx, dashboardID, replacement, userID)
	if err != nil {
		return "", err
	}
	s.eventBus.Publish(ctx, "dashboard.updated", *updated)
	return hash, nil
}

func (s *DashboardService) RemoveWidget(ctx context.Context, dashboardID, widgetHash, userID string) error {
	dashboard, err := s.dashboardDAO.GetDashboard(ctx, dashboardID)
	if err != nil {
		return err
	}
	if _, exists := dashboard.Configuration.Widgets[widgetHash]; !exists {
		return dashgate_errors.ErrWidgetNotFound
	}

	replacement := make(map[string]model.WidgetInstance, len(dashboard.Configuration.Widgets)-1)
	for existingHash, widget := range dashboard.Configuration.Widgets {
		if existingHash == widgetHash {
			continue
		}
		replacement[existingHash] = widget
	}

	updated, err := s.dashboardDAO.UpdateWidgets(ctx, dashboardID, replacement, userID)
	if err != nil {
		return err
	}
	s.eventBus.Publish(ctx, "dashboard.updated", *updated)
	return nil
}

// ReplaceWidgets substitutes the whole widget map of a dashboard with the
// given replacement. There is no merge; callers send the complete map.
func (s *DashboardService) ReplaceWidgets(ctx context.Context, dashboardID string, replacement map[string]model.WidgetInstance, userID string) (*model.Dashboard, error) {
	for hash, widget := range replacement {
		if hash == "" {
			return nil, dashgate_errors.ErrInvalidDashboardData
		}
		if err := s.validationUtil.ValidateWidgetInstance(widget); err != nil {
			return nil, fmt.Errorf("invalid widget instance %s: %w", hash, err)
		}
	}

	updated, err := s.dashboardDAO.UpdateWidgets(ctx, dashboardID, replacement, userID)
	if err != nil {
		return nil, err
	}
	s.eventBus.Publish(ctx, "dashboard.updated", *updated)
	return updated, nil
}

func (s *DashboardService) CurrentDashboard(ctx context.Context, userID string) (string, error) {
	return s.cacheService.GetCurrentDashboard(ctx, userID)
}

func (s *DashboardService) SetCurrentDashboard(ctx context.Context, userID, identifier string) error {
	if _, err := s.GetDashboard(ctx, identifier); err != nil {
		return err
	}
	return s.cacheService.SetCurrentDashboard(ctx, userID, identifier)
}

// EnsureDefaultDashboard bootstraps a first dashboard from the default
// template when the store has none, and makes it the user's current one.
func (s *DashboardService) EnsureDefaultDashboard(ctx context.Context, userID string) (*model.Dashboard, error) {
	dashboards, err := s.ListDashboards(ctx)
	if err != nil {
		return nil, err
	}
	if len(dashboards) > 0 {
		current, err := s.CurrentDashboard(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, dashboard := range dashboards {
			if dashboard.Identifier == current {
				return dashboard, nil
			}
		}
		// Stale or unset selection, fall back to the first dashboard.
		if err := s.cacheService.SetCurrentDashboard(ctx, userID, dashboards[0].Identifier); err != nil {
			return nil, err
		}
		return dashboards[0], nil
	}

	// Two concurrent first requests must not both bootstrap a dashboard.
	locked, err := s.cacheService.LockResource(ctx, "default-dashboard", 30*time.Second)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, fmt.Errorf("default dashboard bootstrap already in progress")
	}
	defer func() {
		if err := s.cacheService.UnlockResource(ctx, "default-dashboard"); err != nil {
			logger.Warn("Failed to release bootstrap lock", zap.Error(err))
		}
	}()

	dashboard, err := s.CreateDashboard(ctx, config.GetString("dashboard.defaultTemplate"), userID)
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.SetCurrentDashboard(ctx, userID, dashboard.Identifier); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// WidgetRepresentations builds the view data for every widget placed on a
// dashboard. Widgets render independently, so the fan-out runs them
// concurrently.
func (s *DashboardService) WidgetRepresentations(ctx context.Context, dashboard *model.Dashboard) (map[string]WidgetRepresentation, error) {
	representations := make(map[string]WidgetRepresentation, len(dashboard.Configuration.Widgets))
	var mu sync.Mutex

	var group errgroup.Group
	for hash, instance := range dashboard.Configuration.Widgets {
		hash, instance := hash, instance
		group.Go(func() error {
			widget, err := widgets.New(instance.Identifier)
			if err != nil {
				logger.Warn("Skipping widget with unknown type",
					zap.String("widgetHash", hash),
					zap.String("widgetType", instance.Identifier))
				return nil
			}
			representation := WidgetRepresentation{
				Identifier: instance.Identifier,
				Title:      widget.Title(),
				Height:     widget.Height(),
				Width:      widget.Width(),
				Config:     instance.Config,
			}
			mu.Lock()
			representations[hash] = representation
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return representations, nil
}
