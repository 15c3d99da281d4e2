// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
)

type NotificationService struct {
	// A message queue client could be injected here.
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyDashboardChange(ctx context.Context, changeType string, dashboard model.Dashboard) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New dashboard created",
			zap.String("dashboardID", dashboard.Identifier),
			zap.String("label", dashboard.Label))
	case "updated":
		logger.Info("NOTIFICATION: Dashboard updated",
			zap.String("dashboardID", dashboard.Identifier),
			zap.String("label", dashboard.Label))
	case "deleted":
		logger.Info("NOTIFICATION: Dashboard deleted",
			zap.String("dashboardID", dashboard.Identifier))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
