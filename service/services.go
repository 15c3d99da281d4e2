// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/rohanverma/dashgate/accesscontrol/provider"
	"github.com/rohanverma/dashgate/audit"
	"github.com/rohanverma/dashgate/dao"
	"github.com/rohanverma/dashgate/pdp"
	"github.com/rohanverma/dashgate/util"
)

type Services struct {
	Dashboard IDashboardService
	Access    IAccessService

	DashboardDAO *dao.DashboardDAO
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	dashboardDAO := dao.NewDashboardDAO(driver, auditService)

	permissionProvider := provider.NewPermissionAttributeProvider(dashboardDAO, cacheService)
	decisionPoint := pdp.NewDenyOverrides()

	services := &Services{
		Dashboard:    NewDashboardService(dashboardDAO, validationUtil, cacheService, notificationSvc, eventBus),
		Access:       NewAccessService([]provider.AttributeProvider{permissionProvider}, decisionPoint, auditService),
		DashboardDAO: dashboardDAO,
	}

	return services, nil
}
