// controller/widget_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
	"github.com/rohanverma/dashgate/middleware"
	"github.com/rohanverma/dashgate/model"
	"github.com/rohanverma/dashgate/service"
	"github.com/rohanverma/dashgate/util"
	"github.com/rohanverma/dashgate/widgets"
)

type WidgetController struct {
	dashboardService service.IDashboardService
	accessService    service.IAccessService
}

func NewWidgetController(dashboardService service.IDashboardService, accessService service.IAccessService) *WidgetController {
	return &WidgetController{
		dashboardService: dashboardService,
		accessService:    accessService,
	}
}

// RegisterRoutes registers the API routes
func (wc *WidgetController) RegisterRoutes(r *gin.RouterGroup) {
	widgetRoutes := r.Group("/widgets")
	{
		widgetRoutes.GET("/types", wc.ListWidgetTypes)
		widgetRoutes.GET("/:hash/content", wc.GetWidgetContent)
	}
}

// ListWidgetTypes endpoint
func (wc *WidgetController) ListWidgetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": widgets.Types()})
}

// GetWidgetContent endpoint. Widget instances are addressed by hash alone;
// the owning dashboard is found by scanning, not taken from the request.
func (wc *WidgetController) GetWidgetContent(c *gin.Context) {
	widgetHash := c.Param("hash")

	instance, dashboard, err := wc.findWidget(c, widgetHash)
	if err != nil {
		if errors.Is(err, dashgate_errors.ErrWidgetNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Widget not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to look up widget", err)
		}
		return
	}

	resource := attribute.NewWidget(instance.Identifier, widgetHash, attribute.NewDashboard(dashboard.Identifier))
	subject := middleware.SubjectFromContext(c)
	if len(subject) == 0 {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", dashgate_errors.ErrUnauthorized)
		return
	}
	if err := wc.accessService.CheckAccess(c, resource, subject, "widget:view"); err != nil {
		switch {
		case errors.Is(err, dashgate_errors.ErrAccessDenied):
			util.RespondWithError(c, http.StatusForbidden, "Access denied", err)
		case errors.Is(err, dashgate_errors.ErrNoApplicablePolicy):
			util.RespondWithError(c, http.StatusInternalServerError, "No applicable access rule", err)
		case errors.Is(err, dashgate_errors.ErrStoreUnavailable):
			util.RespondWithError(c, http.StatusServiceUnavailable, "Permission store unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Access check failed", err)
		}
		return
	}

	widget, err := widgets.New(instance.Identifier)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Unknown widget type", err)
		return
	}

	content, err := widget.RenderContent(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to render widget content", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"widget":    widgetHash,
		"content":   content,
		"eventData": widget.EventData(),
	})
}

func (wc *WidgetController) findWidget(c *gin.Context, widgetHash string) (*model.WidgetInstance, *model.Dashboard, error) {
	dashboards, err := wc.dashboardService.ListDashboards(c)
	if err != nil {
		return nil, nil, err
	}
	for _, dashboard := range dashboards {
		if instance, exists := dashboard.Configuration.Widgets[widgetHash]; exists {
			return &instance, dashboard, nil
		}
	}
	return nil, nil, dashgate_errors.ErrWidgetNotFound
}
