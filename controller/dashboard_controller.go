// controller/dashboard_controller.go
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
	helper_util "github.com/rohanverma/dashgate/util/helper"
)

type DashboardController struct {
	dashboardService service.IDashboardService
	accessService    service.IAccessService
}

func NewDashboardController(dashboardService service.IDashboardService, accessService service.IAccessService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		accessService:    accessService,
	}
}

// RegisterRoutes registers the API routes
func (dc *DashboardController) RegisterRoutes(r *gin.RouterGroup) {
	dashboards := r.Group("/dashboards")
	{
		dashboards.POST("", dc.CreateDashboard)
		dashboards.GET("", dc.ListDashboards)
		dashboards.GET("/current", dc.GetCurrentDashboard)
		dashboards.PUT("/current", dc.SetCurrentDashboard)
		dashboards.GET("/:id", dc.GetDashboard)
		dashboards.DELETE("/:id", dc.DeleteDashboard)
		dashboards.POST("/:id/widgets", dc.AddWidget)
		dashboards.PUT("/:id/widgets", dc.ReplaceWidgets)
		dashboards.DELETE("/:id/widgets/:hash", dc.RemoveWidget)
	}
}

// authorize runs the access check for one resource and writes the HTTP
// response when the request may not proceed. A missing rule is a
// configuration error, not a deny, and surfaces as a server-side failure.
func (dc *DashboardController) authorize(c *gin.Context, resource attribute.Resource, action string) bool {
	subject := middleware.SubjectFromContext(c)
	if len(subject) == 0 {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", dashgate_errors.ErrUnauthorized)
		return false
	}

	if err := dc.accessService.CheckAccess(c, resource, subject, action); err != nil {
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
		return false
	}
	return true
}

// CreateDashboard endpoint
func (dc *DashboardController) CreateDashboard(c *gin.Context) {
	var request struct {
		Template string `json:"template" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid dashboard data", dashgate_errors.ErrInvalidDashboardData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", dashgate_errors.ErrUnauthorized)
		return
	}

	createdDashboard, err := dc.dashboardService.CreateDashboard(c, request.Template, userID)
	if err != nil {
		switch err {
		case dashgate_errors.ErrTemplateNotFound:
			util.RespondWithError(c, http.StatusBadRequest, "Template not found", err)
		case dashgate_errors.ErrDashboardConflict:
			util.RespondWithError(c, http.StatusConflict, "Dashboard already exists", err)
		case dashgate_errors.ErrDatabaseOperation:
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create dashboard", dashgate_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdDashboard)
}

// ListDashboards endpoint. Each row is subject to the same view check as
// the single-dashboard endpoint; rows the subject may not view are left
// out rather than exposing their embedded grants.
func (dc *DashboardController) ListDashboards(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	subject := middleware.SubjectFromContext(c)
	if len(subject) == 0 {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", dashgate_errors.ErrUnauthorized)
		return
	}

	dashboards, err := dc.dashboardService.ListDashboards(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list dashboards", err)
		return
	}

	visible := make([]*model.Dashboard, 0, len(dashboards))
	for _, dashboard := range dashboards {
		err := dc.accessService.CheckAccess(c, attribute.NewDashboard(dashboard.Identifier), subject, "dashboard:view")
		switch {
		case err == nil:
			visible = append(visible, dashboard)
		case errors.Is(err, dashgate_errors.ErrAccessDenied), errors.Is(err, dashgate_errors.ErrNoApplicablePolicy):
			continue
		case errors.Is(err, dashgate_errors.ErrStoreUnavailable):
			util.RespondWithError(c, http.StatusServiceUnavailable, "Permission store unavailable", err)
			return
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Access check failed", err)
			return
		}
	}

	if offset > len(visible) {
		offset = len(visible)
	}
	end := offset + limit
	if end > len(visible) {
		end = len(visible)
	}

	c.JSON(http.StatusOK, visible[offset:end])
}

// GetDashboard endpoint. Returns the dashboard together with the rendered
// view data of its widgets.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	dashboardID := c.Param("id")

	if !dc.authorize(c, attribute.NewDashboard(dashboardID), "dashboard:view") {
		return
	}

	dashboard, err := dc.dashboardService.GetDashboard(c, dashboardID)
	if err != nil {
		if errors.Is(err, dashgate_errors.ErrDashboardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Dashboard not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve dashboard", err)
		}
		return
	}

	representations, err := dc.dashboardService.WidgetRepresentations(c, dashboard)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to render dashboard widgets", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dashboard": dashboard,
		"widgets":   representations,
	})
}

// DeleteDashboard endpoint
func (dc *DashboardController) DeleteDashboard(c *gin.Context) {
	dashboardID := c.Param("id")
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if !dc.authorize(c, attribute.NewDashboard(dashboardID), "dashboard:edit") {
		return
	}

	if err := dc.dashboardService.DeleteDashboard(c, dashboardID, userID); err != nil {
		if err == dashgate_errors.ErrDashboardNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Dashboard not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete dashboard", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCurrentDashboard endpoint. The selection comes from an explicit query
// parameter or the stored per-user preference; a default dashboard is
// bootstrapped when the store has none.
func (dc *DashboardController) GetCurrentDashboard(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var dashboard *model.Dashboard
	if requested := c.Query("dashboard"); requested != "" {
		dashboard, err = dc.dashboardService.GetDashboard(c, requested)
		if err != nil {
			if errors.Is(err, dashgate_errors.ErrDashboardNotFound) {
				util.RespondWithError(c, http.StatusNotFound, "Dashboard not found", err)
			} else {
				util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve dashboard", err)
			}
			return
		}
	} else {
		dashboard, err = dc.dashboardService.EnsureDefaultDashboard(c, userID)
		if err != nil {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve current dashboard", err)
			return
		}
	}

	if !dc.authorize(c, attribute.NewDashboard(dashboard.Identifier), "dashboard:view") {
		return
	}

	representations, err := dc.dashboardService.WidgetRepresentations(c, dashboard)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to render dashboard widgets", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dashboard": dashboard,
		"widgets":   representations,
	})
}

// SetCurrentDashboard endpoint
func (dc *DashboardController) SetCurrentDashboard(c *gin.Context) {
	var request struct {
		Dashboard string `json:"dashboard" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid dashboard selection", dashgate_errors.ErrInvalidDashboardData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if !dc.authorize(c, attribute.NewDashboard(request.Dashboard), "dashboard:view") {
		return
	}

	if err := dc.dashboardService.SetCurrentDashboard(c, userID, request.Dashboard); err != nil {
		if errors.Is(err, dashgate_errors.ErrDashboardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Dashboard not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to set current dashboard", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// AddWidget endpoint
func (dc *DashboardController) AddWidget(c *gin.Context) {
	dashboardID := c.Param("id")
	var request struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid widget data", dashgate_errors.ErrInvalidDashboardData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if !dc.authorize(c, attribute.NewDashboard(dashboardID), "dashboard:edit") {
		return
	}

	hash, err := dc.dashboardService.AddWidget(c, dashboardID, request.Type, userID)
	if err != nil {
		switch err {
		case dashgate_errors.ErrDashboardNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Dashboard not found", err)
		case dashgate_errors.ErrUnknownWidgetType:
			util.RespondWithError(c, http.StatusBadRequest, "Unknown widget type", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to add widget", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"hash": hash})
}

// ReplaceWidgets endpoint. The request body carries the complete widget
// map; the stored configuration is replaced as a whole.
func (dc *DashboardController) ReplaceWidgets(c *gin.Context) {
	dashboardID := c.Param("id")
	var replacement map[string]model.WidgetInstance
	if err := c.ShouldBindJSON(&replacement); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid widget data", dashgate_errors.ErrInvalidDashboardData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if !dc.authorize(c, attribute.NewDashboard(dashboardID), "dashboard:edit") {
		return
	}

	updatedDashboard, err := dc.dashboardService.ReplaceWidgets(c, dashboardID, replacement, userID)
	if err != nil {
		switch err {
		case dashgate_errors.ErrDashboardNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Dashboard not found", err)
		case dashgate_errors.ErrInvalidDashboardData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid widget data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to replace widgets", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedDashboard)
}

// RemoveWidget endpoint
func (dc *DashboardController) RemoveWidget(c *gin.Context) {
	dashboardID := c.Param("id")
	widgetHash := c.Param("hash")
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if !dc.authorize(c, attribute.NewDashboard(dashboardID), "dashboard:edit") {
		return
	}

	if err := dc.dashboardService.RemoveWidget(c, dashboardID, widgetHash, userID); err != nil {
		switch err {
		case dashgate_errors.ErrDashboardNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Dashboard not found", err)
		case dashgate_errors.ErrWidgetNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Widget not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to remove widget", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
