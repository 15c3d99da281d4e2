// controller/widget_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rohanverma/dashgate/controller"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
	mock_service "github.com/rohanverma/dashgate/test/service_mock"
	"github.com/rohanverma/dashgate/widgets"
)

func TestWidgetController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()
	gin.SetMode(gin.TestMode)

	widgets.Register("welcome", widgets.NewWelcomeFactory())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboardService := mock_service.NewMockIDashboardService(ctrl)
	mockAccessService := mock_service.NewMockIAccessService(ctrl)
	widgetController := controller.NewWidgetController(mockDashboardService, mockAccessService)

	router := gin.New()
	router.Use(testSubject())
	api := router.Group("/")
	widgetController.RegisterRoutes(api)

	t.Run("GetWidgetContent_Success", func(t *testing.T) {
		mockDashboardService.EXPECT().
			ListDashboards(gomock.Any()).
			Return([]*model.Dashboard{testDashboard()}, nil)
		mockAccessService.EXPECT().
			CheckAccess(gomock.Any(), gomock.Any(), gomock.Any(), "widget:view").
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/widgets/w-abc/content", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "content")
	})

	t.Run("GetWidgetContent_NotFound", func(t *testing.T) {
		mockDashboardService.EXPECT().
			ListDashboards(gomock.Any()).
			Return([]*model.Dashboard{testDashboard()}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/widgets/w-missing/content", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetWidgetContent_Forbidden", func(t *testing.T) {
		mockDashboardService.EXPECT().
			ListDashboards(gomock.Any()).
			Return([]*model.Dashboard{testDashboard()}, nil)
		mockAccessService.EXPECT().
			CheckAccess(gomock.Any(), gomock.Any(), gomock.Any(), "widget:view").
			Return(dashgate_errors.ErrAccessDenied)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/widgets/w-abc/content", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ListWidgetTypes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/widgets/types", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "welcome")
	})
}
