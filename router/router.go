// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rohanverma/dashgate/controller"
	"github.com/rohanverma/dashgate/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.SubjectMiddleware())

	api := router.Group("/api/v1")

	controllers.Dashboard.RegisterRoutes(api)
	controllers.Widget.RegisterRoutes(api)

	return router
}
