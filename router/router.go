// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tracegraph/registry/controller"
	"github.com/tracegraph/registry/middleware"
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

	api := router.Group("/api/v1")

	controllers.Device.RegisterRoutes(api)
	controllers.Org.RegisterRoutes(api)
	controllers.User.RegisterRoutes(api)
	controllers.Models.RegisterRoutes(api)

	return router
}
