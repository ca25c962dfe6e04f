// controller/models_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tracegraph/registry/util"
)

// ModelsController exposes the configured catalogs that clients use to
// populate their site and scannable pickers.
type ModelsController struct {
	validationUtil *util.ValidationUtil
}

func NewModelsController(validationUtil *util.ValidationUtil) *ModelsController {
	return &ModelsController{validationUtil: validationUtil}
}

// RegisterRoutes registers the API routes
func (mc *ModelsController) RegisterRoutes(r *gin.RouterGroup) {
	models := r.Group("/models")
	{
		models.GET("/site-types", mc.GetSiteTypes)
		models.GET("/scannable-types", mc.GetScannableTypes)
	}
}

// GetSiteTypes endpoint
func (mc *ModelsController) GetSiteTypes(c *gin.Context) {
	c.JSON(http.StatusOK, mc.validationUtil.SiteTypes())
}

// GetScannableTypes endpoint
func (mc *ModelsController) GetScannableTypes(c *gin.Context) {
	c.JSON(http.StatusOK, mc.validationUtil.ScannableTypes())
}
