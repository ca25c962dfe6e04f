// controller/organization_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tracegraph/registry/model"
	"github.com/tracegraph/registry/service"
	"github.com/tracegraph/registry/util"
)

type ContactRequest struct {
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"required"`
	ContactName string `json:"contactName" binding:"required"`
}

type CreateOrganizationRequest struct {
	Name                 string         `json:"name" binding:"required"`
	Contact              ContactRequest `json:"contact"`
	Address              model.Address  `json:"address"`
	HasTestingFacilities *bool          `json:"hasTestingFacilities"`
	HasMultipleSites     *bool          `json:"hasMultipleSites"`
}

type CreateSiteRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category" binding:"required"`
	Subcategory string          `json:"subcategory" binding:"required"`
	Address     *model.Address  `json:"address"`
	Location    *model.Location `json:"location"`
	Testing     bool            `json:"isTestingSite"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	ContactName string          `json:"contactName"`
}

type CreateScannableRequest struct {
	Type      string `json:"type" binding:"required"`
	SingleUse bool   `json:"singleUse"`
}

type OrganizationController struct {
	orgService service.IOrganizationService
}

func NewOrganizationController(orgService service.IOrganizationService) *OrganizationController {
	return &OrganizationController{orgService: orgService}
}

// RegisterRoutes registers the API routes
func (oc *OrganizationController) RegisterRoutes(r *gin.RouterGroup) {
	orgs := r.Group("/organizations")
	{
		orgs.POST("", oc.CreateOrganization)
		orgs.GET("/:id", oc.GetOrganization)
		orgs.PUT("/:id/multiple-sites-setting", oc.SetMultiSite)
		orgs.GET("/:id/sites", oc.GetSites)
		orgs.POST("/:id/sites", oc.CreateSite)
		orgs.PUT("/:id/sites/:siteId/name", oc.RenameSite)
		orgs.GET("/:id/sites/:siteId/scannables", oc.GetScannables)
		orgs.POST("/:id/sites/:siteId/scannables", oc.CreateScannable)
		orgs.PUT("/:id/sites/:siteId/scannables/:scannableId/name", oc.RenameScannable)
	}
}

// CreateOrganization endpoint. Organizations that report neither testing
// facilities nor multiple sites are treated as simple and get a default
// site and scannable provisioned for them.
func (oc *OrganizationController) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid organization data", err)
		return
	}

	hasTestingFacilities := false
	if req.HasTestingFacilities != nil {
		hasTestingFacilities = *req.HasTestingFacilities
	}
	multiSite := true
	if req.HasMultipleSites != nil {
		multiSite = *req.HasMultipleSites
	}

	org, err := oc.orgService.CreateOrganization(c, req.Name, req.Contact.Phone, req.Contact.Email,
		req.Contact.ContactName, req.Address, hasTestingFacilities, multiSite)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization endpoint
func (oc *OrganizationController) GetOrganization(c *gin.Context) {
	org, err := oc.orgService.GetOrganization(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// SetMultiSite endpoint; the body is a bare boolean.
func (oc *OrganizationController) SetMultiSite(c *gin.Context) {
	var state bool
	if err := c.ShouldBindJSON(&state); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid multi-site setting", err)
		return
	}

	if err := oc.orgService.SetMultiSite(c, c.Param("id"), state); err != nil {
		respondWithServiceError(c, err, "Failed to update multi-site setting")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateSite endpoint
func (oc *OrganizationController) CreateSite(c *gin.Context) {
	var req CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid site data", err)
		return
	}

	site := model.Site{
		OrganizationID: c.Param("id"),
		Name:           req.Name,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		Address:        req.Address,
		Testing:        req.Testing,
		Phone:          req.Phone,
		Email:          req.Email,
		ContactName:    req.ContactName,
	}
	if req.Location != nil {
		site.Latitude = &req.Location.Latitude
		site.Longitude = &req.Location.Longitude
	}

	siteID, err := oc.orgService.CreateSite(c, site)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create site")
		return
	}

	util.RespondWithCreated(c, siteID)
}

// GetSites endpoint
func (oc *OrganizationController) GetSites(c *gin.Context) {
	sites, err := oc.orgService.GetSites(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to list sites")
		return
	}

	c.JSON(http.StatusOK, sites)
}

// RenameSite endpoint; the body is a bare string.
func (oc *OrganizationController) RenameSite(c *gin.Context) {
	var name string
	if err := c.ShouldBindJSON(&name); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid site name", err)
		return
	}

	if err := oc.orgService.RenameSite(c, c.Param("siteId"), name); err != nil {
		respondWithServiceError(c, err, "Failed to rename site")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateScannable endpoint
func (oc *OrganizationController) CreateScannable(c *gin.Context) {
	var req CreateScannableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid scannable data", err)
		return
	}

	scannableID, err := oc.orgService.CreateScannable(c, c.Param("id"), c.Param("siteId"), req.Type, req.SingleUse)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create scannable")
		return
	}

	util.RespondWithCreated(c, scannableID)
}

// GetScannables endpoint
func (oc *OrganizationController) GetScannables(c *gin.Context) {
	scannables, err := oc.orgService.GetScannables(c, c.Param("siteId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to list scannables")
		return
	}

	c.JSON(http.StatusOK, scannables)
}

// RenameScannable endpoint; the body is a bare string.
func (oc *OrganizationController) RenameScannable(c *gin.Context) {
	var name string
	if err := c.ShouldBindJSON(&name); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid scannable name", err)
		return
	}

	if err := oc.orgService.RenameScannable(c, c.Param("scannableId"), name); err != nil {
		respondWithServiceError(c, err, "Failed to rename scannable")
		return
	}

	c.Status(http.StatusNoContent)
}
