// controller/device_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tracegraph/registry/model"
	"github.com/tracegraph/registry/service"
	"github.com/tracegraph/registry/util"
	helper_util "github.com/tracegraph/registry/util/helper"
)

type CreateDeviceRequest struct {
	Fingerprint string `json:"fingerprint"`
}

type CreateCheckInRequest struct {
	ScannedID string          `json:"scannedId" binding:"required"`
	Type      model.ScanType  `json:"type" binding:"required"`
	Location  *model.Location `json:"location"`
}

type SelfReportedTestResult struct {
	TestDate  string    `json:"testDate" binding:"required"`
	Result    *bool     `json:"result" binding:"required"`
	Timestamp time.Time `json:"timestamp" binding:"required"`
}

type SelfReportedSymptoms struct {
	Timestamp                 time.Time                    `json:"timestamp" binding:"required"`
	Symptoms                  []model.Symptom              `json:"symptoms" binding:"required"`
	Age                       model.AgeCategory            `json:"age"`
	HouseholdSize             model.HouseholdSize          `json:"householdSize"`
	PublicInteractionEstimate model.PublicInteractionScale `json:"publicInteractionEstimate"`
	Temperature               *model.Temperature           `json:"temperature"`
}

type DeviceController struct {
	deviceService service.IDeviceService
	reportService service.IReportService
}

func NewDeviceController(deviceService service.IDeviceService, reportService service.IReportService) *DeviceController {
	return &DeviceController{
		deviceService: deviceService,
		reportService: reportService,
	}
}

// RegisterRoutes registers the API routes
func (dc *DeviceController) RegisterRoutes(r *gin.RouterGroup) {
	devices := r.Group("/devices")
	{
		devices.POST("", dc.CreateDevice)
		devices.POST("/:id/check-ins", dc.CreateCheckIn)
		devices.PUT("/:id/check-ins/:checkInId/location", dc.UpdateCheckInLocation)
		devices.POST("/:id/reports/tests", dc.SelfReportTestResult)
		devices.POST("/:id/reports/symptoms", dc.SelfReportSymptoms)
	}
}

// CreateDevice endpoint
func (dc *DeviceController) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid device data", err)
		return
	}

	deviceID, err := dc.deviceService.CreateDevice(c, req.Fingerprint)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create device")
		return
	}

	util.RespondWithCreated(c, deviceID)
}

// CreateCheckIn endpoint; the scan type tags whether a scannable or another
// device was scanned.
func (dc *DeviceController) CreateCheckIn(c *gin.Context) {
	deviceID := c.Param("id")
	var req CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid check-in data", err)
		return
	}

	scanID, err := dc.deviceService.CreateCheckIn(c, deviceID, req.Type, req.ScannedID, req.Location)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create check-in")
		return
	}

	util.RespondWithCreated(c, scanID)
}

// UpdateCheckInLocation endpoint
func (dc *DeviceController) UpdateCheckInLocation(c *gin.Context) {
	deviceID := c.Param("id")
	checkInID := c.Param("checkInId")
	var loc model.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid location data", err)
		return
	}

	if err := dc.deviceService.UpdateCheckInLocation(c, deviceID, checkInID, loc); err != nil {
		respondWithServiceError(c, err, "Failed to update check-in location")
		return
	}

	c.Status(http.StatusNoContent)
}

// SelfReportTestResult endpoint
func (dc *DeviceController) SelfReportTestResult(c *gin.Context) {
	deviceID := c.Param("id")
	var req SelfReportedTestResult
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid test result data", err)
		return
	}

	testDate, err := helper_util.ParseDate(req.TestDate)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid test date", err)
		return
	}

	reportID, err := dc.reportService.ReportTestResult(c, deviceID, testDate, *req.Result, req.Timestamp)
	if err != nil {
		respondWithServiceError(c, err, "Failed to record test result")
		return
	}

	util.RespondWithCreated(c, reportID)
}

// SelfReportSymptoms endpoint
func (dc *DeviceController) SelfReportSymptoms(c *gin.Context) {
	deviceID := c.Param("id")
	var req SelfReportedSymptoms
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid symptom data", err)
		return
	}

	reportID, err := dc.reportService.ReportSymptoms(c, deviceID, model.SymptomSummary{
		Symptoms:               req.Symptoms,
		Age:                    req.Age,
		HouseholdSize:          req.HouseholdSize,
		PublicInteractionScale: req.PublicInteractionEstimate,
		Temperature:            req.Temperature,
		Timestamp:              req.Timestamp,
	})
	if err != nil {
		respondWithServiceError(c, err, "Failed to record symptoms")
		return
	}

	util.RespondWithCreated(c, reportID)
}
