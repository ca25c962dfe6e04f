// service/report_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tracegraph/registry/dao"
	registry_errors "github.com/tracegraph/registry/errors"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
	"github.com/tracegraph/registry/util"
)

// IReportService defines the interface for self-reported health data
type IReportService interface {
	ReportTestResult(ctx context.Context, deviceID string, testDate time.Time, result bool, timestamp time.Time) (string, error)
	ReportSymptoms(ctx context.Context, deviceID string, summary model.SymptomSummary) (string, error)
}

// ReportService handles business logic for health reports. All reports enter
// the graph unverified; verification is a manual downstream process.
type ReportService struct {
	reportDAO      dao.IReportDAO
	validationUtil *util.ValidationUtil
}

var _ IReportService = &ReportService{}

func NewReportService(reportDAO dao.IReportDAO, validationUtil *util.ValidationUtil) *ReportService {
	return &ReportService{reportDAO: reportDAO, validationUtil: validationUtil}
}

// ReportTestResult records a self-reported test: the device is both the
// reporter and the tested party.
func (s *ReportService) ReportTestResult(ctx context.Context, deviceID string, testDate time.Time, result bool, timestamp time.Time) (string, error) {
	reportID, err := s.reportDAO.RecordTestResult(ctx, model.TestResult{
		ReportedBy:  deviceID,
		TestedParty: deviceID,
		Verified:    false,
		TestDate:    testDate,
		Result:      result,
		Timestamp:   timestamp,
	})
	if err != nil {
		logger.Error("Error recording test result", zap.Error(err), zap.String("deviceID", deviceID))
		return "", err
	}
	return reportID, nil
}

// ReportSymptoms records a self-reported symptom summary for the device.
func (s *ReportService) ReportSymptoms(ctx context.Context, deviceID string, summary model.SymptomSummary) (string, error) {
	if err := s.validationUtil.ValidateSymptoms(summary.Symptoms); err != nil {
		return "", fmt.Errorf("%w: %v", registry_errors.ErrInvalidRequestData, err)
	}

	summary.ReportedBy = deviceID
	summary.TestedParty = deviceID
	summary.Verified = false

	reportID, err := s.reportDAO.RecordSymptoms(ctx, summary)
	if err != nil {
		logger.Error("Error recording symptoms", zap.Error(err), zap.String("deviceID", deviceID))
		return "", err
	}
	return reportID, nil
}
