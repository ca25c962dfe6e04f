// service/report_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	registry_errors "github.com/tracegraph/registry/errors"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
	"github.com/tracegraph/registry/service"
	"github.com/tracegraph/registry/test/mock"
)

func TestReportService_ReportTestResult(t *testing.T) {
	logger.InitLogger(t.TempDir())

	reportDAO := new(mock.MockReportDAO)
	reportService := service.NewReportService(reportDAO, newValidationUtil())

	testDate := time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)
	timestamp := time.Date(2020, 4, 2, 10, 0, 0, 0, time.UTC)

	reportDAO.On("RecordTestResult", tmock.Anything, tmock.MatchedBy(func(r model.TestResult) bool {
		return r.ReportedBy == "device-1" &&
			r.TestedParty == "device-1" &&
			!r.Verified &&
			r.TestDate.Equal(testDate) &&
			r.Result
	})).Return("report-1", nil).Once()

	reportID, err := reportService.ReportTestResult(context.Background(), "device-1", testDate, true, timestamp)
	assert.NoError(t, err)
	assert.Equal(t, "report-1", reportID)
	reportDAO.AssertExpectations(t)
}

func TestReportService_ReportSymptoms(t *testing.T) {
	logger.InitLogger(t.TempDir())

	t.Run("StampsDeviceAsBothParties", func(t *testing.T) {
		reportDAO := new(mock.MockReportDAO)
		reportService := service.NewReportService(reportDAO, newValidationUtil())

		reportDAO.On("RecordSymptoms", tmock.Anything, tmock.MatchedBy(func(s model.SymptomSummary) bool {
			return s.ReportedBy == "device-1" && s.TestedParty == "device-1" && !s.Verified
		})).Return("report-2", nil).Once()

		reportID, err := reportService.ReportSymptoms(context.Background(), "device-1", model.SymptomSummary{
			Symptoms:  []model.Symptom{model.SymptomFever},
			Timestamp: time.Now(),
		})
		assert.NoError(t, err)
		assert.Equal(t, "report-2", reportID)
	})

	t.Run("EmptySymptomListRejected", func(t *testing.T) {
		reportDAO := new(mock.MockReportDAO)
		reportService := service.NewReportService(reportDAO, newValidationUtil())

		_, err := reportService.ReportSymptoms(context.Background(), "device-1", model.SymptomSummary{
			Timestamp: time.Now(),
		})
		assert.ErrorIs(t, err, registry_errors.ErrInvalidRequestData)
		reportDAO.AssertNotCalled(t, "RecordSymptoms", tmock.Anything, tmock.Anything)
	})
}
