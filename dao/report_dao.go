// dao/report_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	registry_errors "github.com/tracegraph/registry/errors"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
	registry_neo4j "github.com/tracegraph/registry/model/neo4j"
)

type ReportDAO struct {
	Driver neo4j.Driver
}

func NewReportDAO(driver neo4j.Driver) *ReportDAO {
	return &ReportDAO{Driver: driver}
}

// RecordTestResult writes a TestResult vertex together with the REPORTED edge
// from the reporter and the FOR edge back to the tested party, all in one
// statement. Reporter and tested party may be the same device.
func (dao *ReportDAO) RecordTestResult(ctx context.Context, testResult model.TestResult) (string, error) {
	start := time.Now()
	reportID := newID()
	logger.Info("Recording test result",
		zap.String("testedParty", testResult.TestedParty),
		zap.String("reportedBy", testResult.ReportedBy))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if err := resolveVertex(tx, testResult.TestedParty, ""); err != nil {
			return nil, err
		}
		if err := resolveVertex(tx, testResult.ReportedBy, ""); err != nil {
			return nil, err
		}

		timestamp := testResult.Timestamp.Format(time.RFC3339)
		query := `
        MATCH (reporter {id: $reporterId}), (tested {id: $testedId})
        CREATE (t:` + registry_neo4j.LabelTestResult + `)
        SET t = $props
        CREATE (reporter)-[:` + registry_neo4j.RelReported + ` {timestamp: $timestamp}]->(t)
        CREATE (t)-[:` + registry_neo4j.RelFor + `]->(tested)
        RETURN t.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"reporterId": testResult.ReportedBy,
			"testedId":   testResult.TestedParty,
			"timestamp":  timestamp,
			"props": map[string]interface{}{
				"id":        reportID,
				"verified":  testResult.Verified,
				"testDate":  testResult.TestDate.Format("2006-01-02"),
				"result":    testResult.Result,
				"timestamp": timestamp,
			},
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: test result", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to record test result",
			zap.Error(err),
			zap.String("testedParty", testResult.TestedParty),
			zap.Bool("verified", testResult.Verified),
			zap.Duration("duration", duration))
		return "", err
	}

	logger.Info("Test result recorded successfully",
		zap.String("reportID", reportID),
		zap.Duration("duration", duration))
	return reportID, nil
}

// RecordSymptoms writes a Symptoms vertex with its REPORTED and REPORT_FOR
// edges in one statement. Temperature is normalized to Celsius before
// storage; optional scalars are omitted when absent.
func (dao *ReportDAO) RecordSymptoms(ctx context.Context, summary model.SymptomSummary) (string, error) {
	start := time.Now()
	reportID := newID()
	logger.Info("Recording symptoms",
		zap.String("testedParty", summary.TestedParty),
		zap.String("reportedBy", summary.ReportedBy))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if err := resolveVertex(tx, summary.TestedParty, ""); err != nil {
			return nil, err
		}
		if err := resolveVertex(tx, summary.ReportedBy, ""); err != nil {
			return nil, err
		}

		timestamp := summary.Timestamp.Format(time.RFC3339)
		symptoms := make([]string, 0, len(summary.Symptoms))
		for _, s := range summary.Symptoms {
			symptoms = append(symptoms, string(s))
		}

		props := map[string]interface{}{
			"id":        reportID,
			"verified":  summary.Verified,
			"timestamp": timestamp,
			"symptoms":  symptoms,
		}
		if summary.Temperature != nil {
			props["temperature"] = summary.Temperature.ToCelsius()
		}
		if summary.Age != "" {
			props["age"] = string(summary.Age)
		}
		if summary.HouseholdSize != "" {
			props["householdSize"] = string(summary.HouseholdSize)
		}
		if summary.PublicInteractionScale != "" {
			props["publicInteractionScale"] = string(summary.PublicInteractionScale)
		}

		query := `
        MATCH (reporter {id: $reporterId}), (tested {id: $testedId})
        CREATE (s:` + registry_neo4j.LabelSymptoms + `)
        SET s = $props
        CREATE (reporter)-[:` + registry_neo4j.RelReported + ` {timestamp: $timestamp}]->(s)
        CREATE (s)-[:` + registry_neo4j.RelReportFor + `]->(tested)
        RETURN s.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"reporterId": summary.ReportedBy,
			"testedId":   summary.TestedParty,
			"timestamp":  timestamp,
			"props":      props,
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: symptoms", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to record symptoms",
			zap.Error(err),
			zap.String("testedParty", summary.TestedParty),
			zap.Bool("verified", summary.Verified),
			zap.Duration("duration", duration))
		return "", err
	}

	logger.Info("Symptoms recorded successfully",
		zap.String("reportID", reportID),
		zap.Duration("duration", duration))
	return reportID, nil
}
