// dao/device_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	registry_errors "github.com/tracegraph/registry/errors"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
	registry_neo4j "github.com/tracegraph/registry/model/neo4j"
)

type DeviceDAO struct {
	Driver neo4j.Driver
}

func NewDeviceDAO(driver neo4j.Driver) *DeviceDAO {
	return &DeviceDAO{Driver: driver}
}

// CreateDevice writes a Device vertex and returns its ID. The fingerprint is
// client-supplied and not unique; an absent fingerprint is stored as the
// literal "none".
func (dao *DeviceDAO) CreateDevice(ctx context.Context, fingerprint string) (string, error) {
	start := time.Now()
	id := newID()
	logger.Info("Creating new device", zap.String("deviceID", id))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if fingerprint == "" {
		fingerprint = "none"
	}

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (d:` + registry_neo4j.LabelDevice + `)
        SET d = $props
        RETURN d.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"props": map[string]interface{}{
				"id":                id,
				"fingerprint":       fingerprint,
				"creationTimestamp": time.Now().Format(time.RFC3339),
			},
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: device", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create device",
			zap.Error(err),
			zap.String("fingerprint", fingerprint),
			zap.Duration("duration", duration))
		return "", err
	}

	logger.Info("Device created successfully",
		zap.String("deviceID", id),
		zap.Duration("duration", duration))
	return id, nil
}

// CreateCheckIn records a scan of a Scannable by a Device as a SCAN edge.
// Both endpoints must resolve; the scanned vertex must carry the Scannable
// label. When no location is given the coordinate properties are omitted
// from the edge entirely.
func (dao *DeviceDAO) CreateCheckIn(ctx context.Context, deviceID string, scannableID string, loc *model.Location) (string, error) {
	start := time.Now()
	scanID := newID()
	logger.Info("Creating check-in",
		zap.String("deviceID", deviceID),
		zap.String("scannableID", scannableID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if err := resolveVertex(tx, deviceID, ""); err != nil {
			return nil, err
		}
		if err := resolveVertex(tx, scannableID, registry_neo4j.LabelScannable); err != nil {
			return nil, err
		}

		props := map[string]interface{}{
			"id":        scanID,
			"timestamp": time.Now().Format(time.RFC3339),
		}
		if loc != nil {
			props["latitude"] = loc.Latitude
			props["longitude"] = loc.Longitude
		}

		query := `
        MATCH (d {id: $deviceId}), (s:` + registry_neo4j.LabelScannable + ` {id: $scannableId})
        CREATE (d)-[r:` + registry_neo4j.RelScan + `]->(s)
        SET r = $props
        RETURN r.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"deviceId":    deviceID,
			"scannableId": scannableID,
			"props":       props,
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: check-in", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create check-in",
			zap.Error(err),
			zap.String("deviceID", deviceID),
			zap.String("scannableID", scannableID),
			zap.Duration("duration", duration))
		return "", err
	}

	logger.Info("Check-in created successfully",
		zap.String("scanID", scanID),
		zap.Duration("duration", duration))
	return scanID, nil
}

// RecordPeerToPeerScan records a device-to-device scan. Unlike CreateCheckIn,
// a missing location is written as latitude/longitude 0 rather than omitted.
func (dao *DeviceDAO) RecordPeerToPeerScan(ctx context.Context, scannerID string, scannedID string, loc *model.Location) (string, error) {
	start := time.Now()
	scanID := newID()
	logger.Info("Recording peer-to-peer scan",
		zap.String("scannerID", scannerID),
		zap.String("scannedID", scannedID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	latitude, longitude := 0.0, 0.0
	if loc != nil {
		latitude = loc.Latitude
		longitude = loc.Longitude
	}

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if err := resolveVertex(tx, scannerID, ""); err != nil {
			return nil, err
		}
		if err := resolveVertex(tx, scannedID, ""); err != nil {
			return nil, err
		}

		query := `
        MATCH (a {id: $scannerId}), (b {id: $scannedId})
        CREATE (a)-[r:` + registry_neo4j.RelScan + `]->(b)
        SET r = $props
        RETURN r.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"scannerId": scannerID,
			"scannedId": scannedID,
			"props": map[string]interface{}{
				"id":        scanID,
				"timestamp": time.Now().Format(time.RFC3339),
				"latitude":  latitude,
				"longitude": longitude,
			},
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: peer-to-peer scan", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to record peer-to-peer scan",
			zap.Error(err),
			zap.String("scannerID", scannerID),
			zap.String("scannedID", scannedID),
			zap.Duration("duration", duration))
		return "", err
	}

	logger.Info("Peer-to-peer scan recorded successfully",
		zap.String("scanID", scanID),
		zap.Duration("duration", duration))
	return scanID, nil
}

// UpdateCheckInLocation overwrites the coordinates of an existing SCAN edge.
// The edge is matched by its ID and its source device; no match means the
// check-in does not exist for that device.
func (dao *DeviceDAO) UpdateCheckInLocation(ctx context.Context, deviceID string, scanID string, loc model.Location) error {
	start := time.Now()
	logger.Info("Updating check-in location",
		zap.String("deviceID", deviceID),
		zap.String("scanID", scanID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d {id: $deviceId})-[r:` + registry_neo4j.RelScan + ` {id: $scanId}]->()
        SET r.latitude = $latitude, r.longitude = $longitude
        RETURN r.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"deviceId":  deviceID,
			"scanId":    scanID,
			"latitude":  loc.Latitude,
			"longitude": loc.Longitude,
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: id=%s label=%s", registry_errors.ErrInvalidReference, scanID, registry_neo4j.RelScan)
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		if errors.Is(err, registry_errors.ErrInvalidReference) {
			logger.Warn("Check-in not found for location update",
				zap.String("deviceID", deviceID),
				zap.String("scanID", scanID),
				zap.Duration("duration", duration))
		} else {
			logger.Error("Failed to update check-in location",
				zap.Error(err),
				zap.String("deviceID", deviceID),
				zap.String("scanID", scanID),
				zap.Duration("duration", duration))
		}
		return err
	}

	logger.Info("Check-in location updated successfully",
		zap.String("scanID", scanID),
		zap.Duration("duration", duration))
	return nil
}
