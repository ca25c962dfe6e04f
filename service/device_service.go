// service/device_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tracegraph/registry/dao"
	registry_errors "github.com/tracegraph/registry/errors"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
)

// IDeviceService defines the interface for device and scan operations
type IDeviceService interface {
	CreateDevice(ctx context.Context, fingerprint string) (string, error)
	CreateCheckIn(ctx context.Context, deviceID string, scanType model.ScanType, scannedID string, loc *model.Location) (string, error)
	UpdateCheckInLocation(ctx context.Context, deviceID string, scanID string, loc model.Location) error
}

// DeviceService handles business logic for device registration and scans
type DeviceService struct {
	deviceDAO dao.IDeviceDAO
}

var _ IDeviceService = &DeviceService{}

func NewDeviceService(deviceDAO dao.IDeviceDAO) *DeviceService {
	return &DeviceService{deviceDAO: deviceDAO}
}

// CreateDevice registers an anonymous device and returns its new ID.
func (s *DeviceService) CreateDevice(ctx context.Context, fingerprint string) (string, error) {
	deviceID, err := s.deviceDAO.CreateDevice(ctx, fingerprint)
	if err != nil {
		logger.Error("Error creating device", zap.Error(err))
		return "", err
	}
	return deviceID, nil
}

// CreateCheckIn dispatches a decoded scan to the matching graph operation.
// The two scan kinds deliberately differ in how a missing location is stored.
func (s *DeviceService) CreateCheckIn(ctx context.Context, deviceID string, scanType model.ScanType, scannedID string, loc *model.Location) (string, error) {
	switch scanType {
	case model.ScanDeviceToScannable:
		return s.deviceDAO.CreateCheckIn(ctx, deviceID, scannedID, loc)
	case model.ScanDeviceToDevice:
		return s.deviceDAO.RecordPeerToPeerScan(ctx, deviceID, scannedID, loc)
	default:
		return "", fmt.Errorf("%w: unknown scan type %q", registry_errors.ErrInvalidRequestData, scanType)
	}
}

// UpdateCheckInLocation overwrites the coordinates on an existing check-in.
func (s *DeviceService) UpdateCheckInLocation(ctx context.Context, deviceID string, scanID string, loc model.Location) error {
	if err := s.deviceDAO.UpdateCheckInLocation(ctx, deviceID, scanID, loc); err != nil {
		logger.Error("Error updating check-in location",
			zap.Error(err),
			zap.String("deviceID", deviceID),
			zap.String("scanID", scanID))
		return err
	}
	return nil
}
