// dao/interfaces.go
package dao

import (
	"context"

	"github.com/tracegraph/registry/model"
)

// IDeviceDAO defines the device and scan graph operations
type IDeviceDAO interface {
	CreateDevice(ctx context.Context, fingerprint string) (string, error)
	CreateCheckIn(ctx context.Context, deviceID string, scannableID string, loc *model.Location) (string, error)
	RecordPeerToPeerScan(ctx context.Context, scannerID string, scannedID string, loc *model.Location) (string, error)
	UpdateCheckInLocation(ctx context.Context, deviceID string, scanID string, loc model.Location) error
}

// IReportDAO defines the health report graph operations
type IReportDAO interface {
	RecordTestResult(ctx context.Context, testResult model.TestResult) (string, error)
	RecordSymptoms(ctx context.Context, summary model.SymptomSummary) (string, error)
}

// IOrganizationDAO defines the organization, site and scannable graph operations
type IOrganizationDAO interface {
	CreateOrganization(ctx context.Context, name, phone, email, contactName string,
		address model.Address, hasTestingFacilities, multiSite bool) (*model.Organization, error)
	GetOrganization(ctx context.Context, orgID string) (*model.Organization, error)
	SetMultiSite(ctx context.Context, orgID string, state bool) error
	CreateSite(ctx context.Context, site model.Site) (string, error)
	GetSites(ctx context.Context, orgID string) ([]model.SiteSummary, error)
	CreateScannable(ctx context.Context, orgID, siteID, scanType string, singleUse bool) (string, error)
	UpdateEntityName(ctx context.Context, id, label, name string) error
	GetScannables(ctx context.Context, siteID string) ([]model.Scannable, error)
}

// IUserDAO defines the user graph operations
type IUserDAO interface {
	CreateUser(ctx context.Context, name, phone, email, deviceID string) (string, error)
	DeleteUser(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

var (
	_ IDeviceDAO       = &DeviceDAO{}
	_ IReportDAO       = &ReportDAO{}
	_ IOrganizationDAO = &OrganizationDAO{}
	_ IUserDAO         = &UserDAO{}
)
