// test/mock/dao.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tracegraph/registry/dao"
	"github.com/tracegraph/registry/model"
)

// MockDeviceDAO is a mock implementation of dao.IDeviceDAO
type MockDeviceDAO struct {
	mock.Mock
}

func (m *MockDeviceDAO) CreateDevice(ctx context.Context, fingerprint string) (string, error) {
	args := m.Called(ctx, fingerprint)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceDAO) CreateCheckIn(ctx context.Context, deviceID string, scannableID string, loc *model.Location) (string, error) {
	args := m.Called(ctx, deviceID, scannableID, loc)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceDAO) RecordPeerToPeerScan(ctx context.Context, scannerID string, scannedID string, loc *model.Location) (string, error) {
	args := m.Called(ctx, scannerID, scannedID, loc)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceDAO) UpdateCheckInLocation(ctx context.Context, deviceID string, scanID string, loc model.Location) error {
	args := m.Called(ctx, deviceID, scanID, loc)
	return args.Error(0)
}

// MockReportDAO is a mock implementation of dao.IReportDAO
type MockReportDAO struct {
	mock.Mock
}

func (m *MockReportDAO) RecordTestResult(ctx context.Context, testResult model.TestResult) (string, error) {
	args := m.Called(ctx, testResult)
	return args.String(0), args.Error(1)
}

func (m *MockReportDAO) RecordSymptoms(ctx context.Context, summary model.SymptomSummary) (string, error) {
	args := m.Called(ctx, summary)
	return args.String(0), args.Error(1)
}

// MockOrganizationDAO is a mock implementation of dao.IOrganizationDAO
type MockOrganizationDAO struct {
	mock.Mock
}

func (m *MockOrganizationDAO) CreateOrganization(ctx context.Context, name, phone, email, contactName string,
	address model.Address, hasTestingFacilities, multiSite bool) (*model.Organization, error) {
	args := m.Called(ctx, name, phone, email, contactName, address, hasTestingFacilities, multiSite)
	org, _ := args.Get(0).(*model.Organization)
	return org, args.Error(1)
}

func (m *MockOrganizationDAO) GetOrganization(ctx context.Context, orgID string) (*model.Organization, error) {
	args := m.Called(ctx, orgID)
	org, _ := args.Get(0).(*model.Organization)
	return org, args.Error(1)
}

func (m *MockOrganizationDAO) SetMultiSite(ctx context.Context, orgID string, state bool) error {
	args := m.Called(ctx, orgID, state)
	return args.Error(0)
}

func (m *MockOrganizationDAO) CreateSite(ctx context.Context, site model.Site) (string, error) {
	args := m.Called(ctx, site)
	return args.String(0), args.Error(1)
}

func (m *MockOrganizationDAO) GetSites(ctx context.Context, orgID string) ([]model.SiteSummary, error) {
	args := m.Called(ctx, orgID)
	sites, _ := args.Get(0).([]model.SiteSummary)
	return sites, args.Error(1)
}

func (m *MockOrganizationDAO) CreateScannable(ctx context.Context, orgID, siteID, scanType string, singleUse bool) (string, error) {
	args := m.Called(ctx, orgID, siteID, scanType, singleUse)
	return args.String(0), args.Error(1)
}

func (m *MockOrganizationDAO) UpdateEntityName(ctx context.Context, id, label, name string) error {
	args := m.Called(ctx, id, label, name)
	return args.Error(0)
}

func (m *MockOrganizationDAO) GetScannables(ctx context.Context, siteID string) ([]model.Scannable, error) {
	args := m.Called(ctx, siteID)
	scannables, _ := args.Get(0).([]model.Scannable)
	return scannables, args.Error(1)
}

// MockUserDAO is a mock implementation of dao.IUserDAO
type MockUserDAO struct {
	mock.Mock
}

func (m *MockUserDAO) CreateUser(ctx context.Context, name, phone, email, deviceID string) (string, error) {
	args := m.Called(ctx, name, phone, email, deviceID)
	return args.String(0), args.Error(1)
}

func (m *MockUserDAO) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

var (
	_ dao.IDeviceDAO       = &MockDeviceDAO{}
	_ dao.IReportDAO       = &MockReportDAO{}
	_ dao.IOrganizationDAO = &MockOrganizationDAO{}
	_ dao.IUserDAO         = &MockUserDAO{}
)
