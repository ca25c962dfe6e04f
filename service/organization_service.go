// service/organization_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tracegraph/registry/dao"
	registry_errors "github.com/tracegraph/registry/errors"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
	registry_neo4j "github.com/tracegraph/registry/model/neo4j"
	"github.com/tracegraph/registry/util"
)

// Defaults for the auto-provisioned scan point of a simple organization.
const (
	defaultSiteName          = "Default"
	defaultSiteCategory      = "BUSINESS"
	defaultSiteSubcategory   = "OTHER"
	defaultScannableType     = "QR_CODE"
	defaultScannableReusable = false
)

// IOrganizationService defines the interface for organization operations
type IOrganizationService interface {
	CreateOrganization(ctx context.Context, name, phone, email, contactName string,
		address model.Address, hasTestingFacilities, multiSite bool) (*model.Organization, error)
	GetOrganization(ctx context.Context, orgID string) (*model.Organization, error)
	SetMultiSite(ctx context.Context, orgID string, state bool) error
	CreateSite(ctx context.Context, site model.Site) (string, error)
	GetSites(ctx context.Context, orgID string) ([]model.SiteSummary, error)
	CreateScannable(ctx context.Context, orgID, siteID, scanType string, singleUse bool) (string, error)
	RenameSite(ctx context.Context, siteID, name string) error
	RenameScannable(ctx context.Context, scannableID, name string) error
	GetScannables(ctx context.Context, siteID string) ([]model.Scannable, error)
}

// OrganizationService handles business logic for organizations, their sites
// and scan points, including the simple-organization provisioning flow.
type OrganizationService struct {
	orgDAO          dao.IOrganizationDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IOrganizationService = &OrganizationService{}

func NewOrganizationService(orgDAO dao.IOrganizationDAO, validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService, eventBus *util.EventBus) *OrganizationService {

	service := &OrganizationService{
		orgDAO:          orgDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(model.EventSimpleOrganizationCreated, service.handleSimpleOrganizationCreated)

	return service
}

func (s *OrganizationService) handleSimpleOrganizationCreated(ctx context.Context, event util.Event) error {
	created := event.Payload.(model.SimpleOrganizationCreated)
	logger.Info("Simple organization created event received",
		zap.String("orgID", created.Organization.ID),
		zap.String("scannableID", created.DefaultScannableID))

	if err := s.notificationSvc.SendOnboardingKit(ctx, created); err != nil {
		logger.Warn("Failed to send onboarding kit",
			zap.Error(err),
			zap.String("orgID", created.Organization.ID))
		return err
	}
	return nil
}

// CreateOrganization creates the organization vertex, and for a simple
// organization (no testing facilities, single site) provisions a default
// site and QR code before publishing SimpleOrganizationCreated.
//
// The three steps are separate graph mutations, not one transaction. When a
// later step fails the organization exists without its default scan point;
// that inconsistency is surfaced to the caller and logged for out-of-band
// repair, never swallowed.
func (s *OrganizationService) CreateOrganization(ctx context.Context, name, phone, email, contactName string,
	address model.Address, hasTestingFacilities, multiSite bool) (*model.Organization, error) {

	if err := s.validationUtil.ValidateNewOrganization(name, contactName, email); err != nil {
		return nil, fmt.Errorf("%w: %v", registry_errors.ErrInvalidRequestData, err)
	}

	org, err := s.orgDAO.CreateOrganization(ctx, name, phone, email, contactName, address, hasTestingFacilities, multiSite)
	if err != nil {
		logger.Error("Error creating organization", zap.Error(err), zap.String("orgName", name))
		return nil, err
	}

	if !hasTestingFacilities && !multiSite {
		logger.Debug("Simple organization detected, auto-creating default site and scannable",
			zap.String("orgID", org.ID))

		siteID, err := s.orgDAO.CreateSite(ctx, model.Site{
			OrganizationID: org.ID,
			Name:           defaultSiteName,
			Category:       defaultSiteCategory,
			Subcategory:    defaultSiteSubcategory,
			Address:        &address,
		})
		if err != nil {
			logger.Error("Organization left without default site",
				zap.Error(err),
				zap.String("orgID", org.ID))
			return nil, fmt.Errorf("default site provisioning failed for organization %s: %w", org.ID, err)
		}

		scannableID, err := s.orgDAO.CreateScannable(ctx, org.ID, siteID, defaultScannableType, defaultScannableReusable)
		if err != nil {
			logger.Error("Organization left without default scannable",
				zap.Error(err),
				zap.String("orgID", org.ID),
				zap.String("siteID", siteID))
			return nil, fmt.Errorf("default scannable provisioning failed for organization %s: %w", org.ID, err)
		}

		s.eventBus.Publish(ctx, model.EventSimpleOrganizationCreated, model.SimpleOrganizationCreated{
			Organization:       *org,
			DefaultScannableID: scannableID,
		})
	}

	logger.Info("Organization created successfully", zap.String("orgID", org.ID))
	return org, nil
}

// GetOrganization retrieves an organization by its ID.
func (s *OrganizationService) GetOrganization(ctx context.Context, orgID string) (*model.Organization, error) {
	return s.orgDAO.GetOrganization(ctx, orgID)
}

// SetMultiSite overwrites the organization's multi-site flag.
func (s *OrganizationService) SetMultiSite(ctx context.Context, orgID string, state bool) error {
	if err := s.orgDAO.SetMultiSite(ctx, orgID, state); err != nil {
		logger.Error("Error setting multi-site flag", zap.Error(err), zap.String("orgID", orgID))
		return err
	}
	return nil
}

// CreateSite creates a site after checking its category and subcategory
// against the configured catalog.
func (s *OrganizationService) CreateSite(ctx context.Context, site model.Site) (string, error) {
	if err := s.validationUtil.ValidateSiteType(site.Category, site.Subcategory); err != nil {
		return "", fmt.Errorf("%w: %v", registry_errors.ErrInvalidRequestData, err)
	}

	siteID, err := s.orgDAO.CreateSite(ctx, site)
	if err != nil {
		logger.Error("Error creating site",
			zap.Error(err),
			zap.String("orgID", site.OrganizationID))
		return "", err
	}
	return siteID, nil
}

// GetSites lists the sites owned by an organization.
func (s *OrganizationService) GetSites(ctx context.Context, orgID string) ([]model.SiteSummary, error) {
	sites, err := s.orgDAO.GetSites(ctx, orgID)
	if err != nil {
		logger.Error("Error listing sites", zap.Error(err), zap.String("orgID", orgID))
		return nil, err
	}
	return sites, nil
}

// CreateScannable creates a scan point under a site after checking the type
// against the configured catalog.
func (s *OrganizationService) CreateScannable(ctx context.Context, orgID, siteID, scanType string, singleUse bool) (string, error) {
	if err := s.validationUtil.ValidateScannableType(scanType); err != nil {
		return "", fmt.Errorf("%w: %v", registry_errors.ErrInvalidRequestData, err)
	}

	scannableID, err := s.orgDAO.CreateScannable(ctx, orgID, siteID, scanType, singleUse)
	if err != nil {
		logger.Error("Error creating scannable",
			zap.Error(err),
			zap.String("orgID", orgID),
			zap.String("siteID", siteID))
		return "", err
	}
	return scannableID, nil
}

// RenameSite renames a site; the label match keeps it from touching
// non-site vertices.
func (s *OrganizationService) RenameSite(ctx context.Context, siteID, name string) error {
	return s.orgDAO.UpdateEntityName(ctx, siteID, registry_neo4j.LabelSite, name)
}

// RenameScannable renames a scan point.
func (s *OrganizationService) RenameScannable(ctx context.Context, scannableID, name string) error {
	return s.orgDAO.UpdateEntityName(ctx, scannableID, registry_neo4j.LabelScannable, name)
}

// GetScannables lists the scan points owned by a site.
func (s *OrganizationService) GetScannables(ctx context.Context, siteID string) ([]model.Scannable, error) {
	scannables, err := s.orgDAO.GetScannables(ctx, siteID)
	if err != nil {
		logger.Error("Error listing scannables", zap.Error(err), zap.String("siteID", siteID))
		return nil, err
	}
	return scannables, nil
}
