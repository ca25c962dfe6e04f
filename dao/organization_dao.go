// dao/organization_dao.go
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

type OrganizationDAO struct {
	Driver         neo4j.Driver
	PhoneValidator PhoneValidator
}

func NewOrganizationDAO(driver neo4j.Driver, phoneValidator PhoneValidator) *OrganizationDAO {
	return &OrganizationDAO{Driver: driver, PhoneValidator: phoneValidator}
}

// CreateOrganization writes an Organization vertex and returns the full
// organization value. The contact phone is validated before anything touches
// the store; organizations always start unverified.
func (dao *OrganizationDAO) CreateOrganization(ctx context.Context, name, phone, email, contactName string,
	address model.Address, hasTestingFacilities, multiSite bool) (*model.Organization, error) {

	if err := dao.PhoneValidator.Validate(phone); err != nil {
		return nil, err
	}

	start := time.Now()
	id := newID()
	logger.Info("Creating new organization", zap.String("orgName", name))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (o:` + registry_neo4j.LabelOrganization + `)
        SET o = $props
        RETURN o.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"props": map[string]interface{}{
				"id":                   id,
				"name":                 name,
				"premise":              address.Premise,
				"thoroughfare":         address.Thoroughfare,
				"locality":             address.Locality,
				"administrativeArea":   address.AdministrativeArea,
				"postalCode":           address.PostalCode,
				"country":              address.Country,
				"contactName":          contactName,
				"email":                email,
				"phone":                phone,
				"verified":             false,
				"hasTestingFacilities": hasTestingFacilities,
				"multisite":            multiSite,
				"creationTimestamp":    time.Now().Format(time.RFC3339),
			},
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: organization", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create organization",
			zap.Error(err),
			zap.String("orgName", name),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Organization created successfully",
		zap.String("orgID", id),
		zap.Duration("duration", duration))

	return &model.Organization{
		ID:          id,
		Name:        name,
		Address:     address,
		ContactName: contactName,
		ContactInfo: model.ContactInfo{Email: email, PhoneNumber: phone},
	}, nil
}

// GetOrganization retrieves an organization by its ID.
func (dao *OrganizationDAO) GetOrganization(ctx context.Context, orgID string) (*model.Organization, error) {
	start := time.Now()

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (o:` + registry_neo4j.LabelOrganization + ` {id: $id})
    RETURN o
    `
	result, err := session.Run(query, map[string]interface{}{"id": orgID})
	if err != nil {
		logger.Error("Failed to execute get organization query",
			zap.Error(err),
			zap.String("orgID", orgID),
			zap.Duration("duration", time.Since(start)))
		return nil, registry_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		return mapNodeToOrganization(node), nil
	}

	logger.Warn("Organization not found",
		zap.String("orgID", orgID),
		zap.Duration("duration", time.Since(start)))
	return nil, fmt.Errorf("%w: id=%s label=%s", registry_errors.ErrInvalidReference, orgID, registry_neo4j.LabelOrganization)
}

// SetMultiSite overwrites the multisite flag. The target must exist; nothing
// else about the organization is validated.
func (dao *OrganizationDAO) SetMultiSite(ctx context.Context, orgID string, state bool) error {
	start := time.Now()
	logger.Info("Setting multi-site flag", zap.String("orgID", orgID), zap.Bool("state", state))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (o:` + registry_neo4j.LabelOrganization + ` {id: $id})
        SET o.multisite = $state
        RETURN o.id
        `
		result, err := tx.Run(query, map[string]interface{}{"id": orgID, "state": state})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: id=%s label=%s", registry_errors.ErrInvalidReference, orgID, registry_neo4j.LabelOrganization)
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to set multi-site flag",
			zap.Error(err),
			zap.String("orgID", orgID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Multi-site flag updated successfully",
		zap.String("orgID", orgID),
		zap.Duration("duration", duration))
	return nil
}

// CreateSite writes a Site vertex and links it under its organization with an
// OWNS edge. Optional fields are left off the vertex, not written as null.
func (dao *OrganizationDAO) CreateSite(ctx context.Context, site model.Site) (string, error) {
	start := time.Now()
	id := newID()
	logger.Info("Creating site",
		zap.String("orgID", site.OrganizationID),
		zap.String("category", site.Category),
		zap.String("subcategory", site.Subcategory))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	name := site.Name
	if name == "" {
		name = "Default"
	}

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if err := resolveVertex(tx, site.OrganizationID, registry_neo4j.LabelOrganization); err != nil {
			return nil, err
		}

		props := map[string]interface{}{
			"id":                id,
			"organizationId":    site.OrganizationID,
			"name":              name,
			"category":          site.Category,
			"subcategory":       site.Subcategory,
			"testing":           site.Testing,
			"creationTimestamp": time.Now().Format(time.RFC3339),
		}
		if site.Address != nil {
			props["premise"] = site.Address.Premise
			props["thoroughfare"] = site.Address.Thoroughfare
			props["locality"] = site.Address.Locality
			props["administrativeArea"] = site.Address.AdministrativeArea
			props["postalCode"] = site.Address.PostalCode
			props["country"] = site.Address.Country
		}
		if site.Latitude != nil {
			props["latitude"] = *site.Latitude
		}
		if site.Longitude != nil {
			props["longitude"] = *site.Longitude
		}
		if site.ContactName != "" {
			props["contactName"] = site.ContactName
		}
		if site.Phone != "" {
			props["phone"] = site.Phone
		}
		if site.Email != "" {
			props["email"] = site.Email
		}

		query := `
        MATCH (o:` + registry_neo4j.LabelOrganization + ` {id: $orgId})
        CREATE (s:` + registry_neo4j.LabelSite + `)
        SET s = $props
        CREATE (o)-[:` + registry_neo4j.RelOwns + `]->(s)
        RETURN s.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"orgId": site.OrganizationID,
			"props": props,
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: site", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create site",
			zap.Error(err),
			zap.String("orgID", site.OrganizationID),
			zap.String("category", site.Category),
			zap.Duration("duration", duration))
		return "", err
	}

	logger.Info("Site created successfully",
		zap.String("siteID", id),
		zap.Duration("duration", duration))
	return id, nil
}

// GetSites lists the (id, name) of every site owned by an organization.
// Ordering is whatever the store returns.
func (dao *OrganizationDAO) GetSites(ctx context.Context, orgID string) ([]model.SiteSummary, error) {
	start := time.Now()

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (o:` + registry_neo4j.LabelOrganization + ` {id: $id})-[:` + registry_neo4j.RelOwns + `]->(s:` + registry_neo4j.LabelSite + `)
    RETURN s.id, s.name
    `
	result, err := session.Run(query, map[string]interface{}{"id": orgID})
	if err != nil {
		logger.Error("Failed to execute get sites query",
			zap.Error(err),
			zap.String("orgID", orgID),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: organization sites", registry_errors.ErrQueryFailed)
	}

	var sites []model.SiteSummary
	for result.Next() {
		values := result.Record().Values
		sites = append(sites, model.SiteSummary{
			ID:   values[0].(string),
			Name: values[1].(string),
		})
	}

	logger.Info("Sites listed successfully",
		zap.String("orgID", orgID),
		zap.Int("count", len(sites)),
		zap.Duration("duration", time.Since(start)))
	return sites, nil
}

// CreateScannable writes a Scannable vertex under a site. The site must
// resolve with the Site label; whether it actually belongs to orgID is not
// re-checked here, the path parameters are trusted as already scoped.
func (dao *OrganizationDAO) CreateScannable(ctx context.Context, orgID, siteID, scanType string, singleUse bool) (string, error) {
	start := time.Now()
	id := newID()
	logger.Info("Creating scannable",
		zap.String("orgID", orgID),
		zap.String("siteID", siteID),
		zap.String("type", scanType))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if err := resolveVertex(tx, siteID, registry_neo4j.LabelSite); err != nil {
			return nil, err
		}

		query := `
        MATCH (s:` + registry_neo4j.LabelSite + ` {id: $siteId})
        CREATE (c:` + registry_neo4j.LabelScannable + `)
        SET c = $props
        CREATE (s)-[:` + registry_neo4j.RelOwns + `]->(c)
        RETURN c.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"siteId": siteID,
			"props": map[string]interface{}{
				"id":        id,
				"type":      scanType,
				"singleUse": singleUse,
				"active":    true,
			},
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: scannable", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create scannable",
			zap.Error(err),
			zap.String("orgID", orgID),
			zap.String("siteID", siteID),
			zap.String("type", scanType),
			zap.Duration("duration", duration))
		return "", err
	}

	logger.Info("Scannable created successfully",
		zap.String("scannableID", id),
		zap.Duration("duration", duration))
	return id, nil
}

// UpdateEntityName renames a vertex matched by ID and label. The label check
// keeps a site rename from touching a scannable that shares an ID prefix with
// it. A missing vertex is a no-op.
func (dao *OrganizationDAO) UpdateEntityName(ctx context.Context, id, label, name string) error {
	start := time.Now()
	logger.Info("Updating entity name", zap.String("id", id), zap.String("label", label))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (n:` + label + ` {id: $id})
        SET n.name = $name
        `
		if _, err := tx.Run(query, map[string]interface{}{"id": id, "name": name}); err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update entity name",
			zap.Error(err),
			zap.String("id", id),
			zap.String("label", label),
			zap.Duration("duration", duration))
		return fmt.Errorf("%w: %s name", registry_errors.ErrUpdateFailed, label)
	}

	logger.Info("Entity name updated successfully",
		zap.String("id", id),
		zap.String("label", label),
		zap.Duration("duration", duration))
	return nil
}

// GetScannables lists the scannables owned by a site. Scannables without a
// name come back as "None".
func (dao *OrganizationDAO) GetScannables(ctx context.Context, siteID string) ([]model.Scannable, error) {
	start := time.Now()

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (s:` + registry_neo4j.LabelSite + ` {id: $id})-[:` + registry_neo4j.RelOwns + `]->(c:` + registry_neo4j.LabelScannable + `)
    RETURN c.id, c.name, c.type
    `
	result, err := session.Run(query, map[string]interface{}{"id": siteID})
	if err != nil {
		logger.Error("Failed to execute get scannables query",
			zap.Error(err),
			zap.String("siteID", siteID),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: site scannables", registry_errors.ErrQueryFailed)
	}

	var scannables []model.Scannable
	for result.Next() {
		values := result.Record().Values
		name := "None"
		if s, ok := values[1].(string); ok {
			name = s
		}
		scannables = append(scannables, model.Scannable{
			ID:   values[0].(string),
			Name: name,
			Type: values[2].(string),
		})
	}

	logger.Info("Scannables listed successfully",
		zap.String("siteID", siteID),
		zap.Int("count", len(scannables)),
		zap.Duration("duration", time.Since(start)))
	return scannables, nil
}

// Helper function to map a Neo4j node to an Organization struct
func mapNodeToOrganization(node neo4j.Node) *model.Organization {
	props := node.Props
	return &model.Organization{
		ID:   stringProp(props, "id"),
		Name: stringProp(props, "name"),
		Address: model.Address{
			Premise:            stringProp(props, "premise"),
			Thoroughfare:       stringProp(props, "thoroughfare"),
			Locality:           stringProp(props, "locality"),
			AdministrativeArea: stringProp(props, "administrativeArea"),
			PostalCode:         stringProp(props, "postalCode"),
			Country:            stringProp(props, "country"),
		},
		ContactName: stringProp(props, "contactName"),
		ContactInfo: model.ContactInfo{
			Email:       stringProp(props, "email"),
			PhoneNumber: stringProp(props, "phone"),
		},
	}
}
