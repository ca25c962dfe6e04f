// dao/organization_dao_test.go
package dao_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/tracegraph/registry/dao"
	registry_errors "github.com/tracegraph/registry/errors"
	"github.com/tracegraph/registry/model"
	"github.com/tracegraph/registry/test/mock"
)

const (
	resolveOrganizationQuery = "MATCH (v:Organization {id: $id}) RETURN v.id"
	resolveSiteQuery         = "MATCH (v:Site {id: $id}) RETURN v.id"
)

type stubPhoneValidator struct {
	err error
}

func (s stubPhoneValidator) Validate(phone string) error {
	return s.err
}

var testAddress = model.Address{
	Premise:            "1",
	Thoroughfare:       "Main St",
	Locality:           "Springfield",
	AdministrativeArea: "IL",
	PostalCode:         "62701",
	Country:            "US",
}

func TestCreateOrganization(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", queryContains("CREATE (o:Organization)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			return props["verified"] == false &&
				props["hasTestingFacilities"] == true &&
				props["multisite"] == false &&
				props["country"] == "US"
		})).Return(idResult("ignored"), nil).Once()

		org, err := orgDAO.CreateOrganization(context.Background(), "Acme", "+12025551234",
			"ops@acme.test", "Jo Doe", testAddress, true, false)
		assert.NoError(t, err)
		assert.NotEmpty(t, org.ID)
		assert.Equal(t, "Acme", org.Name)
		assert.Equal(t, testAddress, org.Address)
		assert.Equal(t, "+12025551234", org.ContactInfo.PhoneNumber)
	})

	t.Run("BadPhoneFailsBeforeAnyWrite", func(t *testing.T) {
		driver, _, _ := setupSession(t)
		phoneErr := fmt.Errorf("%w: 12345", registry_errors.ErrInvalidPhoneNumber)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{err: phoneErr})

		_, err := orgDAO.CreateOrganization(context.Background(), "Acme", "12345",
			"ops@acme.test", "Jo Doe", testAddress, false, false)
		assert.ErrorIs(t, err, registry_errors.ErrInvalidPhoneNumber)
		driver.AssertNotCalled(t, "NewSession", tmock.Anything)
	})
}

func TestGetOrganization(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		driver, session, _ := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		node := neo4j.Node{Props: map[string]interface{}{
			"id":          "org-1",
			"name":        "Acme",
			"contactName": "Jo Doe",
			"email":       "ops@acme.test",
			"phone":       "+12025551234",
			"locality":    "Springfield",
		}}
		res := new(mock.MockResult)
		res.On("Next").Return(true).Once()
		res.On("Record").Return(&neo4j.Record{Values: []interface{}{node}}).Once()
		session.On("Run", queryContains("MATCH (o:Organization {id: $id})"), tmock.Anything).Return(res, nil).Once()

		org, err := orgDAO.GetOrganization(context.Background(), "org-1")
		assert.NoError(t, err)
		assert.Equal(t, "Acme", org.Name)
		assert.Equal(t, "Springfield", org.Address.Locality)
		assert.Equal(t, "ops@acme.test", org.ContactInfo.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		driver, session, _ := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		session.On("Run", tmock.Anything, tmock.Anything).Return(emptyResult(), nil).Once()

		_, err := orgDAO.GetOrganization(context.Background(), "missing")
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
	})
}

func TestSetMultiSite(t *testing.T) {
	t.Run("UnknownOrganization", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", tmock.Anything, tmock.Anything).Return(emptyResult(), nil).Once()

		err := orgDAO.SetMultiSite(context.Background(), "missing", true)
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
	})

	t.Run("Success", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", queryContains("SET o.multisite = $state"), tmock.MatchedBy(func(p map[string]any) bool {
			return p["id"] == "org-1" && p["state"] == true
		})).Return(foundResult(), nil).Once()

		err := orgDAO.SetMultiSite(context.Background(), "org-1", true)
		assert.NoError(t, err)
	})
}

func TestCreateSite(t *testing.T) {
	t.Run("DefaultsNameAndOmitsOptionalFields", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", resolveOrganizationQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", queryContains("CREATE (o)-[:OWNS]->(s)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			_, hasAddr := props["premise"]
			_, hasLat := props["latitude"]
			_, hasPhone := props["phone"]
			return props["name"] == "Default" && !hasAddr && !hasLat && !hasPhone
		})).Return(idResult("ignored"), nil).Once()

		siteID, err := orgDAO.CreateSite(context.Background(), model.Site{
			OrganizationID: "org-1",
			Category:       "BUSINESS",
			Subcategory:    "OTHER",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, siteID)
	})

	t.Run("UnknownOrganizationAbortsBeforeWrite", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", resolveOrganizationQuery, tmock.Anything).Return(emptyResult(), nil).Once()

		_, err := orgDAO.CreateSite(context.Background(), model.Site{
			OrganizationID: "missing",
			Category:       "BUSINESS",
			Subcategory:    "OTHER",
		})
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
		tx.AssertNumberOfCalls(t, "Run", 1)
	})
}

func TestGetSites(t *testing.T) {
	driver, session, _ := setupSession(t)
	orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

	res := new(mock.MockResult)
	res.On("Next").Return(true).Twice()
	res.On("Record").Return(&neo4j.Record{Values: []interface{}{"site-1", "Main"}}).Once()
	res.On("Record").Return(&neo4j.Record{Values: []interface{}{"site-2", "Warehouse"}}).Once()
	res.On("Next").Return(false).Once()
	session.On("Run", queryContains("RETURN s.id, s.name"), tmock.Anything).Return(res, nil).Once()

	sites, err := orgDAO.GetSites(context.Background(), "org-1")
	assert.NoError(t, err)
	assert.Equal(t, []model.SiteSummary{
		{ID: "site-1", Name: "Main"},
		{ID: "site-2", Name: "Warehouse"},
	}, sites)
}

func TestCreateScannable(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", resolveSiteQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", queryContains("CREATE (s)-[:OWNS]->(c)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			return props["type"] == "QR_CODE" && props["singleUse"] == false && props["active"] == true
		})).Return(idResult("ignored"), nil).Once()

		scannableID, err := orgDAO.CreateScannable(context.Background(), "org-1", "site-1", "QR_CODE", false)
		assert.NoError(t, err)
		assert.NotEmpty(t, scannableID)
	})

	t.Run("UnknownSite", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", resolveSiteQuery, tmock.Anything).Return(emptyResult(), nil).Once()

		_, err := orgDAO.CreateScannable(context.Background(), "org-1", "missing", "QR_CODE", false)
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
		tx.AssertNumberOfCalls(t, "Run", 1)
	})
}

func TestUpdateEntityName(t *testing.T) {
	t.Run("MissingVertexIsANoOp", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", queryContains("MATCH (n:Site {id: $id})"), tmock.Anything).Return(emptyResult(), nil).Once()

		err := orgDAO.UpdateEntityName(context.Background(), "missing", "Site", "Renamed")
		assert.NoError(t, err)
	})

	t.Run("RunErrorIsUpdateFailed", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

		tx.On("Run", tmock.Anything, tmock.Anything).Return(nil, assert.AnError).Once()

		err := orgDAO.UpdateEntityName(context.Background(), "site-1", "Site", "Renamed")
		assert.ErrorIs(t, err, registry_errors.ErrUpdateFailed)
	})
}

func TestGetScannables(t *testing.T) {
	driver, session, _ := setupSession(t)
	orgDAO := dao.NewOrganizationDAO(driver, stubPhoneValidator{})

	res := new(mock.MockResult)
	res.On("Next").Return(true).Twice()
	res.On("Record").Return(&neo4j.Record{Values: []interface{}{"scan-1", "Entrance", "QR_CODE"}}).Once()
	res.On("Record").Return(&neo4j.Record{Values: []interface{}{"scan-2", nil, "BT_RECEIVER"}}).Once()
	res.On("Next").Return(false).Once()
	session.On("Run", queryContains("RETURN c.id, c.name, c.type"), tmock.Anything).Return(res, nil).Once()

	scannables, err := orgDAO.GetScannables(context.Background(), "site-1")
	assert.NoError(t, err)
	assert.Equal(t, []model.Scannable{
		{ID: "scan-1", Name: "Entrance", Type: "QR_CODE"},
		{ID: "scan-2", Name: "None", Type: "BT_RECEIVER"},
	}, scannables)
}
