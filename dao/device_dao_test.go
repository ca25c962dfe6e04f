// dao/device_dao_test.go
package dao_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/tracegraph/registry/dao"
	registry_errors "github.com/tracegraph/registry/errors"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
	"github.com/tracegraph/registry/test/mock"
)

const (
	resolveAnyQuery       = "MATCH (v {id: $id}) RETURN v.id"
	resolveScannableQuery = "MATCH (v:Scannable {id: $id}) RETURN v.id"
)

func setupSession(t *testing.T) (*mock.MockDriver, *mock.MockSession, *mock.MockTransaction) {
	t.Helper()
	logger.InitLogger(t.TempDir())

	tx := new(mock.MockTransaction)
	session := &mock.MockSession{Tx: tx}
	session.On("Close").Return(nil)

	driver := new(mock.MockDriver)
	driver.On("NewSession", tmock.Anything).Return(session)
	return driver, session, tx
}

func idResult(id string) *mock.MockResult {
	res := new(mock.MockResult)
	res.On("Next").Return(true).Once()
	res.On("Record").Return(&neo4j.Record{Values: []interface{}{id}}).Once()
	return res
}

func foundResult() *mock.MockResult {
	res := new(mock.MockResult)
	res.On("Next").Return(true).Once()
	return res
}

func emptyResult() *mock.MockResult {
	res := new(mock.MockResult)
	res.On("Next").Return(false).Once()
	return res
}

func queryContains(substr string) interface{} {
	return tmock.MatchedBy(func(q string) bool { return strings.Contains(q, substr) })
}

func TestCreateDevice(t *testing.T) {
	t.Run("AssignsIDBeforeWrite", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		var written string
		tx.On("Run", queryContains("CREATE (d:Device)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			written, _ = props["id"].(string)
			return props["fingerprint"] == "fp-1"
		})).Return(idResult("ignored"), nil).Once()

		id, err := deviceDAO.CreateDevice(context.Background(), "fp-1")
		assert.NoError(t, err)
		assert.Equal(t, written, id)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("DefaultsMissingFingerprint", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", queryContains("CREATE (d:Device)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			return props["fingerprint"] == "none"
		})).Return(idResult("ignored"), nil).Once()

		_, err := deviceDAO.CreateDevice(context.Background(), "")
		assert.NoError(t, err)
	})

	t.Run("NoRowMeansCreationFailed", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", tmock.Anything, tmock.Anything).Return(emptyResult(), nil).Once()

		_, err := deviceDAO.CreateDevice(context.Background(), "fp-1")
		assert.ErrorIs(t, err, registry_errors.ErrEntityCreationFailed)
	})
}

func TestCreateCheckIn(t *testing.T) {
	t.Run("OmitsCoordinatesWhenNoLocation", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", resolveAnyQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", resolveScannableQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", queryContains("CREATE (d)-[r:SCAN]->(s)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			_, hasLat := props["latitude"]
			_, hasLong := props["longitude"]
			return !hasLat && !hasLong
		})).Return(idResult("ignored"), nil).Once()

		scanID, err := deviceDAO.CreateCheckIn(context.Background(), "device-1", "scannable-1", nil)
		assert.NoError(t, err)
		assert.NotEmpty(t, scanID)
	})

	t.Run("WritesCoordinatesWhenLocated", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", resolveAnyQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", resolveScannableQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", queryContains("CREATE (d)-[r:SCAN]->(s)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			return props["latitude"] == 40.7 && props["longitude"] == -74.0
		})).Return(idResult("ignored"), nil).Once()

		_, err := deviceDAO.CreateCheckIn(context.Background(), "device-1", "scannable-1",
			&model.Location{Latitude: 40.7, Longitude: -74.0})
		assert.NoError(t, err)
	})

	t.Run("UnknownScannableAbortsBeforeEdgeWrite", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", resolveAnyQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", resolveScannableQuery, tmock.Anything).Return(emptyResult(), nil).Once()

		_, err := deviceDAO.CreateCheckIn(context.Background(), "device-1", "missing", nil)
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
		tx.AssertNumberOfCalls(t, "Run", 2)
	})

	t.Run("EmptyDeviceIDRejected", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		_, err := deviceDAO.CreateCheckIn(context.Background(), "", "scannable-1", nil)
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
		tx.AssertNumberOfCalls(t, "Run", 0)
	})
}

func TestRecordPeerToPeerScan(t *testing.T) {
	t.Run("DefaultsMissingLocationToZero", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", resolveAnyQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", resolveAnyQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", queryContains("CREATE (a)-[r:SCAN]->(b)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			return props["latitude"] == 0.0 && props["longitude"] == 0.0
		})).Return(idResult("ignored"), nil).Once()

		scanID, err := deviceDAO.RecordPeerToPeerScan(context.Background(), "device-1", "device-2", nil)
		assert.NoError(t, err)
		assert.NotEmpty(t, scanID)
	})

	t.Run("UnknownScannedDeviceRejected", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", resolveAnyQuery, tmock.MatchedBy(func(p map[string]any) bool {
			return p["id"] == "device-1"
		})).Return(foundResult(), nil).Once()
		tx.On("Run", resolveAnyQuery, tmock.MatchedBy(func(p map[string]any) bool {
			return p["id"] == "missing"
		})).Return(emptyResult(), nil).Once()

		_, err := deviceDAO.RecordPeerToPeerScan(context.Background(), "device-1", "missing", nil)
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
		tx.AssertNumberOfCalls(t, "Run", 2)
	})
}

func TestUpdateCheckInLocation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", queryContains("SET r.latitude = $latitude"), tmock.MatchedBy(func(p map[string]any) bool {
			return p["deviceId"] == "device-1" && p["scanId"] == "scan-1" &&
				p["latitude"] == 51.5 && p["longitude"] == -0.1
		})).Return(foundResult(), nil).Once()

		err := deviceDAO.UpdateCheckInLocation(context.Background(), "device-1", "scan-1",
			model.Location{Latitude: 51.5, Longitude: -0.1})
		assert.NoError(t, err)
	})

	t.Run("UnknownCheckIn", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		deviceDAO := dao.NewDeviceDAO(driver)

		tx.On("Run", tmock.Anything, tmock.Anything).Return(emptyResult(), nil).Once()

		err := deviceDAO.UpdateCheckInLocation(context.Background(), "device-1", "missing", model.Location{})
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
	})
}
