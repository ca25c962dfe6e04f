// dao/user_dao_test.go
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
	"github.com/tracegraph/registry/test/mock"
)

func TestCreateUser(t *testing.T) {
	t.Run("OmitsEmptyContactFields", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		userDAO := dao.NewUserDAO(driver, stubPhoneValidator{})

		tx.On("Run", resolveAnyQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", queryContains("CREATE (u:User)"), tmock.MatchedBy(func(p map[string]any) bool {
			props := p["props"].(map[string]interface{})
			_, hasName := props["name"]
			_, hasPhone := props["phone"]
			return props["deleted"] == false && !hasName && !hasPhone && props["email"] == "a@b.test"
		})).Return(idResult("ignored"), nil).Once()

		userID, err := userDAO.CreateUser(context.Background(), "", "", "a@b.test", "device-1")
		assert.NoError(t, err)
		assert.NotEmpty(t, userID)
	})

	t.Run("UnknownDeviceRejected", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		userDAO := dao.NewUserDAO(driver, stubPhoneValidator{})

		tx.On("Run", resolveAnyQuery, tmock.Anything).Return(emptyResult(), nil).Once()

		_, err := userDAO.CreateUser(context.Background(), "Sam", "", "", "missing")
		assert.ErrorIs(t, err, registry_errors.ErrInvalidReference)
		tx.AssertNumberOfCalls(t, "Run", 1)
	})

	t.Run("BadPhoneFailsBeforeAnyWrite", func(t *testing.T) {
		driver, _, _ := setupSession(t)
		phoneErr := fmt.Errorf("%w: 12345", registry_errors.ErrInvalidPhoneNumber)
		userDAO := dao.NewUserDAO(driver, stubPhoneValidator{err: phoneErr})

		_, err := userDAO.CreateUser(context.Background(), "Sam", "12345", "", "device-1")
		assert.ErrorIs(t, err, registry_errors.ErrInvalidPhoneNumber)
		driver.AssertNotCalled(t, "NewSession", tmock.Anything)
	})

	t.Run("EmptyPhoneSkipsValidation", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		phoneErr := fmt.Errorf("%w: empty", registry_errors.ErrInvalidPhoneNumber)
		userDAO := dao.NewUserDAO(driver, stubPhoneValidator{err: phoneErr})

		tx.On("Run", resolveAnyQuery, tmock.Anything).Return(foundResult(), nil).Once()
		tx.On("Run", queryContains("CREATE (u:User)"), tmock.Anything).Return(idResult("ignored"), nil).Once()

		_, err := userDAO.CreateUser(context.Background(), "Sam", "", "", "device-1")
		assert.NoError(t, err)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("TombstonesWithoutExistenceCheck", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		userDAO := dao.NewUserDAO(driver, stubPhoneValidator{})

		tx.On("Run", queryContains("SET u.deleted = true"), tmock.MatchedBy(func(p map[string]any) bool {
			return p["id"] == "user-1"
		})).Return(emptyResult(), nil).Once()

		err := userDAO.DeleteUser(context.Background(), "user-1")
		assert.NoError(t, err)
	})

	t.Run("RunErrorIsUpdateFailed", func(t *testing.T) {
		driver, _, tx := setupSession(t)
		userDAO := dao.NewUserDAO(driver, stubPhoneValidator{})

		tx.On("Run", tmock.Anything, tmock.Anything).Return(nil, assert.AnError).Once()

		err := userDAO.DeleteUser(context.Background(), "user-1")
		assert.ErrorIs(t, err, registry_errors.ErrUpdateFailed)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("MatchesOnlyLiveUsers", func(t *testing.T) {
		driver, session, _ := setupSession(t)
		userDAO := dao.NewUserDAO(driver, stubPhoneValidator{})

		node := neo4j.Node{Props: map[string]interface{}{
			"id":    "user-1",
			"name":  "Sam",
			"phone": "+12025551234",
		}}
		res := new(mock.MockResult)
		res.On("Next").Return(true).Once()
		res.On("Record").Return(&neo4j.Record{Values: []interface{}{node}}).Once()
		session.On("Run", queryContains("{id: $id, deleted: false}"), tmock.Anything).Return(res, nil).Once()

		user, err := userDAO.GetUser(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "Sam", user.Name)
		assert.Equal(t, "+12025551234", user.ContactInfo.PhoneNumber)
	})

	t.Run("AbsentUserIsNilNotError", func(t *testing.T) {
		driver, session, _ := setupSession(t)
		userDAO := dao.NewUserDAO(driver, stubPhoneValidator{})

		session.On("Run", tmock.Anything, tmock.Anything).Return(emptyResult(), nil).Once()

		user, err := userDAO.GetUser(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
