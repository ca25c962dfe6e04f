// controller/user_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tracegraph/registry/controller"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
	mock_service "github.com/tracegraph/registry/test/service_mock"
)

func TestUserController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserService := mock_service.NewMockIUserService(ctrl)
	userController := controller.NewUserController(mockUserService)
	router := setupRouter()
	api := router.Group("/")
	userController.RegisterRoutes(api)

	t.Run("CreateUser_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			CreateUser(gomock.Any(), "Sam", "+12025551234", "sam@b.test", "device-1").
			Return("user-1", nil)

		body := strings.NewReader(`{
			"name": "Sam",
			"contact": {"phone": "+12025551234", "email": "sam@b.test"},
			"deviceId": "device-1"
		}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/users", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "user-1", resp["id"])
	})

	t.Run("CreateUser_Failure_MissingDeviceID", func(t *testing.T) {
		body := strings.NewReader(`{"name": "Sam"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/users", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteUser_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			DeleteUser(gomock.Any(), "user-1").
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/users/user-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("DeleteUser_UnknownIsStillNoContent", func(t *testing.T) {
		mockUserService.EXPECT().
			DeleteUser(gomock.Any(), "missing").
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/users/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("GetUser_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUser(gomock.Any(), "user-1").
			Return(&model.User{ID: "user-1", Name: "Sam"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/user-1/summary", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var user model.User
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "Sam", user.Name)
	})

	t.Run("GetUser_Failure_Tombstoned", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUser(gomock.Any(), "user-2").
			Return(nil, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/user-2/summary", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
