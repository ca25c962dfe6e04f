// controller/models_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracegraph/registry/controller"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/util"
)

func TestModelsController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	validationUtil := util.NewValidationUtil(
		map[string][]string{"BUSINESS": {"OTHER"}},
		[]string{"QR_CODE", "BT_RECEIVER"},
	)
	modelsController := controller.NewModelsController(validationUtil)
	router := setupRouter()
	api := router.Group("/")
	modelsController.RegisterRoutes(api)

	t.Run("GetSiteTypes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/models/site-types", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var catalog map[string][]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
		assert.Equal(t, []string{"OTHER"}, catalog["BUSINESS"])
	})

	t.Run("GetScannableTypes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/models/scannable-types", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var types []string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
		assert.Contains(t, types, "QR_CODE")
	})
}
