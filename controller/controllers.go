// controller/controllers.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	registry_errors "github.com/tracegraph/registry/errors"
	"github.com/tracegraph/registry/service"
	"github.com/tracegraph/registry/util"
)

type Controllers struct {
	Device *DeviceController
	Org    *OrganizationController
	User   *UserController
	Models *ModelsController
}

func InitializeControllers(services *service.Services, validationUtil *util.ValidationUtil) *Controllers {
	return &Controllers{
		Device: NewDeviceController(services.Device, services.Report),
		Org:    NewOrganizationController(services.Org),
		User:   NewUserController(services.User),
		Models: NewModelsController(validationUtil),
	}
}

// respondWithServiceError maps the domain error taxonomy onto HTTP statuses:
// bad references are 404, rejected input is 400, everything else is a 500.
func respondWithServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, registry_errors.ErrInvalidReference):
		util.RespondWithError(c, http.StatusNotFound, "Referenced entity not found", err)
	case errors.Is(err, registry_errors.ErrInvalidPhoneNumber):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid phone number", err)
	case errors.Is(err, registry_errors.ErrInvalidRequestData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request data", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, message, err)
	}
}
