// controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tracegraph/registry/service"
	"github.com/tracegraph/registry/util"
)

type CreateUserRequest struct {
	Name     string         `json:"name"`
	Contact  ContactDetails `json:"contact"`
	DeviceID string         `json:"deviceId" binding:"required"`
}

type ContactDetails struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{userService: userService}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", uc.CreateUser)
		users.DELETE("/:id", uc.DeleteUser)
		users.GET("/:id/summary", uc.GetUser)
	}
}

// CreateUser endpoint
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}

	userID, err := uc.userService.CreateUser(c, req.Name, req.Contact.Phone, req.Contact.Email, req.DeviceID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create user")
		return
	}

	util.RespondWithCreated(c, userID)
}

// DeleteUser endpoint; deleting an unknown or already deleted user is a no-op.
func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.userService.DeleteUser(c, c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.userService.GetUser(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve user")
		return
	}
	if user == nil {
		util.RespondWithError(c, http.StatusNotFound, "User not found", nil)
		return
	}

	c.JSON(http.StatusOK, user)
}
