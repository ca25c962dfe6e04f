// service/user_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tracegraph/registry/dao"
	registry_errors "github.com/tracegraph/registry/errors"
	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
	"github.com/tracegraph/registry/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	CreateUser(ctx context.Context, name, phone, email, deviceID string) (string, error)
	DeleteUser(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

// UserService handles business logic for users. Users are only ever soft
// deleted; their device link survives the tombstone.
type UserService struct {
	userDAO        dao.IUserDAO
	validationUtil *util.ValidationUtil
}

var _ IUserService = &UserService{}

func NewUserService(userDAO dao.IUserDAO, validationUtil *util.ValidationUtil) *UserService {
	return &UserService{userDAO: userDAO, validationUtil: validationUtil}
}

// CreateUser creates a user claiming the given device. At least one of name,
// phone or email must be present.
func (s *UserService) CreateUser(ctx context.Context, name, phone, email, deviceID string) (string, error) {
	if err := s.validationUtil.ValidateNewUser(name, phone, email); err != nil {
		return "", fmt.Errorf("%w: %v", registry_errors.ErrInvalidRequestData, err)
	}

	userID, err := s.userDAO.CreateUser(ctx, name, phone, email, deviceID)
	if err != nil {
		logger.Error("Error creating user", zap.Error(err), zap.String("deviceID", deviceID))
		return "", err
	}
	return userID, nil
}

// DeleteUser tombstones a user. Deleting an unknown or already-deleted user
// is a no-op.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	return s.userDAO.DeleteUser(ctx, user.ID)
}

// GetUser fetches a user summary; tombstoned users read as absent.
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.userDAO.GetUser(ctx, userID)
}
