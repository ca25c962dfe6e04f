// dao/user_dao.go
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

type UserDAO struct {
	Driver         neo4j.Driver
	PhoneValidator PhoneValidator
}

func NewUserDAO(driver neo4j.Driver, phoneValidator PhoneValidator) *UserDAO {
	return &UserDAO{Driver: driver, PhoneValidator: phoneValidator}
}

// CreateUser writes a User vertex and an OWNS edge to the claiming device.
// The device must already exist. A phone, when given, is validated before
// anything is written.
func (dao *UserDAO) CreateUser(ctx context.Context, name, phone, email, deviceID string) (string, error) {
	if phone != "" {
		if err := dao.PhoneValidator.Validate(phone); err != nil {
			return "", err
		}
	}

	start := time.Now()
	id := newID()
	logger.Info("Creating new user", zap.String("deviceID", deviceID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if err := resolveVertex(tx, deviceID, ""); err != nil {
			return nil, err
		}

		props := map[string]interface{}{
			"id":                id,
			"deleted":           false,
			"creationTimestamp": time.Now().Format(time.RFC3339),
		}
		if name != "" {
			props["name"] = name
		}
		if phone != "" {
			props["phone"] = phone
		}
		if email != "" {
			props["email"] = email
		}

		query := `
        MATCH (d {id: $deviceId})
        CREATE (u:` + registry_neo4j.LabelUser + `)
        SET u = $props
        CREATE (u)-[:` + registry_neo4j.RelOwns + `]->(d)
        RETURN u.id
        `
		result, err := tx.Run(query, map[string]interface{}{
			"deviceId": deviceID,
			"props":    props,
		})
		if err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		if !result.Next() {
			return nil, fmt.Errorf("%w: user", registry_errors.ErrEntityCreationFailed)
		}
		return result.Record().Values[0], nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("deviceID", deviceID),
			zap.Duration("duration", duration))
		return "", err
	}

	logger.Info("User created successfully",
		zap.String("userID", id),
		zap.Duration("duration", duration))
	return id, nil
}

// DeleteUser tombstones a user. The vertex and its OWNS edge stay in the
// graph; only the deleted flag flips.
func (dao *UserDAO) DeleteUser(ctx context.Context, userID string) error {
	start := time.Now()
	logger.Info("Deleting user", zap.String("userID", userID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:` + registry_neo4j.LabelUser + ` {id: $id})
        SET u.deleted = true
        `
		if _, err := tx.Run(query, map[string]interface{}{"id": userID}); err != nil {
			return nil, registry_errors.ErrDatabaseOperation
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete user",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Duration("duration", duration))
		return fmt.Errorf("%w: user delete", registry_errors.ErrUpdateFailed)
	}

	logger.Info("User deleted successfully",
		zap.String("userID", userID),
		zap.Duration("duration", duration))
	return nil
}

// GetUser reads a user that has not been tombstoned. Absent and deleted users
// both come back as nil without an error; that is the one place in the core
// where absence is a value rather than a failure.
func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	start := time.Now()

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (u:` + registry_neo4j.LabelUser + ` {id: $id, deleted: false})
    RETURN u
    `
	result, err := session.Run(query, map[string]interface{}{"id": userID})
	if err != nil {
		logger.Error("Failed to execute get user query",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Duration("duration", time.Since(start)))
		return nil, registry_errors.ErrDatabaseOperation
	}

	if !result.Next() {
		return nil, nil
	}

	node := result.Record().Values[0].(neo4j.Node)
	props := node.Props
	return &model.User{
		ID:   stringProp(props, "id"),
		Name: stringProp(props, "name"),
		ContactInfo: model.ContactInfo{
			Email:       stringProp(props, "email"),
			PhoneNumber: stringProp(props, "phone"),
		},
	}, nil
}
