// dao/resolver.go
package dao

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	registry_errors "github.com/tracegraph/registry/errors"
)

// PhoneValidator validates that a phone string is a possible number in
// international (E.164) format. Supplied to the DAOs by the caller.
type PhoneValidator interface {
	Validate(phone string) error
}

// newID generates the primary key for a vertex or edge. Keys are assigned
// before the write, never by the database.
func newID() string {
	return uuid.New().String()
}

// resolveVertex checks inside the current transaction that a vertex with the
// given ID (and label, when non-empty) exists. Every edge-creating operation
// must resolve both endpoints through this before the mutation so that a bad
// reference aborts the transaction with no partial edge left behind.
func resolveVertex(tx neo4j.Transaction, id string, label string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", registry_errors.ErrInvalidReference)
	}

	match := "MATCH (v {id: $id}) RETURN v.id"
	if label != "" {
		match = "MATCH (v:" + label + " {id: $id}) RETURN v.id"
	}

	result, err := tx.Run(match, map[string]interface{}{"id": id})
	if err != nil {
		return registry_errors.ErrDatabaseOperation
	}
	if !result.Next() {
		if label == "" {
			label = "any"
		}
		return fmt.Errorf("%w: id=%s label=%s", registry_errors.ErrInvalidReference, id, label)
	}
	return nil
}

// stringProp reads an optional string property off a vertex property map.
func stringProp(props map[string]interface{}, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}
