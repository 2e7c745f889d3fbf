package database

import (
	"context"
	"time"

	"github.com/leadbook/leadbook/pkg/model"
)

// DefaultTimeout is the default length of time to wait
// for a database operation to complete.
const DefaultTimeout = time.Second * 3

// UserDB handles all interactions with the user store. Every method
// classifies its failures into model.Error kinds at this boundary;
// callers never see raw storage errors.
type UserDB interface {
	// ListUsers returns all users in insertion order.
	ListUsers(ctx context.Context) ([]model.User, error)

	// GetUser returns the user for id, or KindNotFound if no row matches.
	GetUser(ctx context.Context, id int) (*model.User, error)

	// CreateUser inserts a row from the projected field mapping and
	// returns it with the generated user_id and created_at. A required
	// field missing at the storage layer yields KindMissingField.
	CreateUser(ctx context.Context, fields map[string]interface{}) (*model.User, error)

	// UpdateUser updates exactly the submitted columns on the row for id
	// and returns the updated row. Empty fields yield KindInvalidArgument,
	// an unmatched id KindNotFound.
	UpdateUser(ctx context.Context, id int, fields map[string]interface{}) (*model.User, error)

	// DeleteUser removes the row for id, or returns KindNotFound if no
	// row existed. Deletion is physical and irreversible.
	DeleteUser(ctx context.Context, id int) error

	Close() error
}

// userColumns translates client field names to column names. Only fields
// listed here can ever appear in a generated statement.
var userColumns = map[string]string{
	"firstName": "firstname",
	"lastName":  "lastname",
	"email":     "email",
	"number":    "number",
	"industry":  "industry",
	"message":   "message",
}
