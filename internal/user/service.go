package user

import (
	"context"

	"github.com/leadbook/leadbook/internal/database"
	"github.com/leadbook/leadbook/internal/mailinglist"
	"github.com/leadbook/leadbook/pkg/model"
	"github.com/leadbook/leadbook/pkg/util/fieldutil"
)

// Service coordinates user persistence with the mailing-list side effect.
// Store errors arrive already classified and are forwarded untouched.
type Service struct {
	db   database.UserDB
	list mailinglist.Subscriber
}

// NewService creates a user service on the given store and subscriber.
func NewService(db database.UserDB, list mailinglist.Subscriber) *Service {
	return &Service{db: db, list: list}
}

// CreateResult is a persisted user plus the warning, if any, from the
// mailing-list side effect.
type CreateResult struct {
	User    *model.User
	Warning *model.Warning
}

// Create persists a new user from the submitted fields, then registers
// them with the mailing list. The subscription runs only after the insert
// succeeded, and its failure never fails the create: it is attached to
// the result as a warning.
func (s *Service) Create(ctx context.Context, input map[string]interface{}) (*CreateResult, error) {
	fields := fieldutil.Project(input, model.AllowedFields)
	if len(fields) == 0 {
		return nil, model.Err(model.KindInvalidArgument)
	}

	u, err := s.db.CreateUser(ctx, fields)
	if err != nil {
		return nil, err
	}

	outcome := s.list.Subscribe(ctx, u)
	return &CreateResult{User: u, Warning: outcome.Warning()}, nil
}

// Update applies the submitted fields to the user with id, leaving all
// other fields unchanged. An input with no recognized, defined fields is
// rejected before reaching storage.
func (s *Service) Update(ctx context.Context, id int, input map[string]interface{}) (*model.User, error) {
	fields := fieldutil.Project(input, model.AllowedFields)
	if len(fields) == 0 {
		return nil, model.Err(model.KindInvalidArgument)
	}
	return s.db.UpdateUser(ctx, id, fields)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]model.User, error) {
	return s.db.ListUsers(ctx)
}

// Get returns the user with id.
func (s *Service) Get(ctx context.Context, id int) (*model.User, error) {
	return s.db.GetUser(ctx, id)
}

// Delete removes the user with id.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.db.DeleteUser(ctx, id)
}
