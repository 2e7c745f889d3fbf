package database

import (
	"context"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/leadbook/leadbook/pkg/model"
)

// MemoryDB is an in-memory UserDB (useful in tests, for example). It
// mirrors the PostgreSQL backend's semantics: monotonically assigned ids
// that are never reused, insertion-ordered listing, missing required
// fields classified as KindMissingField and storage-type mismatches as
// KindInvalidArgument.
type MemoryDB struct {
	mu     sync.Mutex
	nextID int
	users  []model.User
}

// NewMemoryDB creates an empty in-memory database.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{nextID: 1}
}

// userFieldSet is the staging shape projected fields decode into. Pointer
// fields distinguish "not submitted" from an explicit value.
type userFieldSet struct {
	FirstName *string `mapstructure:"firstName"`
	LastName  *string `mapstructure:"lastName"`
	Email     *string `mapstructure:"email"`
	Number    *string `mapstructure:"number"`
	Industry  *string `mapstructure:"industry"`
	Message   *string `mapstructure:"message"`
}

// decodeFieldSet converts a projected field mapping into typed fields,
// rejecting values the column types could not hold.
func decodeFieldSet(fields map[string]interface{}) (*userFieldSet, error) {
	var set userFieldSet
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &set})
	if err != nil {
		return nil, model.Err(model.KindInternalError)
	}
	if err := dec.Decode(fields); err != nil {
		return nil, model.Err(model.KindInvalidArgument)
	}
	return &set, nil
}

func (set *userFieldSet) apply(u *model.User) {
	if set.FirstName != nil {
		u.FirstName = *set.FirstName
	}
	if set.LastName != nil {
		u.LastName = *set.LastName
	}
	if set.Email != nil {
		u.Email = *set.Email
	}
	if set.Number != nil {
		u.Number = set.Number
	}
	if set.Industry != nil {
		u.Industry = set.Industry
	}
	if set.Message != nil {
		u.Message = set.Message
	}
}

// ListUsers returns all users in insertion order.
func (db *MemoryDB) ListUsers(ctx context.Context) ([]model.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	users := make([]model.User, len(db.users))
	copy(users, db.users)
	return users, nil
}

// GetUser returns the user for id.
func (db *MemoryDB) GetUser(ctx context.Context, id int) (*model.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.UserID == id {
			user := u
			return &user, nil
		}
	}
	return nil, model.Err(model.KindNotFound)
}

// CreateUser inserts a row from the projected field mapping.
func (db *MemoryDB) CreateUser(ctx context.Context, fields map[string]interface{}) (*model.User, error) {
	if len(fields) == 0 {
		return nil, model.Err(model.KindInvalidArgument)
	}
	set, err := decodeFieldSet(fields)
	if err != nil {
		return nil, err
	}
	// NOT NULL columns.
	if set.FirstName == nil || set.LastName == nil || set.Email == nil {
		return nil, model.Err(model.KindMissingField)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	u := model.User{
		UserID:    db.nextID,
		CreatedAt: time.Now(),
	}
	set.apply(&u)
	db.nextID++
	db.users = append(db.users, u)

	user := u
	return &user, nil
}

// UpdateUser updates exactly the submitted fields on the row for id.
func (db *MemoryDB) UpdateUser(ctx context.Context, id int, fields map[string]interface{}) (*model.User, error) {
	if len(fields) == 0 {
		return nil, model.Err(model.KindInvalidArgument)
	}
	set, err := decodeFieldSet(fields)
	if err != nil {
		return nil, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.users {
		if db.users[i].UserID == id {
			set.apply(&db.users[i])
			user := db.users[i]
			return &user, nil
		}
	}
	return nil, model.Err(model.KindNotFound)
}

// DeleteUser removes the row for id. The id is never reassigned.
func (db *MemoryDB) DeleteUser(ctx context.Context, id int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.users {
		if db.users[i].UserID == id {
			db.users = append(db.users[:i], db.users[i+1:]...)
			return nil
		}
	}
	return model.Err(model.KindNotFound)
}

// Close is a no-op for the in-memory backend.
func (db *MemoryDB) Close() error {
	return nil
}
