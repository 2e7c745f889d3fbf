package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadbook/leadbook/pkg/model"
)

func createFields() map[string]interface{} {
	return map[string]interface{}{
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	created, err := db.CreateUser(ctx, map[string]interface{}{
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
		"industry":  "Media",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := db.GetUser(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	require.NotNil(t, got.Industry)
	assert.Equal(t, "Media", *got.Industry)
	assert.Nil(t, got.Number)
}

func TestCreateMissingRequiredField(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	_, err := db.CreateUser(ctx, map[string]interface{}{
		"firstName": "A",
		"lastName":  "B",
	})
	require.Error(t, err)
	assert.Equal(t, model.KindMissingField, model.ErrKind(err))

	users, err := db.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateRejectsMistypedValue(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	_, err := db.CreateUser(ctx, map[string]interface{}{
		"firstName": 42.0,
		"lastName":  "B",
		"email":     "a@b.com",
	})
	require.Error(t, err)
	assert.Equal(t, model.KindInvalidArgument, model.ErrKind(err))
}

func TestListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	for _, name := range []string{"A", "B", "C"} {
		fields := createFields()
		fields["firstName"] = name
		_, err := db.CreateUser(ctx, fields)
		require.NoError(t, err)
	}

	users, err := db.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "A", users[0].FirstName)
	assert.Equal(t, "B", users[1].FirstName)
	assert.Equal(t, "C", users[2].FirstName)
}

func TestUpdateTouchesOnlySubmittedFields(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	created, err := db.CreateUser(ctx, map[string]interface{}{
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
		"message":   "hello",
	})
	require.NoError(t, err)

	updated, err := db.UpdateUser(ctx, created.UserID, map[string]interface{}{
		"firstName": "C",
	})
	require.NoError(t, err)
	assert.Equal(t, "C", updated.FirstName)
	assert.Equal(t, "B", updated.LastName)
	assert.Equal(t, "a@b.com", updated.Email)
	require.NotNil(t, updated.Message)
	assert.Equal(t, "hello", *updated.Message)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateEmptyFields(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	created, err := db.CreateUser(ctx, createFields())
	require.NoError(t, err)

	_, err = db.UpdateUser(ctx, created.UserID, map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, model.KindInvalidArgument, model.ErrKind(err))

	// The row must be untouched.
	got, err := db.GetUser(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	_, err := db.UpdateUser(ctx, 99, map[string]interface{}{"firstName": "X"})
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.ErrKind(err))
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	created, err := db.CreateUser(ctx, createFields())
	require.NoError(t, err)

	require.NoError(t, db.DeleteUser(ctx, created.UserID))

	_, err = db.GetUser(ctx, created.UserID)
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.ErrKind(err))

	err = db.DeleteUser(ctx, created.UserID)
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.ErrKind(err))
}

func TestIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryDB()

	first, err := db.CreateUser(ctx, createFields())
	require.NoError(t, err)
	require.NoError(t, db.DeleteUser(ctx, first.UserID))

	second, err := db.CreateUser(ctx, createFields())
	require.NoError(t, err)
	assert.Greater(t, second.UserID, first.UserID)
}
