package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadbook/leadbook/internal/database"
	"github.com/leadbook/leadbook/internal/mock"
	"github.com/leadbook/leadbook/pkg/model"
)

func newTestService() (*Service, *mock.Subscriber) {
	list := &mock.Subscriber{}
	return NewService(database.NewMemoryDB(), list), list
}

func TestServiceCreateSubscribes(t *testing.T) {
	ctx := context.Background()
	svc, list := newTestService()

	result, err := svc.Create(ctx, mock.Users[0])
	require.NoError(t, err)
	assert.Nil(t, result.Warning)
	assert.NotZero(t, result.User.UserID)

	require.Len(t, list.Calls, 1)
	assert.Equal(t, result.User, list.Calls[0])
}

func TestServiceCreateSubscriptionFailureIsWarning(t *testing.T) {
	ctx := context.Background()
	svc, list := newTestService()
	list.Outcomes = []model.Outcome{
		model.SubscribeFailure("This email is already subscribed to the mailing list.", "ada@example.com is already a list member."),
	}

	result, err := svc.Create(ctx, mock.Users[0])
	require.NoError(t, err)

	require.NotNil(t, result.Warning)
	assert.Equal(t, "This email is already subscribed to the mailing list.", result.Warning.Message)

	// The row persisted despite the failed side effect.
	got, err := svc.Get(ctx, result.User.UserID)
	require.NoError(t, err)
	assert.Equal(t, result.User, got)
}

func TestServiceCreateRejectedBeforeSubscription(t *testing.T) {
	ctx := context.Background()
	svc, list := newTestService()

	tt := []struct {
		name  string
		input map[string]interface{}
		want  model.Kind
	}{
		{
			name:  "no recognized fields",
			input: map[string]interface{}{"user_id": 7.0, "admin": true},
			want:  model.KindInvalidArgument,
		},
		{
			name:  "required field missing",
			input: map[string]interface{}{"firstName": "A"},
			want:  model.KindMissingField,
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.Create(ctx, test.input)
			require.Error(t, err)
			assert.Equal(t, test.want, model.ErrKind(err))
		})
	}

	// Subscription is attempted iff persistence succeeded.
	assert.Empty(t, list.Calls)
}

func TestServiceUpdateProjectsFields(t *testing.T) {
	ctx := context.Background()
	svc, list := newTestService()

	result, err := svc.Create(ctx, mock.Users[0])
	require.NoError(t, err)

	updated, err := svc.Update(ctx, result.User.UserID, map[string]interface{}{
		"firstName": "C",
		"user_id":   999.0, // not client-settable, must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "C", updated.FirstName)
	assert.Equal(t, result.User.UserID, updated.UserID)
	assert.Equal(t, result.User.LastName, updated.LastName)

	// No subscription on the update path.
	assert.Len(t, list.Calls, 1)
}

func TestServiceUpdateNothingRecognized(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	result, err := svc.Create(ctx, mock.Users[0])
	require.NoError(t, err)

	_, err = svc.Update(ctx, result.User.UserID, map[string]interface{}{
		"created_at": "2020-01-01",
		"email":      nil,
	})
	require.Error(t, err)
	assert.Equal(t, model.KindInvalidArgument, model.ErrKind(err))
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc, list := newTestService()

	result, err := svc.Create(ctx, mock.Users[1])
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, result.User.UserID))

	_, err = svc.Get(ctx, result.User.UserID)
	assert.Equal(t, model.KindNotFound, model.ErrKind(err))

	// Delete never talks to the mailing list.
	assert.Len(t, list.Calls, 1)
}
