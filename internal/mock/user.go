package mock

import (
	"context"

	"github.com/leadbook/leadbook/pkg/model"
)

// Users is canned user input for seeding test databases.
var Users = []map[string]interface{}{
	{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"industry":  "Engineering",
	},
	{
		"firstName": "Grace",
		"lastName":  "Hopper",
		"email":     "grace@example.com",
		"number":    "0123456789",
		"message":   "Looking forward to the newsletter.",
	},
}

// Subscriber is a scripted mailing-list subscriber. Outcomes are returned
// in order; once exhausted it keeps returning the last one. The zero
// value always succeeds.
type Subscriber struct {
	Outcomes []model.Outcome
	Calls    []*model.User
}

// Subscribe records the call and returns the next scripted outcome.
func (s *Subscriber) Subscribe(ctx context.Context, user *model.User) model.Outcome {
	s.Calls = append(s.Calls, user)
	if len(s.Outcomes) == 0 {
		return model.SubscribeSuccess("mock-member", user.Email)
	}
	outcome := s.Outcomes[0]
	if len(s.Outcomes) > 1 {
		s.Outcomes = s.Outcomes[1:]
	}
	return outcome
}
