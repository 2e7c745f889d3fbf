package mailinglist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/leadbook/leadbook/internal/config"
	"github.com/leadbook/leadbook/pkg/model"
)

// Subscriber registers users with the mailing-list provider. A failed
// subscription is reported through the Outcome, never as an error: the
// caller's primary operation must not be rolled back or failed because
// the mailing list was unavailable.
type Subscriber interface {
	Subscribe(ctx context.Context, user *model.User) model.Outcome
}

// User-displayable failure messages.
const (
	msgInvalidEmail = "Invalid email address provided. Please check the email format."
	msgMemberExists = "This email is already subscribed to the mailing list."
	msgUnavailable  = "Failed to subscribe to mailing list. Please try again."
)

// Mailchimp error titles distinguished from generic failures.
const (
	titleInvalidResource = "Invalid Resource"
	titleMemberExists    = "Member Exists"
)

// NewSubscriber returns the Mailchimp client when an API key is
// configured, or a disabled no-op subscriber otherwise.
func NewSubscriber() Subscriber {
	if config.Current.Mailchimp.APIKey == "" {
		log.Println("No Mailchimp API key configured. Mailing-list subscriptions disabled.")
		return Disabled{}
	}
	return NewMailchimpClient()
}

// MailchimpClient subscribes users to a Mailchimp audience.
type MailchimpClient struct {
	apiKey     string
	baseURL    string
	audienceID string
	client     *http.Client
}

// NewMailchimpClient creates a client for the configured audience.
func NewMailchimpClient() *MailchimpClient {
	cfg := config.Current.Mailchimp
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MailchimpClient{
		apiKey:     cfg.APIKey,
		baseURL:    fmt.Sprintf("https://%s.api.mailchimp.com/3.0", cfg.ServerPrefix),
		audienceID: cfg.AudienceID,
		client:     &http.Client{Timeout: timeout},
	}
}

type memberRequest struct {
	EmailAddress string      `json:"email_address"`
	Status       string      `json:"status"`
	MergeFields  mergeFields `json:"merge_fields"`
}

type mergeFields struct {
	FirstName string `json:"FNAME"`
	LastName  string `json:"LNAME"`
	Phone     string `json:"PHONE"`
	Industry  string `json:"INDUSTRY"`
	Message   string `json:"MESSAGE"`
}

type memberResponse struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// Subscribe adds the user to the audience. Calling it again for the same
// email yields the distinct "already subscribed" outcome rather than a
// transport failure. The HTTP client's timeout bounds the call so a slow
// provider cannot hold the creation request open.
func (mc *MailchimpClient) Subscribe(ctx context.Context, user *model.User) model.Outcome {
	member := memberRequest{
		EmailAddress: user.Email,
		Status:       "subscribed",
		MergeFields: mergeFields{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Phone:     strOrEmpty(user.Number),
			Industry:  strOrEmpty(user.Industry),
			Message:   strOrEmpty(user.Message),
		},
	}

	body, err := json.Marshal(&member)
	if err != nil {
		return model.SubscribeFailure(msgUnavailable, err.Error())
	}

	url := fmt.Sprintf("%s/lists/%s/members", mc.baseURL, mc.audienceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return model.SubscribeFailure(msgUnavailable, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("anystring", mc.apiKey)

	resp, err := mc.client.Do(req)
	if err != nil {
		return model.SubscribeFailure(msgUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var created memberResponse
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return model.SubscribeFailure(msgUnavailable, err.Error())
		}
		log.Printf("User successfully added to Mailchimp: %s\n", created.EmailAddress)
		return model.SubscribeSuccess(created.ID, created.EmailAddress)
	}

	var apiErr apiError
	// A non-JSON error body still classifies by status below.
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)

	if resp.StatusCode == http.StatusBadRequest {
		switch apiErr.Title {
		case titleInvalidResource:
			return model.SubscribeFailure(msgInvalidEmail, apiErr.Detail)
		case titleMemberExists:
			return model.SubscribeFailure(msgMemberExists, apiErr.Detail)
		}
	}

	detail := apiErr.Detail
	if detail == "" {
		detail = resp.Status
	}
	return model.SubscribeFailure(msgUnavailable, detail)
}

// Disabled is a Subscriber that skips the provider entirely. Used when no
// API key is configured, e.g. in local development.
type Disabled struct{}

// Subscribe reports success without contacting any provider.
func (Disabled) Subscribe(ctx context.Context, user *model.User) model.Outcome {
	return model.SubscribeSuccess("", user.Email)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
