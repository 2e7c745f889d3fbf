package model

// Outcome is the result of a mailing-list subscription attempt. It is a
// two-variant value: success with the provider's record reference, or
// failure with a user-displayable message and a detail string. Adapters
// return an Outcome instead of an error so callers are forced to handle
// the failure variant without aborting the surrounding operation.
type Outcome struct {
	Success  bool
	MemberID string // provider's stored record reference (success only)
	Email    string
	Message  string // user-displayable (failure only)
	Details  string
}

// SubscribeSuccess returns a successful Outcome.
func SubscribeSuccess(memberID, email string) Outcome {
	return Outcome{Success: true, MemberID: memberID, Email: email}
}

// SubscribeFailure returns a failed Outcome with a user-displayable
// message and a detail string for the response body.
func SubscribeFailure(message, details string) Outcome {
	return Outcome{Message: message, Details: details}
}

// Warning is a non-fatal annotation attached to an otherwise successful
// response when a side effect failed.
type Warning struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Warning converts a failed Outcome into a response warning. A successful
// Outcome yields nil.
func (o Outcome) Warning() *Warning {
	if o.Success {
		return nil
	}
	return &Warning{Message: o.Message, Details: o.Details}
}
